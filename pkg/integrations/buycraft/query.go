package buycraft

import (
	"context"
	"strings"
)

// Query helpers return local indices into the cached lists, usable with the
// indexed accessors. A valid query with no matches returns an empty slice
// and ok == true; ok is false for invalid arguments or when the category
// could not be populated.

// PackagesByID returns the indices of packages whose ID equals id, in
// ascending order.
func (c *Client) PackagesByID(ctx context.Context, id int) ([]int, bool) {
	if id < 0 {
		return nil, false
	}
	return project(ctx, c, CategoryPackages, func(s *store) []int {
		out := []int{}
		for i, p := range s.packages.val {
			if p.ID == id {
				out = append(out, i)
			}
		}
		return out
	})
}

// PaymentsSince returns the indices of payments made at or after t (Unix
// seconds), newest first. Payments are stored oldest first, so the scan
// walks backwards and stops at the first older payment.
func (c *Client) PaymentsSince(ctx context.Context, t int64) ([]int, bool) {
	if t < 0 {
		return nil, false
	}
	return project(ctx, c, CategoryPayments, func(s *store) []int {
		out := []int{}
		for i := len(s.payments.val) - 1; i >= 0; i-- {
			if s.payments.val[i].Time < t {
				break
			}
			out = append(out, i)
		}
		return out
	})
}

// RecentPayments returns the indices of the newest n payments, newest
// first. Fewer are returned if fewer are cached.
func (c *Client) RecentPayments(ctx context.Context, n int) ([]int, bool) {
	if n <= 0 {
		return nil, false
	}
	return project(ctx, c, CategoryPayments, func(s *store) []int {
		total := len(s.payments.val)
		out := make([]int, 0, min(n, total))
		for i := total - 1; i >= 0 && len(out) < n; i-- {
			out = append(out, i)
		}
		return out
	})
}

// PaymentsByPlayerName returns the indices of payments made by name,
// compared case-insensitively, in ascending order.
func (c *Client) PaymentsByPlayerName(ctx context.Context, name string) ([]int, bool) {
	if name == "" {
		return nil, false
	}
	return project(ctx, c, CategoryPayments, func(s *store) []int {
		out := []int{}
		for i, p := range s.payments.val {
			if strings.EqualFold(p.PlayerName, name) {
				out = append(out, i)
			}
		}
		return out
	})
}

// PaymentsByPackageID returns the indices of payments that include package
// id, in ascending order. A payment that lists id more than once appears
// once per occurrence.
func (c *Client) PaymentsByPackageID(ctx context.Context, id int) ([]int, bool) {
	if id < 0 {
		return nil, false
	}
	return project(ctx, c, CategoryPayments, func(s *store) []int {
		out := []int{}
		for i, p := range s.payments.val {
			for _, pkg := range p.Packages {
				if pkg == id {
					out = append(out, i)
				}
			}
		}
		return out
	})
}
