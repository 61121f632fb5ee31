package buycraft

import (
	"context"

	"github.com/shopspring/decimal"
)

// project ensures cat is cached and applies fn to the cache under lock.
// ok is false when the category could not be populated.
func project[T any](ctx context.Context, c *Client, cat Category, fn func(*store) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.ensureLocked(ctx, cat) {
		var zero T
		return zero, false
	}
	return fn(&c.data), true
}

// item is project for a single element of a cached list. ok is false when
// the category could not be populated or i is outside [0, len).
func item[E, T any](ctx context.Context, c *Client, cat Category, list func(*store) []E, i int, fn func(E) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	var zero T
	if !c.ensureLocked(ctx, cat) {
		return zero, false
	}
	l := list(&c.data)
	if i < 0 || i >= len(l) {
		return zero, false
	}
	return fn(l[i]), true
}

func count[E any](ctx context.Context, c *Client, cat Category, list func(*store) []E) (int, bool) {
	return project(ctx, c, cat, func(s *store) int { return len(list(s)) })
}

// Accessors fetch their category on first use and then read the cache.
// Every accessor returns ok == false, and a zero value, when the category
// cannot be populated: the client is blocked or the fetch failed. Indexed
// accessors also return ok == false when i is outside [0, count).

// Raw data. Each returns a copy that the caller may modify.

// RawInfo returns a copy of the cached server information.
func (c *Client) RawInfo(ctx context.Context) (Info, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) Info { return s.info.val })
}

// RawPackages returns a copy of the cached package list.
func (c *Client) RawPackages(ctx context.Context) ([]Package, bool) {
	return project(ctx, c, CategoryPackages, func(s *store) []Package { return cloneSlice(s.packages.val) })
}

// RawPayments returns a copy of the cached payment history, oldest first.
func (c *Client) RawPayments(ctx context.Context) ([]Payment, bool) {
	return project(ctx, c, CategoryPayments, func(s *store) []Payment { return clonePayments(s.payments.val) })
}

// RawCommands returns a copy of the cached pending command batches.
func (c *Client) RawCommands(ctx context.Context) ([]CommandBatch, bool) {
	return project(ctx, c, CategoryCommands, func(s *store) []CommandBatch { return cloneBatches(s.commands.val) })
}

// RawChecker returns a copy of the cached claimable and expired batches.
func (c *Client) RawChecker(ctx context.Context) (Checker, bool) {
	return project(ctx, c, CategoryChecker, func(s *store) Checker { return s.checker.val.clone() })
}

// Info. ok is false when the info category cannot be populated.

// LatestVersion returns the newest plugin version as text.
func (c *Client) LatestVersion(ctx context.Context) (string, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) string { return string(s.info.val.LatestVersion) })
}

// LatestDownload returns the download URL of the newest plugin.
func (c *Client) LatestDownload(ctx context.Context) (string, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) string { return s.info.val.LatestDownload })
}

// ServerID returns the store's numeric server id.
func (c *Client) ServerID(ctx context.Context) (int, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) int { return s.info.val.ServerID })
}

// ServerCurrency returns the store currency code, e.g. "USD".
func (c *Client) ServerCurrency(ctx context.Context) (string, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) string { return s.info.val.ServerCurrency })
}

// ServerName returns the store's display name.
func (c *Client) ServerName(ctx context.Context) (string, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) string { return s.info.val.ServerName })
}

// ServerStore returns the web store base URL used by the buy link builders.
func (c *Client) ServerStore(ctx context.Context) (string, bool) {
	return project(ctx, c, CategoryInfo, func(s *store) string { return s.info.val.ServerStore })
}

// Packages, indexed in API order. ok is false when packages cannot be
// populated or i is out of range.

// PackageCount returns the number of cached packages.
func (c *Client) PackageCount(ctx context.Context) (int, bool) {
	return count(ctx, c, CategoryPackages, (*store).packageList)
}

// PackageID returns the remote id of package i. Ids are not unique.
func (c *Client) PackageID(ctx context.Context, i int) (int, bool) {
	return item(ctx, c, CategoryPackages, (*store).packageList, i, func(p Package) int { return p.ID })
}

// PackageOrder returns the display order of package i.
func (c *Client) PackageOrder(ctx context.Context, i int) (int, bool) {
	return item(ctx, c, CategoryPackages, (*store).packageList, i, func(p Package) int { return p.Order })
}

// PackageName returns the name of package i.
func (c *Client) PackageName(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryPackages, (*store).packageList, i, func(p Package) string { return p.Name })
}

// PackageDescription returns the description of package i.
func (c *Client) PackageDescription(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryPackages, (*store).packageList, i, func(p Package) string { return p.Description })
}

// PackagePrice returns the price of package i in the server currency.
func (c *Client) PackagePrice(ctx context.Context, i int) (decimal.Decimal, bool) {
	return item(ctx, c, CategoryPackages, (*store).packageList, i, func(p Package) decimal.Decimal { return p.Price })
}

// Payments, indexed oldest first. ok is false when payments cannot be
// populated or i is out of range.

// PaymentCount returns the number of cached payments.
func (c *Client) PaymentCount(ctx context.Context) (int, bool) {
	return count(ctx, c, CategoryPayments, (*store).paymentList)
}

// PaymentTime returns the payment time in seconds since the Unix epoch.
func (c *Client) PaymentTime(ctx context.Context, i int) (int64, bool) {
	return item(ctx, c, CategoryPayments, (*store).paymentList, i, func(p Payment) int64 { return p.Time })
}

// PaymentPackages returns the IDs of the packages bought in payment i.
func (c *Client) PaymentPackages(ctx context.Context, i int) ([]int, bool) {
	return item(ctx, c, CategoryPayments, (*store).paymentList, i, func(p Payment) []int { return cloneSlice(p.Packages) })
}

// PaymentPlayerName returns the in-game name that made payment i.
func (c *Client) PaymentPlayerName(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryPayments, (*store).paymentList, i, func(p Payment) string { return p.PlayerName })
}

// PaymentPrice returns the amount paid in payment i.
func (c *Client) PaymentPrice(ctx context.Context, i int) (decimal.Decimal, bool) {
	return item(ctx, c, CategoryPayments, (*store).paymentList, i, func(p Payment) decimal.Decimal { return p.Price })
}

// PaymentCurrency returns the currency code of payment i.
func (c *Client) PaymentCurrency(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryPayments, (*store).paymentList, i, func(p Payment) string { return p.Currency })
}

// Command batches share one shape across commands, claimables and expiries.
// Commands come from the commands category; claimables and expiries from the
// checker category. ok is false when that category cannot be populated or i
// is out of range.

func batchPlayerName(b CommandBatch) string  { return b.PlayerName }
func batchCommands(b CommandBatch) []string  { return cloneSlice(b.Commands) }
func batchRequireOnline(b CommandBatch) bool { return b.RequireOnline }

// CommandCount returns the number of pending command batches.
func (c *Client) CommandCount(ctx context.Context) (int, bool) {
	return count(ctx, c, CategoryCommands, (*store).commandList)
}

// CommandPlayerName returns the player that batch i is for.
func (c *Client) CommandPlayerName(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryCommands, (*store).commandList, i, batchPlayerName)
}

// CommandList returns a copy of the commands in batch i.
func (c *Client) CommandList(ctx context.Context, i int) ([]string, bool) {
	return item(ctx, c, CategoryCommands, (*store).commandList, i, batchCommands)
}

// CommandRequireOnline reports whether batch i may only run while the player is online.
func (c *Client) CommandRequireOnline(ctx context.Context, i int) (bool, bool) {
	return item(ctx, c, CategoryCommands, (*store).commandList, i, batchRequireOnline)
}

// ClaimableCount returns the number of claimable batches.
func (c *Client) ClaimableCount(ctx context.Context) (int, bool) {
	return count(ctx, c, CategoryChecker, (*store).claimableList)
}

// ClaimablePlayerName returns the player that claimable batch i is for.
func (c *Client) ClaimablePlayerName(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryChecker, (*store).claimableList, i, batchPlayerName)
}

// ClaimableCommandList returns a copy of the commands in claimable batch i.
func (c *Client) ClaimableCommandList(ctx context.Context, i int) ([]string, bool) {
	return item(ctx, c, CategoryChecker, (*store).claimableList, i, batchCommands)
}

// ClaimableRequireOnline reports whether claimable batch i needs the player online.
func (c *Client) ClaimableRequireOnline(ctx context.Context, i int) (bool, bool) {
	return item(ctx, c, CategoryChecker, (*store).claimableList, i, batchRequireOnline)
}

// ExpiryCount returns the number of expired batches.
func (c *Client) ExpiryCount(ctx context.Context) (int, bool) {
	return count(ctx, c, CategoryChecker, (*store).expiryList)
}

// ExpiryPlayerName returns the player that expired batch i is for.
func (c *Client) ExpiryPlayerName(ctx context.Context, i int) (string, bool) {
	return item(ctx, c, CategoryChecker, (*store).expiryList, i, batchPlayerName)
}

// ExpiryCommandList returns a copy of the commands in expired batch i.
func (c *Client) ExpiryCommandList(ctx context.Context, i int) ([]string, bool) {
	return item(ctx, c, CategoryChecker, (*store).expiryList, i, batchCommands)
}

// ExpiryRequireOnline reports whether expired batch i needs the player online.
func (c *Client) ExpiryRequireOnline(ctx context.Context, i int) (bool, bool) {
	return item(ctx, c, CategoryChecker, (*store).expiryList, i, batchRequireOnline)
}
