package buycraft

import (
	"context"

	"github.com/shininet/buycraft/pkg/observability"
)

// Refresh re-fetches category cat and overwrites its cached value.
//
// Returns:
//   - true when the fetch and decode succeeded
//   - false on any failure, including a blocked client; the cache is left
//     untouched and the cause is available from [Client.LastError]
func (c *Client) Refresh(ctx context.Context, cat Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshLocked(ctx, cat)
}

// Ensure makes sure category cat is cached, fetching it only if it has never
// been populated. It always reports false once the client is blocked.
func (c *Client) Ensure(ctx context.Context, cat Category) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ensureLocked(ctx, cat)
}

// LastError returns the error from the most recent failed refresh, or nil
// if the most recent refresh succeeded.
func (c *Client) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// RefreshInfo re-fetches server information. See [Client.Refresh].
func (c *Client) RefreshInfo(ctx context.Context) bool { return c.Refresh(ctx, CategoryInfo) }

// RefreshPackages re-fetches the package list. See [Client.Refresh].
func (c *Client) RefreshPackages(ctx context.Context) bool { return c.Refresh(ctx, CategoryPackages) }

// RefreshPayments re-fetches the payment history. See [Client.Refresh].
func (c *Client) RefreshPayments(ctx context.Context) bool { return c.Refresh(ctx, CategoryPayments) }

// RefreshCommands re-fetches pending command batches. See [Client.Refresh].
func (c *Client) RefreshCommands(ctx context.Context) bool { return c.Refresh(ctx, CategoryCommands) }

// RefreshChecker re-fetches claimable and expired batches. See [Client.Refresh].
func (c *Client) RefreshChecker(ctx context.Context) bool { return c.Refresh(ctx, CategoryChecker) }

// EnsureInfo fetches server information unless it is cached. See [Client.Ensure].
func (c *Client) EnsureInfo(ctx context.Context) bool { return c.Ensure(ctx, CategoryInfo) }

// EnsurePackages fetches the package list unless it is cached. See [Client.Ensure].
func (c *Client) EnsurePackages(ctx context.Context) bool { return c.Ensure(ctx, CategoryPackages) }

// EnsurePayments fetches the payment history unless it is cached. See [Client.Ensure].
func (c *Client) EnsurePayments(ctx context.Context) bool { return c.Ensure(ctx, CategoryPayments) }

// EnsureCommands fetches pending command batches unless they are cached. See [Client.Ensure].
func (c *Client) EnsureCommands(ctx context.Context) bool { return c.Ensure(ctx, CategoryCommands) }

// EnsureChecker fetches claimable and expired batches unless they are cached. See [Client.Ensure].
func (c *Client) EnsureChecker(ctx context.Context) bool { return c.Ensure(ctx, CategoryChecker) }

// refreshLocked must be called with c.mu held.
func (c *Client) refreshLocked(ctx context.Context, cat Category) bool {
	resp, err := c.Fetch(ctx, cat.params())
	var n int
	if err == nil {
		n, err = c.data.fill(cat, resp.Payload)
	}
	if err != nil {
		c.lastErr = err
		c.logger.Warn("refresh failed", "category", cat, "err", err)
		return false
	}
	c.lastErr = nil
	c.logger.Debug("refreshed", "category", cat, "items", n)
	observability.Cache().OnCacheSet(ctx, cat.String(), n)
	return true
}

// ensureLocked must be called with c.mu held.
func (c *Client) ensureLocked(ctx context.Context, cat Category) bool {
	if c.blocked.Load() {
		return false
	}
	if c.data.populated(cat) {
		observability.Cache().OnCacheHit(ctx, cat.String())
		return true
	}
	observability.Cache().OnCacheMiss(ctx, cat.String())
	return c.refreshLocked(ctx, cat)
}
