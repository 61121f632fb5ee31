// Package integrations provides shared HTTP plumbing for remote API clients.
//
// # Overview
//
// Each remote service has its own subpackage:
//
//   - [buycraft]: the Buycraft v3 monetization API
//
// # Client Pattern
//
// Service clients embed [Client] and layer their protocol on top of
// [Client.GetBytes]:
//
//	client, err := buycraft.New(secret)
//	name, ok := client.ServerName(ctx)
//
// The shared [Client] handles:
//   - default headers on every request
//   - mapping HTTP status codes to [ErrNotFound] and [ErrNetwork]
//   - optional retry with backoff via [httputil.Policy]
//   - HTTP events through [observability.HTTP]
//
// Query strings that must keep a fixed parameter order are built with
// [Query] rather than [net/url.Values].
//
// [buycraft]: github.com/shininet/buycraft/pkg/integrations/buycraft
// [httputil.Policy]: github.com/shininet/buycraft/pkg/httputil.Policy
// [observability.HTTP]: github.com/shininet/buycraft/pkg/observability.HTTP
package integrations
