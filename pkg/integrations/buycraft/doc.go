// Package buycraft provides a read-only client for the Buycraft v3
// monetization API.
//
// # Overview
//
// The API exposes five categories of account data, each fetched with a
// single authenticated GET:
//
//   - info: server identity and store metadata
//   - packages: the packages offered in the store
//   - payments: payment history, oldest first
//   - commands: pending command batches
//   - checker: claimables and expiries awaiting online/offline delivery
//
// # Usage
//
//	client, err := buycraft.New(secret)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	n, ok := client.PackageCount(ctx)
//	if !ok {
//	    log.Fatal(client.LastError())
//	}
//	for i := range n {
//	    name, _ := client.PackageName(ctx, i)
//	    fmt.Println(name)
//	}
//
// # Caching
//
// Each category is fetched on first use and kept in memory for the lifetime
// of the [Client]. Accessors go through the matching Ensure operation, which
// fetches only when the category has never been populated. Refresh
// operations always re-fetch and overwrite. There is no expiry and nothing
// is persisted.
//
// # Failure Model
//
// [Client.Fetch] returns structured errors from
// [github.com/shininet/buycraft/pkg/errors] for every non-success status.
// Refresh and Ensure report failure as a boolean, and accessors report it
// as ok == false. The error behind the most recent failed refresh is
// available from [Client.LastError].
//
// When the API reports the secret as not found (status 101) the client
// marks itself blocked. A blocked client makes no further network calls and
// every accessor reports absence.
//
// # Buy Links
//
// [BuyLinkURL] and [DirectBuyLinkURL] build checkout URLs from a store URL
// without any I/O. [Client.BuyLink] and [Client.BuyLinkDirect] resolve the
// store URL from the info category first.
package buycraft
