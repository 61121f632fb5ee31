package buycraft

import (
	"context"
	"strconv"
	"strings"

	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/integrations"
)

const (
	checkoutPackagesPath = "/checkout/packages"
	checkoutPayPath      = "/checkout/pay"
)

// BuyLinkURL builds a link that adds package id to the basket of store.
// player is optional; when non-empty it is passed as the in-game name.
//
// A non-empty player must pass [errors.ValidatePlayerName]: a name that is
// only whitespace, longer than 64 characters or holds control characters
// makes the link absent rather than being dropped from it.
//
// ok is false if store is empty, id is negative or player is invalid.
func BuyLinkURL(store string, id int, player string) (string, bool) {
	if strings.TrimSpace(store) == "" || id < 0 {
		return "", false
	}
	q := integrations.Query{}.
		Add("action", "add").
		Add("package", strconv.Itoa(id))
	if player != "" {
		if errors.ValidatePlayerName(player) != nil {
			return "", false
		}
		q = q.Add("ign", player)
	}
	return integrations.JoinURL(store, checkoutPackagesPath, q), true
}

// DirectBuyLinkURL builds a link that skips the basket and pays for package
// id through gateway. All arguments are required, and player and gateway
// follow the same validation as [BuyLinkURL].
func DirectBuyLinkURL(store string, id int, player, gateway string) (string, bool) {
	if strings.TrimSpace(store) == "" || id < 0 {
		return "", false
	}
	if errors.ValidatePlayerName(player) != nil || errors.ValidateGateway(gateway) != nil {
		return "", false
	}
	q := integrations.Query{}.
		Add("direct", "true").
		Add("package", strconv.Itoa(id)).
		Add("agreement", "true").
		Add("gateway", gateway).
		Add("ign", player)
	return integrations.JoinURL(store, checkoutPayPath, q), true
}

// BuyLink is [BuyLinkURL] using the server's store URL from the info
// category. Arguments are checked before any fetch.
func (c *Client) BuyLink(ctx context.Context, id int, player string) (string, bool) {
	if id < 0 || (player != "" && errors.ValidatePlayerName(player) != nil) {
		return "", false
	}
	store, ok := c.ServerStore(ctx)
	if !ok {
		return "", false
	}
	return BuyLinkURL(store, id, player)
}

// BuyLinkDirect is [DirectBuyLinkURL] using the server's store URL from the
// info category. Arguments are checked before any fetch.
func (c *Client) BuyLinkDirect(ctx context.Context, id int, player, gateway string) (string, bool) {
	if id < 0 || errors.ValidatePlayerName(player) != nil || errors.ValidateGateway(gateway) != nil {
		return "", false
	}
	store, ok := c.ServerStore(ctx)
	if !ok {
		return "", false
	}
	return DirectBuyLinkURL(store, id, player, gateway)
}
