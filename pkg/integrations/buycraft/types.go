package buycraft

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Info describes the server and its store.
type Info struct {
	LatestVersion  Version `json:"latestVersion"`  // Latest plugin version
	LatestDownload string  `json:"latestDownload"` // Download URL for the latest plugin
	ServerID       int     `json:"serverId"`
	ServerCurrency string  `json:"serverCurrency"` // ISO currency code, e.g. "USD"
	ServerName     string  `json:"serverName"`
	ServerStore    string  `json:"serverStore"` // Base URL of the web store
}

// Package is a purchasable item in the store.
type Package struct {
	ID          int             `json:"id"`
	Order       int             `json:"order"` // Display order in the store
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
}

// Payment is a completed purchase. Time is seconds since the Unix epoch.
type Payment struct {
	Time       int64           `json:"time"`
	Packages   []int           `json:"packages"` // Package IDs bought in this payment
	PlayerName string          `json:"ign"`
	Price      decimal.Decimal `json:"price"`
	Currency   string          `json:"currency"`
}

// CommandBatch is a set of commands queued for one player.
type CommandBatch struct {
	PlayerName    string   `json:"ign"`
	Commands      []string `json:"commands"`
	RequireOnline bool     `json:"requireOnline"`
}

// Checker holds command batches waiting for delivery.
type Checker struct {
	Claimables []CommandBatch `json:"claimables"`
	Expiries   []CommandBatch `json:"expirys"`
}

// Version is a plugin version. The API has sent it both as a JSON number
// and as a string; either decodes to its textual form.
type Version string

// UnmarshalJSON accepts a JSON string, number or null.
func (v *Version) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Version(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*v = Version(n.String())
	return nil
}

func (p Payment) clone() Payment {
	p.Packages = cloneSlice(p.Packages)
	return p
}

func (b CommandBatch) clone() CommandBatch {
	b.Commands = cloneSlice(b.Commands)
	return b
}

func (c Checker) clone() Checker {
	return Checker{
		Claimables: cloneBatches(c.Claimables),
		Expiries:   cloneBatches(c.Expiries),
	}
}

func cloneBatches(in []CommandBatch) []CommandBatch {
	if in == nil {
		return nil
	}
	out := make([]CommandBatch, len(in))
	for i, b := range in {
		out[i] = b.clone()
	}
	return out
}

func clonePayments(in []Payment) []Payment {
	if in == nil {
		return nil
	}
	out := make([]Payment, len(in))
	for i, p := range in {
		out[i] = p.clone()
	}
	return out
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}
	return append(make([]T, 0, len(in)), in...)
}
