package buycraft

import (
	"context"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"
)

func TestInfoAccessors(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	if v, ok := c.LatestVersion(ctx); !ok || v != "6.2" {
		t.Errorf("LatestVersion() = %q, %v, want 6.2", v, ok)
	}
	if v, _ := c.LatestDownload(ctx); v != "https://dl.example/plugin.jar" {
		t.Errorf("LatestDownload() = %q", v)
	}
	if v, _ := c.ServerID(ctx); v != 42 {
		t.Errorf("ServerID() = %d, want 42", v)
	}
	if v, _ := c.ServerCurrency(ctx); v != "USD" {
		t.Errorf("ServerCurrency() = %q, want USD", v)
	}
	if v, _ := c.ServerName(ctx); v != "Blockland" {
		t.Errorf("ServerName() = %q, want Blockland", v)
	}
	if v, _ := c.ServerStore(ctx); v != "https://store.example/" {
		t.Errorf("ServerStore() = %q", v)
	}
	if got := m.count(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
}

func TestLatestVersionAsString(t *testing.T) {
	m := newMockAPI(t, map[string]string{
		"info": `{"code":0,"payload":{"latestVersion":"6.2.1","serverStore":"https://s.example"}}`,
	})
	c := testClient(t, m)

	if v, ok := c.LatestVersion(context.Background()); !ok || v != "6.2.1" {
		t.Errorf("LatestVersion() = %q, %v, want 6.2.1", v, ok)
	}
}

func TestPackageAccessors(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	if n, ok := c.PackageCount(ctx); !ok || n != 3 {
		t.Fatalf("PackageCount() = %d, %v, want 3", n, ok)
	}
	if v, _ := c.PackageID(ctx, 1); v != 9 {
		t.Errorf("PackageID(1) = %d, want 9", v)
	}
	if v, _ := c.PackageOrder(ctx, 2); v != 3 {
		t.Errorf("PackageOrder(2) = %d, want 3", v)
	}
	if v, _ := c.PackageName(ctx, 0); v != "VIP" {
		t.Errorf("PackageName(0) = %q, want VIP", v)
	}
	if v, _ := c.PackageDescription(ctx, 1); v != "Most valuable" {
		t.Errorf("PackageDescription(1) = %q", v)
	}

	prices := []string{"4.99", "9.5", "3"}
	for i, want := range prices {
		got, ok := c.PackagePrice(ctx, i)
		if !ok || !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("PackagePrice(%d) = %s, %v, want %s", i, got, ok, want)
		}
	}
}

func TestPaymentAccessors(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	if n, ok := c.PaymentCount(ctx); !ok || n != 3 {
		t.Fatalf("PaymentCount() = %d, %v, want 3", n, ok)
	}
	if v, _ := c.PaymentTime(ctx, 2); v != 30 {
		t.Errorf("PaymentTime(2) = %d, want 30", v)
	}
	if v, _ := c.PaymentPackages(ctx, 1); !reflect.DeepEqual(v, []int{9, 5, 5}) {
		t.Errorf("PaymentPackages(1) = %v, want [9 5 5]", v)
	}
	if v, _ := c.PaymentPlayerName(ctx, 1); v != "alex" {
		t.Errorf("PaymentPlayerName(1) = %q, want alex", v)
	}
	if v, _ := c.PaymentPrice(ctx, 1); !v.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("PaymentPrice(1) = %s, want 19.99", v)
	}
	if v, _ := c.PaymentCurrency(ctx, 2); v != "EUR" {
		t.Errorf("PaymentCurrency(2) = %q, want EUR", v)
	}
}

func TestPaymentPackagesReturnsCopy(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	v, _ := c.PaymentPackages(ctx, 0)
	v[0] = 999

	again, _ := c.PaymentPackages(ctx, 0)
	if again[0] != 5 {
		t.Errorf("PaymentPackages(0)[0] = %d after caller mutation, want 5", again[0])
	}
}

func TestCommandAccessors(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	if n, ok := c.CommandCount(ctx); !ok || n != 1 {
		t.Fatalf("CommandCount() = %d, %v, want 1", n, ok)
	}
	if v, _ := c.CommandPlayerName(ctx, 0); v != "Steve" {
		t.Errorf("CommandPlayerName(0) = %q, want Steve", v)
	}
	if v, _ := c.CommandList(ctx, 0); !reflect.DeepEqual(v, []string{"give Steve diamond 1", "say thanks"}) {
		t.Errorf("CommandList(0) = %v", v)
	}
	if v, ok := c.CommandRequireOnline(ctx, 0); !ok || !v {
		t.Errorf("CommandRequireOnline(0) = %v, %v, want true, true", v, ok)
	}
}

func TestCheckerAccessors(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	if n, ok := c.ClaimableCount(ctx); !ok || n != 1 {
		t.Errorf("ClaimableCount() = %d, %v, want 1", n, ok)
	}
	if v, _ := c.ClaimablePlayerName(ctx, 0); v != "Alex" {
		t.Errorf("ClaimablePlayerName(0) = %q, want Alex", v)
	}
	if v, _ := c.ClaimableCommandList(ctx, 0); !reflect.DeepEqual(v, []string{"rank Alex vip"}) {
		t.Errorf("ClaimableCommandList(0) = %v", v)
	}
	if v, ok := c.ClaimableRequireOnline(ctx, 0); !ok || v {
		t.Errorf("ClaimableRequireOnline(0) = %v, %v, want false, true", v, ok)
	}

	if n, ok := c.ExpiryCount(ctx); !ok || n != 2 {
		t.Errorf("ExpiryCount() = %d, %v, want 2", n, ok)
	}
	if v, _ := c.ExpiryPlayerName(ctx, 1); v != "Jeb" {
		t.Errorf("ExpiryPlayerName(1) = %q, want Jeb", v)
	}
	if v, ok := c.ExpiryCommandList(ctx, 1); !ok || len(v) != 0 {
		t.Errorf("ExpiryCommandList(1) = %v, %v, want [], true", v, ok)
	}
	if v, _ := c.ExpiryRequireOnline(ctx, 0); !v {
		t.Error("ExpiryRequireOnline(0) = false, want true")
	}

	// Claimables and expiries share one fetch.
	if got := m.count(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
}

func TestRawAccessorsReturnCopies(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	info, ok := c.RawInfo(ctx)
	if !ok || info.ServerName != "Blockland" {
		t.Errorf("RawInfo() = %+v, %v", info, ok)
	}

	pkgs, _ := c.RawPackages(ctx)
	pkgs[0].Name = "changed"
	if v, _ := c.PackageName(ctx, 0); v != "VIP" {
		t.Errorf("PackageName(0) = %q after RawPackages mutation, want VIP", v)
	}

	pays, _ := c.RawPayments(ctx)
	pays[1].Packages[0] = 0
	if v, _ := c.PaymentPackages(ctx, 1); v[0] != 9 {
		t.Errorf("PaymentPackages(1)[0] = %d after RawPayments mutation, want 9", v[0])
	}

	cmds, _ := c.RawCommands(ctx)
	cmds[0].Commands[0] = "op everyone"
	if v, _ := c.CommandList(ctx, 0); v[0] != "give Steve diamond 1" {
		t.Errorf("CommandList(0)[0] = %q after RawCommands mutation", v[0])
	}

	chk, _ := c.RawChecker(ctx)
	chk.Expiries[0].PlayerName = "nobody"
	if v, _ := c.ExpiryPlayerName(ctx, 0); v != "Notch" {
		t.Errorf("ExpiryPlayerName(0) = %q after RawChecker mutation, want Notch", v)
	}
}

func TestIndexedAccessorsOutOfRange(t *testing.T) {
	m := newMockAPI(t, fixtures())
	c := testClient(t, m)
	ctx := context.Background()

	type indexed struct {
		count func() (int, bool)
		get   map[string]func(i int) bool
	}
	pkgCount := func() (int, bool) { return c.PackageCount(ctx) }
	payCount := func() (int, bool) { return c.PaymentCount(ctx) }
	cmdCount := func() (int, bool) { return c.CommandCount(ctx) }
	claimCount := func() (int, bool) { return c.ClaimableCount(ctx) }
	expCount := func() (int, bool) { return c.ExpiryCount(ctx) }

	groups := map[string]indexed{
		"packages": {pkgCount, map[string]func(int) bool{
			"PackageID":          func(i int) bool { _, ok := c.PackageID(ctx, i); return ok },
			"PackageOrder":       func(i int) bool { _, ok := c.PackageOrder(ctx, i); return ok },
			"PackageName":        func(i int) bool { _, ok := c.PackageName(ctx, i); return ok },
			"PackageDescription": func(i int) bool { _, ok := c.PackageDescription(ctx, i); return ok },
			"PackagePrice":       func(i int) bool { _, ok := c.PackagePrice(ctx, i); return ok },
		}},
		"payments": {payCount, map[string]func(int) bool{
			"PaymentTime":       func(i int) bool { _, ok := c.PaymentTime(ctx, i); return ok },
			"PaymentPackages":   func(i int) bool { _, ok := c.PaymentPackages(ctx, i); return ok },
			"PaymentPlayerName": func(i int) bool { _, ok := c.PaymentPlayerName(ctx, i); return ok },
			"PaymentPrice":      func(i int) bool { _, ok := c.PaymentPrice(ctx, i); return ok },
			"PaymentCurrency":   func(i int) bool { _, ok := c.PaymentCurrency(ctx, i); return ok },
		}},
		"commands": {cmdCount, map[string]func(int) bool{
			"CommandPlayerName":    func(i int) bool { _, ok := c.CommandPlayerName(ctx, i); return ok },
			"CommandList":          func(i int) bool { _, ok := c.CommandList(ctx, i); return ok },
			"CommandRequireOnline": func(i int) bool { _, ok := c.CommandRequireOnline(ctx, i); return ok },
		}},
		"claimables": {claimCount, map[string]func(int) bool{
			"ClaimablePlayerName":    func(i int) bool { _, ok := c.ClaimablePlayerName(ctx, i); return ok },
			"ClaimableCommandList":   func(i int) bool { _, ok := c.ClaimableCommandList(ctx, i); return ok },
			"ClaimableRequireOnline": func(i int) bool { _, ok := c.ClaimableRequireOnline(ctx, i); return ok },
		}},
		"expiries": {expCount, map[string]func(int) bool{
			"ExpiryPlayerName":    func(i int) bool { _, ok := c.ExpiryPlayerName(ctx, i); return ok },
			"ExpiryCommandList":   func(i int) bool { _, ok := c.ExpiryCommandList(ctx, i); return ok },
			"ExpiryRequireOnline": func(i int) bool { _, ok := c.ExpiryRequireOnline(ctx, i); return ok },
		}},
	}

	for group, g := range groups {
		t.Run(group, func(t *testing.T) {
			n, ok := g.count()
			if !ok {
				t.Fatalf("count failed: %v", c.LastError())
			}
			for name, get := range g.get {
				for _, i := range []int{-1, -100, n, n + 1, 1 << 30} {
					if get(i) {
						t.Errorf("%s(%d) ok = true with count %d", name, i, n)
					}
				}
				for i := range n {
					if !get(i) {
						t.Errorf("%s(%d) ok = false with count %d", name, i, n)
					}
				}
			}
		})
	}
}
