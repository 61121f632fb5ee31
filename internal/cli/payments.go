package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

func (c *CLI) paymentsCommand() *cobra.Command {
	var (
		since     string
		recent    int
		player    string
		packageID int
	)

	cmd := &cobra.Command{
		Use:   "payments",
		Short: "List payment history",
		Long: `List payment history, oldest first.

Filters (at most one):
  --since    payments at or after a Unix time, or within a duration such as 24h
  --recent   the newest N payments, newest first
  --player   payments by an in-game name, case-insensitive
  --package  payments that include a package id`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := c.ensure(ctx, api, buycraft.CategoryPayments); err != nil {
				return err
			}

			var (
				indices []int
				ok      = true
			)
			flags := cmd.Flags()
			switch {
			case flags.Changed("since"):
				t, err := parseSince(since, time.Now())
				if err != nil {
					return err
				}
				indices, ok = api.PaymentsSince(ctx, t)
			case flags.Changed("recent"):
				indices, ok = api.RecentPayments(ctx, recent)
			case flags.Changed("player"):
				indices, ok = api.PaymentsByPlayerName(ctx, player)
			case flags.Changed("package"):
				indices, ok = api.PaymentsByPackageID(ctx, packageID)
			default:
				n, _ := api.PaymentCount(ctx)
				indices = sequence(n)
			}
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "invalid payment filter")
			}
			if len(indices) == 0 {
				printWarning("No payments found")
				return nil
			}

			rows := make([][]string, 0, len(indices))
			for _, i := range indices {
				when, _ := api.PaymentTime(ctx, i)
				name, _ := api.PaymentPlayerName(ctx, i)
				pkgs, _ := api.PaymentPackages(ctx, i)
				price, _ := api.PaymentPrice(ctx, i)
				currency, _ := api.PaymentCurrency(ctx, i)
				rows = append(rows, []string{
					strconv.Itoa(i), formatTime(when), name, joinInts(pkgs), formatPrice(price, currency),
				})
			}
			printTable([]string{"#", "Time", "Player", "Packages", "Price"}, rows)
			printDetail("%d payments", len(rows))
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&since, "since", "", "Unix time or duration (e.g. 24h)")
	flags.IntVar(&recent, "recent", 0, "show the newest N payments")
	flags.StringVar(&player, "player", "", "filter by in-game name")
	flags.IntVar(&packageID, "package", 0, "filter by package id")
	cmd.MarkFlagsMutuallyExclusive("since", "recent", "player", "package")
	return cmd
}

// parseSince accepts Unix seconds or a duration counted back from now.
func parseSince(s string, now time.Time) (int64, error) {
	s = strings.TrimSpace(s)
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		if sec < 0 {
			return 0, errors.New(errors.ErrCodeInvalidInput, "--since cannot be negative")
		}
		return sec, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "--since must be Unix seconds or a positive duration, got %q", s)
	}
	return now.Add(-d).Unix(), nil
}

func joinInts(v []int) string {
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}
