package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

func (c *CLI) packagesCommand() *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "List the packages offered in the store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := c.ensure(ctx, api, buycraft.CategoryPackages); err != nil {
				return err
			}

			var indices []int
			if cmd.Flags().Changed("id") {
				var ok bool
				if indices, ok = api.PackagesByID(ctx, id); !ok {
					return errors.New(errors.ErrCodeInvalidInput, "invalid package id %d", id)
				}
			} else {
				n, _ := api.PackageCount(ctx)
				indices = sequence(n)
			}
			if len(indices) == 0 {
				printWarning("No packages found")
				return nil
			}

			currency, _ := api.ServerCurrency(ctx)
			rows := make([][]string, 0, len(indices))
			for _, i := range indices {
				pid, _ := api.PackageID(ctx, i)
				order, _ := api.PackageOrder(ctx, i)
				name, _ := api.PackageName(ctx, i)
				price, _ := api.PackagePrice(ctx, i)
				desc, _ := api.PackageDescription(ctx, i)
				rows = append(rows, []string{
					strconv.Itoa(pid), strconv.Itoa(order), name, formatPrice(price, currency), truncate(desc, 40),
				})
			}
			printTable([]string{"ID", "Order", "Name", "Price", "Description"}, rows)
			printDetail("%d packages", len(rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&id, "id", 0, "only show packages with this remote id")
	return cmd
}

// sequence returns [0, 1, ..., n-1].
func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// truncate shortens s to at most n runes, marking the cut with "…".
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
