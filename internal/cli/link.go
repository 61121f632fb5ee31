package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

func (c *CLI) linkCommand() *cobra.Command {
	var (
		player  string
		direct  bool
		gateway string
	)

	cmd := &cobra.Command{
		Use:   "link [package-id]",
		Short: "Build a checkout link for a package",
		Long: `Build a checkout link for a package.

Without a package id, an interactive picker lists the store's packages.
With --direct the link skips the basket and pays through --gateway; a
player name is then required.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if player != "" || direct {
				if err := errors.ValidatePlayerName(player); err != nil {
					return err
				}
			}
			if direct {
				if err := errors.ValidateGateway(gateway); err != nil {
					return err
				}
			}

			api, err := c.client()
			if err != nil {
				return err
			}

			var id int
			if len(args) == 1 {
				id, err = strconv.Atoi(args[0])
				if err != nil || id < 0 {
					return errors.New(errors.ErrCodeInvalidInput, "invalid package id %q", args[0])
				}
			} else {
				if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
					return errors.New(errors.ErrCodeInvalidInput, "package id required when not running in a terminal")
				}
				if err := c.ensure(ctx, api, buycraft.CategoryPackages); err != nil {
					return err
				}
				pkgs, _ := api.RawPackages(ctx)
				currency, _ := api.ServerCurrency(ctx)
				sel, err := pickPackage(pkgs, currency)
				if err != nil {
					return err
				}
				if sel == nil {
					printInfo("No package selected")
					return nil
				}
				id = sel.ID
			}

			if matches, ok := api.PackagesByID(ctx, id); ok && len(matches) == 0 {
				printWarning("Package %d is not listed in the store", id)
			}

			var (
				link string
				ok   bool
			)
			if direct {
				link, ok = api.BuyLinkDirect(ctx, id, player, gateway)
			} else {
				link, ok = api.BuyLink(ctx, id, player)
			}
			if !ok {
				return fetchError(api, "store URL")
			}
			printLink(link)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&player, "player", "", "in-game name to attach to the purchase")
	flags.BoolVar(&direct, "direct", false, "skip the basket and pay directly")
	flags.StringVar(&gateway, "gateway", "", "payment gateway for --direct (e.g. paypal)")
	cmd.MarkFlagsRequiredTogether("direct", "gateway")
	return cmd
}
