package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show server and store information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := c.ensure(ctx, api, buycraft.CategoryInfo); err != nil {
				return err
			}

			name, _ := api.ServerName(ctx)
			id, _ := api.ServerID(ctx)
			currency, _ := api.ServerCurrency(ctx)
			store, _ := api.ServerStore(ctx)
			version, _ := api.LatestVersion(ctx)
			download, _ := api.LatestDownload(ctx)

			printKeyValue("Server", name)
			printKeyValue("Server ID", strconv.Itoa(id))
			printKeyValue("Currency", currency)
			printKeyValue("Store", store)
			printKeyValue("Plugin version", version)
			printKeyValue("Download", download)
			printNextStep("List packages", appName+" packages")
			return nil
		},
	}
}
