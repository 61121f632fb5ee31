package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

// batchAccessors reads one kind of command batch by index.
type batchAccessors struct {
	count         func(context.Context) (int, bool)
	playerName    func(context.Context, int) (string, bool)
	commandList   func(context.Context, int) ([]string, bool)
	requireOnline func(context.Context, int) (bool, bool)
}

func (c *CLI) commandsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "commands",
		Short: "List pending command batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := c.ensure(ctx, api, buycraft.CategoryCommands); err != nil {
				return err
			}
			printBatches(ctx, "Pending commands", batchAccessors{
				count:         api.CommandCount,
				playerName:    api.CommandPlayerName,
				commandList:   api.CommandList,
				requireOnline: api.CommandRequireOnline,
			})
			return nil
		},
	}
}

func (c *CLI) checkerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "checker",
		Short: "List claimable and expired command batches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := c.ensure(ctx, api, buycraft.CategoryChecker); err != nil {
				return err
			}
			printBatches(ctx, "Claimables", batchAccessors{
				count:         api.ClaimableCount,
				playerName:    api.ClaimablePlayerName,
				commandList:   api.ClaimableCommandList,
				requireOnline: api.ClaimableRequireOnline,
			})
			printBatches(ctx, "Expiries", batchAccessors{
				count:         api.ExpiryCount,
				playerName:    api.ExpiryPlayerName,
				commandList:   api.ExpiryCommandList,
				requireOnline: api.ExpiryRequireOnline,
			})
			return nil
		},
	}
}

func printBatches(ctx context.Context, title string, a batchAccessors) {
	n, _ := a.count(ctx)
	printInfo("%s %s", StyleTitle.Render(title), StyleDim.Render(fmt.Sprintf("(%d)", n)))
	if n == 0 {
		printDetail("none")
		return
	}
	rows := make([][]string, 0, n)
	for i := range n {
		name, _ := a.playerName(ctx, i)
		cmds, _ := a.commandList(ctx, i)
		online, _ := a.requireOnline(ctx, i)
		rows = append(rows, []string{name, formatOnline(online), strings.Join(cmds, "; ")})
	}
	printTable([]string{"Player", "Deliver", "Commands"}, rows)
}
