package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

func categoryNames() []string {
	var names []string
	for _, cat := range buycraft.Categories() {
		names = append(names, cat.String())
	}
	return names
}

func (c *CLI) rawCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "raw <category>",
		Short:     "Print one data category as JSON",
		ValidArgs: categoryNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cat, err := buycraft.ParseCategory(args[0])
			if err != nil {
				return err
			}
			api, err := c.client()
			if err != nil {
				return err
			}
			if err := c.ensure(ctx, api, cat); err != nil {
				return err
			}
			v, ok := rawData(ctx, api, cat)
			if !ok {
				return fetchError(api, cat.String())
			}
			data, err := json.MarshalIndent(v, "", "  ")
			if err != nil {
				return fmt.Errorf("encode %s: %w", cat, err)
			}
			fmt.Fprintln(stdout, string(data))
			return nil
		},
	}
}

func rawData(ctx context.Context, api *buycraft.Client, cat buycraft.Category) (any, bool) {
	switch cat {
	case buycraft.CategoryInfo:
		return api.RawInfo(ctx)
	case buycraft.CategoryPackages:
		return api.RawPackages(ctx)
	case buycraft.CategoryPayments:
		return api.RawPayments(ctx)
	case buycraft.CategoryCommands:
		return api.RawCommands(ctx)
	case buycraft.CategoryChecker:
		return api.RawChecker(ctx)
	}
	return nil, false
}

func (c *CLI) refreshCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "refresh [category...]",
		Short:     "Fetch categories and report how many items each holds",
		ValidArgs: categoryNames(),
		Args:      cobra.OnlyValidArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cats := buycraft.Categories()
			if len(args) > 0 {
				cats = cats[:0]
				for _, a := range args {
					cat, err := buycraft.ParseCategory(a)
					if err != nil {
						return err
					}
					cats = append(cats, cat)
				}
			}

			api, err := c.client()
			if err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			var failed error
			for _, cat := range cats {
				s := newSpinnerWithContext(ctx, fmt.Sprintf("Refreshing %s...", cat))
				if isTerminal(os.Stderr) {
					s.Start()
				}
				if !api.Refresh(ctx, cat) {
					err := fetchError(api, cat.String())
					s.StopWithError(err.Error())
					if failed == nil {
						failed = err
					}
					continue
				}
				v, _ := rawData(ctx, api, cat)
				s.StopWithSuccess(fmt.Sprintf("%-9s %s", cat, describe(v)))
			}
			if failed != nil {
				return failed
			}
			prog.done(fmt.Sprintf("Refreshed %d categories", len(cats)))
			return nil
		},
	}
}

// describe summarizes a raw category value.
func describe(v any) string {
	switch v := v.(type) {
	case buycraft.Info:
		return v.ServerName
	case []buycraft.Package:
		return fmt.Sprintf("%d packages", len(v))
	case []buycraft.Payment:
		return fmt.Sprintf("%d payments", len(v))
	case []buycraft.CommandBatch:
		return fmt.Sprintf("%d batches", len(v))
	case buycraft.Checker:
		return fmt.Sprintf("%d claimables, %d expiries", len(v.Claimables), len(v.Expiries))
	}
	return ""
}
