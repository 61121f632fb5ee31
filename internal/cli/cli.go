package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shininet/buycraft/pkg/buildinfo"
	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "buycraft"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	flagSecret string
	flagBase   string

	api *buycraft.Client
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Buycraft queries a Buycraft web store",
		Long:         `Buycraft is a read-only client for the Buycraft v3 API. It shows store info, packages, payments and pending commands, and builds checkout links.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/buycraft/config.toml)")
	flags.StringVar(&c.flagSecret, "secret", "", "API secret key (overrides config and BUYCRAFT_SECRET)")
	flags.StringVar(&c.flagBase, "base-url", "", "API endpoint (overrides config and BUYCRAFT_BASE_URL)")

	root.AddCommand(c.infoCommand())
	root.AddCommand(c.packagesCommand())
	root.AddCommand(c.paymentsCommand())
	root.AddCommand(c.commandsCommand())
	root.AddCommand(c.checkerCommand())
	root.AddCommand(c.rawCommand())
	root.AddCommand(c.refreshCommand())
	root.AddCommand(c.linkCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Client Factory
// =============================================================================

// client returns the API client, creating it from the merged configuration
// on first use.
func (c *CLI) client() (*buycraft.Client, error) {
	if c.api != nil {
		return c.api, nil
	}
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return nil, err
	}
	if c.flagSecret != "" {
		cfg.Secret = c.flagSecret
	}
	if c.flagBase != "" {
		cfg.BaseURL = c.flagBase
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	c.Logger.Debug("config loaded", "base_url", cfg.BaseURL, "timeout", cfg.Timeout, "retries", cfg.Retries)
	api, err := buycraft.New(cfg.Secret,
		buycraft.WithBaseURL(cfg.BaseURL),
		buycraft.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
		buycraft.WithRetry(cfg.Retries+1, cfg.RetryDelay),
		buycraft.WithLogger(c.Logger),
	)
	if err != nil {
		return nil, err
	}
	c.api = api
	return api, nil
}

// ensure fetches cat behind a spinner and converts failure into an error.
func (c *CLI) ensure(ctx context.Context, api *buycraft.Client, cat buycraft.Category) error {
	var ok bool
	withSpinner(ctx, fmt.Sprintf("Fetching %s...", cat), func() {
		ok = api.Ensure(ctx, cat)
	})
	if !ok {
		return fetchError(api, cat.String())
	}
	return nil
}

// fetchError describes why data for what could not be loaded.
func fetchError(api *buycraft.Client, what string) error {
	err := api.LastError()
	if err == nil {
		return fmt.Errorf("%s: unavailable", what)
	}
	if errors.IsAPIRejection(err) {
		return fmt.Errorf("%s: %s", what, errors.UserMessage(err))
	}
	return fmt.Errorf("%s: %w", what, err)
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
