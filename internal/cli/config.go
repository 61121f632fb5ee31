package cli

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/shininet/buycraft/pkg/errors"
	"github.com/shininet/buycraft/pkg/httputil"
	"github.com/shininet/buycraft/pkg/integrations/buycraft"
)

// Config is the CLI configuration. Values come from the config file, then
// environment variables, then command-line flags, each overriding the last.
type Config struct {
	Secret     string        `toml:"secret" env:"BUYCRAFT_SECRET"`
	BaseURL    string        `toml:"base_url" env:"BUYCRAFT_BASE_URL"`
	Timeout    time.Duration `toml:"timeout" env:"BUYCRAFT_TIMEOUT"`
	Retries    int           `toml:"retries" env:"BUYCRAFT_RETRIES"` // Extra attempts after a transport failure
	RetryDelay time.Duration `toml:"retry_delay" env:"BUYCRAFT_RETRY_DELAY"`
}

func defaultConfig() Config {
	return Config{
		BaseURL:    buycraft.DefaultBaseURL,
		Timeout:    10 * time.Second,
		Retries:    httputil.DefaultPolicy.Attempts - 1,
		RetryDelay: httputil.DefaultPolicy.Delay,
	}
}

// loadConfig reads the config file at path, or the default location when
// path is empty, and applies environment overrides. A missing default file
// is not an error; a missing explicit file is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := configFile()
		if err != nil {
			return cfg, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	case stderrors.Is(err, fs.ErrNotExist) && !explicit:
	default:
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Secret == "" {
		return errors.New(errors.ErrCodeInvalidSecret,
			"no secret key: set secret in the config file, BUYCRAFT_SECRET or --secret")
	}
	if c.BaseURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "base URL cannot be empty")
	}
	if c.Timeout <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "timeout must be positive, got %s", c.Timeout)
	}
	if c.Retries < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "retries cannot be negative, got %d", c.Retries)
	}
	return nil
}

// configFile returns the default config path using the XDG standard
// (~/.config/buycraft/config.toml).
func configFile() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}
