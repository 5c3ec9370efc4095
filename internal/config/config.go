package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/goccy/go-yaml"
	"github.com/indaco/wsi/internal/core"
	"github.com/indaco/wsi/internal/dispatch"
	"github.com/indaco/wsi/internal/tui"
)

// Config is the main configuration structure for wsi.
type Config struct {
	PackageManager string   `yaml:"package-manager,omitempty"`
	Shell          string   `yaml:"shell,omitempty"`
	Concurrency    int      `yaml:"concurrency,omitempty"`
	Exclude        []string `yaml:"exclude,omitempty"`
	Theme          string   `yaml:"theme,omitempty"`
}

// Environment variables overriding the configuration file.
const (
	EnvPackageManager = "WSI_PACKAGE_MANAGER"
	EnvShell          = "WSI_SHELL"
)

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		PackageManager: string(dispatch.NPM),
		Shell:          dispatch.DefaultShell,
	}
}

// LoadConfigFn is the loader used by the CLI; tests may replace it.
var LoadConfigFn = Load

// Load reads .wsi.yaml from dir, applies environment overrides and fills in
// defaults. A missing file is not an error.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, core.ConfigFile)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := decode(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	case errors.Is(err, os.ErrNotExist):
		// fallback to defaults
	default:
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	if v := os.Getenv(EnvPackageManager); v != "" {
		cfg.PackageManager = v
	}
	if v := os.Getenv(EnvShell); v != "" {
		cfg.Shell = v
	}

	if cfg.PackageManager == "" {
		cfg.PackageManager = string(dispatch.NPM)
	}
	if cfg.Shell == "" {
		cfg.Shell = dispatch.DefaultShell
	}

	return cfg, nil
}

func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
	return decoder.Decode(cfg)
}

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if _, err := dispatch.ParsePackageManager(c.PackageManager); err != nil {
		errs = append(errs, err)
	}
	if c.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("concurrency cannot be negative, got %d", c.Concurrency))
	}
	for i, pattern := range c.Exclude {
		if !doublestar.ValidatePattern(pattern) {
			errs = append(errs, fmt.Errorf("exclude pattern %d: %q is not a valid glob", i+1, pattern))
		}
	}
	if c.Theme != "" && !tui.IsValidTheme(c.Theme) {
		errs = append(errs, fmt.Errorf("unknown theme %q (expected one of: %s)", c.Theme, strings.Join(tui.ValidThemes, ", ")))
	}

	return errors.Join(errs...)
}
