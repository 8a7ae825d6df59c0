// Package storybook wires configuration and lifecycle for the documentation
// harness command.
package storybook

import (
	"context"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/louisbranch/vtnds/internal/platform/cmd"
	"github.com/louisbranch/vtnds/internal/services/storybook"
	"github.com/louisbranch/vtnds/internal/services/storybook/templates"
	"github.com/spf13/pflag"
)

const (
	defaultHTTPAddr = "localhost:6006"
	defaultBuildDir = "storybook-static"
)

// Config holds the harness command configuration.
type Config struct {
	HTTPAddr     string `env:"VTNDS_STORYBOOK_HTTP_ADDR" envDefault:"localhost:6006"`
	BuildDir     string `env:"VTNDS_STORYBOOK_BUILD_DIR" envDefault:"storybook-static"`
	DefaultTheme string `env:"VTNDS_STORYBOOK_DEFAULT_THEME" envDefault:"light"`
	// Locale selects the language of exported pages.
	Locale string `env:"VTNDS_STORYBOOK_LOCALE"`
}

// BindFlags registers the harness flags on fs, writing into cfg.
func BindFlags(fs *pflag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", defaultHTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.BuildDir, "out", defaultBuildDir, "Static export directory")
	fs.StringVar(&cfg.DefaultTheme, "theme", templates.ThemeLight, "Default theme (light or dark)")
	fs.StringVar(&cfg.Locale, "locale", "", "Locale of exported pages")
}

// ParseConfig loads the environment and then fs flags into a Config. Flags
// given in args override the environment.
func ParseConfig(fs *pflag.FlagSet, args []string) (Config, error) {
	var cfg Config
	BindFlags(fs, &cfg)
	if err := entrypoint.ParseConfigFromArgs(&cfg, fs, args); err != nil {
		return Config{}, err
	}
	cfg.HTTPAddr = strings.TrimSpace(cfg.HTTPAddr)
	cfg.BuildDir = strings.TrimSpace(cfg.BuildDir)
	cfg.Locale = strings.TrimSpace(cfg.Locale)
	switch theme := strings.ToLower(strings.TrimSpace(cfg.DefaultTheme)); theme {
	case templates.ThemeLight, templates.ThemeDark:
		cfg.DefaultTheme = theme
	default:
		return Config{}, fmt.Errorf("theme %q: must be %s or %s", cfg.DefaultTheme, templates.ThemeLight, templates.ThemeDark)
	}
	return cfg, nil
}

// Run serves the harness until ctx is done.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStorybook, func(ctx context.Context) error {
		server, err := storybook.NewServer(ctx, storybook.Config{
			HTTPAddr:     cfg.HTTPAddr,
			DefaultTheme: cfg.DefaultTheme,
		})
		if err != nil {
			return fmt.Errorf("init storybook server: %w", err)
		}
		defer server.Close()

		log.Printf("serving addr=http://%s", server.Addr())
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve storybook: %w", err)
		}
		return nil
	})
}

// Build writes the static export to cfg.BuildDir.
func Build(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceStorybook, func(ctx context.Context) error {
		result, err := storybook.Export(ctx, cfg.BuildDir, storybook.Config{DefaultTheme: cfg.DefaultTheme}, cfg.Locale)
		if err != nil {
			return fmt.Errorf("build storybook: %w", err)
		}
		log.Printf("export complete dir=%s pages=%d assets=%d", cfg.BuildDir, result.Pages, result.Assets)
		return nil
	})
}
