package app

import (
	"context"
	"fmt"

	"github.com/kterry/ladle/internal/config"
	"github.com/kterry/ladle/internal/logging"
	"github.com/kterry/ladle/internal/prefs"
	"github.com/kterry/ladle/internal/recipes"
	"github.com/kterry/ladle/internal/state"
	"github.com/kterry/ladle/internal/ui"
)

// Options configure the ladle application.
type Options struct {
	ConfigPath string
	ServerURL  string // overrides the configured server URL
	PrefsPath  string // empty uses default ~/.config/ladle/prefs.toml
}

// Run boots the ladle TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.ServerURL != "" {
		cfg.ServerURL = opts.ServerURL
	}

	logger, closeLog, err := logging.Open(cfg.LogPath())
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closeLog()

	client, err := recipes.NewClient(cfg.ServerURL, logger)
	if err != nil {
		return fmt.Errorf("init recipe client: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger.Info().Str("server", cfg.ServerURL).Msg("starting ladle")

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     &state.Store{},
		Log:       logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
