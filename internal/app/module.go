package app

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"github.com/matheus3301/wed/internal/action"
	"github.com/matheus3301/wed/internal/browser"
	"github.com/matheus3301/wed/internal/bus"
	"github.com/matheus3301/wed/internal/config"
	"github.com/matheus3301/wed/internal/logging"
	"github.com/matheus3301/wed/internal/menu"
	"github.com/matheus3301/wed/internal/modal"
	"github.com/matheus3301/wed/internal/paths"
	"github.com/matheus3301/wed/internal/tui"
	"github.com/matheus3301/wed/internal/tui/views"
)

// Params holds the command line overrides passed to the fx module.
type Params struct {
	ConfigPath string // empty = paths.ConfigPath()
	MenuFile   string // overrides menu_file from the config
	LogLevel   string // overrides log_level from the config
	LogPath    string // empty = paths.LogPath()
}

// Module returns the fx module for the editor, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("editor",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideBus,
			provideModal,
			provideMenu,
			provideLinks,
			provideApp,
		),
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Named("fx")}
		}),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	path := p.ConfigPath
	if path == "" {
		path = paths.ConfigPath()
	}
	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}
	if p.LogLevel != "" {
		cfg.LogLevel = p.LogLevel
	}
	if p.MenuFile != "" {
		cfg.MenuFile = p.MenuFile
	}
	return cfg, nil
}

func provideLogger(p Params, cfg *config.Config) (*zap.Logger, error) {
	path := p.LogPath
	if path == "" {
		path = paths.LogPath()
	}
	return logging.New(path, cfg.LogLevel)
}

func provideBus() *bus.Bus {
	return bus.New()
}

func provideModal(b *bus.Bus) *modal.Machine {
	return modal.NewMachine(b)
}

// provideMenu loads the configured menu file, then the user's menu.toml,
// and falls back to the built-in menu.
func provideMenu(cfg *config.Config, logger *zap.Logger) (*menu.Config, error) {
	if cfg.MenuFile != "" {
		m, err := menu.Load(cfg.MenuFile)
		if err != nil {
			return nil, err
		}
		logger.Info("menu loaded", zap.String("path", cfg.MenuFile))
		return m, nil
	}

	m, err := menu.Load(paths.MenuPath())
	switch {
	case err == nil:
		logger.Info("menu loaded", zap.String("path", paths.MenuPath()))
		return m, nil
	case errors.Is(err, fs.ErrNotExist):
		return menu.Default(), nil
	default:
		return nil, err
	}
}

func provideLinks() action.URLOpener {
	return browser.New()
}

func provideApp(cfg *config.Config, m *menu.Config, links action.URLOpener, b *bus.Bus, machine *modal.Machine, logger *zap.Logger) (*tui.App, error) {
	helpLinks, ignored := action.HelpLinks(cfg.Help)
	if len(ignored) > 0 {
		logger.Warn("ignoring help links for unknown actions", zap.Strings("actions", ignored))
	}
	return tui.NewApp(tui.Params{
		Menu: m,
		Policy: views.ShortcutPolicy{
			AlwaysPreventDefault:    cfg.Shortcuts.AlwaysPreventDefault,
			ModifierShortcutsGlobal: cfg.Shortcuts.ModifierShortcutsGlobal,
		},
		HelpLinks: helpLinks,
		Links:     links,
		Bus:       b,
		Modal:     machine,
		Logger:    logger,
	})
}

func registerLifecycle(lc fx.Lifecycle, shutdowner fx.Shutdowner, a *tui.App, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("editor starting", zap.Int("pid", os.Getpid()))
			go func() {
				code := 0
				if err := a.Run(); err != nil {
					logger.Error("terminal ui error", zap.Error(err))
					code = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					logger.Warn("shutdown failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			a.Stop()
			logger.Info("editor stopped")
			_ = logger.Sync()
			return nil
		},
	})
}
