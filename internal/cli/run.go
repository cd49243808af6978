package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"dropdown/internal/config"
	"dropdown/internal/eventbus"
	"dropdown/internal/i18n"
	"dropdown/internal/ui"
	"dropdown/internal/watcher"
)

func runDropdown(cmd *cobra.Command, opts *RootOptions) error {
	cfg, configPath, err := loadConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	applyOverrides(cmd, opts, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := setupLogger(cfg.Log.File, cfg.LogLevel())
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	if cfg.Language == "" {
		cfg.Language = i18n.TagFromEnv()
	}
	lang := i18n.NewContext(cfg.Language)

	choices, err := ui.ConfigLoader(cfg)()
	if err != nil {
		return err
	}

	model := ui.NewModel(ui.Options{
		Config:   cfg,
		Bus:      bus,
		Language: lang,
		Logger:   logger,
		Choices:  choices,
	})
	defer model.Close()

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
		tea.WithOutput(cmd.ErrOrStderr()),
	)

	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})

	if cfg.Watch {
		reapply := func(c *config.Config) {
			applyOverrides(cmd, opts, c)
			if c.Language == "" {
				c.Language = lang.Tag()
			}
		}
		stop, err := startWatching(ctx, cfg, configPath, reapply, bus, p, logger)
		if err != nil {
			logger.Error("could not watch files", "err", err)
		} else {
			defer stop()
		}
	}

	logger.Info("starting", "choices", len(choices), "language", lang.Tag())
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logger.Error("error running program", "err", err)
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info("exited")

	if c, ok := model.Selected(); ok {
		fmt.Fprintln(cmd.OutOrStdout(), c.Value)
	}
	return nil
}

// loadConfig reads an explicit config path strictly and the default path
// leniently
func loadConfig(path string) (*config.Config, string, error) {
	svc := config.NewConfigService(path)
	if path != "" {
		cfg, err := svc.LoadFromPath(path)
		return cfg, path, err
	}
	cfg, err := svc.Load()
	return cfg, svc.Path(), err
}

// startWatching forwards settled file changes to the program. The choices
// file triggers a rescan; the config file is reloaded and applied, and a new
// choices_file in it is watched from then on.
func startWatching(ctx context.Context, cfg *config.Config, configPath string, reapply func(*config.Config), bus eventbus.EventBus, p *tea.Program, logger *log.Logger) (func(), error) {
	choicesPath := watchablePath(cfg.ChoicesFile)
	configPath = watchablePath(configPath)

	w, err := watcher.New([]string{choicesPath, configPath}, watcher.DefaultDebounce, logger)
	if err != nil {
		return nil, err
	}
	if err := w.Start(); err != nil {
		_ = w.Stop()
		return nil, err
	}

	svc := config.NewConfigServiceWithBus(configPath, bus)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events():
				if !ok {
					return
				}
				bus.Publish(eventbus.SourceChangedEvent{Path: ev.Path})
				switch ev.Path {
				case choicesPath:
					p.Send(ui.SourceChangedMsg{Path: ev.Path})
				case configPath:
					reloaded, err := svc.Load()
					if err != nil {
						bus.Publish(eventbus.ErrorEvent{Message: "failed to reload config", Err: err})
						continue
					}
					reapply(reloaded)
					if next := watchablePath(reloaded.ChoicesFile); next != choicesPath {
						choicesPath = ""
						if next != "" {
							if choicesPath, err = w.Add(next); err != nil {
								bus.Publish(eventbus.ErrorEvent{Message: "could not watch choices file", Err: err})
							}
						}
					}
					p.Send(ui.ConfigChangedMsg{Config: reloaded})
				}
			case err, ok := <-w.Errors():
				if !ok {
					return
				}
				bus.Publish(eventbus.ErrorEvent{Message: "watch error", Err: err})
			}
		}
	}()

	return func() { _ = w.Stop() }, nil
}

// watchablePath returns the absolute path when its directory exists. The
// file itself may be created later.
func watchablePath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return ""
	}
	if info, err := os.Stat(filepath.Dir(abs)); err != nil || !info.IsDir() {
		return ""
	}
	return abs
}
