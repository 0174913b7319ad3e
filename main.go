package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/aaronzipp/impostor/internal/catalog"
	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/store"
	"github.com/aaronzipp/impostor/internal/timer"
	"github.com/aaronzipp/impostor/internal/tui"
)

const (
	releaseVersion = "0.4.0"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatal("Failed to load .env", "err", err)
	}

	cfg := &Config{}
	cobra.CheckErr(newCmd(cfg).Execute())
}

// newLogger writes to the log file if one is set. The terminal belongs to the
// game screen, so logs are discarded otherwise.
func newLogger(cfg *Config) (*log.Logger, io.Closer, error) {
	var w io.Writer = io.Discard
	var closer io.Closer = io.NopCloser(nil)
	if cfg.logFile != "" {
		f, err := os.OpenFile(cfg.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closer = f, f
	}

	level := log.InfoLevel
	if cfg.verbose {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "impostor",
	})
	return logger, closer, nil
}

func loadCatalog(path string) (*catalog.Catalog, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	return catalog.LoadFile(path)
}

func run(ctx context.Context, cfg *Config) error {
	logger, closer, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	cat, err := loadCatalog(cfg.catalog)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	logger.Info("Loaded catalog", "categories", len(cat.IDs()), "avatars", len(cat.Avatars()))

	opts := []game.Option{
		game.WithLogger(logger),
		game.WithAvatars(cat.Avatars()),
	}
	if cfg.seed != 0 {
		opts = append(opts, game.WithSeed(cfg.seed))
	}
	machine := game.NewMachine(cat, opts...)

	if err := machine.SetSettings(cfg.settingsPatch(cat.IDs())); err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	if players := cfg.playerInputs(); len(players) > 0 {
		if err := machine.SetPlayers(players); err != nil {
			return fmt.Errorf("players: %w", err)
		}
	}

	rounds := store.NewRoundLog()
	machine.Subscribe(rounds.Record)

	var timers *timer.Driver
	if !cfg.noTimers {
		timers = timer.New(machine, quartz.NewReal(), logger, cfg.timerConfig())
		defer timers.Stop()
	}

	code := game.GenerateSessionCode()
	logger.Info("Session started", "code", code, "version", releaseVersion)

	model := tui.New(tui.Config{
		Machine:     machine,
		Timers:      timers,
		Rounds:      rounds,
		Avatars:     cat.Avatars(),
		SessionCode: code,
		Logger:      logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	unsubscribe := model.Listen(p.Send)
	defer unsubscribe()

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}
	logger.Info("Session ended", "code", code, "rounds", rounds.Len())
	return nil
}
