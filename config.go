package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/timer"
)

type Config struct {
	allCategories bool
	catalog       string
	categories    []string
	countdown     time.Duration
	hintMode      string
	impostors     int
	logFile       string
	noTimers      bool
	players       []string
	roundMinutes  int
	seed          int64
	suspense      time.Duration
	turnSeconds   int
	verbose       bool
	version       bool
	winningScore  int
}

func (c *Config) validate() error {
	if c.impostors < game.MinImpostors || c.impostors > game.MaxImpostors {
		return fmt.Errorf("invalid impostor count (must be between %d-%d inclusive): %d", game.MinImpostors, game.MaxImpostors, c.impostors)
	}
	if c.roundMinutes < game.MinRoundSeconds/60 || c.roundMinutes > game.MaxRoundSeconds/60 {
		return fmt.Errorf("invalid round length (must be between %d-%d minutes inclusive): %d", game.MinRoundSeconds/60, game.MaxRoundSeconds/60, c.roundMinutes)
	}
	if c.turnSeconds < game.MinTurnSeconds || c.turnSeconds > game.MaxTurnSeconds {
		return fmt.Errorf("invalid turn length (must be between %d-%d seconds inclusive): %d", game.MinTurnSeconds, game.MaxTurnSeconds, c.turnSeconds)
	}
	if !models.HintMode(c.hintMode).Valid() {
		return fmt.Errorf("invalid hint mode (must be none, easy_similar or hard_category): %q", c.hintMode)
	}
	if c.winningScore < game.MinWinningScore || c.winningScore > game.MaxWinningScore {
		return fmt.Errorf("invalid winning score (must be between %d-%d inclusive): %d", game.MinWinningScore, game.MaxWinningScore, c.winningScore)
	}
	if c.allCategories && len(c.categories) > 0 {
		return errors.New("--all-categories and --categories cannot be used together")
	}
	if c.countdown < 0 || c.suspense < 0 {
		return errors.New("--countdown and --suspense must not be negative")
	}
	return nil
}

// settingsPatch returns the game settings chosen on the command line.
// allIDs is every category of the loaded catalog.
func (c *Config) settingsPatch(allIDs []string) models.SettingsPatch {
	roundSeconds := c.roundMinutes * 60
	mode := models.HintMode(c.hintMode)
	patch := models.SettingsPatch{
		RoundSeconds:   &roundSeconds,
		TurnSeconds:    &c.turnSeconds,
		ImpostorsCount: &c.impostors,
		HintMode:       &mode,
		WinningScore:   &c.winningScore,
	}
	switch {
	case c.allCategories:
		patch.CategoryIDs = allIDs
	case len(c.categories) > 0:
		patch.CategoryIDs = c.categories
	}
	return patch
}

func (c *Config) playerInputs() []models.PlayerInput {
	var inputs []models.PlayerInput
	for _, name := range c.players {
		if name = strings.TrimSpace(name); name != "" {
			inputs = append(inputs, models.PlayerInput{Name: name})
		}
	}
	return inputs
}

func (c *Config) timerConfig() timer.Config {
	return timer.Config{Countdown: c.countdown, Suspense: c.suspense}
}

func newCmd(cfg *Config) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix("IMPOSTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "impostor",
		Short:   "Pass-the-device party game: find the impostors who don't know the secret word.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}

	fs := cmd.Flags()

	fs.SetNormalizeFunc(func(_ *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	fs.BoolVar(&cfg.allCategories, "all-categories", false, "select every category (env: IMPOSTOR_ALL_CATEGORIES)")
	fs.StringVar(&cfg.catalog, "catalog", "", "path to a YAML catalog replacing the built-in one (env: IMPOSTOR_CATALOG)")
	fs.StringSliceVarP(&cfg.categories, "categories", "c", nil, "comma-separated category ids to play with (env: IMPOSTOR_CATEGORIES)")
	fs.DurationVar(&cfg.countdown, "countdown", timer.DefaultCountdown, "countdown before the discussion (env: IMPOSTOR_COUNTDOWN)")
	fs.StringVar(&cfg.hintMode, "hint-mode", string(models.HintNone), "impostor hint: none, easy_similar or hard_category (env: IMPOSTOR_HINT_MODE)")
	fs.IntVarP(&cfg.impostors, "impostors", "i", game.MinImpostors, "impostors per round (env: IMPOSTOR_IMPOSTORS)")
	fs.StringVar(&cfg.logFile, "log-file", "", "write logs to this file (env: IMPOSTOR_LOG_FILE)")
	fs.BoolVar(&cfg.noTimers, "no-timers", false, "advance timed phases by hand only (env: IMPOSTOR_NO_TIMERS)")
	fs.StringSliceVarP(&cfg.players, "players", "p", nil, "comma-separated player names (env: IMPOSTOR_PLAYERS)")
	fs.IntVarP(&cfg.roundMinutes, "round-minutes", "m", game.DefaultRoundSeconds/60, "discussion length in minutes (env: IMPOSTOR_ROUND_MINUTES)")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed for reproducible games, 0 for a random one (env: IMPOSTOR_SEED)")
	fs.DurationVar(&cfg.suspense, "suspense", timer.DefaultSuspense, "pause before the result is shown (env: IMPOSTOR_SUSPENSE)")
	fs.IntVar(&cfg.turnSeconds, "turn-seconds", game.DefaultTurnSeconds, "seconds per turn (env: IMPOSTOR_TURN_SECONDS)")
	fs.BoolVarP(&cfg.verbose, "verbose", "v", false, "log debug output (env: IMPOSTOR_VERBOSE)")
	fs.BoolVarP(&cfg.version, "version", "V", false, "display version and exit (env: IMPOSTOR_VERSION)")
	fs.IntVarP(&cfg.winningScore, "winning-score", "w", game.DefaultWinningScore, "points needed to win the game (env: IMPOSTOR_WINNING_SCORE)")

	fs.VisitAll(func(f *pflag.Flag) {
		_ = v.BindPFlag(f.Name, f)
		_ = v.BindEnv(f.Name)
		if !f.Changed && v.IsSet(f.Name) {
			_ = fs.Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("impostor v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}
