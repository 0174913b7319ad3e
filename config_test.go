package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/models"
)

func defaultConfig(t *testing.T) *Config {
	t.Helper()
	cfg := &Config{}
	newCmd(cfg)
	return cfg
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := defaultConfig(t)
	require.NoError(t, cfg.validate())
	assert.Equal(t, 1, cfg.impostors)
	assert.Equal(t, 3, cfg.roundMinutes)
	assert.Equal(t, "none", cfg.hintMode)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"too many impostors", func(c *Config) { c.impostors = 3 }},
		{"no impostors", func(c *Config) { c.impostors = 0 }},
		{"round too long", func(c *Config) { c.roundMinutes = 7 }},
		{"turn too short", func(c *Config) { c.turnSeconds = 5 }},
		{"unknown hint mode", func(c *Config) { c.hintMode = "psychic" }},
		{"winning score zero", func(c *Config) { c.winningScore = 0 }},
		{"both category flags", func(c *Config) {
			c.allCategories = true
			c.categories = []string{"food"}
		}},
		{"negative countdown", func(c *Config) { c.countdown = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig(t)
			tt.modify(cfg)
			assert.Error(t, cfg.validate())
		})
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("IMPOSTOR_IMPOSTORS", "2")
	t.Setenv("IMPOSTOR_HINT_MODE", "easy_similar")
	t.Setenv("IMPOSTOR_PLAYERS", "Ana,Bruno,Carla")

	cfg := defaultConfig(t)

	assert.Equal(t, 2, cfg.impostors)
	assert.Equal(t, "easy_similar", cfg.hintMode)
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, cfg.players)
}

func TestFlagsParse(t *testing.T) {
	cfg := &Config{}
	cmd := newCmd(cfg)
	require.NoError(t, cmd.ParseFlags([]string{"-m", "5", "--categories", "food,movies", "--turn_seconds", "45"}))

	assert.Equal(t, 5, cfg.roundMinutes)
	assert.Equal(t, []string{"food", "movies"}, cfg.categories)
	assert.Equal(t, 45, cfg.turnSeconds)
}

func TestSettingsPatch(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.roundMinutes = 4
	cfg.hintMode = "hard_category"

	patch := cfg.settingsPatch([]string{"food", "movies"})
	require.NotNil(t, patch.RoundSeconds)
	assert.Equal(t, 240, *patch.RoundSeconds)
	assert.Equal(t, models.HintHardCategory, *patch.HintMode)
	assert.Nil(t, patch.CategoryIDs, "categories stay at the default unless chosen")

	cfg.allCategories = true
	assert.Equal(t, []string{"food", "movies"}, cfg.settingsPatch([]string{"food", "movies"}).CategoryIDs)

	cfg.allCategories = false
	cfg.categories = []string{"movies"}
	assert.Equal(t, []string{"movies"}, cfg.settingsPatch(nil).CategoryIDs)
}

func TestPlayerInputsSkipsBlankNames(t *testing.T) {
	cfg := &Config{players: []string{" Ana ", "", "Bruno"}}
	assert.Equal(t, []models.PlayerInput{{Name: "Ana"}, {Name: "Bruno"}}, cfg.playerInputs())
}
