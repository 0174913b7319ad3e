package game

import (
	"math"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/aaronzipp/impostor/internal/models"
)

// ValidatePlayer checks a single player and fills defaults. The name is
// trimmed and must be 1..MaxNameLength characters; a missing score becomes 0.
func ValidatePlayer(in models.PlayerInput) (models.Player, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return models.Player{}, invalid("id", "must not be empty")
	}

	name := strings.TrimSpace(in.Name)
	if n := utf8.RuneCountInString(name); n < 1 || n > MaxNameLength {
		return models.Player{}, invalid("name", "must be 1-%d characters, got %d", MaxNameLength, n)
	}

	avatar := strings.TrimSpace(in.Avatar)
	if len(avatar) > MaxAvatarLength {
		return models.Player{}, invalid("avatar", "must be at most %d characters", MaxAvatarLength)
	}

	score := 0
	if in.Score != nil {
		score = *in.Score
	}
	if score < 0 {
		return models.Player{}, invalid("score", "must not be negative, got %d", score)
	}

	return models.Player{ID: id, Name: name, Avatar: avatar, Score: score}, nil
}

// SnapRoundSeconds rounds seconds to the nearest whole minute and clamps it
// to [MinRoundSeconds, MaxRoundSeconds]
func SnapRoundSeconds(seconds int) int {
	snapped := int(math.Round(float64(seconds)/60)) * 60
	return min(max(snapped, MinRoundSeconds), MaxRoundSeconds)
}

// ClampWinningScore clamps score to [MinWinningScore, MaxWinningScore]
func ClampWinningScore(score int) int {
	return min(max(score, MinWinningScore), MaxWinningScore)
}

// MergeSettings applies patch on top of current, sanitizing the soft-clamped
// fields. The result still needs ValidateSettings.
func MergeSettings(current models.Settings, patch models.SettingsPatch) models.Settings {
	merged := current.Clone()
	if patch.RoundSeconds != nil {
		merged.RoundSeconds = SnapRoundSeconds(*patch.RoundSeconds)
	}
	if patch.TurnSeconds != nil {
		merged.TurnSeconds = *patch.TurnSeconds
	}
	if patch.ImpostorsCount != nil {
		merged.ImpostorsCount = *patch.ImpostorsCount
	}
	if patch.CategoryIDs != nil {
		merged.CategoryIDs = slices.Clone(patch.CategoryIDs)
	}
	if patch.HintMode != nil {
		merged.HintMode = *patch.HintMode
	}
	if patch.WinningScore != nil {
		merged.WinningScore = ClampWinningScore(*patch.WinningScore)
	}
	return merged
}

// ValidateSettings checks the structural constraints of s. When cat is not
// nil every selected category must exist in it.
func ValidateSettings(s models.Settings, cat Catalog) error {
	if s.RoundSeconds < MinRoundSeconds || s.RoundSeconds > MaxRoundSeconds || s.RoundSeconds%60 != 0 {
		return invalid("roundSeconds", "must be a whole number of minutes between %d and %d seconds, got %d",
			MinRoundSeconds, MaxRoundSeconds, s.RoundSeconds)
	}
	if s.TurnSeconds < MinTurnSeconds || s.TurnSeconds > MaxTurnSeconds {
		return invalid("turnSeconds", "must be between %d and %d, got %d", MinTurnSeconds, MaxTurnSeconds, s.TurnSeconds)
	}
	if s.ImpostorsCount < MinImpostors || s.ImpostorsCount > MaxImpostors {
		return invalid("impostorsCount", "must be between %d and %d, got %d", MinImpostors, MaxImpostors, s.ImpostorsCount)
	}
	if len(s.CategoryIDs) == 0 {
		return invalid("categoryIds", "must not be empty")
	}
	seen := make(map[string]bool, len(s.CategoryIDs))
	for _, id := range s.CategoryIDs {
		if id == "" {
			return invalid("categoryIds", "must not contain empty ids")
		}
		if seen[id] {
			return invalid("categoryIds", "duplicate category %q", id)
		}
		seen[id] = true
		if cat != nil {
			if _, ok := cat.Category(id); !ok {
				return invalid("categoryIds", "unknown category %q", id)
			}
		}
	}
	if !s.HintMode.Valid() {
		return invalid("hintMode", "unknown mode %q", s.HintMode)
	}
	if s.WinningScore < MinWinningScore || s.WinningScore > MaxWinningScore {
		return invalid("winningScore", "must be between %d and %d, got %d", MinWinningScore, MaxWinningScore, s.WinningScore)
	}
	return nil
}

// DefaultSettings returns the settings a new game starts with. The first
// catalog category is selected.
func DefaultSettings(cat Catalog) models.Settings {
	var categoryIDs []string
	if cat != nil {
		if cats := cat.Categories(); len(cats) > 0 {
			categoryIDs = []string{cats[0].ID}
		}
	}
	return models.Settings{
		RoundSeconds:   DefaultRoundSeconds,
		TurnSeconds:    DefaultTurnSeconds,
		ImpostorsCount: MinImpostors,
		CategoryIDs:    categoryIDs,
		HintMode:       models.HintNone,
		WinningScore:   DefaultWinningScore,
	}
}
