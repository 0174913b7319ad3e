package models

import "slices"

// HintMode controls what impostors learn about the secret word
type HintMode string

const (
	HintNone         HintMode = "none"
	HintEasySimilar  HintMode = "easy_similar"
	HintHardCategory HintMode = "hard_category"
)

// Valid reports whether h is one of the known hint modes
func (h HintMode) Valid() bool {
	switch h {
	case HintNone, HintEasySimilar, HintHardCategory:
		return true
	}
	return false
}

// Settings configures a game. They can only change during setup.
type Settings struct {
	RoundSeconds   int      `json:"roundSeconds" yaml:"round_seconds"`
	TurnSeconds    int      `json:"turnSeconds" yaml:"turn_seconds"`
	ImpostorsCount int      `json:"impostorsCount" yaml:"impostors_count"`
	CategoryIDs    []string `json:"categoryIds" yaml:"category_ids"`
	HintMode       HintMode `json:"hintMode" yaml:"hint_mode"`
	WinningScore   int      `json:"winningScore" yaml:"winning_score"`
}

// Clone returns a copy of s that shares no slices with it
func (s Settings) Clone() Settings {
	s.CategoryIDs = slices.Clone(s.CategoryIDs)
	return s
}

// SettingsPatch is a partial settings update; nil fields are left unchanged
type SettingsPatch struct {
	RoundSeconds   *int
	TurnSeconds    *int
	ImpostorsCount *int
	CategoryIDs    []string
	HintMode       *HintMode
	WinningScore   *int
}
