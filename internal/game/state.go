package game

import (
	"slices"

	"github.com/aaronzipp/impostor/internal/models"
)

// State is a snapshot of everything the front-end reads
type State struct {
	Phase    models.Phase
	Players  []models.Player
	Settings models.Settings

	// Round artifacts, created fresh by every round
	CategoryID               string
	SecretWord               string
	ImpostorIDs              []string
	ImpostorHintWord         string
	ImpostorHintCategoryName string
	FirstPlayerID            string

	RoundNumber     int
	LastRoundResult *models.RoundResult

	GameOver        bool
	WinnerPlayerIDs []string
}

// Clone returns a deep copy of s
func (s State) Clone() State {
	s.Phase = models.ClonePhase(s.Phase)
	s.Players = slices.Clone(s.Players)
	s.Settings = s.Settings.Clone()
	s.ImpostorIDs = slices.Clone(s.ImpostorIDs)
	s.WinnerPlayerIDs = slices.Clone(s.WinnerPlayerIDs)
	if s.LastRoundResult != nil {
		r := s.LastRoundResult.Clone()
		s.LastRoundResult = &r
	}
	return s
}

// Player returns the player with the given id
func (s State) Player(id string) (models.Player, bool) {
	i := slices.IndexFunc(s.Players, func(p models.Player) bool { return p.ID == id })
	if i < 0 {
		return models.Player{}, false
	}
	return s.Players[i], true
}

// IsImpostor reports whether id is an impostor this round
func (s State) IsImpostor(id string) bool {
	return slices.Contains(s.ImpostorIDs, id)
}

func (s State) playerIDs() []string {
	ids := make([]string, len(s.Players))
	for i, p := range s.Players {
		ids[i] = p.ID
	}
	return ids
}

func (s *State) clearRound() {
	s.CategoryID = ""
	s.SecretWord = ""
	s.ImpostorIDs = nil
	s.ImpostorHintWord = ""
	s.ImpostorHintCategoryName = ""
	s.FirstPlayerID = ""
	s.GameOver = false
	s.WinnerPlayerIDs = nil
}

// sameSet reports whether a and b hold the same ids, ignoring order
func sameSet(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, id := range a {
		set[id] = true
	}
	other := make(map[string]bool, len(b))
	for _, id := range b {
		if !set[id] {
			return false
		}
		other[id] = true
	}
	return len(set) == len(other)
}
