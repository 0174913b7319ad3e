package store

import (
	"slices"
	"sync"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
)

// RoundLog keeps the results of every round of the current game, in order
type RoundLog struct {
	rounds []models.RoundResult
	mu     sync.RWMutex
}

// NewRoundLog creates an empty round log
func NewRoundLog() *RoundLog {
	return &RoundLog{}
}

// Append records a finished round
func (s *RoundLog) Append(result models.RoundResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = append(s.rounds, result.Clone())
}

// Get retrieves the result of a round by its number
func (s *RoundLog) Get(round int) (models.RoundResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := len(s.rounds) - 1; i >= 0; i-- {
		if s.rounds[i].Round == round {
			return s.rounds[i].Clone(), true
		}
	}
	return models.RoundResult{}, false
}

// All returns every recorded round, oldest first
func (s *RoundLog) All() []models.RoundResult {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.RoundResult, len(s.rounds))
	for i, r := range s.rounds {
		out[i] = r.Clone()
	}
	return out
}

// Len returns the number of recorded rounds
func (s *RoundLog) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rounds)
}

// Wins counts the rounds each side won
func (s *RoundLog) Wins() map[models.Winner]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	wins := make(map[models.Winner]int, 2)
	for _, r := range s.rounds {
		wins[r.Winner]++
	}
	return wins
}

// Reset forgets every round
func (s *RoundLog) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rounds = slices.Delete(s.rounds, 0, len(s.rounds))
}

// Record is an events.Listener that appends ended rounds and clears the log
// when a new game or rematch starts over
func (s *RoundLog) Record(e events.Event) {
	switch e.Type {
	case events.TypeRoundEnded:
		if e.Result != nil {
			s.Append(*e.Result)
		}
	case events.TypeReset:
		s.Reset()
	case events.TypePhaseChanged:
		if e.Phase == models.PhaseSetup {
			s.Reset()
		}
	}
}
