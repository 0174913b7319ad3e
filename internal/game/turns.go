package game

import (
	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
)

// RevealNext hands the device to the next player in the reveal queue. After
// the last player it moves to play, starting with the countdown.
func (m *Machine) RevealNext() error {
	return m.apply("reveal_next", func() ([]events.Event, error) {
		p, ok := m.state.Phase.(models.RevealPhase)
		if !ok {
			return nil, ErrWrongPhase
		}

		if len(p.RemainingPlayerIDs) > 0 {
			next := models.RevealPhase{
				CurrentPlayerID:    p.RemainingPlayerIDs[0],
				RemainingPlayerIDs: append([]string(nil), p.RemainingPlayerIDs[1:]...),
			}
			return []events.Event{m.transition(next)}, nil
		}

		return []events.Event{m.transition(models.PlayPhase{
			SubPhase:      models.SubPhaseCountdown,
			FirstPlayerID: m.state.FirstPlayerID,
		})}, nil
	})
}

// AdvanceToDebate ends the countdown and opens the discussion
func (m *Machine) AdvanceToDebate() error {
	return m.apply("advance_to_debate", func() ([]events.Event, error) {
		p, ok := m.state.Phase.(models.PlayPhase)
		if !ok || p.SubPhase != models.SubPhaseCountdown {
			return nil, ErrWrongPhase
		}
		p.SubPhase = models.SubPhaseDebate
		return []events.Event{m.transition(p)}, nil
	})
}

// StartVote ends the discussion and opens voting with nobody selected
func (m *Machine) StartVote() error {
	return m.apply("start_vote", func() ([]events.Event, error) {
		if _, ok := m.state.Phase.(models.PlayPhase); !ok {
			return nil, ErrWrongPhase
		}
		return []events.Event{m.transition(models.VotePhase{SelectedVoteIDs: []string{}})}, nil
	})
}
