package game

import (
	"fmt"
	"slices"
	"strings"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
)

// SelectVote toggles playerID in the current selection. Deselecting is always
// allowed; selecting fails once ImpostorsCount suspects are chosen.
func (m *Machine) SelectVote(playerID string) error {
	return m.apply("select_vote", func() ([]events.Event, error) {
		p, ok := m.state.Phase.(models.VotePhase)
		if !ok {
			return nil, ErrWrongPhase
		}

		selected := slices.Clone(p.SelectedVoteIDs)
		if i := slices.Index(selected, playerID); i >= 0 {
			selected = slices.Delete(selected, i, i+1)
			return []events.Event{m.transition(models.VotePhase{SelectedVoteIDs: selected})}, nil
		}
		if _, ok := m.state.Player(playerID); !ok {
			return nil, ErrUnknownPlayer
		}
		if len(selected) >= m.state.Settings.ImpostorsCount {
			return nil, ErrMaxVotes
		}

		selected = append(selected, playerID)
		return []events.Event{m.transition(models.VotePhase{SelectedVoteIDs: selected})}, nil
	})
}

// ConfirmVote locks in the selection. It must hold exactly ImpostorsCount
// suspects. The crew wins only if the selection equals the impostor set.
func (m *Machine) ConfirmVote() error {
	return m.apply("confirm_vote", func() ([]events.Event, error) {
		p, ok := m.state.Phase.(models.VotePhase)
		if !ok {
			return nil, ErrWrongPhase
		}
		want := m.state.Settings.ImpostorsCount
		if len(p.SelectedVoteIDs) != want {
			return nil, fmt.Errorf("%w: select exactly %d", ErrVoteCount, want)
		}

		result := models.RoundResult{
			Winner:         models.WinnerImpostor,
			Reason:         models.ReasonWrongVote,
			VotedPlayerIDs: slices.Clone(p.SelectedVoteIDs),
		}
		if sameSet(p.SelectedVoteIDs, m.state.ImpostorIDs) {
			result.Winner = models.WinnerCrew
			result.Reason = models.ReasonVotedAllImpostors
		}

		return m.finishRound(result, func(r models.RoundResult) models.Phase {
			return models.ResultCountdownPhase{Winner: r.Winner, ImpostorIDs: slices.Clone(r.ImpostorIDs), SecretWord: r.SecretWord}
		})
	})
}

// ImpostorGuessWord lets an impostor guess the secret word during the vote.
// Case and surrounding whitespace are ignored. A wrong guess changes
// nothing; a right one wins the round for the impostors and skips the
// result countdown.
func (m *Machine) ImpostorGuessWord(guess string) (bool, error) {
	correct := false
	err := m.apply("impostor_guess_word", func() ([]events.Event, error) {
		p, ok := m.state.Phase.(models.VotePhase)
		if !ok {
			return nil, ErrWrongPhase
		}
		if !wordsMatch(guess, m.state.SecretWord) {
			m.logger.Debug("Wrong guess", "round", m.state.RoundNumber)
			return nil, nil
		}

		correct = true
		result := models.RoundResult{
			Winner:              models.WinnerImpostor,
			Reason:              models.ReasonGuessedWord,
			VotedPlayerIDs:      slices.Clone(p.SelectedVoteIDs),
			ImpostorGuessedWord: true,
		}
		return m.finishRound(result, func(r models.RoundResult) models.Phase {
			return models.ResultPhase{Winner: r.Winner, ImpostorIDs: slices.Clone(r.ImpostorIDs), SecretWord: r.SecretWord}
		})
	})
	return correct, err
}

// AdvanceToResult ends the suspense delay and shows the outcome
func (m *Machine) AdvanceToResult() error {
	return m.apply("advance_to_result", func() ([]events.Event, error) {
		p, ok := m.state.Phase.(models.ResultCountdownPhase)
		if !ok {
			return nil, ErrWrongPhase
		}
		return []events.Event{m.transition(models.ResultPhase{
			Winner:      p.Winner,
			ImpostorIDs: slices.Clone(p.ImpostorIDs),
			SecretWord:  p.SecretWord,
		})}, nil
	})
}

// GoToScore moves from the result to the standings
func (m *Machine) GoToScore() error {
	return m.apply("go_to_score", func() ([]events.Event, error) {
		if _, ok := m.state.Phase.(models.ResultPhase); !ok {
			return nil, ErrWrongPhase
		}
		return []events.Event{m.transition(models.ScorePhase{})}, nil
	})
}

// finishRound applies the scores for result, recomputes the standings and
// moves to the phase built by next. Caller holds the lock.
func (m *Machine) finishRound(result models.RoundResult, next func(models.RoundResult) models.Phase) ([]events.Event, error) {
	result.Round = m.state.RoundNumber
	result.CategoryID = m.state.CategoryID
	result.ImpostorIDs = slices.Clone(m.state.ImpostorIDs)
	result.SecretWord = m.state.SecretWord

	players, err := ApplyRoundScore(m.state.Players, result.Winner, result.ImpostorIDs)
	if err != nil {
		return nil, err
	}
	gameOver, winners := Standings(players, m.state.Settings.WinningScore)

	m.state.Players = players
	m.state.GameOver = gameOver
	m.state.WinnerPlayerIDs = winners
	m.state.LastRoundResult = &result

	m.logger.Debug("Round ended",
		"round", result.Round,
		"winner", result.Winner,
		"reason", result.Reason,
		"gameOver", gameOver)

	ended := result.Clone()
	return []events.Event{
		{Type: events.TypeRoundEnded, Phase: m.state.Phase.Kind(), Round: result.Round, Result: &ended},
		m.transition(next(result)),
	}, nil
}

func wordsMatch(guess, secret string) bool {
	guess = strings.TrimSpace(guess)
	if guess == "" {
		return false
	}
	return strings.EqualFold(guess, strings.TrimSpace(secret))
}
