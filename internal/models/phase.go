package models

import (
	"fmt"
	"slices"
)

// Phase is one variant of the game phase union. The variants are SetupPhase,
// RevealPhase, PlayPhase, VotePhase, ResultCountdownPhase, ResultPhase and
// ScorePhase. Code that depends on the phase should use a type switch with a
// default case that panics, so a new variant cannot be silently mishandled.
type Phase interface {
	Kind() PhaseKind
	isPhase()
}

// SetupPhase means no round is in progress
type SetupPhase struct{}

// RevealPhase lets one player at a time privately view their role
type RevealPhase struct {
	CurrentPlayerID    string   `json:"currentPlayerId"`
	RemainingPlayerIDs []string `json:"remainingPlayerIds"`
}

// PlayPhase is the countdown before the discussion and the discussion itself
type PlayPhase struct {
	SubPhase      PlaySubPhase `json:"subPhase"`
	FirstPlayerID string       `json:"firstPlayerId"`
}

// VotePhase holds the suspects the crew has selected so far, in selection order
type VotePhase struct {
	SelectedVoteIDs []string `json:"selectedVoteIds"`
}

// ResultCountdownPhase is the suspense delay before the outcome is shown
type ResultCountdownPhase struct {
	Winner      Winner   `json:"winner"`
	ImpostorIDs []string `json:"impostorIds"`
	SecretWord  string   `json:"secretWord"`
}

// ResultPhase reveals the outcome of the round
type ResultPhase struct {
	Winner      Winner   `json:"winner"`
	ImpostorIDs []string `json:"impostorIds"`
	SecretWord  string   `json:"secretWord"`
}

// ScorePhase shows the standings
type ScorePhase struct{}

func (SetupPhase) Kind() PhaseKind           { return PhaseSetup }
func (RevealPhase) Kind() PhaseKind          { return PhaseReveal }
func (PlayPhase) Kind() PhaseKind            { return PhasePlay }
func (VotePhase) Kind() PhaseKind            { return PhaseVote }
func (ResultCountdownPhase) Kind() PhaseKind { return PhaseResultCountdown }
func (ResultPhase) Kind() PhaseKind          { return PhaseResult }
func (ScorePhase) Kind() PhaseKind           { return PhaseScore }

func (SetupPhase) isPhase()           {}
func (RevealPhase) isPhase()          {}
func (PlayPhase) isPhase()            {}
func (VotePhase) isPhase()            {}
func (ResultCountdownPhase) isPhase() {}
func (ResultPhase) isPhase()          {}
func (ScorePhase) isPhase()           {}

// IsSelected reports whether playerID is among the selected suspects
func (v VotePhase) IsSelected(playerID string) bool {
	return slices.Contains(v.SelectedVoteIDs, playerID)
}

// ClonePhase returns a copy of p that shares no slices with it
func ClonePhase(p Phase) Phase {
	switch v := p.(type) {
	case SetupPhase, PlayPhase, ScorePhase:
		return v
	case RevealPhase:
		v.RemainingPlayerIDs = slices.Clone(v.RemainingPlayerIDs)
		return v
	case VotePhase:
		v.SelectedVoteIDs = slices.Clone(v.SelectedVoteIDs)
		return v
	case ResultCountdownPhase:
		v.ImpostorIDs = slices.Clone(v.ImpostorIDs)
		return v
	case ResultPhase:
		v.ImpostorIDs = slices.Clone(v.ImpostorIDs)
		return v
	default:
		panic(fmt.Sprintf("models: unhandled phase %T", p))
	}
}
