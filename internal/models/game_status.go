package models

// PhaseKind names the active phase of a game
type PhaseKind string

const (
	PhaseSetup           PhaseKind = "setup"
	PhaseReveal          PhaseKind = "reveal"
	PhasePlay            PhaseKind = "play"
	PhaseVote            PhaseKind = "vote"
	PhaseResultCountdown PhaseKind = "result_countdown"
	PhaseResult          PhaseKind = "result"
	PhaseScore           PhaseKind = "score"
)

// PlaySubPhase splits the play phase into the pre-debate countdown and the debate itself
type PlaySubPhase string

const (
	SubPhaseCountdown PlaySubPhase = "countdown"
	SubPhaseDebate    PlaySubPhase = "debate"
)
