package events

import "github.com/aaronzipp/impostor/internal/models"

// Type identifies what happened in the game
type Type string

// Event type constants
const (
	TypePhaseChanged    Type = "phase_changed"
	TypeRoundStarted    Type = "round_started"
	TypeRoundEnded      Type = "round_ended"
	TypeSettingsChanged Type = "settings_changed"
	TypePlayersChanged  Type = "players_changed"
	TypeReset           Type = "reset"
)

// Event is published by the game machine after a successful operation
type Event struct {
	Type     Type
	Phase    models.PhaseKind
	SubPhase models.PlaySubPhase // set only while Phase is play
	Round    int
	Result   *models.RoundResult // set only for TypeRoundEnded
}
