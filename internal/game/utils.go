package game

import (
	crand "crypto/rand"
	"fmt"
	"math/big"
	rand "math/rand/v2"

	"github.com/google/uuid"

	"github.com/aaronzipp/impostor/internal/models"
)

// IDGenerator produces unique player ids
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator generates random UUIDs
type UUIDGenerator struct{}

// NewID returns a new random UUID string
func (UUIDGenerator) NewID() string {
	return uuid.NewString()
}

// GenerateSessionCode creates a random code identifying one run of the game
func GenerateSessionCode() string {
	code := make([]byte, SessionCodeLength)
	for i := range SessionCodeLength {
		n, err := crand.Int(crand.Reader, big.NewInt(int64(len(SessionCodeChars))))
		if err != nil {
			// fallback to math/rand if crypto fails
			code[i] = SessionCodeChars[rand.IntN(len(SessionCodeChars))]
			continue
		}
		code[i] = SessionCodeChars[n.Int64()]
	}
	return string(code)
}

// Screen names what the front-end shows for a phase
type Screen string

const (
	ScreenSetup     Screen = "setup"
	ScreenReveal    Screen = "reveal"
	ScreenCountdown Screen = "countdown"
	ScreenDebate    Screen = "debate"
	ScreenVote      Screen = "vote"
	ScreenExposed   Screen = "exposed"
	ScreenResult    Screen = "result"
	ScreenScore     Screen = "score"
)

// ScreenFor returns the screen for a given game phase
func ScreenFor(phase models.Phase) Screen {
	switch p := phase.(type) {
	case models.SetupPhase:
		return ScreenSetup
	case models.RevealPhase:
		return ScreenReveal
	case models.PlayPhase:
		if p.SubPhase == models.SubPhaseCountdown {
			return ScreenCountdown
		}
		return ScreenDebate
	case models.VotePhase:
		return ScreenVote
	case models.ResultCountdownPhase:
		return ScreenExposed
	case models.ResultPhase:
		return ScreenResult
	case models.ScorePhase:
		return ScreenScore
	default:
		panic(fmt.Sprintf("game: unhandled phase %T", phase))
	}
}
