package game

import (
	"github.com/charmbracelet/log"

	"github.com/aaronzipp/impostor/internal/randutil"
)

// Option configures a Machine during creation
type Option func(*Machine)

// WithRand sets the random source used for every draw. Tests pass a seeded
// source so rounds are reproducible.
func WithRand(rng RandSource) Option {
	return func(m *Machine) {
		m.rng = rng
	}
}

// WithSeed seeds a deterministic random source
func WithSeed(seed int64) Option {
	return func(m *Machine) {
		m.rng = randutil.New(seed)
	}
}

// WithIDGenerator sets the generator for players submitted without an id
func WithIDGenerator(ids IDGenerator) Option {
	return func(m *Machine) {
		m.ids = ids
	}
}

// WithAvatars sets the avatar pool handed out to players without one
func WithAvatars(pool []string) Option {
	return func(m *Machine) {
		m.avatars = append([]string(nil), pool...)
	}
}

// WithLogger sets the logger. Default: the charmbracelet default logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Machine) {
		m.logger = logger
	}
}

// WithMinPlayers overrides MinPlayers
func WithMinPlayers(n int) Option {
	return func(m *Machine) {
		m.minPlayers = n
	}
}
