package game

import (
	"fmt"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
)

// roundSetup holds the artifacts drawn for a new round before they are committed
type roundSetup struct {
	category    models.Category
	players     []models.Player
	impostorIDs []string
	secretWord  string
	hintWord    string
	hintName    string
	order       []string
}

// CreateGame starts a round. Allowed from setup, result and score; from
// setup the round counter restarts at 1, otherwise it is incremented.
// On error nothing changes.
func (m *Machine) CreateGame() error {
	return m.apply("create_game", m.createGameLocked)
}

// NextRound continues a running game with a new round, keeping scores.
// Only allowed from result and score.
func (m *Machine) NextRound() error {
	return m.apply("next_round", func() ([]events.Event, error) {
		switch m.state.Phase.(type) {
		case models.ResultPhase, models.ScorePhase:
			return m.createGameLocked()
		default:
			return nil, ErrWrongPhase
		}
	})
}

// Rematch zeroes every score, goes back to setup and immediately starts a
// new round with the same players and settings. If the round cannot start
// the machine stays in setup with the scores reset.
func (m *Machine) Rematch() error {
	return m.apply("rematch", func() ([]events.Event, error) {
		switch m.state.Phase.(type) {
		case models.ResultPhase, models.ScorePhase:
		default:
			return nil, ErrWrongPhase
		}

		players := make([]models.Player, len(m.state.Players))
		for i, p := range m.state.Players {
			p.Score = 0
			players[i] = p
		}
		m.state.Players = players
		m.state.RoundNumber = 1
		m.state.LastRoundResult = nil
		m.state.clearRound()
		evs := []events.Event{
			{Type: events.TypeReset, Phase: models.PhaseSetup, Round: 1},
			m.transition(models.SetupPhase{}),
		}

		started, err := m.createGameLocked()
		if err != nil {
			// the reset above stands
			return evs, err
		}
		return append(evs, started...), nil
	})
}

// NewGame clears players, restores default settings and returns to setup
func (m *Machine) NewGame() {
	_ = m.apply("new_game", func() ([]events.Event, error) {
		m.state = m.initialState()
		m.logger.Debug("Game reset")
		return []events.Event{{Type: events.TypeReset, Phase: models.PhaseSetup, Round: 1}}, nil
	})
}

// ResetAll is an alias for NewGame
func (m *Machine) ResetAll() {
	m.NewGame()
}

// ResetRound returns to setup keeping players, their scores and the settings.
// Round artifacts and the last result are cleared.
func (m *Machine) ResetRound() {
	_ = m.apply("reset_round", func() ([]events.Event, error) {
		m.state.clearRound()
		m.state.RoundNumber = 1
		m.state.LastRoundResult = nil
		return []events.Event{m.transition(models.SetupPhase{})}, nil
	})
}

// createGameLocked draws every artifact of a new round and commits it only
// once all checks passed. Caller holds the lock.
func (m *Machine) createGameLocked() ([]events.Event, error) {
	continuing := false
	switch m.state.Phase.(type) {
	case models.SetupPhase:
	case models.ResultPhase, models.ScorePhase:
		continuing = true
	case models.RevealPhase, models.PlayPhase, models.VotePhase, models.ResultCountdownPhase:
		return nil, ErrWrongPhase
	default:
		panic(fmt.Sprintf("game: unhandled phase %T", m.state.Phase))
	}

	r, err := m.drawRound()
	if err != nil {
		return nil, err
	}

	round := 1
	if continuing {
		round = m.state.RoundNumber + 1
	}

	m.state.Players = r.players
	m.state.clearRound()
	m.state.CategoryID = r.category.ID
	m.state.SecretWord = r.secretWord
	m.state.ImpostorIDs = r.impostorIDs
	m.state.ImpostorHintWord = r.hintWord
	m.state.ImpostorHintCategoryName = r.hintName
	m.state.FirstPlayerID = r.order[0]
	m.state.RoundNumber = round

	m.logger.Info("Round started",
		"round", round,
		"category", r.category.ID,
		"players", len(r.players),
		"impostors", len(r.impostorIDs),
		"hint", m.state.Settings.HintMode)

	return []events.Event{
		{Type: events.TypeRoundStarted, Phase: models.PhaseReveal, Round: round},
		m.transition(models.RevealPhase{CurrentPlayerID: r.order[0], RemainingPlayerIDs: r.order[1:]}),
	}, nil
}

// drawRound validates the preconditions of a round and draws its artifacts
// without touching the state
func (m *Machine) drawRound() (roundSetup, error) {
	s := m.state.Settings
	if len(m.state.Players) < m.minPlayers {
		return roundSetup{}, fmt.Errorf("%w: need at least %d, have %d", ErrNotEnoughPlayers, m.minPlayers, len(m.state.Players))
	}
	if len(s.CategoryIDs) == 0 {
		return roundSetup{}, ErrNoCategory
	}
	if s.ImpostorsCount < 1 {
		return roundSetup{}, ErrImpostorCount
	}
	if s.ImpostorsCount > len(m.state.Players)-1 {
		return roundSetup{}, ErrNoCrew
	}

	categoryID, err := PickOne(s.CategoryIDs, m.rng)
	if err != nil {
		return roundSetup{}, ErrNoCategory
	}
	category, ok := m.catalog.Category(categoryID)
	if !ok {
		return roundSetup{}, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryID)
	}
	if !category.HasWords() && !category.HasPairs() {
		return roundSetup{}, fmt.Errorf("%w: %q", ErrEmptyCategory, categoryID)
	}

	mode := s.HintMode
	if mode == models.HintEasySimilar && !category.HasPairs() {
		m.logger.Warn("Category has no word pairs, playing without hint", "category", category.ID)
		mode = models.HintNone
	}

	r := roundSetup{category: category}
	r.players = AssignMissingAvatars(m.state.Players, m.avatars, m.rng)
	ids := make([]string, len(r.players))
	for i, p := range r.players {
		ids[i] = p.ID
	}
	r.impostorIDs = PickUnique(ids, s.ImpostorsCount, m.rng)

	if err := m.drawWord(&r, mode); err != nil {
		return roundSetup{}, err
	}

	r.order = Shuffle(ids, m.rng)
	return r, nil
}

// drawWord picks the secret word and the impostor hint for mode
func (m *Machine) drawWord(r *roundSetup, mode models.HintMode) error {
	c := r.category
	switch mode {
	case models.HintEasySimilar:
		pair, err := PickOne(c.Pairs, m.rng)
		if err != nil {
			return err
		}
		r.secretWord = pair.Crew
		r.hintWord = pair.Impostor
	case models.HintHardCategory:
		if !c.HasWords() {
			// only pairs: the crew word is the secret, impostors get nothing
			pair, err := PickOne(c.Pairs, m.rng)
			if err != nil {
				return err
			}
			r.secretWord = pair.Crew
			return nil
		}
		word, err := PickOne(c.Words, m.rng)
		if err != nil {
			return err
		}
		r.secretWord = word
		r.hintName = c.Name
	case models.HintNone:
		if c.HasWords() {
			word, err := PickOne(c.Words, m.rng)
			if err != nil {
				return err
			}
			r.secretWord = word
			return nil
		}
		pair, err := PickOne(c.Pairs, m.rng)
		if err != nil {
			return err
		}
		r.secretWord = pair.Crew
	default:
		panic(fmt.Sprintf("game: unhandled hint mode %q", mode))
	}
	return nil
}
