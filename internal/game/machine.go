package game

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/randutil"
)

// Machine is the single source of truth for a running game. All mutation goes
// through its methods; each method either applies completely or returns an
// error and leaves the state untouched. Calls are serialized, so timers may
// drive transitions from other goroutines.
type Machine struct {
	mu sync.Mutex

	catalog    Catalog
	rng        RandSource
	ids        IDGenerator
	avatars    []string
	minPlayers int
	logger     *log.Logger
	bus        *events.Bus

	state State
}

// NewMachine creates a machine in the setup phase with default settings.
// The catalog must contain at least one category.
func NewMachine(catalog Catalog, opts ...Option) *Machine {
	if catalog == nil || len(catalog.Categories()) == 0 {
		panic("game: catalog with at least one category is required")
	}

	m := &Machine{
		catalog:    catalog,
		ids:        UUIDGenerator{},
		minPlayers: MinPlayers,
		bus:        events.NewBus(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rng == nil {
		m.rng = randutil.NewFromEntropy()
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	m.logger = m.logger.WithPrefix("game")
	m.state = m.initialState()
	return m
}

func (m *Machine) initialState() State {
	return State{
		Phase:       models.SetupPhase{},
		Settings:    DefaultSettings(m.catalog),
		RoundNumber: 1,
	}
}

// Subscribe registers fn for events published after successful operations.
// fn runs on the goroutine that called the operation and must not block.
func (m *Machine) Subscribe(fn events.Listener) (unsubscribe func()) {
	return m.bus.Subscribe(fn)
}

// Snapshot returns a deep copy of the current state
func (m *Machine) Snapshot() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Clone()
}

// Phase returns the current phase
func (m *Machine) Phase() models.Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ClonePhase(m.state.Phase)
}

// Settings returns the current settings
func (m *Machine) Settings() models.Settings {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.Settings.Clone()
}

// Players returns the current players
func (m *Machine) Players() []models.Player {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.state.Players)
}

// Catalog returns the catalog the machine draws words from
func (m *Machine) Catalog() Catalog {
	return m.catalog
}

// IsCategorySelected reports whether id is among the selected categories
func (m *Machine) IsCategorySelected(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Contains(m.state.Settings.CategoryIDs, id)
}

// RoleCard returns what playerID privately sees this round: crew members get
// the secret word, impostors get whatever the hint mode allows
func (m *Machine) RoleCard(playerID string) (models.RoleCard, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := m.state
	if _, ok := s.Player(playerID); !ok {
		return models.RoleCard{}, ErrUnknownPlayer
	}
	if s.SecretWord == "" {
		return models.RoleCard{}, ErrWrongPhase
	}
	if !s.IsImpostor(playerID) {
		return models.RoleCard{PlayerID: playerID, SecretWord: s.SecretWord}, nil
	}
	return models.RoleCard{
		PlayerID:     playerID,
		IsImpostor:   true,
		HintWord:     s.ImpostorHintWord,
		HintCategory: s.ImpostorHintCategoryName,
	}, nil
}

// apply runs fn under the lock and publishes its events once the lock is
// released. fn returns events only for changes it actually made.
func (m *Machine) apply(op string, fn func() ([]events.Event, error)) error {
	m.mu.Lock()
	evs, err := fn()
	m.mu.Unlock()

	if err != nil {
		m.logger.Debug("Operation rejected", "op", op, "error", err)
	}
	for _, e := range evs {
		m.bus.Publish(e)
	}
	return err
}

// transition moves to next and returns the matching event. Caller holds the lock.
func (m *Machine) transition(next models.Phase) events.Event {
	m.logger.Debug("Phase changed", "from", m.state.Phase.Kind(), "to", next.Kind(), "round", m.state.RoundNumber)
	m.state.Phase = next
	e := events.Event{Type: events.TypePhaseChanged, Phase: next.Kind(), Round: m.state.RoundNumber}
	if p, ok := next.(models.PlayPhase); ok {
		e.SubPhase = p.SubPhase
	}
	return e
}

func (m *Machine) requireSetup() error {
	if _, ok := m.state.Phase.(models.SetupPhase); !ok {
		return ErrWrongPhase
	}
	return nil
}

// SetPlayers replaces the roster. Entries without an id get one from the id
// generator; names are validated and deduplicated. Only allowed during setup.
func (m *Machine) SetPlayers(inputs []models.PlayerInput) error {
	return m.apply("set_players", func() ([]events.Event, error) {
		if err := m.requireSetup(); err != nil {
			return nil, err
		}

		players := make([]models.Player, 0, len(inputs))
		seen := make(map[string]bool, len(inputs))
		for i, in := range inputs {
			if strings.TrimSpace(in.ID) == "" {
				in.ID = m.ids.NewID()
			}
			p, err := ValidatePlayer(in)
			if err != nil {
				return nil, fmt.Errorf("player %d: %w", i+1, err)
			}
			if seen[p.ID] {
				return nil, fmt.Errorf("player %d: %w", i+1, invalid("id", "duplicate id %q", p.ID))
			}
			seen[p.ID] = true
			players = append(players, p)
		}

		m.state.Players = EnsureUniqueNames(players)
		return []events.Event{{Type: events.TypePlayersChanged, Phase: models.PhaseSetup, Round: m.state.RoundNumber}}, nil
	})
}

// SetPlayerAvatar sets or, with an empty avatar, clears one player's avatar.
// Only allowed during setup.
func (m *Machine) SetPlayerAvatar(playerID, avatar string) error {
	return m.apply("set_player_avatar", func() ([]events.Event, error) {
		if err := m.requireSetup(); err != nil {
			return nil, err
		}
		i := slices.IndexFunc(m.state.Players, func(p models.Player) bool { return p.ID == playerID })
		if i < 0 {
			return nil, ErrUnknownPlayer
		}

		p := m.state.Players[i]
		updated, err := ValidatePlayer(models.PlayerInput{ID: p.ID, Name: p.Name, Avatar: avatar, Score: &p.Score})
		if err != nil {
			return nil, err
		}
		m.state.Players = slices.Clone(m.state.Players)
		m.state.Players[i] = updated
		return []events.Event{{Type: events.TypePlayersChanged, Phase: models.PhaseSetup, Round: m.state.RoundNumber}}, nil
	})
}

// SetSettings merges patch into the current settings. Round length and
// winning score are snapped and clamped; any other violation rejects the
// whole update. Only allowed during setup.
func (m *Machine) SetSettings(patch models.SettingsPatch) error {
	return m.apply("set_settings", func() ([]events.Event, error) {
		if err := m.requireSetup(); err != nil {
			return nil, err
		}
		return m.replaceSettings(MergeSettings(m.state.Settings, patch))
	})
}

// SetRoundMinutes sets the round length in whole minutes, clamped to 1-6
func (m *Machine) SetRoundMinutes(minutes int) error {
	minutes = min(max(minutes, MinRoundSeconds/60), MaxRoundSeconds/60)
	seconds := minutes * 60
	return m.SetSettings(models.SettingsPatch{RoundSeconds: &seconds})
}

// ToggleCategory selects id, or deselects it unless it is the last one.
// Only allowed during setup.
func (m *Machine) ToggleCategory(id string) error {
	return m.apply("toggle_category", func() ([]events.Event, error) {
		if err := m.requireSetup(); err != nil {
			return nil, err
		}
		if _, ok := m.catalog.Category(id); !ok {
			return nil, ErrUnknownCategory
		}

		next := m.state.Settings.Clone()
		if slices.Contains(next.CategoryIDs, id) {
			if len(next.CategoryIDs) <= 1 {
				return nil, ErrLastCategory
			}
			next.CategoryIDs = slices.DeleteFunc(next.CategoryIDs, func(c string) bool { return c == id })
		} else {
			next.CategoryIDs = append(next.CategoryIDs, id)
		}
		return m.replaceSettings(next)
	})
}

// SelectAllCategories selects every catalog category. Only allowed during setup.
func (m *Machine) SelectAllCategories() error {
	return m.apply("select_all_categories", func() ([]events.Event, error) {
		if err := m.requireSetup(); err != nil {
			return nil, err
		}
		next := m.state.Settings.Clone()
		next.CategoryIDs = nil
		for _, c := range m.catalog.Categories() {
			next.CategoryIDs = append(next.CategoryIDs, c.ID)
		}
		return m.replaceSettings(next)
	})
}

// ClearCategories resets the selection to the default (first) category.
// Only allowed during setup.
func (m *Machine) ClearCategories() error {
	return m.apply("clear_categories", func() ([]events.Event, error) {
		if err := m.requireSetup(); err != nil {
			return nil, err
		}
		next := m.state.Settings.Clone()
		next.CategoryIDs = DefaultSettings(m.catalog).CategoryIDs
		return m.replaceSettings(next)
	})
}

// replaceSettings validates next and stores it. Caller holds the lock.
func (m *Machine) replaceSettings(next models.Settings) ([]events.Event, error) {
	if err := ValidateSettings(next, m.catalog); err != nil {
		return nil, err
	}
	m.state.Settings = next
	return []events.Event{{Type: events.TypeSettingsChanged, Phase: models.PhaseSetup, Round: m.state.RoundNumber}}, nil
}
