// Package tui is the pass-the-device terminal front-end. It only reads the
// machine's snapshots and calls its operations; all rules live in the machine.
package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/render"
	"github.com/aaronzipp/impostor/internal/store"
	"github.com/aaronzipp/impostor/internal/timer"
)

// Config holds the dependencies of the front-end
type Config struct {
	Machine     *game.Machine
	Timers      *timer.Driver // nil means every timed phase is advanced by hand
	Rounds      *store.RoundLog
	Avatars     []string
	SessionCode string
	Logger      *log.Logger
}

// eventMsg carries a machine event into the bubbletea loop
type eventMsg events.Event

// tickMsg refreshes the timer display
type tickMsg time.Time

// Model is the bubbletea model of the whole game
type Model struct {
	machine     *game.Machine
	timers      *timer.Driver
	rounds      *store.RoundLog
	avatars     []string
	categories  []models.Category
	sessionCode string
	logger      *log.Logger

	// setup screen
	tab         setupTab
	nameInput   textinput.Model
	playerIdx   int
	settingIdx  settingField
	categoryIdx int

	// round screens
	revealed   bool
	voteIdx    int
	guessing   bool
	guessInput textinput.Model

	showHelp bool
	notice   string
	viewKey  string

	width    int
	height   int
	quitting bool
}

// New creates the front-end model
func New(cfg Config) *Model {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	rounds := cfg.Rounds
	if rounds == nil {
		rounds = store.NewRoundLog()
		cfg.Machine.Subscribe(rounds.Record)
	}

	name := textinput.New()
	name.Placeholder = "Player name"
	name.CharLimit = game.MaxNameLength
	name.Width = game.MaxNameLength + 2
	name.Prompt = "> "
	name.PromptStyle = render.HeadingStyle
	name.Focus()

	guess := textinput.New()
	guess.Placeholder = "The secret word is..."
	guess.CharLimit = 40
	guess.Width = 42
	guess.Prompt = "? "

	return &Model{
		machine:     cfg.Machine,
		timers:      cfg.Timers,
		rounds:      rounds,
		avatars:     append([]string(nil), cfg.Avatars...),
		categories:  cfg.Machine.Catalog().Categories(),
		sessionCode: cfg.SessionCode,
		logger:      logger.WithPrefix("tui"),
		nameInput:   name,
		guessInput:  guess,
	}
}

// Listen forwards machine events to send, typically (*tea.Program).Send.
// Operations run inside Update, so delivery must not block the caller.
func (m *Model) Listen(send func(tea.Msg)) (unsubscribe func()) {
	return m.machine.Subscribe(func(e events.Event) {
		go send(eventMsg(e))
	})
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Init starts the cursor blink and the timer refresh
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		cmds = append(cmds, tick())

	case eventMsg:
		m.logger.Debug("Event", "type", msg.Type, "phase", msg.Phase)

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		cmds = append(cmds, m.handleKey(msg))
	}

	m.sync()
	return m, tea.Batch(cmds...)
}

// handleKey routes a key press to the handler of the current screen
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.showHelp {
		m.showHelp = false
		return nil
	}

	s := m.machine.Snapshot()
	switch game.ScreenFor(s.Phase) {
	case game.ScreenSetup:
		return m.handleSetupKey(msg, s)
	case game.ScreenReveal:
		return m.handleRevealKey(msg)
	case game.ScreenCountdown, game.ScreenDebate:
		return m.handlePlayKey(msg)
	case game.ScreenVote:
		return m.handleVoteKey(msg, s)
	case game.ScreenExposed:
		return m.handleExposedKey(msg)
	case game.ScreenResult:
		return m.handleResultKey(msg)
	case game.ScreenScore:
		return m.handleScoreKey(msg, s)
	}
	return nil
}

// sync resets per-screen state whenever the machine moved on, whether by a
// key press or by a timer
func (m *Model) sync() {
	s := m.machine.Snapshot()
	key := string(game.ScreenFor(s.Phase))
	if p, ok := s.Phase.(models.RevealPhase); ok {
		key += ":" + p.CurrentPlayerID
	}
	if key == m.viewKey {
		return
	}
	m.viewKey = key
	m.revealed = false
	m.voteIdx = 0
	m.guessing = false
	m.guessInput.Reset()
	m.guessInput.Blur()
	if _, ok := s.Phase.(models.SetupPhase); ok {
		m.nameInput.Focus()
	}
}

// try runs a machine operation and keeps its error as the notice. Calls that
// arrive after the phase already moved on are ignored.
func (m *Model) try(op func() error) bool {
	err := op()
	switch {
	case err == nil:
		m.notice = ""
		return true
	case errors.Is(err, game.ErrWrongPhase):
		return false
	default:
		m.notice = err.Error()
		return false
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showHelp {
		return m.frame(m.rulesView())
	}

	s := m.machine.Snapshot()
	var body string
	switch game.ScreenFor(s.Phase) {
	case game.ScreenSetup:
		body = m.setupView(s)
	case game.ScreenReveal:
		body = m.revealView(s)
	case game.ScreenCountdown:
		body = m.countdownView(s)
	case game.ScreenDebate:
		body = m.debateView(s)
	case game.ScreenVote:
		body = m.voteView(s)
	case game.ScreenExposed:
		body = m.exposedView(s)
	case game.ScreenResult:
		body = m.resultView(s)
	case game.ScreenScore:
		body = m.scoreView(s)
	}
	return m.frame(body)
}

func (m *Model) frame(body string) string {
	title := "Impostor"
	if m.sessionCode != "" {
		title += " · " + m.sessionCode
	}
	parts := []string{render.TitleStyle.Render(title), "", body}
	if m.notice != "" {
		parts = append(parts, "", render.ErrorStyle.Render(m.notice))
	}
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.width > 0 {
		out = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, out)
	}
	return out
}

// remaining returns the time left on the running timer, if timers are on
func (m *Model) remaining() (time.Duration, bool) {
	if m.timers == nil || m.timers.Pending() == timer.KindNone {
		return 0, false
	}
	return m.timers.Remaining(), true
}

func (m *Model) playerName(s game.State, id string) string {
	if p, ok := s.Player(id); ok {
		return p.Name
	}
	return id
}
