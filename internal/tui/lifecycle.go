package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aaronzipp/impostor/internal/game"
)

// handleScoreKey starts the next round, a rematch or a whole new game.
// Once someone reached the winning score only a rematch or a reset is offered.
func (m *Model) handleScoreKey(msg tea.KeyMsg, s game.State) tea.Cmd {
	switch msg.String() {
	case "n", "enter":
		if !s.GameOver {
			m.nextRound()
		}
	case "r":
		m.rematch()
	case "s":
		m.backToSetup()
	case "x":
		m.newGame()
	}
	return nil
}

func (m *Model) nextRound() {
	m.try(m.machine.NextRound)
}

func (m *Model) rematch() {
	if m.try(m.machine.Rematch) {
		m.logger.Info("Rematch started")
	}
}

// backToSetup keeps the roster and scores so settings can be changed
func (m *Model) backToSetup() {
	m.machine.ResetRound()
	m.notice = ""
	m.switchTab(tabPlayers)
}

func (m *Model) newGame() {
	m.machine.NewGame()
	m.notice = ""
	m.playerIdx = 0
	m.switchTab(tabPlayers)
}
