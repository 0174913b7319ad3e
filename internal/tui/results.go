package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/render"
)

// handleExposedKey skips the suspense delay
func (m *Model) handleExposedKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" || msg.String() == " " {
		m.try(m.machine.AdvanceToResult)
	}
	return nil
}

// handleResultKey moves on to the standings or straight to the next round
func (m *Model) handleResultKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", " ":
		m.try(m.machine.GoToScore)
	case "n":
		m.nextRound()
	}
	return nil
}

func (m *Model) exposedView(s game.State) string {
	p, _ := s.Phase.(models.ResultCountdownPhase)
	names := make([]string, len(p.ImpostorIDs))
	for i, id := range p.ImpostorIDs {
		names[i] = m.playerName(s, id)
	}

	lines := []string{
		render.HeadingStyle.Render("The votes are in..."),
		"",
		"The impostors were " + render.ImpostorStyle.Render(strings.Join(names, " and ")),
	}
	if d, ok := m.remaining(); ok {
		lines = append(lines, render.MutedStyle.Render("Result in "+render.Countdown(d)))
	}
	lines = append(lines, "", render.MutedStyle.Render("enter: show the result"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) resultView(s game.State) string {
	if s.LastRoundResult == nil {
		return ""
	}
	lines := []string{render.Result(*s.LastRoundResult, s.Players)}
	if s.GameOver {
		lines = append(lines, "", m.winnersLine(s))
	}
	lines = append(lines, "", render.MutedStyle.Render("enter: scores · n: next round"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) scoreView(s game.State) string {
	lines := []string{render.ScoreTable(s.Players, s.Settings.WinningScore, s.WinnerPlayerIDs)}
	if history := render.RoundHistory(m.rounds.All(), s.Players); history != "" {
		lines = append(lines, "", history)
	}
	if s.GameOver {
		lines = append(lines, "", m.winnersLine(s),
			render.MutedStyle.Render("r: rematch · s: back to setup · x: new game"))
	} else {
		lines = append(lines, "", render.MutedStyle.Render("n: next round · r: rematch · s: back to setup · x: new game"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) winnersLine(s game.State) string {
	names := make([]string, len(s.WinnerPlayerIDs))
	for i, id := range s.WinnerPlayerIDs {
		names[i] = m.playerName(s, id)
	}
	return render.SecretStyle.Render("🏆 " + strings.Join(names, ", ") + " won the game!")
}
