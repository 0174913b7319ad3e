package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/render"
)

// handleRevealKey shows the current player's card, then hands the device on
func (m *Model) handleRevealKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() != "enter" && msg.String() != " " {
		return nil
	}
	if !m.revealed {
		m.revealed = true
		return nil
	}
	m.try(m.machine.RevealNext)
	return nil
}

// handlePlayKey skips the countdown or ends the discussion early
func (m *Model) handlePlayKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", " ":
		if p, ok := m.machine.Phase().(models.PlayPhase); ok && p.SubPhase == models.SubPhaseCountdown {
			m.try(m.machine.AdvanceToDebate)
			return nil
		}
		m.try(m.machine.StartVote)
	case "v":
		m.try(m.machine.StartVote)
	}
	return nil
}

// handleVoteKey selects suspects, confirms the vote or takes an impostor's guess
func (m *Model) handleVoteKey(msg tea.KeyMsg, s game.State) tea.Cmd {
	if m.guessing {
		switch msg.String() {
		case "esc":
			m.guessing = false
			m.guessInput.Reset()
			m.guessInput.Blur()
			return nil
		case "enter":
			guess := m.guessInput.Value()
			var correct bool
			ok := m.try(func() error {
				var err error
				correct, err = m.machine.ImpostorGuessWord(guess)
				return err
			})
			if ok && !correct {
				m.notice = fmt.Sprintf("%q is not the word", strings.TrimSpace(guess))
				m.guessInput.Reset()
			}
			return nil
		}
		var cmd tea.Cmd
		m.guessInput, cmd = m.guessInput.Update(msg)
		return cmd
	}

	switch msg.String() {
	case "up":
		m.voteIdx = max(m.voteIdx-1, 0)
	case "down":
		m.voteIdx = min(m.voteIdx+1, len(s.Players)-1)
	case " ":
		if m.voteIdx < len(s.Players) {
			id := s.Players[m.voteIdx].ID
			m.try(func() error { return m.machine.SelectVote(id) })
		}
	case "enter":
		m.try(m.machine.ConfirmVote)
	case "g":
		m.guessing = true
		m.notice = ""
		return m.guessInput.Focus()
	}
	return nil
}

func (m *Model) revealView(s game.State) string {
	p, _ := s.Phase.(models.RevealPhase)
	name := m.playerName(s, p.CurrentPlayerID)
	total := len(s.Players)
	done := total - len(p.RemainingPlayerIDs) - 1

	if !m.revealed {
		return lipgloss.JoinVertical(lipgloss.Left,
			render.HeadingStyle.Render(fmt.Sprintf("Round %d", s.RoundNumber)),
			"",
			"Pass the device to "+render.SecretStyle.Render(name),
			render.MutedStyle.Render("Only "+name+" may look. Press enter to see your role."),
			"",
			render.Progress(done, total, "players have seen their role"),
		)
	}

	card, err := m.machine.RoleCard(p.CurrentPlayerID)
	if err != nil {
		return render.ErrorStyle.Render(err.Error())
	}
	next := "Press enter to hide it and pass the device on."
	if len(p.RemainingPlayerIDs) == 0 {
		next = "Press enter to hide it and start the round."
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		render.RoleCard(name, card),
		"",
		render.MutedStyle.Render(next),
	)
}

func (m *Model) countdownView(s game.State) string {
	lines := []string{
		render.HeadingStyle.Render("Get ready!"),
		"",
		fmt.Sprintf("Round %d is about to start.", s.RoundNumber),
	}
	if d, ok := m.remaining(); ok {
		lines = append(lines, render.SecretStyle.Render(render.Countdown(d)))
	}
	lines = append(lines, "", render.MutedStyle.Render("enter: start the discussion now"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) debateView(s game.State) string {
	p, _ := s.Phase.(models.PlayPhase)
	lines := []string{
		render.HeadingStyle.Render("Discussion"),
		"",
		render.SecretStyle.Render(m.playerName(s, p.FirstPlayerID)) + " starts. Describe the word without saying it.",
	}
	if d, ok := m.remaining(); ok {
		lines = append(lines, "", "Time left: "+render.SecretStyle.Render(render.Countdown(d)))
	}
	lines = append(lines, "", render.MutedStyle.Render("enter: go to the vote"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) voteView(s game.State) string {
	p, _ := s.Phase.(models.VotePhase)
	want := s.Settings.ImpostorsCount

	lines := []string{
		render.HeadingStyle.Render(fmt.Sprintf("Vote: pick %d suspect(s)", want)),
		"",
	}
	for i, pl := range s.Players {
		box := "[ ]"
		if p.IsSelected(pl.ID) {
			box = "[x]"
		}
		line := box + " " + render.PlayerName(pl)
		if i == m.voteIdx {
			line = render.SelectedStyle.Render("▶ " + line)
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", render.Progress(len(p.SelectedVoteIDs), want, "selected"))

	if m.guessing {
		lines = append(lines, "", render.ImpostorStyle.Render("Impostor, guess the word:"), m.guessInput.View(),
			render.MutedStyle.Render("enter: guess · esc: back to the vote"))
	} else {
		lines = append(lines, "", render.MutedStyle.Render("space: select · enter: confirm · g: impostor guesses the word"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
