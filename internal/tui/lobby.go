package tui

import (
	"fmt"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/render"
)

type setupTab int

const (
	tabPlayers setupTab = iota
	tabSettings
	tabCategories
	tabCount
)

var tabNames = [tabCount]string{"Players", "Settings", "Categories"}

type settingField int

const (
	fieldImpostors settingField = iota
	fieldRoundMinutes
	fieldHintMode
	fieldWinningScore
	fieldCount
)

var hintModes = []models.HintMode{models.HintNone, models.HintEasySimilar, models.HintHardCategory}

var hintLabels = map[models.HintMode]string{
	models.HintNone:         "no hint",
	models.HintEasySimilar:  "similar word",
	models.HintHardCategory: "category only",
}

// handleSetupKey edits the roster, the settings and the categories
func (m *Model) handleSetupKey(msg tea.KeyMsg, s game.State) tea.Cmd {
	switch msg.String() {
	case "tab":
		m.switchTab((m.tab + 1) % tabCount)
		return nil
	case "shift+tab":
		m.switchTab((m.tab + tabCount - 1) % tabCount)
		return nil
	}

	switch m.tab {
	case tabPlayers:
		return m.handlePlayersKey(msg, s)
	case tabSettings:
		m.handleSettingsKey(msg, s)
	case tabCategories:
		m.handleCategoriesKey(msg)
	}
	return nil
}

func (m *Model) switchTab(tab setupTab) {
	m.tab = tab
	if tab == tabPlayers {
		m.nameInput.Focus()
	} else {
		m.nameInput.Blur()
	}
}

func (m *Model) handlePlayersKey(msg tea.KeyMsg, s game.State) tea.Cmd {
	switch msg.String() {
	case "enter":
		name := strings.TrimSpace(m.nameInput.Value())
		if name == "" {
			m.startGame()
			return nil
		}
		inputs := append(playerInputs(s.Players), models.PlayerInput{Name: name})
		if m.try(func() error { return m.machine.SetPlayers(inputs) }) {
			m.nameInput.Reset()
			m.playerIdx = len(inputs) - 1
		}
		return nil
	case "up":
		m.playerIdx = max(m.playerIdx-1, 0)
		return nil
	case "down":
		m.playerIdx = min(m.playerIdx+1, max(len(s.Players)-1, 0))
		return nil
	case "ctrl+x":
		if m.playerIdx < len(s.Players) {
			inputs := slices.Delete(playerInputs(s.Players), m.playerIdx, m.playerIdx+1)
			if m.try(func() error { return m.machine.SetPlayers(inputs) }) {
				m.playerIdx = min(m.playerIdx, max(len(inputs)-1, 0))
			}
		}
		return nil
	case "ctrl+r":
		if m.playerIdx < len(s.Players) && len(m.avatars) > 0 {
			p := s.Players[m.playerIdx]
			next := m.avatars[(slices.Index(m.avatars, p.Avatar)+1)%len(m.avatars)]
			m.try(func() error { return m.machine.SetPlayerAvatar(p.ID, next) })
		}
		return nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return cmd
}

func (m *Model) handleSettingsKey(msg tea.KeyMsg, s game.State) {
	switch msg.String() {
	case "up":
		m.settingIdx = max(m.settingIdx-1, 0)
	case "down":
		m.settingIdx = min(m.settingIdx+1, fieldCount-1)
	case "left", "-":
		m.adjustSetting(s.Settings, -1)
	case "right", "+":
		m.adjustSetting(s.Settings, 1)
	case "enter":
		m.startGame()
	}
}

func (m *Model) adjustSetting(s models.Settings, delta int) {
	switch m.settingIdx {
	case fieldImpostors:
		n := s.ImpostorsCount + delta
		m.try(func() error { return m.machine.SetSettings(models.SettingsPatch{ImpostorsCount: &n}) })
	case fieldRoundMinutes:
		m.try(func() error { return m.machine.SetRoundMinutes(s.RoundSeconds/60 + delta) })
	case fieldHintMode:
		i := slices.Index(hintModes, s.HintMode)
		mode := hintModes[(i+delta+len(hintModes))%len(hintModes)]
		m.try(func() error { return m.machine.SetSettings(models.SettingsPatch{HintMode: &mode}) })
	case fieldWinningScore:
		n := s.WinningScore + delta
		m.try(func() error { return m.machine.SetSettings(models.SettingsPatch{WinningScore: &n}) })
	}
}

func (m *Model) handleCategoriesKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		m.categoryIdx = max(m.categoryIdx-1, 0)
	case "down":
		m.categoryIdx = min(m.categoryIdx+1, len(m.categories)-1)
	case " ":
		id := m.categories[m.categoryIdx].ID
		m.try(func() error { return m.machine.ToggleCategory(id) })
	case "a":
		m.try(m.machine.SelectAllCategories)
	case "c":
		m.try(m.machine.ClearCategories)
	case "?":
		m.showHelp = true
	case "enter":
		m.startGame()
	}
}

func (m *Model) startGame() {
	if m.try(m.machine.CreateGame) {
		m.nameInput.Blur()
	}
}

// playerInputs turns the roster back into inputs, keeping ids, avatars and scores
func playerInputs(players []models.Player) []models.PlayerInput {
	inputs := make([]models.PlayerInput, len(players))
	for i, p := range players {
		score := p.Score
		inputs[i] = models.PlayerInput{ID: p.ID, Name: p.Name, Avatar: p.Avatar, Score: &score}
	}
	return inputs
}

func (m *Model) setupView(s game.State) string {
	tabs := make([]string, 0, tabCount)
	for i, name := range tabNames {
		if setupTab(i) == m.tab {
			tabs = append(tabs, render.SelectedStyle.Render("["+name+"]"))
		} else {
			tabs = append(tabs, render.MutedStyle.Render(" "+name+" "))
		}
	}

	var body string
	switch m.tab {
	case tabPlayers:
		body = m.playersView(s)
	case tabSettings:
		body = m.settingsView(s.Settings)
	case tabCategories:
		body = m.categoriesView()
	}

	ready := fmt.Sprintf("%d/%d players", len(s.Players), game.MinPlayers)
	if len(s.Players) >= game.MinPlayers {
		ready = render.CrewStyle.Render("Ready!") + " Enter on an empty name starts the round."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		strings.Join(tabs, " "),
		"",
		body,
		"",
		render.MutedStyle.Render(ready),
		render.MutedStyle.Render("tab: next section · ctrl+c: quit"),
	)
}

func (m *Model) playersView(s game.State) string {
	lines := []string{render.HeadingStyle.Render(fmt.Sprintf("Players (%d)", len(s.Players)))}
	for i, p := range s.Players {
		cursor := "  "
		if i == m.playerIdx {
			cursor = "▶ "
		}
		lines = append(lines, cursor+render.PlayerName(p))
	}
	lines = append(lines, "", m.nameInput.View(),
		render.MutedStyle.Render("enter: add · ↑/↓: select · ctrl+x: remove · ctrl+r: change avatar"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) settingsView(s models.Settings) string {
	values := [fieldCount]string{
		fmt.Sprintf("Impostors      %d", s.ImpostorsCount),
		fmt.Sprintf("Round length   %d min", s.RoundSeconds/60),
		fmt.Sprintf("Impostor hint  %s", hintLabels[s.HintMode]),
		fmt.Sprintf("Winning score  %d", s.WinningScore),
	}
	lines := []string{render.HeadingStyle.Render("Settings")}
	for i, v := range values {
		if settingField(i) == m.settingIdx {
			lines = append(lines, render.SelectedStyle.Render("▶ "+v))
		} else {
			lines = append(lines, "  "+v)
		}
	}
	lines = append(lines, "", render.MutedStyle.Render("↑/↓: select · ←/→: change"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) categoriesView() string {
	lines := []string{render.HeadingStyle.Render("Categories")}
	for i, c := range m.categories {
		box := "[ ]"
		if m.machine.IsCategorySelected(c.ID) {
			box = "[x]"
		}
		line := box + " " + render.Category(c)
		if i == m.categoryIdx {
			line = render.SelectedStyle.Render("▶ " + line)
			if c.Description != "" {
				line += "  " + render.MutedStyle.Render(c.Description)
			}
		} else {
			line = "  " + line
		}
		lines = append(lines, line)
	}
	lines = append(lines, "", render.MutedStyle.Render("space: toggle · a: all · c: reset · ?: rules"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
