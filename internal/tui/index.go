package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/render"
)

// rulesView explains the game; any key closes it
func (m *Model) rulesView() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		render.HeadingStyle.Render("How to play"),
		"",
		fmt.Sprintf("1. Add at least %d players and pick the categories.", game.MinPlayers),
		"2. Pass the device around. Everyone sees the secret word,",
		"   except the impostors, who get a hint at most.",
		"3. Take turns describing the word without saying it.",
		"4. Vote for the impostors. Catch them all and the crew scores",
		fmt.Sprintf("   %d point each; otherwise every impostor scores %d.", game.CrewWinPoints, game.ImpostorWinPoints),
		"5. During the vote an impostor may guess the word and win on the spot.",
		"6. The first to the winning score takes the game.",
		"",
		render.MutedStyle.Render("Press any key to go back."),
	)
}
