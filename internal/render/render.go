// Package render turns game state into styled terminal text
package render

import (
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/aaronzipp/impostor/internal/models"
)

// AvatarLabel returns a short display name for an avatar reference, e.g.
// "gandalf" for "/avatars/gandalf.webp"
func AvatarLabel(avatar string) string {
	if avatar == "" {
		return ""
	}
	base := path.Base(avatar)
	return strings.TrimSuffix(base, path.Ext(base))
}

// PlayerName renders a name with its avatar label
func PlayerName(p models.Player) string {
	if !p.HasAvatar() {
		return p.Name
	}
	return p.Name + " " + MutedStyle.Render("("+AvatarLabel(p.Avatar)+")")
}

// PlayerList renders the roster in the order players were added
func PlayerList(players []models.Player) string {
	var b strings.Builder
	b.WriteString(HeadingStyle.Render("Players (" + strconv.Itoa(len(players)) + ")"))
	for i, p := range players {
		b.WriteString("\n")
		fmt.Fprintf(&b, "%2d. %s", i+1, PlayerName(p))
	}
	return b.String()
}

// SortedByScore returns players by score descending, then name ascending
func SortedByScore(players []models.Player) []models.Player {
	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b models.Player) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return sorted
}

// ScoreTable renders the standings. Winners are marked with a trophy.
func ScoreTable(players []models.Player, winningScore int, winnerIDs []string) string {
	if len(players) == 0 {
		return ""
	}

	rows := make([]string, 0, len(players)+1)
	rows = append(rows, HeadingStyle.Render(fmt.Sprintf("Scores (first to %d)", winningScore)))
	for _, p := range SortedByScore(players) {
		marker := "  "
		if slices.Contains(winnerIDs, p.ID) {
			marker = "🏆"
		}
		rows = append(rows, fmt.Sprintf("%s %-24s %s", marker, p.Name, badgeStyle.Render(strconv.Itoa(p.Score))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// RoleCard renders what one player privately sees during the reveal
func RoleCard(playerName string, card models.RoleCard) string {
	var lines []string
	lines = append(lines, HeadingStyle.Render(playerName))
	if !card.IsImpostor {
		lines = append(lines, "", "The secret word is", SecretStyle.Render(card.SecretWord))
		return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
	}

	lines = append(lines, "", ImpostorStyle.Render("You are the impostor"))
	switch {
	case card.HintWord != "":
		lines = append(lines, "Your hint: "+SecretStyle.Render(card.HintWord))
	case card.HintCategory != "":
		lines = append(lines, "Category: "+SecretStyle.Render(card.HintCategory))
	default:
		lines = append(lines, MutedStyle.Render("No hint this round"))
	}
	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// Category renders a category with its emoji
func Category(c models.Category) string {
	if c.Emoji == "" {
		return c.Name
	}
	return c.Emoji + " " + c.Name
}

// Countdown renders remaining time as m:ss
func Countdown(d time.Duration) string {
	d = max(d, 0).Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Progress renders "done/total label"
func Progress(done, total int, label string) string {
	return MutedStyle.Render(strconv.Itoa(done) + "/" + strconv.Itoa(total) + " " + label)
}

// Winner renders the headline for a finished round
func Winner(w models.Winner) string {
	switch w {
	case models.WinnerCrew:
		return CrewStyle.Render("The crew wins!")
	case models.WinnerImpostor:
		return ImpostorStyle.Render("The impostors win!")
	default:
		return string(w)
	}
}

// Reason explains how a round ended
func Reason(r models.RoundEndReason) string {
	switch r {
	case models.ReasonVotedAllImpostors:
		return "Every impostor was caught."
	case models.ReasonWrongVote:
		return "The vote missed."
	case models.ReasonGuessedWord:
		return "An impostor guessed the word."
	default:
		return string(r)
	}
}

// Result renders the outcome of a round
func Result(result models.RoundResult, players []models.Player) string {
	lines := []string{
		Winner(result.Winner),
		Reason(result.Reason),
		"",
		"Secret word: " + SecretStyle.Render(result.SecretWord),
		"Impostors: " + ImpostorStyle.Render(strings.Join(namesOf(players, result.ImpostorIDs), ", ")),
	}
	if len(result.VotedPlayerIDs) > 0 {
		lines = append(lines, "Voted: "+strings.Join(namesOf(players, result.VotedPlayerIDs), ", "))
	}
	return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RoundHistory renders one line per finished round
func RoundHistory(rounds []models.RoundResult, players []models.Player) string {
	if len(rounds) == 0 {
		return ""
	}
	rows := []string{HeadingStyle.Render("Rounds")}
	for _, r := range rounds {
		side := CrewStyle.Render("crew")
		if r.Winner == models.WinnerImpostor {
			side = ImpostorStyle.Render("impostor")
		}
		rows = append(rows, fmt.Sprintf("#%d %s  %s  (%s)", r.Round, side, r.SecretWord,
			strings.Join(namesOf(players, r.ImpostorIDs), ", ")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// namesOf maps ids to player names, keeping unknown ids as they are
func namesOf(players []models.Player, ids []string) []string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = id
		if j := slices.IndexFunc(players, func(p models.Player) bool { return p.ID == id }); j >= 0 {
			names[i] = players[j].Name
		}
	}
	return names
}
