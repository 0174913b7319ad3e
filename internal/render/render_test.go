package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/impostor/internal/models"
)

var players = []models.Player{
	{ID: "a", Name: "bob", Score: 3},
	{ID: "b", Name: "Ana", Score: 3},
	{ID: "c", Name: "Cy", Score: 5, Avatar: "/avatars/gandalf.webp"},
}

func TestAvatarLabel(t *testing.T) {
	assert.Equal(t, "gandalf", AvatarLabel("/avatars/gandalf.webp"))
	assert.Equal(t, "🐱", AvatarLabel("🐱"))
	assert.Equal(t, "", AvatarLabel(""))
}

func TestSortedByScore(t *testing.T) {
	sorted := SortedByScore(players)
	assert.Equal(t, []string{"c", "b", "a"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	assert.Equal(t, "a", players[0].ID, "input must not be reordered")
}

func TestScoreTable(t *testing.T) {
	out := ScoreTable(players, 5, []string{"c"})
	assert.Contains(t, out, "first to 5")
	assert.Contains(t, out, "🏆")
	assert.Contains(t, out, "Cy")
	assert.Empty(t, ScoreTable(nil, 5, nil))
}

func TestPlayerList(t *testing.T) {
	out := PlayerList(players)
	assert.Contains(t, out, "Players (3)")
	assert.Contains(t, out, "gandalf")
}

func TestRoleCard(t *testing.T) {
	crew := RoleCard("Ana", models.RoleCard{PlayerID: "b", SecretWord: "pizza"})
	assert.Contains(t, crew, "pizza")
	assert.NotContains(t, crew, "impostor")

	hint := RoleCard("Bob", models.RoleCard{PlayerID: "a", IsImpostor: true, HintWord: "empanada"})
	assert.Contains(t, hint, "You are the impostor")
	assert.Contains(t, hint, "empanada")

	category := RoleCard("Bob", models.RoleCard{PlayerID: "a", IsImpostor: true, HintCategory: "Food"})
	assert.Contains(t, category, "Category")

	none := RoleCard("Bob", models.RoleCard{PlayerID: "a", IsImpostor: true})
	assert.Contains(t, none, "No hint")
}

func TestCountdown(t *testing.T) {
	assert.Equal(t, "3:00", Countdown(3*time.Minute))
	assert.Equal(t, "0:05", Countdown(4600*time.Millisecond))
	assert.Equal(t, "0:00", Countdown(-time.Second))
}

func TestResultAndHistory(t *testing.T) {
	r := models.RoundResult{
		Round:          2,
		Winner:         models.WinnerCrew,
		Reason:         models.ReasonVotedAllImpostors,
		ImpostorIDs:    []string{"a"},
		SecretWord:     "pizza",
		VotedPlayerIDs: []string{"a"},
	}
	out := Result(r, players)
	assert.Contains(t, out, "crew wins")
	assert.Contains(t, out, "pizza")
	assert.Contains(t, out, "bob")

	history := RoundHistory([]models.RoundResult{r}, players)
	assert.Contains(t, history, "#2")
	assert.Empty(t, RoundHistory(nil, players))
}
