package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/randutil"
)

func scoredPlayers(n int) []models.Player {
	players := make([]models.Player, n)
	for i := range players {
		players[i] = models.Player{ID: fmt.Sprintf("p%d", i), Name: fmt.Sprintf("P%d", i), Score: i}
	}
	return players
}

func TestApplyRoundScoreExclusivity(t *testing.T) {
	rng := randutil.New(11)
	for n := 3; n <= 8; n++ {
		players := scoredPlayers(n)
		ids := make([]string, n)
		for i, p := range players {
			ids[i] = p.ID
		}
		for k := 1; k <= 2; k++ {
			impostors := PickUnique(ids, k, rng)
			isImpostor := map[string]bool{}
			for _, id := range impostors {
				isImpostor[id] = true
			}

			for _, winner := range []models.Winner{models.WinnerCrew, models.WinnerImpostor} {
				out, err := ApplyRoundScore(players, winner, impostors)
				require.NoError(t, err)
				require.Len(t, out, n)

				delta := 0
				for i, p := range out {
					d := p.Score - players[i].Score
					delta += d
					changed := d != 0
					if winner == models.WinnerCrew {
						assert.Equal(t, !isImpostor[p.ID], changed)
					} else {
						assert.Equal(t, isImpostor[p.ID], changed)
					}
				}

				if winner == models.WinnerCrew {
					assert.Equal(t, n-k, delta)
				} else {
					assert.Equal(t, 2*k, delta)
				}
			}
		}
		assert.Equal(t, scoredPlayers(n), players, "input must not be modified")
	}
}

func TestApplyRoundScoreRejectsUnknownWinner(t *testing.T) {
	_, err := ApplyRoundScore(scoredPlayers(3), "nobody", nil)
	assert.ErrorIs(t, err, ErrInvalidWinner)
}

func TestStandings(t *testing.T) {
	players := []models.Player{{ID: "a", Score: 5}, {ID: "b", Score: 4}, {ID: "c", Score: 6}}

	over, winners := Standings(players, 5)
	assert.True(t, over)
	assert.Equal(t, []string{"a", "c"}, winners)

	over, winners = Standings(players, 7)
	assert.False(t, over)
	assert.Empty(t, winners)
}
