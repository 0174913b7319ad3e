package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/impostor/internal/models"
	"github.com/aaronzipp/impostor/internal/randutil"
)

func TestAssignMissingAvatarsPrefersUnused(t *testing.T) {
	pool := []string{"cat", "dog", "fox"}
	players := []models.Player{
		{ID: "a", Avatar: "dog"},
		{ID: "b"},
		{ID: "c"},
	}

	out := AssignMissingAvatars(players, pool, randutil.New(5))

	assert.Equal(t, "dog", out[0].Avatar)
	assert.ElementsMatch(t, []string{"cat", "fox"}, []string{out[1].Avatar, out[2].Avatar})
	assert.Empty(t, players[1].Avatar, "input must not be modified")
}

func TestAssignMissingAvatarsFallsBackToFullPool(t *testing.T) {
	pool := []string{"cat"}
	players := []models.Player{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	out := AssignMissingAvatars(players, pool, randutil.New(5))

	for _, p := range out {
		assert.Equal(t, "cat", p.Avatar)
	}
}

func TestAssignMissingAvatarsEmptyPool(t *testing.T) {
	players := []models.Player{{ID: "a"}}
	out := AssignMissingAvatars(players, nil, nil)
	assert.Equal(t, players, out)
}

func TestPickAvatar(t *testing.T) {
	got, err := PickAvatar([]string{"cat", "dog"}, map[string]bool{"cat": true}, fixedSource(0))
	assert.NoError(t, err)
	assert.Equal(t, "dog", got)

	_, err = PickAvatar(nil, nil, nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}
