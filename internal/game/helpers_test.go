package game

import (
	"fmt"
	"io"
	"slices"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/models"
)

type fakeCatalog []models.Category

func (c fakeCatalog) Category(id string) (models.Category, bool) {
	i := slices.IndexFunc(c, func(cat models.Category) bool { return cat.ID == id })
	if i < 0 {
		return models.Category{}, false
	}
	return c[i], true
}

func (c fakeCatalog) Categories() []models.Category {
	return slices.Clone(c)
}

var testCatalog = fakeCatalog{
	{ID: "food", Name: "Food", Words: []string{"pizza"}, Pairs: []models.WordPair{{Crew: "pizza", Impostor: "pasta"}}},
	{ID: "movies", Name: "Movies", Words: []string{"Titanic", "Alien"}},
	{ID: "pairs_only", Name: "Pairs only", Pairs: []models.WordPair{{Crew: "sun", Impostor: "moon"}}},
}

// seqIDs hands out p1, p2, ...
type seqIDs struct{ n int }

func (g *seqIDs) NewID() string {
	g.n++
	return fmt.Sprintf("p%d", g.n)
}

func quietLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})
}

func newTestMachine(t *testing.T, opts ...Option) *Machine {
	t.Helper()
	base := []Option{
		WithSeed(42),
		WithLogger(quietLogger()),
		WithIDGenerator(&seqIDs{}),
		WithAvatars([]string{"cat", "dog", "fox", "owl"}),
	}
	return NewMachine(testCatalog, append(base, opts...)...)
}

func playerInputs(names ...string) []models.PlayerInput {
	in := make([]models.PlayerInput, len(names))
	for i, name := range names {
		in[i] = models.PlayerInput{Name: name}
	}
	return in
}

// startedMachine returns a machine in the reveal phase of round one
func startedMachine(t *testing.T, patch models.SettingsPatch, names ...string) *Machine {
	t.Helper()
	m := newTestMachine(t)
	require.NoError(t, m.SetPlayers(playerInputs(names...)))
	require.NoError(t, m.SetSettings(patch))
	require.NoError(t, m.CreateGame())
	return m
}

// toVote drives a machine from reveal to the vote phase
func toVote(t *testing.T, m *Machine) {
	t.Helper()
	for {
		if _, ok := m.Phase().(models.RevealPhase); !ok {
			break
		}
		require.NoError(t, m.RevealNext())
	}
	require.NoError(t, m.AdvanceToDebate())
	require.NoError(t, m.StartVote())
}

func crewIDs(s State) []string {
	var ids []string
	for _, p := range s.Players {
		if !s.IsImpostor(p.ID) {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

func ptr[T any](v T) *T { return &v }
