package store

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/catalog"
	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/game"
	"github.com/aaronzipp/impostor/internal/models"
)

func TestRoundLog(t *testing.T) {
	s := NewRoundLog()
	s.Append(models.RoundResult{Round: 1, Winner: models.WinnerCrew, ImpostorIDs: []string{"a"}})
	s.Append(models.RoundResult{Round: 2, Winner: models.WinnerImpostor})
	s.Append(models.RoundResult{Round: 3, Winner: models.WinnerCrew})

	assert.Equal(t, 3, s.Len())
	r, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, models.WinnerImpostor, r.Winner)

	_, ok = s.Get(9)
	assert.False(t, ok)

	assert.Equal(t, map[models.Winner]int{models.WinnerCrew: 2, models.WinnerImpostor: 1}, s.Wins())

	all := s.All()
	all[0].ImpostorIDs[0] = "changed"
	r, _ = s.Get(1)
	assert.Equal(t, []string{"a"}, r.ImpostorIDs)

	s.Reset()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.All())
}

func TestRoundLogRecordsMachineEvents(t *testing.T) {
	m := game.NewMachine(catalog.Default(), game.WithSeed(3),
		game.WithLogger(log.NewWithOptions(io.Discard, log.Options{Level: log.ErrorLevel})))
	s := NewRoundLog()
	m.Subscribe(s.Record)

	require.NoError(t, m.SetPlayers([]models.PlayerInput{{Name: "Ana"}, {Name: "Bob"}, {Name: "Cy"}}))
	for round := 1; round <= 2; round++ {
		if round == 1 {
			require.NoError(t, m.CreateGame())
		} else {
			require.NoError(t, m.NextRound())
		}
		for m.Phase().Kind() == models.PhaseReveal {
			require.NoError(t, m.RevealNext())
		}
		require.NoError(t, m.StartVote())
		ok, err := m.ImpostorGuessWord(m.Snapshot().SecretWord)
		require.NoError(t, err)
		require.True(t, ok)
	}

	require.Equal(t, 2, s.Len())
	second, ok := s.Get(2)
	require.True(t, ok)
	assert.Equal(t, models.ReasonGuessedWord, second.Reason)
	assert.NotEmpty(t, second.CategoryID)

	require.NoError(t, m.Rematch())
	assert.Zero(t, s.Len())
}

func TestRecordIgnoresOtherEvents(t *testing.T) {
	s := NewRoundLog()
	s.Append(models.RoundResult{Round: 1})
	s.Record(events.Event{Type: events.TypeSettingsChanged, Phase: models.PhaseSetup})
	s.Record(events.Event{Type: events.TypePhaseChanged, Phase: models.PhaseVote})
	s.Record(events.Event{Type: events.TypeRoundEnded})
	assert.Equal(t, 1, s.Len())
}
