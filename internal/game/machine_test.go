package game

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/events"
	"github.com/aaronzipp/impostor/internal/models"
)

func TestNewMachineStartsInSetup(t *testing.T) {
	m := newTestMachine(t)
	s := m.Snapshot()

	assert.Equal(t, models.SetupPhase{}, s.Phase)
	assert.Empty(t, s.Players)
	assert.Equal(t, DefaultSettings(testCatalog), s.Settings)
	assert.Equal(t, 1, s.RoundNumber)
	assert.Nil(t, s.LastRoundResult)
}

func TestNewMachineRequiresCategories(t *testing.T) {
	assert.Panics(t, func() { NewMachine(nil) })
	assert.Panics(t, func() { NewMachine(fakeCatalog{}) })
}

func TestSetPlayers(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.SetPlayers([]models.PlayerInput{
		{Name: " Ana "},
		{Name: "Ana"},
		{ID: "fixed", Name: "Bob", Avatar: "owl"},
	}))

	players := m.Players()
	require.Len(t, players, 3)
	assert.Equal(t, models.Player{ID: "p1", Name: "Ana"}, players[0])
	assert.Equal(t, models.Player{ID: "p2", Name: "Ana (2)"}, players[1])
	assert.Equal(t, models.Player{ID: "fixed", Name: "Bob", Avatar: "owl"}, players[2])
}

func TestSetPlayersRejectsInvalidEntries(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.SetPlayers(playerInputs("Ana", "Bob", "Cy")))
	before := m.Snapshot()

	err := m.SetPlayers([]models.PlayerInput{{Name: "Ana"}, {Name: strings.Repeat("x", 30)}})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "player 2")

	err = m.SetPlayers([]models.PlayerInput{{ID: "a", Name: "Ana"}, {ID: "a", Name: "Bob"}})
	require.ErrorIs(t, err, ErrInvalid)

	assert.Equal(t, before, m.Snapshot())
}

func TestSetPlayerAvatar(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.SetPlayers(playerInputs("Ana", "Bob", "Cy")))

	require.NoError(t, m.SetPlayerAvatar("p2", " fox "))
	assert.Equal(t, "fox", m.Players()[1].Avatar)

	require.NoError(t, m.SetPlayerAvatar("p2", ""))
	assert.False(t, m.Players()[1].HasAvatar())

	assert.ErrorIs(t, m.SetPlayerAvatar("nobody", "fox"), ErrUnknownPlayer)
	assert.ErrorIs(t, m.SetPlayerAvatar("p1", strings.Repeat("x", 200)), ErrInvalid)
}

func TestSetSettings(t *testing.T) {
	m := newTestMachine(t)
	mode := models.HintEasySimilar
	require.NoError(t, m.SetSettings(models.SettingsPatch{
		RoundSeconds:   ptr(100),
		ImpostorsCount: ptr(2),
		HintMode:       &mode,
		WinningScore:   ptr(500),
	}))

	s := m.Settings()
	assert.Equal(t, 120, s.RoundSeconds)
	assert.Equal(t, 2, s.ImpostorsCount)
	assert.Equal(t, models.HintEasySimilar, s.HintMode)
	assert.Equal(t, MaxWinningScore, s.WinningScore)
}

func TestSetSettingsRejectsWholeUpdate(t *testing.T) {
	m := newTestMachine(t)
	before := m.Settings()

	err := m.SetSettings(models.SettingsPatch{RoundSeconds: ptr(240), TurnSeconds: ptr(500)})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, before, m.Settings())

	err = m.SetSettings(models.SettingsPatch{CategoryIDs: []string{"food", "missing"}})
	require.ErrorIs(t, err, ErrInvalid)
	assert.Equal(t, before, m.Settings())
}

func TestSetRoundMinutes(t *testing.T) {
	m := newTestMachine(t)

	require.NoError(t, m.SetRoundMinutes(4))
	assert.Equal(t, 240, m.Settings().RoundSeconds)

	require.NoError(t, m.SetRoundMinutes(0))
	assert.Equal(t, 60, m.Settings().RoundSeconds)

	require.NoError(t, m.SetRoundMinutes(99))
	assert.Equal(t, 360, m.Settings().RoundSeconds)
}

func TestToggleCategory(t *testing.T) {
	m := newTestMachine(t)

	require.NoError(t, m.ToggleCategory("movies"))
	assert.Equal(t, []string{"food", "movies"}, m.Settings().CategoryIDs)
	assert.True(t, m.IsCategorySelected("movies"))

	require.NoError(t, m.ToggleCategory("food"))
	assert.Equal(t, []string{"movies"}, m.Settings().CategoryIDs)

	assert.ErrorIs(t, m.ToggleCategory("movies"), ErrLastCategory)
	assert.Equal(t, []string{"movies"}, m.Settings().CategoryIDs)

	assert.ErrorIs(t, m.ToggleCategory("unknown"), ErrUnknownCategory)
}

func TestToggleCategoryNeverEmpties(t *testing.T) {
	m := newTestMachine(t)
	ids := []string{"food", "movies", "pairs_only", "food", "food", "movies", "pairs_only", "pairs_only"}
	for _, id := range ids {
		_ = m.ToggleCategory(id)
		assert.NotEmpty(t, m.Settings().CategoryIDs)
	}
}

func TestSelectAllAndClearCategories(t *testing.T) {
	m := newTestMachine(t)

	require.NoError(t, m.SelectAllCategories())
	assert.Equal(t, []string{"food", "movies", "pairs_only"}, m.Settings().CategoryIDs)

	require.NoError(t, m.ClearCategories())
	assert.Equal(t, []string{"food"}, m.Settings().CategoryIDs)

	require.NoError(t, m.ClearCategories())
	assert.Len(t, m.Settings().CategoryIDs, 1)
}

func TestSnapshotIsDetached(t *testing.T) {
	m := startedMachine(t, models.SettingsPatch{}, "Ana", "Bob", "Cy")
	s := m.Snapshot()

	s.Players[0].Score = 99
	s.Settings.CategoryIDs[0] = "changed"
	s.ImpostorIDs[0] = "changed"
	s.Phase.(models.RevealPhase).RemainingPlayerIDs[0] = "changed"

	fresh := m.Snapshot()
	assert.Equal(t, 0, fresh.Players[0].Score)
	assert.Equal(t, "food", fresh.Settings.CategoryIDs[0])
	assert.NotEqual(t, "changed", fresh.ImpostorIDs[0])
	assert.NotEqual(t, "changed", fresh.Phase.(models.RevealPhase).RemainingPlayerIDs[0])
}

func TestRoleCard(t *testing.T) {
	mode := models.HintEasySimilar
	m := startedMachine(t, models.SettingsPatch{HintMode: &mode}, "Ana", "Bob", "Cy")
	s := m.Snapshot()

	impostor := s.ImpostorIDs[0]
	card, err := m.RoleCard(impostor)
	require.NoError(t, err)
	assert.True(t, card.IsImpostor)
	assert.Empty(t, card.SecretWord)
	assert.Equal(t, "pasta", card.HintWord)

	crew := crewIDs(s)[0]
	card, err = m.RoleCard(crew)
	require.NoError(t, err)
	assert.False(t, card.IsImpostor)
	assert.Equal(t, "pizza", card.SecretWord)

	_, err = m.RoleCard("nobody")
	assert.ErrorIs(t, err, ErrUnknownPlayer)
}

func TestRoleCardBeforeFirstRound(t *testing.T) {
	m := newTestMachine(t)
	require.NoError(t, m.SetPlayers(playerInputs("Ana", "Bob", "Cy")))
	_, err := m.RoleCard("p1")
	assert.ErrorIs(t, err, ErrWrongPhase)
}

func TestEventsPublishedAfterUnlock(t *testing.T) {
	m := newTestMachine(t)
	var got []events.Type
	m.Subscribe(func(e events.Event) {
		// reading the machine from a listener must not deadlock
		_ = m.Snapshot()
		got = append(got, e.Type)
	})

	require.NoError(t, m.SetPlayers(playerInputs("Ana", "Bob", "Cy")))
	require.NoError(t, m.ToggleCategory("movies"))
	require.NoError(t, m.CreateGame())
	assert.Error(t, m.StartVote())

	assert.Equal(t, []events.Type{
		events.TypePlayersChanged,
		events.TypeSettingsChanged,
		events.TypeRoundStarted,
		events.TypePhaseChanged,
	}, got)
}
