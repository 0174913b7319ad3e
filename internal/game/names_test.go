package game

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/aaronzipp/impostor/internal/models"
)

func named(names ...string) []models.Player {
	players := make([]models.Player, len(names))
	for i, n := range names {
		players[i] = models.Player{ID: n + "-id", Name: n}
	}
	return players
}

func names(players []models.Player) []string {
	out := make([]string, len(players))
	for i, p := range players {
		out[i] = p.Name
	}
	return out
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "Ana Maria", NormalizeName("  Ana \t  Maria "))
	assert.Equal(t, "", NormalizeName("   "))
}

func TestEnsureUniqueNames(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"no collisions", []string{"Ana", "Bob"}, []string{"Ana", "Bob"}},
		{"second and third occurrence", []string{"Ana", "Ana", "Bob", "Ana"}, []string{"Ana", "Ana (2)", "Bob", "Ana (3)"}},
		{"whitespace normalized before compare", []string{"Ana  Maria", " Ana Maria"}, []string{"Ana Maria", "Ana Maria (2)"}},
		{"case sensitive", []string{"ana", "Ana"}, []string{"ana", "Ana"}},
		{"suffix already taken", []string{"Bob", "Bob (2)", "Bob"}, []string{"Bob", "Bob (2)", "Bob (3)"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(EnsureUniqueNames(named(tt.in...))))
		})
	}
}

func TestEnsureUniqueNamesIdempotent(t *testing.T) {
	inputs := [][]string{
		{"Bob", "Bob", "Bob (2)"},
		{"x", "x", "x", "x (2)", "x (3)"},
		{strings.Repeat("n", 24), strings.Repeat("n", 24)},
	}
	for _, in := range inputs {
		once := EnsureUniqueNames(named(in...))
		twice := EnsureUniqueNames(once)
		assert.Equal(t, once, twice)

		seen := map[string]bool{}
		for _, p := range once {
			assert.False(t, seen[p.Name], "duplicate %q", p.Name)
			seen[p.Name] = true
			assert.LessOrEqual(t, utf8.RuneCountInString(p.Name), MaxNameLength)
		}
	}
}

func TestEnsureUniqueNamesKeepsInput(t *testing.T) {
	in := named("Ana", "Ana")
	EnsureUniqueNames(in)
	assert.Equal(t, "Ana", in[1].Name)
}
