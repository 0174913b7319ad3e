package game

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/aaronzipp/impostor/internal/models"
)

// NormalizeName trims a name and collapses whitespace runs to single spaces
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// EnsureUniqueNames normalizes player names and renames collisions. The first
// occurrence of a name is kept; the Nth occurrence becomes "name (N)". If that
// exact name is already taken, N is increased until it is free, so the output
// is always unique and running it again changes nothing. Ids are untouched.
func EnsureUniqueNames(players []models.Player) []models.Player {
	out := make([]models.Player, len(players))
	used := make(map[string]bool, len(players))
	occurrences := make(map[string]int, len(players))

	for i, p := range players {
		name := NormalizeName(p.Name)
		occurrences[name]++
		if used[name] {
			name = freeSuffixedName(name, max(occurrences[name], 2), used)
		}
		used[name] = true
		p.Name = name
		out[i] = p
	}
	return out
}

func freeSuffixedName(base string, n int, used map[string]bool) string {
	for ; ; n++ {
		suffix := " (" + strconv.Itoa(n) + ")"
		candidate := truncateName(base, MaxNameLength-utf8.RuneCountInString(suffix)) + suffix
		if !used[candidate] {
			return candidate
		}
	}
}

// truncateName cuts name to at most limit characters without leaving
// trailing whitespace behind
func truncateName(name string, limit int) string {
	if utf8.RuneCountInString(name) <= limit {
		return name
	}
	runes := []rune(name)
	return strings.TrimSpace(string(runes[:limit]))
}
