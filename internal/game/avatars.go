package game

import (
	"github.com/aaronzipp/impostor/internal/models"
)

// PickAvatar picks a random avatar from pool, preferring ones not in used.
// When every avatar is taken it picks from the whole pool.
func PickAvatar(pool []string, used map[string]bool, rng RandSource) (string, error) {
	unused := make([]string, 0, len(pool))
	for _, avatar := range pool {
		if !used[avatar] {
			unused = append(unused, avatar)
		}
	}
	if len(unused) > 0 {
		return PickOne(unused, rng)
	}
	return PickOne(pool, rng)
}

// AssignMissingAvatars returns a copy of players where everyone without an
// avatar got one from pool. Avatars already in use, including ones handed
// out earlier in the same call, are avoided while unused ones remain.
func AssignMissingAvatars(players []models.Player, pool []string, rng RandSource) []models.Player {
	out := make([]models.Player, len(players))
	copy(out, players)
	if len(pool) == 0 {
		return out
	}

	used := make(map[string]bool, len(players))
	for _, p := range players {
		if p.HasAvatar() {
			used[p.Avatar] = true
		}
	}

	for i, p := range out {
		if p.HasAvatar() {
			continue
		}
		avatar, err := PickAvatar(pool, used, rng)
		if err != nil {
			continue
		}
		used[avatar] = true
		out[i].Avatar = avatar
	}
	return out
}
