package game

import (
	"slices"

	"github.com/aaronzipp/impostor/internal/models"
)

// ApplyRoundScore returns a copy of players with the round's points added.
// Crew wins give CrewWinPoints to every non-impostor; impostor wins give
// ImpostorWinPoints to every impostor. The input is not modified.
func ApplyRoundScore(players []models.Player, winner models.Winner, impostorIDs []string) ([]models.Player, error) {
	if winner != models.WinnerCrew && winner != models.WinnerImpostor {
		return nil, ErrInvalidWinner
	}

	out := make([]models.Player, len(players))
	for i, p := range players {
		isImpostor := slices.Contains(impostorIDs, p.ID)
		switch {
		case winner == models.WinnerCrew && !isImpostor:
			p.Score += CrewWinPoints
		case winner == models.WinnerImpostor && isImpostor:
			p.Score += ImpostorWinPoints
		}
		out[i] = p
	}
	return out, nil
}

// Standings reports whether anyone reached winningScore and, if so, the ids
// of every player at or above it (ties are all winners)
func Standings(players []models.Player, winningScore int) (gameOver bool, winnerIDs []string) {
	for _, p := range players {
		if p.Score >= winningScore {
			winnerIDs = append(winnerIDs, p.ID)
		}
	}
	return len(winnerIDs) > 0, winnerIDs
}
