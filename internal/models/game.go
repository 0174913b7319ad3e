package models

import "slices"

// Winner is the side that won a round
type Winner string

const (
	WinnerCrew     Winner = "crew"
	WinnerImpostor Winner = "impostor"
)

// RoundEndReason explains how a round was decided
type RoundEndReason string

const (
	ReasonVotedAllImpostors RoundEndReason = "voted_all_impostors"
	ReasonWrongVote         RoundEndReason = "wrong_vote"
	ReasonGuessedWord       RoundEndReason = "guessed_word"
)

// RoundResult is the immutable summary of a finished round
type RoundResult struct {
	Round               int            `json:"round"`
	CategoryID          string         `json:"categoryId"`
	Winner              Winner         `json:"winner"`
	Reason              RoundEndReason `json:"reason"`
	ImpostorIDs         []string       `json:"impostorIds"`
	SecretWord          string         `json:"secretWord"`
	VotedPlayerIDs      []string       `json:"votedPlayerIds"`
	ImpostorGuessedWord bool           `json:"impostorGuessedWord"`
}

// Clone returns a copy of r that shares no slices with it
func (r RoundResult) Clone() RoundResult {
	r.ImpostorIDs = slices.Clone(r.ImpostorIDs)
	r.VotedPlayerIDs = slices.Clone(r.VotedPlayerIDs)
	return r
}
