package game

const (
	// MinPlayers is the minimum number of players required to start a round
	MinPlayers = 3

	// MaxNameLength is the maximum player name length, in characters
	MaxNameLength = 24

	// MaxAvatarLength is the maximum length of an avatar reference
	MaxAvatarLength = 120

	// Round length bounds, in seconds. Round lengths are whole minutes.
	MinRoundSeconds     = 60
	MaxRoundSeconds     = 360
	DefaultRoundSeconds = 180

	// Turn length bounds, in seconds
	MinTurnSeconds     = 10
	MaxTurnSeconds     = 120
	DefaultTurnSeconds = 30

	// Impostor count bounds
	MinImpostors = 1
	MaxImpostors = 2

	// Winning score bounds
	MinWinningScore     = 1
	MaxWinningScore     = 100
	DefaultWinningScore = 10

	// Points awarded when a side wins a round
	CrewWinPoints     = 1
	ImpostorWinPoints = 2

	// SessionCodeLength is the length of generated session codes
	SessionCodeLength = 6

	// SessionCodeChars are the characters used for session codes (excluding ambiguous chars)
	SessionCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
