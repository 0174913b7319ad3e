package models

// Player represents a player at the device
type Player struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Score  int    `json:"score"`
}

// HasAvatar reports whether an avatar reference is set
func (p Player) HasAvatar() bool {
	return p.Avatar != ""
}

// PlayerInput is a player as submitted by the setup screen. An empty ID is
// filled in by the id generator and a nil Score means 0.
type PlayerInput struct {
	ID     string
	Name   string
	Avatar string
	Score  *int
}

// RoleCard is what a single player privately sees during the reveal
type RoleCard struct {
	PlayerID     string `json:"playerId"`
	IsImpostor   bool   `json:"isImpostor"`
	SecretWord   string `json:"secretWord,omitempty"`
	HintWord     string `json:"hintWord,omitempty"`
	HintCategory string `json:"hintCategory,omitempty"`
}
