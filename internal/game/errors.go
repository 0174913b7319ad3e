package game

import (
	"errors"
	"fmt"
)

var (
	// ErrRejected matches every rule violation returned by the Machine
	ErrRejected = errors.New("operation rejected")

	// ErrInvalid matches every *ValidationError
	ErrInvalid = errors.New("invalid input")

	// ErrEmptyInput is returned when picking from an empty collection
	ErrEmptyInput = errors.New("cannot pick from an empty collection")

	// ErrInvalidWinner is returned by ApplyRoundScore for an unknown side
	ErrInvalidWinner = errors.New("winner must be crew or impostor")
)

// RuleError is a rejected operation. The message is fit for showing to players.
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

// Is makes every RuleError match ErrRejected
func (e *RuleError) Is(target error) bool {
	return target == ErrRejected
}

// Predefined rule errors
var (
	ErrWrongPhase       = &RuleError{Message: "not allowed right now"}
	ErrNotEnoughPlayers = &RuleError{Message: "not enough players"}
	ErrNoCategory       = &RuleError{Message: "select at least one category"}
	ErrUnknownCategory  = &RuleError{Message: "category not found"}
	ErrEmptyCategory    = &RuleError{Message: "category has no words or pairs"}
	ErrLastCategory     = &RuleError{Message: "at least one category must stay selected"}
	ErrImpostorCount    = &RuleError{Message: "there must be at least one impostor"}
	ErrNoCrew           = &RuleError{Message: "at least one crew member must remain"}
	ErrUnknownPlayer    = &RuleError{Message: "player not found"}
	ErrMaxVotes         = &RuleError{Message: "maximum votes reached"}
	ErrVoteCount        = &RuleError{Message: "wrong number of suspects selected"}
)

// ValidationError is a malformed Player or Settings value
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Is makes every ValidationError match ErrInvalid
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
