package engine

import "errors"

// ErrPlayerNotFound is returned by operations addressed to a player id that
// is not part of the game. Action-level rule violations are reported through
// Validation and Result instead, so clients get every violated rule at once.
var ErrPlayerNotFound = errors.New("player not found")
