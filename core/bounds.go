package core

import "errors"

// ErrLimitExceeded is returned when a structural count grows past the
// configured Limits. It means the limits are too small for the input
// data, not that the input is wrong; callers should abort processing
// the affected tournament and report it.
var ErrLimitExceeded = errors.New("build limit exceeded")

// PlayerIndex is a zero-based player ID. IDs are assigned when the
// tournament is created and stay stable for its whole lifetime.
type PlayerIndex uint32

// Points is a score stored as ten times the actual score so that
// half points stay exact without floating-point arithmetic.
type Points uint32

// Rating is a player rating. Zero means the rating is unknown.
type Rating uint32

// RoundIndex is a zero-based round number.
type RoundIndex uint32

// Limits caps the structural counts of a tournament. The caps are
// fixed at startup; any value that would grow past its cap is a
// capacity violation reported as ErrLimitExceeded, never a silent
// wraparound.
type Limits struct {
	MaxPlayers PlayerIndex
	MaxRounds  RoundIndex
	MaxPoints  Points
	MaxRating  Rating
}

// DefaultLimits are the build defaults of the reference engine.
var DefaultLimits = Limits{
	MaxPlayers: 9999,
	MaxRounds:  255,
	MaxPoints:  1998,
	MaxRating:  9999,
}
