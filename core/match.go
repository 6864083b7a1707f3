package core

// A Match is the record of a single player on a single round.
// It belongs to exactly one player and is not changed once it has
// been appended to the player's history.
type Match struct {
	// The opponent's ID. Only meaningful when HasOpponent is true.
	Opponent PlayerIndex
	// False when the player had no opponent this round (a bye).
	HasOpponent bool

	Color Color
	Score MatchScore

	// False for byes and unplayed forfeits.
	GameWasPlayed bool
	// True when the player was either paired or given the
	// pairing-allocated bye.
	ParticipatedInPairing bool
}

// NewMatch records a game against an opponent. A forfeited game is
// recorded with played set to false; it still counts as a pairing.
func NewMatch(opponent PlayerIndex, color Color, score MatchScore, played bool) Match {
	return Match{
		Opponent:              opponent,
		HasOpponent:           true,
		Color:                 color,
		Score:                 score,
		GameWasPlayed:         played,
		ParticipatedInPairing: true,
	}
}

// NewByeMatch records the pairing-allocated bye with the score it
// awards.
func NewByeMatch(score MatchScore) Match {
	return Match{
		Color:                 ColorNone,
		Score:                 score,
		ParticipatedInPairing: true,
	}
}

// NewAbsentMatch records a round in which the player did not take
// part in the pairing at all.
func NewAbsentMatch() Match {
	return Match{Color: ColorNone, Score: MatchScoreLoss}
}

// IsBye reports whether the player had no opponent this round.
func (m Match) IsBye() bool {
	return !m.HasOpponent
}
