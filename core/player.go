package core

// A Player is one participant's full match history together with
// the per-round values the pairing algorithm reads.
type Player struct {
	// One Match per played round, oldest first.
	Matches []Match
	// Round-indexed acceleration bonuses. Rounds past the end of
	// the slice imply zero.
	Accelerations []Points
	// The player may not be paired against these opponents.
	ForbiddenPairs map[PlayerIndex]struct{}

	// The zero-based ID used for input/output.
	ID PlayerIndex
	// The player's position in the current rank order; used for
	// choosing colors and for breaking ties.
	RankIndex PlayerIndex

	// Zero means unrated.
	Rating Rating

	ScoreWithoutAcceleration Points
	// Acceleration for the current round.
	Acceleration Points

	// Color preference for the upcoming round. An absolute
	// preference must be honored by the pairing; a strong one
	// should be. Both flags false means the preference is mild or
	// absent.
	ColorPreference         Color
	AbsoluteColorPreference bool
	StrongColorPreference   bool

	// True for a real participant, false for a hole in the ID
	// space left by a withdrawn player.
	IsValid bool
}

func newPlayer(id PlayerIndex, score Points, rating Rating) Player {
	return Player{
		ForbiddenPairs:           make(map[PlayerIndex]struct{}),
		ID:                       id,
		RankIndex:                id,
		Rating:                   rating,
		ScoreWithoutAcceleration: score,
		ColorPreference:          ColorNone,
		IsValid:                  true,
	}
}

// ScoreWithAcceleration is the effective score the pairing uses.
func (p *Player) ScoreWithAcceleration() Points {
	return p.ScoreWithoutAcceleration + p.Acceleration
}

// AccelerationAt returns the acceleration bonus for the given
// round. Rounds beyond the recorded entries have no bonus.
func (p *Player) AccelerationAt(round RoundIndex) Points {
	if int(round) >= len(p.Accelerations) {
		return 0
	}
	return p.Accelerations[round]
}

// ColorDifference is the number of games played as white minus the
// number of games played as black. Only games that were actually
// played are counted.
func (p *Player) ColorDifference() int {
	diff := 0
	for _, m := range p.Matches {
		if !m.GameWasPlayed {
			continue
		}
		switch m.Color {
		case ColorWhite:
			diff++
		case ColorBlack:
			diff--
		}
	}
	return diff
}

// LastPlayedColors returns the colors of the most recently played
// games, newest first, up to n entries.
func (p *Player) LastPlayedColors(n int) []Color {
	colors := make([]Color, 0, n)
	for i := len(p.Matches) - 1; i >= 0 && len(colors) < n; i-- {
		if p.Matches[i].GameWasPlayed {
			colors = append(colors, p.Matches[i].Color)
		}
	}
	return colors
}
