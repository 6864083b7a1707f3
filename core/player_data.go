package core

import "fmt"

// ComputePlayerData recomputes every valid player's accumulated
// score, current acceleration and color preference ahead of the
// next round's pairing. Invalid players are left untouched. The
// routine is idempotent: rerunning it on an unchanged history
// produces identical fields.
func (t *Tournament) ComputePlayerData() error {
	for i := range t.Players {
		p := &t.Players[i]
		if !p.IsValid {
			continue
		}

		score := Points(0)
		for _, m := range p.Matches {
			score += t.Points(m.Score)
			if score > t.Limits.MaxPoints {
				return fmt.Errorf("%w: player %d's score exceeds the point limit %d",
					ErrLimitExceeded, p.ID, t.Limits.MaxPoints)
			}
		}
		p.ScoreWithoutAcceleration = score
		p.Acceleration = p.AccelerationAt(t.PlayedRounds)
		if p.ScoreWithAcceleration() > t.Limits.MaxPoints {
			return fmt.Errorf("%w: player %d's accelerated score exceeds the point limit %d",
				ErrLimitExceeded, p.ID, t.Limits.MaxPoints)
		}

		t.computeColorPreference(p)
	}
	return nil
}

// computeColorPreference applies the Dutch-system color rules as a
// priority chain; the first matching rule wins.
//
//  1. A color difference of ±2 or more forces the balancing color
//     absolutely.
//  2. The same color in the two most recent played games forces
//     the alternation absolutely.
//  3. A color difference of ±1 asks for the balancing color
//     strongly.
//  4. Otherwise the player mildly prefers to alternate from the
//     last played game.
//  5. A player without played games has no preference, except the
//     top seed of round one, who receives the configured initial
//     color.
func (t *Tournament) computeColorPreference(p *Player) {
	p.ColorPreference = ColorNone
	p.AbsoluteColorPreference = false
	p.StrongColorPreference = false

	diff := p.ColorDifference()
	last := p.LastPlayedColors(2)

	switch {
	case diff >= 2:
		p.ColorPreference = ColorBlack
		p.AbsoluteColorPreference = true
	case diff <= -2:
		p.ColorPreference = ColorWhite
		p.AbsoluteColorPreference = true
	case len(last) == 2 && last[0] == last[1]:
		p.ColorPreference = last[0].Invert()
		p.AbsoluteColorPreference = true
	case diff == 1:
		p.ColorPreference = ColorBlack
		p.StrongColorPreference = true
	case diff == -1:
		p.ColorPreference = ColorWhite
		p.StrongColorPreference = true
	case len(last) > 0:
		p.ColorPreference = last[0].Invert()
	case t.PlayedRounds == 0 && p.RankIndex == 0:
		p.ColorPreference = t.InitialColor
	}
}
