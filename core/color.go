package core

import "errors"

var (
	ErrBadColorSymbol = errors.New("unknown color symbol")
	ErrBadScoreSymbol = errors.New("unknown match score symbol")
)

// The Color of the pieces a player holds in one game.
type Color uint8

const (
	ColorWhite Color = iota
	ColorBlack
	ColorNone
)

// Invert swaps white and black. ColorNone inverts to itself.
func (c Color) Invert() Color {
	switch c {
	case ColorWhite:
		return ColorBlack
	case ColorBlack:
		return ColorWhite
	default:
		return ColorNone
	}
}

// String returns the tournament-report symbol of the color.
func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

// ParseColor reads a tournament-report color symbol. Any symbol
// other than the three known ones is corrupt data.
func ParseColor(symbol string) (Color, error) {
	switch symbol {
	case "w":
		return ColorWhite, nil
	case "b":
		return ColorBlack, nil
	case "-":
		return ColorNone, nil
	default:
		return ColorNone, ErrBadColorSymbol
	}
}

// A MatchScore is the result of one round from a single player's
// point of view.
type MatchScore uint8

const (
	MatchScoreLoss MatchScore = iota
	MatchScoreDraw
	MatchScoreWin
)

// Invert returns the opponent's complementary result. A draw
// inverts to itself.
func (s MatchScore) Invert() MatchScore {
	return MatchScoreWin - s
}

// String returns the tournament-report symbol of the result.
func (s MatchScore) String() string {
	switch s {
	case MatchScoreWin:
		return "1"
	case MatchScoreDraw:
		return "="
	default:
		return "0"
	}
}

// ParseMatchScore reads a tournament-report result symbol. Any
// symbol other than the three known ones is corrupt data.
func ParseMatchScore(symbol string) (MatchScore, error) {
	switch symbol {
	case "0":
		return MatchScoreLoss, nil
	case "=":
		return MatchScoreDraw, nil
	case "1":
		return MatchScoreWin, nil
	default:
		return MatchScoreLoss, ErrBadScoreSymbol
	}
}
