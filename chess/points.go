package chess

import (
	"errors"

	"github.com/swisschess/gopairing/core"
)

var (
	ErrZeroWin        = errors.New("win points are zero")
	ErrDrawExceedsWin = errors.New("draw points exceed the win points")
)

// PointSettings are the point values a tournament awards, stored as
// ten times the actual score. A loss is always worth zero.
type PointSettings struct {
	Win  core.Points
	Draw core.Points
}

var (
	// StandardPoints is the classical 1 / ½ scoring.
	StandardPoints = PointSettings{Win: 10, Draw: 5}
	// AntiDrawPoints is the 3 / 1 scoring used by events that
	// want to discourage draws.
	AntiDrawPoints = PointSettings{Win: 30, Draw: 10}
)

func NewPointSettings(win, draw core.Points) (PointSettings, error) {
	settings := PointSettings{Win: win, Draw: draw}

	if win == 0 {
		return settings, ErrZeroWin
	}
	if draw > win {
		return settings, ErrDrawExceedsWin
	}

	return settings, nil
}

// Apply sets the point values on the tournament. The caller should
// rerun ComputePlayerData afterwards so the scores reflect the new
// values.
func (s PointSettings) Apply(t *core.Tournament) {
	t.PointsForWin = s.Win
	t.PointsForDraw = s.Draw
}
