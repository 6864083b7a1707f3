package core

import "testing"

func TestColorInvert(t *testing.T) {
	if ColorWhite.Invert() != ColorBlack || ColorBlack.Invert() != ColorWhite {
		t.Error("White and black do not invert into each other")
	}
	if ColorNone.Invert() != ColorNone {
		t.Error("ColorNone did not stay fixed under inversion")
	}

	for _, c := range []Color{ColorWhite, ColorBlack, ColorNone} {
		if c.Invert().Invert() != c {
			t.Errorf("Color %v was not restored by double inversion", c)
		}
	}
}

func TestMatchScoreInvert(t *testing.T) {
	if MatchScoreLoss.Invert() != MatchScoreWin || MatchScoreWin.Invert() != MatchScoreLoss {
		t.Error("Loss and win do not invert into each other")
	}
	if MatchScoreDraw.Invert() != MatchScoreDraw {
		t.Error("A draw did not stay fixed under inversion")
	}

	for _, s := range []MatchScore{MatchScoreLoss, MatchScoreDraw, MatchScoreWin} {
		if s.Invert().Invert() != s {
			t.Errorf("Match score %v was not restored by double inversion", s)
		}
	}
}

func TestColorSymbolRoundTrip(t *testing.T) {
	for _, c := range []Color{ColorWhite, ColorBlack, ColorNone} {
		parsed, err := ParseColor(c.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != c {
			t.Errorf("Color %v did not survive the symbol round trip", c)
		}
	}

	if _, err := ParseColor("x"); err != ErrBadColorSymbol {
		t.Error("An unknown color symbol was not rejected")
	}
}

func TestMatchScoreSymbolRoundTrip(t *testing.T) {
	for _, s := range []MatchScore{MatchScoreLoss, MatchScoreDraw, MatchScoreWin} {
		parsed, err := ParseMatchScore(s.String())
		if err != nil {
			t.Fatal(err)
		}
		if parsed != s {
			t.Errorf("Match score %v did not survive the symbol round trip", s)
		}
	}

	if _, err := ParseMatchScore("w"); err != ErrBadScoreSymbol {
		t.Error("An unknown score symbol was not rejected")
	}
}
