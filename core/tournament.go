package core

import (
	"errors"
	"fmt"

	"github.com/swisschess/gopairing/internal"
)

var (
	ErrUnknownPlayer   = errors.New("unknown player id")
	ErrDuplicatePlayer = errors.New("player id already in use")
)

// A Tournament is the full state of one Swiss-system tournament.
// Exactly one instance is live per run; every routine takes it by
// pointer, it is never duplicated or kept as package state.
type Tournament struct {
	// Players indexed by ID. Entries are never removed; a
	// withdrawn player stays as an invalid hole so that IDs
	// remain stable for input/output.
	Players []Player
	// Player IDs ordered by the current ranks. Invalid players
	// never occupy a rank slot.
	PlayersByRank []PlayerIndex

	PlayedRounds   RoundIndex
	ExpectedRounds RoundIndex

	PointsForWin  Points
	PointsForDraw Points
	// The color the top-ranked player receives in round one.
	InitialColor Color

	Limits Limits

	restrictions *internal.RestrictionGraph[PlayerIndex]
}

// NewTournament creates an empty tournament with the reference
// point values of 1 for a win and ½ for a draw.
func NewTournament(limits Limits) *Tournament {
	return &Tournament{
		PointsForWin:  10,
		PointsForDraw: 5,
		InitialColor:  ColorNone,
		Limits:        limits,
		restrictions:  internal.NewRestrictionGraph[PlayerIndex](),
	}
}

// AddPlayer admits a player under the given ID with a declared
// starting score. All capacity checks happen before any state is
// touched, so a failed admission leaves the tournament unchanged.
func (t *Tournament) AddPlayer(id PlayerIndex, score Points, rating Rating) error {
	if id >= t.Limits.MaxPlayers {
		return fmt.Errorf("%w: player id %d does not fit the player limit %d",
			ErrLimitExceeded, id, t.Limits.MaxPlayers)
	}
	if score > t.Limits.MaxPoints {
		return fmt.Errorf("%w: score %d exceeds the point limit %d",
			ErrLimitExceeded, score, t.Limits.MaxPoints)
	}
	if rating > t.Limits.MaxRating {
		return fmt.Errorf("%w: rating %d exceeds the rating limit %d",
			ErrLimitExceeded, rating, t.Limits.MaxRating)
	}
	if int(id) < len(t.Players) && t.Players[id].IsValid {
		return fmt.Errorf("%w: %d", ErrDuplicatePlayer, id)
	}

	for int(id) >= len(t.Players) {
		t.Players = append(t.Players, Player{})
	}
	t.Players[id] = newPlayer(id, score, rating)
	return nil
}

// WithdrawPlayer removes the player from ranking and pairing. The
// ID stays reserved as a hole and is never reused.
func (t *Tournament) WithdrawPlayer(id PlayerIndex) error {
	p, err := t.player(id)
	if err != nil {
		return err
	}
	p.IsValid = false
	return nil
}

// Points maps a match score to the point value it awards. A loss
// is always worth zero.
func (t *Tournament) Points(score MatchScore) Points {
	switch score {
	case MatchScoreWin:
		return t.PointsForWin
	case MatchScoreDraw:
		return t.PointsForDraw
	default:
		return 0
	}
}

// SetAcceleration records a pairing bonus for the player in the
// given round. The bonus raises the player's effective score for
// pairing purposes only, not the true standing.
func (t *Tournament) SetAcceleration(id PlayerIndex, round RoundIndex, bonus Points) error {
	p, err := t.player(id)
	if err != nil {
		return err
	}
	if round >= t.Limits.MaxRounds {
		return fmt.Errorf("%w: round %d does not fit the round limit %d",
			ErrLimitExceeded, round, t.Limits.MaxRounds)
	}
	if bonus > t.Limits.MaxPoints {
		return fmt.Errorf("%w: acceleration %d exceeds the point limit %d",
			ErrLimitExceeded, bonus, t.Limits.MaxPoints)
	}

	for int(round) >= len(p.Accelerations) {
		p.Accelerations = append(p.Accelerations, 0)
	}
	p.Accelerations[round] = bonus
	return nil
}

// AppendRound commits one finished round. Every valid player gets
// exactly one Match appended: the record from the pairing, or an
// absent record when the pairing skipped the player. The round
// count advances and the derivations rerun in their required
// order: player data, then ranks, then rematch restrictions.
func (t *Tournament) AppendRound(matches map[PlayerIndex]Match) error {
	if t.PlayedRounds >= t.Limits.MaxRounds {
		return fmt.Errorf("%w: round %d does not fit the round limit %d",
			ErrLimitExceeded, t.PlayedRounds, t.Limits.MaxRounds)
	}
	for id := range matches {
		if _, err := t.player(id); err != nil {
			return err
		}
	}

	for i := range t.Players {
		p := &t.Players[i]
		if !p.IsValid {
			continue
		}
		m, paired := matches[p.ID]
		if !paired {
			m = NewAbsentMatch()
		}
		p.Matches = append(p.Matches, m)
	}
	t.PlayedRounds++

	if err := t.ComputePlayerData(); err != nil {
		return err
	}
	t.UpdateRanks()
	return t.ForbidPlayedMatches()
}

func (t *Tournament) player(id PlayerIndex) (*Player, error) {
	if int(id) >= len(t.Players) || !t.Players[id].IsValid {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	return &t.Players[id], nil
}
