package core

import (
	"cmp"
	"slices"
)

// UpdateRanks recomputes the rank order from the current scores.
// Players are ordered by descending score, ties broken by the rank
// of the previous round and finally by ID. Acceleration is left
// out of the comparison so that pairing bonuses never distort the
// fundamental rank used for colors and pairing numbers.
//
// Must run after ComputePlayerData and before any decision that
// reads RankIndex or PlayersByRank.
func (t *Tournament) UpdateRanks() {
	ranked := make([]PlayerIndex, 0, len(t.Players))
	for i := range t.Players {
		if t.Players[i].IsValid {
			ranked = append(ranked, PlayerIndex(i))
		}
	}

	slices.SortFunc(ranked, func(a, b PlayerIndex) int {
		pa, pb := &t.Players[a], &t.Players[b]
		return cmp.Or(
			cmp.Compare(pb.ScoreWithoutAcceleration, pa.ScoreWithoutAcceleration),
			cmp.Compare(pa.RankIndex, pb.RankIndex),
			cmp.Compare(pa.ID, pb.ID),
		)
	})

	for rank, id := range ranked {
		t.Players[id].RankIndex = PlayerIndex(rank)
	}
	t.PlayersByRank = ranked
}
