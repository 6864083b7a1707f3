package core

import "testing"

func TestRankOrder(t *testing.T) {
	tournament := newTestTournament(t, 4)
	tournament.Players[0].ScoreWithoutAcceleration = 10
	tournament.Players[1].ScoreWithoutAcceleration = 20
	tournament.Players[2].ScoreWithoutAcceleration = 5
	tournament.Players[3].ScoreWithoutAcceleration = 20

	tournament.UpdateRanks()

	expected := []PlayerIndex{1, 3, 0, 2}
	for i, id := range expected {
		if tournament.PlayersByRank[i] != id {
			t.Fatalf("Expected player %d at rank %d, got %d", id, i, tournament.PlayersByRank[i])
		}
		if tournament.Players[id].RankIndex != PlayerIndex(i) {
			t.Fatalf("Player %d's rank index was not reassigned to %d", id, i)
		}
	}
}

func TestRankTiesUsePreviousRank(t *testing.T) {
	tournament := newTestTournament(t, 4)

	// Give player 3 a better previous rank than player 1.
	tournament.Players[1].RankIndex = 3
	tournament.Players[3].RankIndex = 1
	tournament.Players[1].ScoreWithoutAcceleration = 20
	tournament.Players[3].ScoreWithoutAcceleration = 20

	tournament.UpdateRanks()

	if tournament.PlayersByRank[0] != 3 || tournament.PlayersByRank[1] != 1 {
		t.Error("A score tie was not broken by the previous rank index")
	}
}

func TestRankTiesFallBackToIdentity(t *testing.T) {
	tournament := newTestTournament(t, 3)

	// Duplicate rank indices cannot arise from UpdateRanks itself
	// but the order must stay deterministic if they do.
	for i := range tournament.Players {
		tournament.Players[i].RankIndex = 0
		tournament.Players[i].ScoreWithoutAcceleration = 10
	}

	tournament.UpdateRanks()

	for i, id := range []PlayerIndex{0, 1, 2} {
		if tournament.PlayersByRank[i] != id {
			t.Fatal("A full tie was not broken by the player IDs")
		}
	}
}

func TestRanksExcludeInvalidPlayers(t *testing.T) {
	tournament := newTestTournament(t, 4)
	if err := tournament.WithdrawPlayer(0); err != nil {
		t.Fatal(err)
	}

	tournament.UpdateRanks()

	if len(tournament.PlayersByRank) != 3 {
		t.Fatal("An invalid player occupies a rank slot")
	}
	for _, id := range tournament.PlayersByRank {
		if id == 0 {
			t.Fatal("The withdrawn player appears in the rank order")
		}
	}
}

func TestRanksIgnoreAcceleration(t *testing.T) {
	tournament := newTestTournament(t, 2)
	tournament.Players[0].ScoreWithoutAcceleration = 10
	tournament.Players[1].ScoreWithoutAcceleration = 5
	tournament.Players[1].Acceleration = 20

	tournament.UpdateRanks()

	if tournament.PlayersByRank[0] != 0 {
		t.Error("Acceleration distorted the rank order")
	}
}
