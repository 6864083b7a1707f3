package core

// ForbidPairs forbids every pair of distinct players in the group
// from being paired against each other. This is how administrative
// restrictions such as same-team groups are expressed; a group of
// two forbids a single pair. Registration is symmetric and
// idempotent, and restrictions only ever accumulate.
func (t *Tournament) ForbidPairs(group []PlayerIndex) error {
	for _, id := range group {
		if _, err := t.player(id); err != nil {
			return err
		}
	}
	for i, a := range group {
		for _, b := range group[i+1:] {
			if a == b {
				continue
			}
			if err := t.forbidPair(a, b); err != nil {
				return err
			}
		}
	}
	return nil
}

// ForbidPlayedMatches registers a restriction for every pairing
// that has already happened, so that no rematch occurs.
func (t *Tournament) ForbidPlayedMatches() error {
	for i := range t.Players {
		p := &t.Players[i]
		if !p.IsValid {
			continue
		}
		for _, m := range p.Matches {
			if !m.HasOpponent {
				continue
			}
			if err := t.forbidPair(p.ID, m.Opponent); err != nil {
				return err
			}
		}
	}
	return nil
}

// ForbiddenPairList returns every forbidden pair exactly once, for
// serialization by an external writer.
func (t *Tournament) ForbiddenPairList() ([][2]PlayerIndex, error) {
	return t.restrictions.Pairs()
}

func (t *Tournament) forbidPair(a, b PlayerIndex) error {
	if err := t.restrictions.Restrict(a, b); err != nil {
		return err
	}
	t.Players[a].ForbiddenPairs[b] = struct{}{}
	t.Players[b].ForbiddenPairs[a] = struct{}{}
	return nil
}
