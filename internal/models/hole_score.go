package models

// PlayerScore is one player's raw result on a hole
type PlayerScore struct {
	PlayerID string

	// Score is the raw stroke count, at least 1
	Score int

	// HandicapDiff is the stroke adjustment relative to the hole's banker
	HandicapDiff int

	// Pressed doubles this player's wager against the banker
	Pressed bool
}

// BankerMatch is the settled wager between the banker and one player
type BankerMatch struct {
	BankerID string
	PlayerID string

	BankerScore int
	PlayerScore int

	BankerAdjustedScore int
	PlayerAdjustedScore int

	// HandicapDiff is +1 when the banker took the stroke, -1 when the player did
	HandicapDiff int

	// Result is positive when the banker wins, negative when the player wins
	// and zero on a push
	Result int

	// BetAmount is the wager after press multipliers
	BetAmount int

	PlayerPressed bool
	BankerPressed bool
}

// HoleScore holds every match settled on one hole
type HoleScore struct {
	HoleNumber int
	BankerID   string

	// PlayerScores are in roster order
	PlayerScores []*PlayerScore

	// Matches are in roster order, one per non-banker player
	Matches []*BankerMatch

	// BetAmount is the default wager for the hole
	BetAmount int

	BankerPressed bool

	// BankerOverridden records that the banker was picked by hand
	BankerOverridden bool
}

// PlayerScore returns the score recorded for a player, or nil
func (h *HoleScore) PlayerScore(playerID string) *PlayerScore {
	for _, ps := range h.PlayerScores {
		if ps.PlayerID == playerID {
			return ps
		}
	}
	return nil
}

// Match returns the match played against a player, or nil
func (h *HoleScore) Match(playerID string) *BankerMatch {
	for _, m := range h.Matches {
		if m.PlayerID == playerID {
			return m
		}
	}
	return nil
}
