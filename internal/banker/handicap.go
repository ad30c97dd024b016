package banker

// ComputeHandicapStroke returns the stroke adjustment for a banker/player
// pairing on a hole of the given difficulty rank (1 = hardest).
//
// A stroke is only given when the handicap gap reaches the hole's rank. The
// result is +1 when the stroke is added to the banker's score (the player has
// the higher handicap) and -1 when it is added to the player's score.
func ComputeHandicapStroke(bankerHandicap, playerHandicap, holeDifficulty int) int {
	diff := bankerHandicap - playerHandicap
	if diff < 0 {
		diff = -diff
	}

	if diff < holeDifficulty {
		return 0
	}

	if bankerHandicap > playerHandicap {
		return -1
	}
	return 1
}
