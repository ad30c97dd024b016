package banker

import "github.com/KirkDiggler/banker/internal/models"

// MatchInput contains everything needed to settle one banker/player match
type MatchInput struct {
	Hole   *models.Hole
	Banker *models.Player
	Player *models.Player

	BankerScore int
	PlayerScore int

	PlayerPressed bool
	BankerPressed bool

	// Wager is the base wager for this pairing before presses
	Wager int
}

// SettleMatch computes the adjusted scores, final wager and signed result of a
// single match
func SettleMatch(in *MatchInput) *models.BankerMatch {
	handicapDiff := ComputeHandicapStroke(in.Banker.Handicap, in.Player.Handicap, in.Hole.Handicap)

	bankerAdjusted := in.BankerScore
	playerAdjusted := in.PlayerScore
	if handicapDiff > 0 {
		bankerAdjusted += handicapDiff
	} else if handicapDiff < 0 {
		playerAdjusted += -handicapDiff
	}

	wager := FinalWager(in.Wager, in.PlayerPressed, in.BankerPressed)

	result := 0
	switch {
	case bankerAdjusted < playerAdjusted:
		result = wager
	case bankerAdjusted > playerAdjusted:
		result = -wager
	}

	return &models.BankerMatch{
		BankerID:            in.Banker.ID,
		PlayerID:            in.Player.ID,
		BankerScore:         in.BankerScore,
		PlayerScore:         in.PlayerScore,
		BankerAdjustedScore: bankerAdjusted,
		PlayerAdjustedScore: playerAdjusted,
		HandicapDiff:        handicapDiff,
		Result:              result,
		BetAmount:           wager,
		PlayerPressed:       in.PlayerPressed,
		BankerPressed:       in.BankerPressed,
	}
}

// FinalWager applies the independent player and banker press multipliers
func FinalWager(base int, playerPressed, bankerPressed bool) int {
	wager := base
	if playerPressed {
		wager *= 2
	}
	if bankerPressed {
		wager *= 2
	}
	return wager
}
