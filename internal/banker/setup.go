package banker

import (
	"fmt"

	"github.com/KirkDiggler/banker/internal/models"
)

// HoleSetup describes the current hole before scores are entered
type HoleSetup struct {
	Hole *models.Hole

	BankerID         string
	BankerOverridden bool

	// HandicapDiffs maps player ID to the stroke adjustment against the banker
	HandicapDiffs map[string]int

	// DefaultWager is the wager to pre-fill for the hole
	DefaultWager int

	// Existing is the recorded result when the hole is being re-edited
	Existing *models.HoleScore
}

// PrepareHole resolves the banker and stroke adjustments for the game's current
// hole. The default wager carries over from the hole being edited, then from
// the latest earlier hole, then falls back to fallbackWager.
func PrepareHole(game *models.Game, course *models.Course, override string, fallbackWager int) (*HoleSetup, error) {
	if err := ValidateGame(game, course); err != nil {
		return nil, err
	}

	hole := course.Hole(game.CurrentHole)
	if hole == nil {
		return nil, fmt.Errorf("%w: %d", ErrHoleOutOfRange, game.CurrentHole)
	}

	bankerID, overridden, err := ResolveBanker(game, hole.Number, override)
	if err != nil {
		return nil, err
	}
	banker := game.Player(bankerID)

	diffs := make(map[string]int, len(game.Players))
	for _, p := range game.Players {
		if p.ID == bankerID {
			diffs[p.ID] = 0
			continue
		}
		diffs[p.ID] = ComputeHandicapStroke(banker.Handicap, p.Handicap, hole.Handicap)
	}

	existing := game.HoleScore(hole.Number)

	wager := fallbackWager
	if existing != nil {
		wager = existing.BetAmount
	} else {
		latest := 0
		for number, hs := range game.HoleScores {
			if number < hole.Number && number > latest {
				latest = number
				wager = hs.BetAmount
			}
		}
	}

	return &HoleSetup{
		Hole:             hole,
		BankerID:         bankerID,
		BankerOverridden: overridden,
		HandicapDiffs:    diffs,
		DefaultWager:     wager,
		Existing:         existing,
	}, nil
}
