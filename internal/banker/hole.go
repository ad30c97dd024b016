package banker

import (
	"fmt"

	"github.com/KirkDiggler/banker/internal/models"
)

// Wagers holds the default wager for a hole and any per-player overrides
type Wagers struct {
	// Default applies to every player without an override
	Default int

	// PerPlayer overrides the default for individual players
	PerPlayer map[string]int
}

// For returns the base wager for a player, falling back to the default
func (w Wagers) For(playerID string) int {
	if amount, ok := w.PerPlayer[playerID]; ok {
		return amount
	}
	return w.Default
}

func (w Wagers) validate() error {
	if w.Default < 1 {
		return fmt.Errorf("%w: default wager %d", ErrInvalidWager, w.Default)
	}
	for playerID, amount := range w.PerPlayer {
		if amount < 1 {
			return fmt.Errorf("%w: player %s wager %d", ErrInvalidWager, playerID, amount)
		}
	}
	return nil
}

// SettleHoleInput contains the inputs for settling every match on a hole
type SettleHoleInput struct {
	Hole *models.Hole

	// Players is the roster; its order fixes the order of the output
	Players []*models.Player

	// BankerID is the already resolved banker for the hole
	BankerID string

	// BankerOverridden is carried into the result for auditing
	BankerOverridden bool

	// Scores maps player ID to raw score
	Scores map[string]int

	// Presses maps player ID to that player's press flag
	Presses map[string]bool

	Wagers Wagers

	BankerPressed bool
}

// SettleHole settles the banker against every other player on a hole. Every
// player must have a raw score; nothing is produced otherwise.
func SettleHole(in *SettleHoleInput) (*models.HoleScore, error) {
	var banker *models.Player
	for _, p := range in.Players {
		if p.ID == in.BankerID {
			banker = p
			break
		}
	}
	if banker == nil {
		return nil, fmt.Errorf("%w: %s", ErrBankerNotInRoster, in.BankerID)
	}

	for _, p := range in.Players {
		score, ok := in.Scores[p.ID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingScore, p.ID)
		}
		if score < 1 {
			return nil, fmt.Errorf("%w: player %s scored %d", ErrInvalidScore, p.ID, score)
		}
	}

	if err := in.Wagers.validate(); err != nil {
		return nil, err
	}

	bankerScore := in.Scores[banker.ID]
	playerScores := make([]*models.PlayerScore, 0, len(in.Players))
	matches := make([]*models.BankerMatch, 0, len(in.Players)-1)

	for _, p := range in.Players {
		if p.ID == banker.ID {
			playerScores = append(playerScores, &models.PlayerScore{
				PlayerID: p.ID,
				Score:    bankerScore,
			})
			continue
		}

		match := SettleMatch(&MatchInput{
			Hole:          in.Hole,
			Banker:        banker,
			Player:        p,
			BankerScore:   bankerScore,
			PlayerScore:   in.Scores[p.ID],
			PlayerPressed: in.Presses[p.ID],
			BankerPressed: in.BankerPressed,
			Wager:         in.Wagers.For(p.ID),
		})
		matches = append(matches, match)

		playerScores = append(playerScores, &models.PlayerScore{
			PlayerID:     p.ID,
			Score:        in.Scores[p.ID],
			HandicapDiff: match.HandicapDiff,
			Pressed:      in.Presses[p.ID],
		})
	}

	return &models.HoleScore{
		HoleNumber:       in.Hole.Number,
		BankerID:         banker.ID,
		PlayerScores:     playerScores,
		Matches:          matches,
		BetAmount:        in.Wagers.Default,
		BankerPressed:    in.BankerPressed,
		BankerOverridden: in.BankerOverridden,
	}, nil
}
