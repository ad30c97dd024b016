package banker

import (
	"fmt"

	"github.com/KirkDiggler/banker/internal/models"
)

// NextBanker returns the banker for a 1-based hole. The banker order wraps, so
// with 4 players the banker repeats every 4 holes.
func NextBanker(bankerOrder []string, currentHole, playerCount int) (string, error) {
	if len(bankerOrder) == 0 || len(bankerOrder) != playerCount {
		return "", ErrInvalidBankerOrder
	}
	if currentHole < 1 {
		return "", fmt.Errorf("%w: %d", ErrHoleOutOfRange, currentHole)
	}

	return bankerOrder[(currentHole-1)%playerCount], nil
}

// ResolveBanker picks the banker for a hole. An explicit override wins, then
// the banker already recorded for a re-edited hole, then the rotation. The
// stored banker order is never changed.
func ResolveBanker(game *models.Game, holeNumber int, override string) (string, bool, error) {
	if override != "" {
		if game.Player(override) == nil {
			return "", false, fmt.Errorf("%w: %s", ErrBankerNotInRoster, override)
		}
		return override, true, nil
	}

	if existing := game.HoleScore(holeNumber); existing != nil {
		return existing.BankerID, existing.BankerOverridden, nil
	}

	bankerID, err := NextBanker(game.BankerOrder, holeNumber, len(game.Players))
	if err != nil {
		return "", false, err
	}
	return bankerID, false, nil
}
