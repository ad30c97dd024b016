package banker

import (
	"fmt"

	"github.com/KirkDiggler/banker/internal/models"
)

// ValidateRoster checks that the roster is non-empty, has unique IDs and
// handicaps within range
func ValidateRoster(players []*models.Player) error {
	if len(players) == 0 {
		return ErrEmptyRoster
	}

	seen := make(map[string]struct{}, len(players))
	for _, p := range players {
		if _, ok := seen[p.ID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicatePlayer, p.ID)
		}
		seen[p.ID] = struct{}{}

		if p.Handicap < models.MinHandicap || p.Handicap > models.MaxHandicap {
			return fmt.Errorf("%w: player %s has %d", ErrInvalidHandicap, p.ID, p.Handicap)
		}
	}
	return nil
}

// ValidateBankerOrder checks that the order is a permutation of the roster
func ValidateBankerOrder(bankerOrder []string, players []*models.Player) error {
	if len(bankerOrder) != len(players) {
		return fmt.Errorf("%w: %d entries for %d players", ErrInvalidBankerOrder, len(bankerOrder), len(players))
	}

	remaining := make(map[string]struct{}, len(players))
	for _, p := range players {
		remaining[p.ID] = struct{}{}
	}
	for _, id := range bankerOrder {
		if _, ok := remaining[id]; !ok {
			return fmt.Errorf("%w: unexpected or repeated %s", ErrInvalidBankerOrder, id)
		}
		delete(remaining, id)
	}
	return nil
}

// ValidateCourse checks hole numbering and that difficulty ranks are unique
// and within 1..N
func ValidateCourse(course *models.Course) error {
	if course == nil || len(course.Holes) == 0 {
		return ErrInvalidCourse
	}

	count := len(course.Holes)
	ranks := make(map[int]struct{}, count)
	for i, h := range course.Holes {
		if h.Number != i+1 {
			return fmt.Errorf("%w: hole at position %d is numbered %d", ErrInvalidCourse, i+1, h.Number)
		}
		if h.Handicap < 1 || h.Handicap > count {
			return fmt.Errorf("%w: hole %d has rank %d", ErrHoleRankOutOfRange, h.Number, h.Handicap)
		}
		if _, ok := ranks[h.Handicap]; ok {
			return fmt.Errorf("%w: rank %d used twice", ErrInvalidCourse, h.Handicap)
		}
		ranks[h.Handicap] = struct{}{}
	}
	return nil
}

// ValidateGame checks the game's roster and banker order against the course
func ValidateGame(game *models.Game, course *models.Course) error {
	if err := ValidateRoster(game.Players); err != nil {
		return err
	}
	if err := ValidateBankerOrder(game.BankerOrder, game.Players); err != nil {
		return err
	}
	if err := ValidateCourse(course); err != nil {
		return err
	}

	if game.CurrentHole < 1 || game.CurrentHole > len(course.Holes) {
		return fmt.Errorf("%w: current hole %d", ErrCorruptGame, game.CurrentHole)
	}

	for number, hs := range game.HoleScores {
		if number < 1 || number > len(course.Holes) || hs.HoleNumber != number {
			return fmt.Errorf("%w: recorded hole %d", ErrCorruptGame, number)
		}
		if game.Player(hs.BankerID) == nil {
			return fmt.Errorf("%w: hole %d banker %s", ErrBankerNotInRoster, number, hs.BankerID)
		}
	}
	return nil
}
