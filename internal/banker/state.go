package banker

import (
	"fmt"
	"time"

	"github.com/KirkDiggler/banker/internal/models"
)

// NewGameInput contains the parameters for starting a round
type NewGameInput struct {
	ID          string
	Course      *models.Course
	Players     []*models.Player
	BankerOrder []string
	CreatedAt   time.Time
}

// NewGame builds a validated game positioned on the first hole
func NewGame(in *NewGameInput) (*models.Game, error) {
	if err := ValidateRoster(in.Players); err != nil {
		return nil, err
	}
	if err := ValidateBankerOrder(in.BankerOrder, in.Players); err != nil {
		return nil, err
	}
	if err := ValidateCourse(in.Course); err != nil {
		return nil, err
	}

	game := &models.Game{
		ID:          in.ID,
		CourseID:    in.Course.ID,
		Players:     make([]*models.Player, len(in.Players)),
		BankerOrder: make([]string, len(in.BankerOrder)),
		CurrentHole: 1,
		HoleScores:  map[int]*models.HoleScore{},
		Status:      models.GameStatusInProgress,
		CreatedAt:   in.CreatedAt,
		UpdatedAt:   in.CreatedAt,
	}
	for i, p := range in.Players {
		snapshot := *p
		game.Players[i] = &snapshot
	}
	copy(game.BankerOrder, in.BankerOrder)

	return game, nil
}

// HoleUpdate is a fully specified save of one hole
type HoleUpdate struct {
	HoleNumber int

	// Scores maps player ID to raw score; every player is required
	Scores map[string]int

	// Presses maps player ID to that player's press flag
	Presses map[string]bool

	Wagers Wagers

	BankerPressed bool

	// BankerOverride picks the banker for this hole only
	BankerOverride string
}

// SaveHole settles the current hole and returns the advanced game. The input
// game is never modified. Saving the last hole completes the game and leaves
// CurrentHole on it; otherwise CurrentHole moves to the next hole.
func SaveHole(game *models.Game, course *models.Course, update *HoleUpdate) (*models.Game, error) {
	if err := ValidateGame(game, course); err != nil {
		return nil, err
	}
	if game.Status.IsCompleted() {
		return nil, ErrGameCompleted
	}

	hole := course.Hole(update.HoleNumber)
	if hole == nil {
		return nil, fmt.Errorf("%w: %d", ErrHoleOutOfRange, update.HoleNumber)
	}
	if update.HoleNumber != game.CurrentHole {
		return nil, fmt.Errorf("%w: saving %d while on %d", ErrHoleNotCurrent, update.HoleNumber, game.CurrentHole)
	}

	bankerID, overridden, err := ResolveBanker(game, hole.Number, update.BankerOverride)
	if err != nil {
		return nil, err
	}

	holeScore, err := SettleHole(&SettleHoleInput{
		Hole:             hole,
		Players:          game.Players,
		BankerID:         bankerID,
		BankerOverridden: overridden,
		Scores:           update.Scores,
		Presses:          update.Presses,
		Wagers:           update.Wagers,
		BankerPressed:    update.BankerPressed,
	})
	if err != nil {
		return nil, err
	}

	next := game.Clone()
	next.HoleScores[hole.Number] = holeScore

	if course.IsLastHole(hole.Number) {
		next.Status = models.GameStatusCompleted
	} else {
		next.CurrentHole = hole.Number + 1
	}

	return next, nil
}

// PreviousHole moves back one hole for viewing or editing. Recorded holes are
// left untouched.
func PreviousHole(game *models.Game) (*models.Game, error) {
	if game.Status.IsCompleted() {
		return nil, ErrGameCompleted
	}
	if game.CurrentHole <= 1 {
		return nil, ErrNoPreviousHole
	}

	next := game.Clone()
	next.CurrentHole--
	return next, nil
}
