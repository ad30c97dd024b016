package banker

import "errors"

// BankerError is a custom error type for settlement and state machine errors
type BankerError string

// Error implements the error interface
func (e BankerError) Error() string {
	return string(e)
}

// Precondition errors are recoverable: nothing is settled or replaced and the
// caller should re-prompt for input.
const (
	ErrMissingScore   BankerError = "missing raw score for player"
	ErrInvalidScore   BankerError = "raw score must be at least 1"
	ErrInvalidWager   BankerError = "wager must be at least 1"
	ErrHoleOutOfRange BankerError = "hole number outside course"
	ErrHoleNotCurrent BankerError = "only the current hole can be saved"
	ErrGameCompleted  BankerError = "game is already completed"
	ErrNoPreviousHole BankerError = "already on the first hole"
)

// Invariant errors mean the game or course is malformed.
const (
	ErrEmptyRoster        BankerError = "roster is empty"
	ErrDuplicatePlayer    BankerError = "player appears more than once in roster"
	ErrInvalidHandicap    BankerError = "player handicap out of range"
	ErrBankerNotInRoster  BankerError = "banker is not in the roster"
	ErrInvalidBankerOrder BankerError = "banker order must contain every player exactly once"
	ErrInvalidCourse      BankerError = "course holes must be numbered 1..N"
	ErrHoleRankOutOfRange BankerError = "hole difficulty rank out of course range"
	ErrCorruptGame        BankerError = "game state does not fit the course"
)

var preconditionErrors = []error{
	ErrMissingScore,
	ErrInvalidScore,
	ErrInvalidWager,
	ErrHoleOutOfRange,
	ErrHoleNotCurrent,
	ErrGameCompleted,
	ErrNoPreviousHole,
}

// IsPrecondition reports whether err is a recoverable input problem rather
// than a malformed game or course
func IsPrecondition(err error) bool {
	for _, target := range preconditionErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
