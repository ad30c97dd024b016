package models

const (
	// MinHandicap is the lowest handicap a player can carry
	MinHandicap = 0

	// MaxHandicap is the highest handicap a player can carry
	MaxHandicap = 54
)

// Player represents a golfer on the roster
type Player struct {
	// ID is the unique, stable identifier of the player
	ID string

	// Name is the player's full name
	Name string

	// DisplayName is the short name shown on the scorecard
	DisplayName string

	// Handicap is the player's course handicap
	Handicap int
}
