package models

import (
	"time"
)

// LedgerEntry records money owed from one player to another for a hole
type LedgerEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// GameID is the game the entry was settled in
	GameID string

	// HoleNumber is the hole the entry was settled on
	HoleNumber int

	// FromPlayerID is the player who lost the match and pays
	FromPlayerID string

	// ToPlayerID is the player who won the match and collects
	ToPlayerID string

	// Amount is the positive amount owed
	Amount int

	// Timestamp is when the hole was saved
	Timestamp time.Time
}
