package ledger

import "github.com/KirkDiggler/banker/internal/models"

// ReplaceHoleEntriesInput contains the new entries for one hole of a game
type ReplaceHoleEntriesInput struct {
	GameID     string
	HoleNumber int
	Entries    []*models.LedgerEntry
}

// GetEntriesForGameInput contains parameters for retrieving a game's entries
type GetEntriesForGameInput struct {
	GameID string
}

// GetEntriesForGameOutput contains the entries for a game
type GetEntriesForGameOutput struct {
	Entries []*models.LedgerEntry
}

// GetEntriesForPlayerInput contains parameters for retrieving a player's entries
type GetEntriesForPlayerInput struct {
	PlayerID string

	// GameID optionally limits the result to one game
	GameID string
}

// GetEntriesForPlayerOutput contains the entries for a player
type GetEntriesForPlayerOutput struct {
	Entries []*models.LedgerEntry
}

// GetPlayerTotalsInput contains parameters for retrieving a player's totals
type GetPlayerTotalsInput struct {
	PlayerID string
}

// GetPlayerTotalsOutput contains a player's totals across every game
type GetPlayerTotalsOutput struct {
	Owed      int
	Collected int
}

// DeleteEntriesForGameInput contains parameters for clearing a game's entries
type DeleteEntriesForGameInput struct {
	GameID string
}
