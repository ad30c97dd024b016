package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/banker/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for settlement ledger persistence
type Repository interface {
	// ReplaceHoleEntries swaps every entry recorded for a hole with a new set
	ReplaceHoleEntries(ctx context.Context, input *ReplaceHoleEntriesInput) error

	// GetEntriesForGame retrieves all entries for a game ordered by hole
	GetEntriesForGame(ctx context.Context, input *GetEntriesForGameInput) (*GetEntriesForGameOutput, error)

	// GetEntriesForPlayer retrieves the entries a player paid or collected
	GetEntriesForPlayer(ctx context.Context, input *GetEntriesForPlayerInput) (*GetEntriesForPlayerOutput, error)

	// GetPlayerTotals retrieves the running amounts a player has owed and collected
	GetPlayerTotals(ctx context.Context, input *GetPlayerTotalsInput) (*GetPlayerTotalsOutput, error)

	// DeleteEntriesForGame removes every entry for a game
	DeleteEntriesForGame(ctx context.Context, input *DeleteEntriesForGameInput) error
}
