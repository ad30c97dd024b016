package player

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/banker/internal/repositories/player Repository

import (
	"context"

	"github.com/KirkDiggler/banker/internal/models"
)

// Repository defines the interface for the player roster
type Repository interface {
	// SavePlayer persists a player and adds them to the roster
	SavePlayer(ctx context.Context, input *SavePlayerInput) error

	// GetPlayer retrieves a player by ID
	GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error)

	// GetPlayers retrieves several players by ID, in the requested order
	GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error)

	// ListPlayers retrieves the whole roster ordered by name
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)

	// DeletePlayer removes a player from the roster
	DeletePlayer(ctx context.Context, input *DeletePlayerInput) error
}
