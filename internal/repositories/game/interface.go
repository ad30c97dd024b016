package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/banker/internal/repositories/game Repository

import (
	"context"

	"github.com/KirkDiggler/banker/internal/models"
)

// Repository defines the interface for game data persistence
type Repository interface {
	// SaveGame persists a game snapshot, replacing any earlier one
	SaveGame(ctx context.Context, input *SaveGameInput) error

	// GetGame retrieves a game by ID
	GetGame(ctx context.Context, input *GetGameInput) (*models.Game, error)

	// DeleteGame removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// GetActiveGames retrieves all games still in progress, newest first
	GetActiveGames(ctx context.Context, input *GetActiveGamesInput) (*GetActiveGamesOutput, error)
}
