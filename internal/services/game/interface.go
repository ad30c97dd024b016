package game

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/banker/internal/services/game Service

// Service defines the interface for running Banker rounds
type Service interface {
	// CreateGame starts a round for registered players on a course
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame returns a game with its course
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// ListActiveGames returns every round still in progress
	ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error)

	// AbandonGame deletes a game and its ledger entries
	AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error)

	// GetHoleSetup describes the current hole before scores are entered
	GetHoleSetup(ctx context.Context, input *GetHoleSetupInput) (*GetHoleSetupOutput, error)

	// SaveHole settles the current hole and advances the game
	SaveHole(ctx context.Context, input *SaveHoleInput) (*SaveHoleOutput, error)

	// PreviousHole moves the game back one hole for editing
	PreviousHole(ctx context.Context, input *PreviousHoleInput) (*PreviousHoleOutput, error)

	// GetSummary returns the leaderboard for a game
	GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error)

	// GetHoleResults returns the net result of every recorded hole
	GetHoleResults(ctx context.Context, input *GetHoleResultsInput) (*GetHoleResultsOutput, error)

	// GetPlayerTab returns what a player owes and has collected
	GetPlayerTab(ctx context.Context, input *GetPlayerTabInput) (*GetPlayerTabOutput, error)

	// RegisterPlayer adds or updates a player on the roster
	RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error)

	// ListPlayers returns the roster
	ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error)
}
