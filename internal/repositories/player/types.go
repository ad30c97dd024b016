package player

import "github.com/KirkDiggler/banker/internal/models"

// SavePlayerInput contains parameters for saving a player
type SavePlayerInput struct {
	Player *models.Player
}

// GetPlayerInput contains parameters for retrieving a player
type GetPlayerInput struct {
	PlayerID string
}

// GetPlayersInput contains parameters for retrieving several players
type GetPlayersInput struct {
	PlayerIDs []string
}

// GetPlayersOutput contains the players in the requested order
type GetPlayersOutput struct {
	Players []*models.Player
}

// ListPlayersInput contains parameters for listing the roster
type ListPlayersInput struct {
}

// ListPlayersOutput contains the roster
type ListPlayersOutput struct {
	Players []*models.Player
}

// DeletePlayerInput contains parameters for removing a player
type DeletePlayerInput struct {
	PlayerID string
}
