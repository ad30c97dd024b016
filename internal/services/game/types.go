package game

import (
	"github.com/KirkDiggler/banker/internal/banker"
	"github.com/KirkDiggler/banker/internal/common/clock"
	"github.com/KirkDiggler/banker/internal/common/uuid"
	"github.com/KirkDiggler/banker/internal/course"
	"github.com/KirkDiggler/banker/internal/models"
	gameRepo "github.com/KirkDiggler/banker/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/banker/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/banker/internal/repositories/player"
	"github.com/KirkDiggler/banker/internal/shuffle"
)

// Config holds the settings and dependencies for the game service
type Config struct {
	// MaxPlayers caps the roster of a new game
	MaxPlayers int

	// DefaultWager is suggested when no earlier hole carries a wager
	DefaultWager int

	// Repository dependencies
	GameRepo   gameRepo.Repository
	PlayerRepo playerRepo.Repository
	LedgerRepo ledgerRepo.Repository

	// Service dependencies
	Courses       course.Catalog
	Shuffler      shuffle.Shuffler
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateGameInput contains parameters for creating a new game
type CreateGameInput struct {
	CourseID int

	// PlayerIDs lists registered players; the banker order is shuffled from it
	PlayerIDs []string
}

// CreateGameOutput contains the result of creating a new game
type CreateGameOutput struct {
	Game   *models.Game
	Course *models.Course
}

// GetGameInput contains parameters for retrieving a game
type GetGameInput struct {
	GameID string
}

// GetGameOutput contains a game and the course it is played on
type GetGameOutput struct {
	Game   *models.Game
	Course *models.Course
}

// ListActiveGamesInput contains parameters for listing active games
type ListActiveGamesInput struct {
}

// ListActiveGamesOutput contains the games still in progress, newest first
type ListActiveGamesOutput struct {
	Games []*models.Game
}

// AbandonGameInput contains parameters for abandoning a game
type AbandonGameInput struct {
	GameID string
}

// AbandonGameOutput contains the result of abandoning a game
type AbandonGameOutput struct {
}

// GetHoleSetupInput contains parameters for preparing the current hole
type GetHoleSetupInput struct {
	GameID string

	// BankerOverride optionally picks the banker for this hole
	BankerOverride string
}

// GetHoleSetupOutput describes the hole about to be scored
type GetHoleSetupOutput struct {
	Game   *models.Game
	Course *models.Course
	Setup  *banker.HoleSetup

	// RunningTotals holds each player's winnings before this hole
	RunningTotals map[string]int
}

// SaveHoleInput contains the scores and wagers for the current hole
type SaveHoleInput struct {
	GameID     string
	HoleNumber int

	// Scores maps player ID to raw score
	Scores map[string]int

	// Presses maps player ID to that player's press flag
	Presses map[string]bool

	// DefaultWager is the base wager; zero uses the suggested wager
	DefaultWager int

	// PlayerWagers overrides the base wager per player
	PlayerWagers map[string]int

	BankerPressed  bool
	BankerOverride string
}

// SaveHoleOutput contains the settled hole and the advanced game
type SaveHoleOutput struct {
	Game      *models.Game
	HoleScore *models.HoleScore
	Result    *models.HoleResult

	// Completed is true when this save finished the round
	Completed bool
}

// PreviousHoleInput contains parameters for moving back a hole
type PreviousHoleInput struct {
	GameID string
}

// PreviousHoleOutput contains the game positioned on the previous hole
type PreviousHoleOutput struct {
	Game *models.Game
}

// GetSummaryInput contains parameters for the leaderboard
type GetSummaryInput struct {
	GameID string

	// ThroughHole limits the summary to holes up to and including it; zero
	// includes every recorded hole
	ThroughHole int
}

// GetSummaryOutput contains the leaderboard ordered by winnings
type GetSummaryOutput struct {
	Game        *models.Game
	Leaderboard []*models.GameSummary
}

// GetHoleResultsInput contains parameters for the hole by hole breakdown
type GetHoleResultsInput struct {
	GameID string
}

// GetHoleResultsOutput contains one zero-sum result per recorded hole
type GetHoleResultsOutput struct {
	Game    *models.Game
	Results []*models.HoleResult
}

// GetPlayerTabInput contains parameters for a player's ledger view
type GetPlayerTabInput struct {
	PlayerID string

	// GameID optionally limits the tab to one game
	GameID string
}

// GetPlayerTabOutput contains a player's ledger entries and totals
type GetPlayerTabOutput struct {
	Entries   []*models.LedgerEntry
	Owed      int
	Collected int
	Net       int
}

// RegisterPlayerInput contains parameters for adding or updating a player
type RegisterPlayerInput struct {
	// PlayerID updates an existing player when set
	PlayerID    string
	Name        string
	DisplayName string
	Handicap    int
}

// RegisterPlayerOutput contains the saved player
type RegisterPlayerOutput struct {
	Player *models.Player
}

// ListPlayersInput contains parameters for listing the roster
type ListPlayersInput struct {
}

// ListPlayersOutput contains the roster
type ListPlayersOutput struct {
	Players []*models.Player
}
