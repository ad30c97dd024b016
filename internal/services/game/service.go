package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

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

const minPlayers = 2

// service implements the Service interface
type service struct {
	maxPlayers   int
	defaultWager int

	gameRepo   gameRepo.Repository
	playerRepo playerRepo.Repository
	ledgerRepo ledgerRepo.Repository

	courses       course.Catalog
	shuffler      shuffle.Shuffler
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}
	if cfg.PlayerRepo == nil {
		return nil, ErrNilPlayerRepo
	}
	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}
	if cfg.Courses == nil {
		return nil, ErrNilCourseCatalog
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.MaxPlayers < minPlayers {
		return nil, fmt.Errorf("%w: max players %d", ErrInvalidConfig, cfg.MaxPlayers)
	}
	if cfg.DefaultWager < 1 {
		return nil, fmt.Errorf("%w: default wager %d", ErrInvalidConfig, cfg.DefaultWager)
	}

	return &service{
		maxPlayers:    cfg.MaxPlayers,
		defaultWager:  cfg.DefaultWager,
		gameRepo:      cfg.GameRepo,
		playerRepo:    cfg.PlayerRepo,
		ledgerRepo:    cfg.LedgerRepo,
		courses:       cfg.Courses,
		shuffler:      cfg.Shuffler,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateGame starts a round with a shuffled banker order
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if len(input.PlayerIDs) < minPlayers || len(input.PlayerIDs) > s.maxPlayers {
		return nil, fmt.Errorf("%w: got %d, want %d to %d", ErrInvalidRosterSize, len(input.PlayerIDs), minPlayers, s.maxPlayers)
	}

	c, err := s.getCourse(input.CourseID)
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.GetPlayers(ctx, &playerRepo.GetPlayersInput{
		PlayerIDs: input.PlayerIDs,
	})
	if err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrPlayerNotFound, err)
		}
		return nil, err
	}

	now := s.clock.Now()
	game, err := banker.NewGame(&banker.NewGameInput{
		ID:          s.uuidGenerator.NewUUID(),
		Course:      c,
		Players:     players.Players,
		BankerOrder: s.shuffler.Shuffle(input.PlayerIDs),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: game}); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"gameId":      game.ID,
		"courseId":    c.ID,
		"bankerOrder": game.BankerOrder,
	}).Info("Game created")

	return &CreateGameOutput{
		Game:   game,
		Course: c,
	}, nil
}

// GetGame retrieves a game and its course
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	game, c, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game:   game,
		Course: c,
	}, nil
}

// ListActiveGames retrieves every game still in progress
func (s *service) ListActiveGames(ctx context.Context, input *ListActiveGamesInput) (*ListActiveGamesOutput, error) {
	out, err := s.gameRepo.GetActiveGames(ctx, &gameRepo.GetActiveGamesInput{})
	if err != nil {
		return nil, err
	}

	return &ListActiveGamesOutput{
		Games: out.Games,
	}, nil
}

// AbandonGame removes a game and every ledger entry it produced
func (s *service) AbandonGame(ctx context.Context, input *AbandonGameInput) (*AbandonGameOutput, error) {
	if _, err := s.getGame(ctx, input.GameID); err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.DeleteEntriesForGame(ctx, &ledgerRepo.DeleteEntriesForGameInput{
		GameID: input.GameID,
	}); err != nil {
		return nil, err
	}

	if err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{GameID: input.GameID}); err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	log.WithField("gameId", input.GameID).Info("Game abandoned")

	return &AbandonGameOutput{}, nil
}

// GetHoleSetup resolves the banker, strokes and wager for the current hole
func (s *service) GetHoleSetup(ctx context.Context, input *GetHoleSetupInput) (*GetHoleSetupOutput, error) {
	game, c, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	setup, err := banker.PrepareHole(game, c, input.BankerOverride, s.defaultWager)
	if err != nil {
		return nil, err
	}

	return &GetHoleSetupOutput{
		Game:          game,
		Course:        c,
		Setup:         setup,
		RunningTotals: banker.RunningTotals(game, setup.Hole.Number),
	}, nil
}

// SaveHole settles the current hole, persists the advanced game and replaces
// the hole's ledger entries
func (s *service) SaveHole(ctx context.Context, input *SaveHoleInput) (*SaveHoleOutput, error) {
	game, c, err := s.loadGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	wager := input.DefaultWager
	if wager == 0 {
		setup, err := banker.PrepareHole(game, c, input.BankerOverride, s.defaultWager)
		if err != nil {
			return nil, err
		}
		wager = setup.DefaultWager
	}

	next, err := banker.SaveHole(game, c, &banker.HoleUpdate{
		HoleNumber: input.HoleNumber,
		Scores:     input.Scores,
		Presses:    input.Presses,
		Wagers: banker.Wagers{
			Default:   wager,
			PerPlayer: input.PlayerWagers,
		},
		BankerPressed:  input.BankerPressed,
		BankerOverride: input.BankerOverride,
	})
	if err != nil {
		log.WithFields(log.Fields{
			"gameId":     input.GameID,
			"holeNumber": input.HoleNumber,
		}).WithError(err).Debug("Hole rejected")
		return nil, err
	}
	next.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: next}); err != nil {
		return nil, err
	}

	holeScore := next.HoleScore(input.HoleNumber)
	if err := s.ledgerRepo.ReplaceHoleEntries(ctx, &ledgerRepo.ReplaceHoleEntriesInput{
		GameID:     next.ID,
		HoleNumber: holeScore.HoleNumber,
		Entries:    s.ledgerEntries(next.ID, holeScore),
	}); err != nil {
		return nil, err
	}

	completed := next.Status.IsCompleted()
	result := banker.HoleBreakdown(holeScore)

	log.WithFields(log.Fields{
		"gameId":     next.ID,
		"holeNumber": holeScore.HoleNumber,
		"bankerId":   holeScore.BankerID,
		"bankerNet":  result.Net[holeScore.BankerID],
		"completed":  completed,
	}).Info("Hole saved")

	return &SaveHoleOutput{
		Game:      next,
		HoleScore: holeScore,
		Result:    result,
		Completed: completed,
	}, nil
}

// PreviousHole moves the game back one hole and persists it
func (s *service) PreviousHole(ctx context.Context, input *PreviousHoleInput) (*PreviousHoleOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	next, err := banker.PreviousHole(game)
	if err != nil {
		return nil, err
	}
	next.UpdatedAt = s.clock.Now()

	if err := s.gameRepo.SaveGame(ctx, &gameRepo.SaveGameInput{Game: next}); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"gameId":      next.ID,
		"currentHole": next.CurrentHole,
	}).Debug("Moved to previous hole")

	return &PreviousHoleOutput{
		Game: next,
	}, nil
}

// GetSummary folds the recorded holes into a leaderboard
func (s *service) GetSummary(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	holes := game.SortedHoleScores()
	if input.ThroughHole > 0 {
		filtered := holes[:0:0]
		for _, hs := range holes {
			if hs.HoleNumber <= input.ThroughHole {
				filtered = append(filtered, hs)
			}
		}
		holes = filtered
	}

	return &GetSummaryOutput{
		Game:        game,
		Leaderboard: banker.Leaderboard(banker.Summarize(holes, game.Players)),
	}, nil
}

// GetHoleResults returns the net result of each recorded hole in hole order
func (s *service) GetHoleResults(ctx context.Context, input *GetHoleResultsInput) (*GetHoleResultsOutput, error) {
	game, err := s.getGame(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	holes := game.SortedHoleScores()
	results := make([]*models.HoleResult, 0, len(holes))
	for _, hs := range holes {
		results = append(results, banker.HoleBreakdown(hs))
	}

	return &GetHoleResultsOutput{
		Game:    game,
		Results: results,
	}, nil
}

// GetPlayerTab returns a player's ledger entries with what they owe and collected
func (s *service) GetPlayerTab(ctx context.Context, input *GetPlayerTabInput) (*GetPlayerTabOutput, error) {
	if _, err := s.playerRepo.GetPlayer(ctx, &playerRepo.GetPlayerInput{PlayerID: input.PlayerID}); err != nil {
		if errors.Is(err, playerRepo.ErrPlayerNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}

	entries, err := s.ledgerRepo.GetEntriesForPlayer(ctx, &ledgerRepo.GetEntriesForPlayerInput{
		PlayerID: input.PlayerID,
		GameID:   input.GameID,
	})
	if err != nil {
		return nil, err
	}

	out := &GetPlayerTabOutput{
		Entries: entries.Entries,
	}

	if input.GameID != "" {
		for _, e := range entries.Entries {
			if e.FromPlayerID == input.PlayerID {
				out.Owed += e.Amount
			}
			if e.ToPlayerID == input.PlayerID {
				out.Collected += e.Amount
			}
		}
	} else {
		totals, err := s.ledgerRepo.GetPlayerTotals(ctx, &ledgerRepo.GetPlayerTotalsInput{
			PlayerID: input.PlayerID,
		})
		if err != nil {
			return nil, err
		}
		out.Owed = totals.Owed
		out.Collected = totals.Collected
	}
	out.Net = out.Collected - out.Owed

	return out, nil
}

// RegisterPlayer validates and saves a player to the roster
func (s *service) RegisterPlayer(ctx context.Context, input *RegisterPlayerInput) (*RegisterPlayerOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidPlayerName
	}
	if input.Handicap < models.MinHandicap || input.Handicap > models.MaxHandicap {
		return nil, fmt.Errorf("%w: %d", banker.ErrInvalidHandicap, input.Handicap)
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		displayName = strings.Fields(name)[0]
	}

	id := input.PlayerID
	if id == "" {
		id = s.uuidGenerator.NewUUID()
	}

	p := &models.Player{
		ID:          id,
		Name:        name,
		DisplayName: displayName,
		Handicap:    input.Handicap,
	}
	if err := s.playerRepo.SavePlayer(ctx, &playerRepo.SavePlayerInput{Player: p}); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"playerId": p.ID,
		"handicap": p.Handicap,
	}).Info("Player registered")

	return &RegisterPlayerOutput{
		Player: p,
	}, nil
}

// ListPlayers returns the registered roster
func (s *service) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	out, err := s.playerRepo.ListPlayers(ctx, &playerRepo.ListPlayersInput{})
	if err != nil {
		return nil, err
	}

	return &ListPlayersOutput{
		Players: out.Players,
	}, nil
}

func (s *service) getGame(ctx context.Context, gameID string) (*models.Game, error) {
	game, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{GameID: gameID})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}
	return game, nil
}

func (s *service) getCourse(courseID int) (*models.Course, error) {
	c, err := s.courses.GetCourse(courseID)
	if err != nil {
		if errors.Is(err, course.ErrCourseNotFound) {
			return nil, fmt.Errorf("%w: %d", ErrCourseNotFound, courseID)
		}
		return nil, err
	}
	return c, nil
}

func (s *service) loadGame(ctx context.Context, gameID string) (*models.Game, *models.Course, error) {
	game, err := s.getGame(ctx, gameID)
	if err != nil {
		return nil, nil, err
	}
	c, err := s.getCourse(game.CourseID)
	if err != nil {
		return nil, nil, err
	}
	return game, c, nil
}

// ledgerEntries records one transfer per decided match. The loser pays the
// winner the settled wager.
func (s *service) ledgerEntries(gameID string, hs *models.HoleScore) []*models.LedgerEntry {
	now := s.clock.Now()
	entries := make([]*models.LedgerEntry, 0, len(hs.Matches))
	for _, m := range hs.Matches {
		if m.Result == 0 {
			continue
		}

		from, to, amount := m.PlayerID, m.BankerID, m.Result
		if m.Result < 0 {
			from, to, amount = m.BankerID, m.PlayerID, -m.Result
		}

		entries = append(entries, &models.LedgerEntry{
			ID:           s.uuidGenerator.NewUUID(),
			GameID:       gameID,
			HoleNumber:   hs.HoleNumber,
			FromPlayerID: from,
			ToPlayerID:   to,
			Amount:       amount,
			Timestamp:    now,
		})
	}
	return entries
}
