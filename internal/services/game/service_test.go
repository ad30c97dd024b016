package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coder/quartz"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/banker/internal/banker"
	uuidMocks "github.com/KirkDiggler/banker/internal/common/uuid/mocks"
	"github.com/KirkDiggler/banker/internal/course"
	courseMocks "github.com/KirkDiggler/banker/internal/course/mocks"
	"github.com/KirkDiggler/banker/internal/models"
	gameRepo "github.com/KirkDiggler/banker/internal/repositories/game"
	gameMocks "github.com/KirkDiggler/banker/internal/repositories/game/mocks"
	ledgerRepo "github.com/KirkDiggler/banker/internal/repositories/ledger"
	ledgerMocks "github.com/KirkDiggler/banker/internal/repositories/ledger/mocks"
	playerRepo "github.com/KirkDiggler/banker/internal/repositories/player"
	playerMocks "github.com/KirkDiggler/banker/internal/repositories/player/mocks"
	shuffleMocks "github.com/KirkDiggler/banker/internal/shuffle/mocks"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl       *gomock.Controller
	mockGameRepo   *gameMocks.MockRepository
	mockPlayerRepo *playerMocks.MockRepository
	mockLedgerRepo *ledgerMocks.MockRepository
	mockCourses    *courseMocks.MockCatalog
	mockShuffler   *shuffleMocks.MockShuffler
	mockUUID       *uuidMocks.MockUUID
	clock          *quartz.Mock
	gameService    *service
	ctx            context.Context

	// Test data
	testTime   time.Time
	testGameID string
	testCourse *models.Course
	alice      *models.Player
	bob        *models.Player
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGameRepo = gameMocks.NewMockRepository(s.mockCtrl)
	s.mockPlayerRepo = playerMocks.NewMockRepository(s.mockCtrl)
	s.mockLedgerRepo = ledgerMocks.NewMockRepository(s.mockCtrl)
	s.mockCourses = courseMocks.NewMockCatalog(s.mockCtrl)
	s.mockShuffler = shuffleMocks.NewMockShuffler(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.clock = quartz.NewMock(s.T())
	s.ctx = context.Background()

	s.testTime = s.clock.Now()
	s.testGameID = "game-1"
	s.testCourse = &models.Course{
		ID:   7,
		Name: "Two Hole Test",
		Holes: []*models.Hole{
			{Number: 1, Par: 4, Handicap: 1},
			{Number: 2, Par: 3, Handicap: 2},
		},
	}
	s.alice = &models.Player{ID: "alice", Name: "Alice Smith", DisplayName: "Alice", Handicap: 0}
	s.bob = &models.Player{ID: "bob", Name: "Bob Jones", DisplayName: "Bob", Handicap: 0}

	svc, err := New(s.config())
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *GameServiceTestSuite) config() *Config {
	return &Config{
		MaxPlayers:    4,
		DefaultWager:  2,
		GameRepo:      s.mockGameRepo,
		PlayerRepo:    s.mockPlayerRepo,
		LedgerRepo:    s.mockLedgerRepo,
		Courses:       s.mockCourses,
		Shuffler:      s.mockShuffler,
		Clock:         s.clock,
		UUIDGenerator: s.mockUUID,
	}
}

// activeGame returns a fresh two player game where alice banks first
func (s *GameServiceTestSuite) activeGame() *models.Game {
	game, err := banker.NewGame(&banker.NewGameInput{
		ID:          s.testGameID,
		Course:      s.testCourse,
		Players:     []*models.Player{s.alice, s.bob},
		BankerOrder: []string{"alice", "bob"},
		CreatedAt:   s.testTime,
	})
	s.Require().NoError(err)
	return game
}

func (s *GameServiceTestSuite) expectLoad(game *models.Game) {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: game.ID}).
		Return(game, nil)
	s.mockCourses.EXPECT().
		GetCourse(s.testCourse.ID).
		Return(s.testCourse, nil)
}

func (s *GameServiceTestSuite) TestNew() {
	testCases := []struct {
		name   string
		mutate func(cfg *Config) *Config
		want   error
	}{
		{"nil config", func(cfg *Config) *Config { return nil }, ErrNilConfig},
		{"nil game repo", func(cfg *Config) *Config { cfg.GameRepo = nil; return cfg }, ErrNilGameRepo},
		{"nil player repo", func(cfg *Config) *Config { cfg.PlayerRepo = nil; return cfg }, ErrNilPlayerRepo},
		{"nil ledger repo", func(cfg *Config) *Config { cfg.LedgerRepo = nil; return cfg }, ErrNilLedgerRepo},
		{"nil courses", func(cfg *Config) *Config { cfg.Courses = nil; return cfg }, ErrNilCourseCatalog},
		{"nil shuffler", func(cfg *Config) *Config { cfg.Shuffler = nil; return cfg }, ErrNilShuffler},
		{"nil clock", func(cfg *Config) *Config { cfg.Clock = nil; return cfg }, ErrNilClock},
		{"nil uuid", func(cfg *Config) *Config { cfg.UUIDGenerator = nil; return cfg }, ErrNilUUIDGenerator},
		{"max players", func(cfg *Config) *Config { cfg.MaxPlayers = 1; return cfg }, ErrInvalidConfig},
		{"default wager", func(cfg *Config) *Config { cfg.DefaultWager = 0; return cfg }, ErrInvalidConfig},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := New(tc.mutate(s.config()))
			s.ErrorIs(err, tc.want)
			s.Nil(svc)
		})
	}
}

func (s *GameServiceTestSuite) TestCreateGame() {
	s.Run("shuffles the banker order and saves the game", func() {
		s.mockCourses.EXPECT().GetCourse(7).Return(s.testCourse, nil)
		s.mockPlayerRepo.EXPECT().
			GetPlayers(s.ctx, &playerRepo.GetPlayersInput{PlayerIDs: []string{"alice", "bob"}}).
			Return(&playerRepo.GetPlayersOutput{Players: []*models.Player{s.alice, s.bob}}, nil)
		s.mockShuffler.EXPECT().
			Shuffle([]string{"alice", "bob"}).
			Return([]string{"bob", "alice"})
		s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

		var saved *models.Game
		s.mockGameRepo.EXPECT().
			SaveGame(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
				saved = input.Game
				return nil
			})

		out, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
			CourseID:  7,
			PlayerIDs: []string{"alice", "bob"},
		})
		s.Require().NoError(err)
		s.Same(saved, out.Game)
		s.Equal(s.testCourse, out.Course)
		s.Equal(s.testGameID, out.Game.ID)
		s.Equal([]string{"bob", "alice"}, out.Game.BankerOrder)
		s.Equal(1, out.Game.CurrentHole)
		s.Equal(models.GameStatusInProgress, out.Game.Status)
		s.Equal(s.testTime, out.Game.CreatedAt)
		s.Empty(out.Game.HoleScores)
	})

	s.Run("rejects a roster outside the allowed size", func() {
		_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
			CourseID:  7,
			PlayerIDs: []string{"alice"},
		})
		s.ErrorIs(err, ErrInvalidRosterSize)

		_, err = s.gameService.CreateGame(s.ctx, &CreateGameInput{
			CourseID:  7,
			PlayerIDs: []string{"a", "b", "c", "d", "e"},
		})
		s.ErrorIs(err, ErrInvalidRosterSize)
	})

	s.Run("unknown course", func() {
		s.mockCourses.EXPECT().GetCourse(99).Return(nil, course.ErrCourseNotFound)

		_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
			CourseID:  99,
			PlayerIDs: []string{"alice", "bob"},
		})
		s.ErrorIs(err, ErrCourseNotFound)
	})

	s.Run("unregistered player", func() {
		s.mockCourses.EXPECT().GetCourse(7).Return(s.testCourse, nil)
		s.mockPlayerRepo.EXPECT().
			GetPlayers(s.ctx, gomock.Any()).
			Return(nil, playerRepo.ErrPlayerNotFound)

		_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
			CourseID:  7,
			PlayerIDs: []string{"alice", "ghost"},
		})
		s.ErrorIs(err, ErrPlayerNotFound)
	})

	s.Run("duplicate player", func() {
		s.mockCourses.EXPECT().GetCourse(7).Return(s.testCourse, nil)
		s.mockPlayerRepo.EXPECT().
			GetPlayers(s.ctx, gomock.Any()).
			Return(&playerRepo.GetPlayersOutput{Players: []*models.Player{s.alice, s.alice}}, nil)
		s.mockShuffler.EXPECT().Shuffle(gomock.Any()).Return([]string{"alice", "alice"})
		s.mockUUID.EXPECT().NewUUID().Return(s.testGameID)

		_, err := s.gameService.CreateGame(s.ctx, &CreateGameInput{
			CourseID:  7,
			PlayerIDs: []string{"alice", "alice"},
		})
		s.ErrorIs(err, banker.ErrDuplicatePlayer)
	})
}

func (s *GameServiceTestSuite) TestGetGameNotFound() {
	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, &gameRepo.GetGameInput{GameID: "missing"}).
		Return(nil, gameRepo.ErrGameNotFound)

	_, err := s.gameService.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.ErrorIs(err, ErrGameNotFound)
}

func (s *GameServiceTestSuite) TestGetHoleSetup() {
	game := s.activeGame()
	s.expectLoad(game)

	out, err := s.gameService.GetHoleSetup(s.ctx, &GetHoleSetupInput{GameID: game.ID})
	s.Require().NoError(err)
	s.Equal(1, out.Setup.Hole.Number)
	s.Equal("alice", out.Setup.BankerID)
	s.Equal(2, out.Setup.DefaultWager)
	s.Equal(map[string]int{"alice": 0, "bob": 0}, out.RunningTotals)
}

func (s *GameServiceTestSuite) TestSaveHole() {
	s.Run("settles, advances and records the ledger", func() {
		game := s.activeGame()
		s.expectLoad(game)

		s.mockGameRepo.EXPECT().
			SaveGame(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
				s.Equal(2, input.Game.CurrentHole)
				return nil
			})
		s.mockUUID.EXPECT().NewUUID().Return("entry-1")
		s.mockLedgerRepo.EXPECT().
			ReplaceHoleEntries(s.ctx, &ledgerRepo.ReplaceHoleEntriesInput{
				GameID:     game.ID,
				HoleNumber: 1,
				Entries: []*models.LedgerEntry{{
					ID:           "entry-1",
					GameID:       game.ID,
					HoleNumber:   1,
					FromPlayerID: "bob",
					ToPlayerID:   "alice",
					Amount:       2,
					Timestamp:    s.testTime,
				}},
			}).
			Return(nil)

		out, err := s.gameService.SaveHole(s.ctx, &SaveHoleInput{
			GameID:     game.ID,
			HoleNumber: 1,
			Scores:     map[string]int{"alice": 4, "bob": 5},
		})
		s.Require().NoError(err)
		s.False(out.Completed)
		s.Equal(2, out.Game.CurrentHole)
		s.Equal(s.testTime, out.Game.UpdatedAt)
		s.Equal(2, out.HoleScore.BetAmount)
		s.Equal(map[string]int{"alice": 2, "bob": -2}, out.Result.Net)

		// the loaded game is left as it was
		s.Equal(1, game.CurrentHole)
		s.Empty(game.HoleScores)
	})

	s.Run("a pushed hole clears the ledger for that hole", func() {
		game := s.activeGame()
		s.expectLoad(game)

		s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
		s.mockLedgerRepo.EXPECT().
			ReplaceHoleEntries(s.ctx, &ledgerRepo.ReplaceHoleEntriesInput{
				GameID:     game.ID,
				HoleNumber: 1,
				Entries:    []*models.LedgerEntry{},
			}).
			Return(nil)

		out, err := s.gameService.SaveHole(s.ctx, &SaveHoleInput{
			GameID:       game.ID,
			HoleNumber:   1,
			Scores:       map[string]int{"alice": 4, "bob": 4},
			DefaultWager: 5,
		})
		s.Require().NoError(err)
		s.Equal(5, out.HoleScore.BetAmount)
		s.Equal(0, out.Result.Net["alice"])
	})

	s.Run("the last hole completes the game", func() {
		game := s.activeGame()
		game.CurrentHole = 2
		s.expectLoad(game)

		s.mockGameRepo.EXPECT().SaveGame(s.ctx, gomock.Any()).Return(nil)
		s.mockUUID.EXPECT().NewUUID().Return("entry-2")
		s.mockLedgerRepo.EXPECT().ReplaceHoleEntries(s.ctx, gomock.Any()).Return(nil)

		out, err := s.gameService.SaveHole(s.ctx, &SaveHoleInput{
			GameID:       game.ID,
			HoleNumber:   2,
			Scores:       map[string]int{"alice": 4, "bob": 3},
			Presses:      map[string]bool{"alice": true},
			DefaultWager: 1,
		})
		s.Require().NoError(err)
		s.True(out.Completed)
		s.Equal(models.GameStatusCompleted, out.Game.Status)
		s.Equal("bob", out.HoleScore.BankerID)
		s.Equal(map[string]int{"alice": -2, "bob": 2}, out.Result.Net)
	})

	s.Run("a missing score saves nothing", func() {
		game := s.activeGame()
		s.expectLoad(game)

		_, err := s.gameService.SaveHole(s.ctx, &SaveHoleInput{
			GameID:     game.ID,
			HoleNumber: 1,
			Scores:     map[string]int{"alice": 4},
		})
		s.ErrorIs(err, banker.ErrMissingScore)
		s.True(banker.IsPrecondition(err))
	})

	s.Run("saving a hole other than the current one", func() {
		game := s.activeGame()
		s.expectLoad(game)

		_, err := s.gameService.SaveHole(s.ctx, &SaveHoleInput{
			GameID:       game.ID,
			HoleNumber:   2,
			Scores:       map[string]int{"alice": 4, "bob": 4},
			DefaultWager: 1,
		})
		s.ErrorIs(err, banker.ErrHoleNotCurrent)
	})
}

func (s *GameServiceTestSuite) TestPreviousHole() {
	s.Run("moves back and persists", func() {
		game := s.activeGame()
		game.CurrentHole = 2
		s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(game, nil)
		s.mockGameRepo.EXPECT().
			SaveGame(s.ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
				s.Equal(1, input.Game.CurrentHole)
				return nil
			})

		out, err := s.gameService.PreviousHole(s.ctx, &PreviousHoleInput{GameID: game.ID})
		s.Require().NoError(err)
		s.Equal(1, out.Game.CurrentHole)
	})

	s.Run("already on the first hole", func() {
		s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.activeGame(), nil)

		_, err := s.gameService.PreviousHole(s.ctx, &PreviousHoleInput{GameID: s.testGameID})
		s.ErrorIs(err, banker.ErrNoPreviousHole)
	})
}

// TestLedgerMatchesSummary plays a full round through the service and checks
// that the ledger nets to the same totals as the leaderboard
func (s *GameServiceTestSuite) TestLedgerMatchesSummary() {
	stored := s.activeGame()
	var entries []*models.LedgerEntry

	s.mockGameRepo.EXPECT().
		GetGame(s.ctx, gomock.Any()).
		DoAndReturn(func(context.Context, *gameRepo.GetGameInput) (*models.Game, error) {
			return stored, nil
		}).
		AnyTimes()
	s.mockGameRepo.EXPECT().
		SaveGame(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *gameRepo.SaveGameInput) error {
			stored = input.Game
			return nil
		}).
		AnyTimes()
	s.mockCourses.EXPECT().GetCourse(s.testCourse.ID).Return(s.testCourse, nil).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().Return("entry").AnyTimes()
	s.mockLedgerRepo.EXPECT().
		ReplaceHoleEntries(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input *ledgerRepo.ReplaceHoleEntriesInput) error {
			kept := entries[:0:0]
			for _, e := range entries {
				if e.HoleNumber != input.HoleNumber {
					kept = append(kept, e)
				}
			}
			entries = append(kept, input.Entries...)
			return nil
		}).
		AnyTimes()

	save := func(in *SaveHoleInput) {
		in.GameID = s.testGameID
		_, err := s.gameService.SaveHole(s.ctx, in)
		s.Require().NoError(err)
	}

	save(&SaveHoleInput{HoleNumber: 1, Scores: map[string]int{"alice": 3, "bob": 5}, DefaultWager: 3, BankerPressed: true})

	// go back and flip the result of hole 1
	_, err := s.gameService.PreviousHole(s.ctx, &PreviousHoleInput{GameID: s.testGameID})
	s.Require().NoError(err)
	save(&SaveHoleInput{HoleNumber: 1, Scores: map[string]int{"alice": 5, "bob": 4}, DefaultWager: 3})

	save(&SaveHoleInput{HoleNumber: 2, Scores: map[string]int{"alice": 4, "bob": 5}, DefaultWager: 2})
	s.True(stored.Status.IsCompleted())
	s.Len(entries, 2)

	net := map[string]int{}
	for _, e := range entries {
		net[e.FromPlayerID] -= e.Amount
		net[e.ToPlayerID] += e.Amount
	}

	summary, err := s.gameService.GetSummary(s.ctx, &GetSummaryInput{GameID: s.testGameID})
	s.Require().NoError(err)
	s.Require().Len(summary.Leaderboard, 2)
	for _, row := range summary.Leaderboard {
		s.Equal(net[row.PlayerID], row.TotalWinnings, row.PlayerID)
	}
	s.Equal("bob", summary.Leaderboard[0].PlayerID)
	s.Equal(1, summary.Leaderboard[0].TotalWinnings)
}

func (s *GameServiceTestSuite) TestGetSummaryThroughHole() {
	game := s.activeGame()
	next, err := banker.SaveHole(game, s.testCourse, &banker.HoleUpdate{
		HoleNumber: 1,
		Scores:     map[string]int{"alice": 5, "bob": 4},
		Wagers:     banker.Wagers{Default: 1},
	})
	s.Require().NoError(err)
	next, err = banker.SaveHole(next, s.testCourse, &banker.HoleUpdate{
		HoleNumber: 2,
		Scores:     map[string]int{"alice": 3, "bob": 4},
		Wagers:     banker.Wagers{Default: 5},
	})
	s.Require().NoError(err)
	s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(next, nil).Times(3)

	out, err := s.gameService.GetSummary(s.ctx, &GetSummaryInput{GameID: next.ID, ThroughHole: 1})
	s.Require().NoError(err)
	s.Equal("bob", out.Leaderboard[0].PlayerID)
	s.Equal(1, out.Leaderboard[0].TotalWinnings)

	out, err = s.gameService.GetSummary(s.ctx, &GetSummaryInput{GameID: next.ID})
	s.Require().NoError(err)
	s.Equal("alice", out.Leaderboard[0].PlayerID)
	s.Equal(4, out.Leaderboard[0].TotalWinnings)
	s.Equal(1, out.Leaderboard[0].HolesWon)
	s.Equal(1, out.Leaderboard[0].HolesLost)

	results, err := s.gameService.GetHoleResults(s.ctx, &GetHoleResultsInput{GameID: next.ID})
	s.Require().NoError(err)
	s.Require().Len(results.Results, 2)
	s.Equal(1, results.Results[0].HoleNumber)
	s.Equal("alice", results.Results[0].BankerID)
	s.Equal(map[string]int{"alice": -1, "bob": 1}, results.Results[0].Net)
	s.Equal("bob", results.Results[1].BankerID)
	s.Equal(map[string]int{"alice": 5, "bob": -5}, results.Results[1].Net)
}

func (s *GameServiceTestSuite) TestGetPlayerTab() {
	entries := []*models.LedgerEntry{
		{ID: "1", GameID: "g", HoleNumber: 1, FromPlayerID: "bob", ToPlayerID: "alice", Amount: 3},
		{ID: "2", GameID: "g", HoleNumber: 2, FromPlayerID: "alice", ToPlayerID: "bob", Amount: 1},
	}

	s.Run("one game sums its entries", func() {
		s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, &playerRepo.GetPlayerInput{PlayerID: "alice"}).Return(s.alice, nil)
		s.mockLedgerRepo.EXPECT().
			GetEntriesForPlayer(s.ctx, &ledgerRepo.GetEntriesForPlayerInput{PlayerID: "alice", GameID: "g"}).
			Return(&ledgerRepo.GetEntriesForPlayerOutput{Entries: entries}, nil)

		out, err := s.gameService.GetPlayerTab(s.ctx, &GetPlayerTabInput{PlayerID: "alice", GameID: "g"})
		s.Require().NoError(err)
		s.Equal(1, out.Owed)
		s.Equal(3, out.Collected)
		s.Equal(2, out.Net)
		s.Len(out.Entries, 2)
	})

	s.Run("every game uses the stored totals", func() {
		s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(s.alice, nil)
		s.mockLedgerRepo.EXPECT().
			GetEntriesForPlayer(s.ctx, gomock.Any()).
			Return(&ledgerRepo.GetEntriesForPlayerOutput{Entries: entries}, nil)
		s.mockLedgerRepo.EXPECT().
			GetPlayerTotals(s.ctx, &ledgerRepo.GetPlayerTotalsInput{PlayerID: "alice"}).
			Return(&ledgerRepo.GetPlayerTotalsOutput{Owed: 10, Collected: 4}, nil)

		out, err := s.gameService.GetPlayerTab(s.ctx, &GetPlayerTabInput{PlayerID: "alice"})
		s.Require().NoError(err)
		s.Equal(-6, out.Net)
	})

	s.Run("unknown player", func() {
		s.mockPlayerRepo.EXPECT().GetPlayer(s.ctx, gomock.Any()).Return(nil, playerRepo.ErrPlayerNotFound)

		_, err := s.gameService.GetPlayerTab(s.ctx, &GetPlayerTabInput{PlayerID: "ghost"})
		s.ErrorIs(err, ErrPlayerNotFound)
	})
}

func (s *GameServiceTestSuite) TestRegisterPlayer() {
	s.Run("defaults the id and display name", func() {
		s.mockUUID.EXPECT().NewUUID().Return("player-1")
		s.mockPlayerRepo.EXPECT().
			SavePlayer(s.ctx, &playerRepo.SavePlayerInput{Player: &models.Player{
				ID:          "player-1",
				Name:        "Carol King",
				DisplayName: "Carol",
				Handicap:    18,
			}}).
			Return(nil)

		out, err := s.gameService.RegisterPlayer(s.ctx, &RegisterPlayerInput{Name: "  Carol King ", Handicap: 18})
		s.Require().NoError(err)
		s.Equal("player-1", out.Player.ID)
	})

	s.Run("keeps a given id", func() {
		s.mockPlayerRepo.EXPECT().SavePlayer(s.ctx, gomock.Any()).Return(nil)

		out, err := s.gameService.RegisterPlayer(s.ctx, &RegisterPlayerInput{
			PlayerID:    "alice",
			Name:        "Alice Smith",
			DisplayName: "Al",
			Handicap:    4,
		})
		s.Require().NoError(err)
		s.Equal("alice", out.Player.ID)
		s.Equal("Al", out.Player.DisplayName)
	})

	s.Run("rejects bad input", func() {
		_, err := s.gameService.RegisterPlayer(s.ctx, &RegisterPlayerInput{Name: " "})
		s.ErrorIs(err, ErrInvalidPlayerName)

		_, err = s.gameService.RegisterPlayer(s.ctx, &RegisterPlayerInput{Name: "Dan", Handicap: 55})
		s.ErrorIs(err, banker.ErrInvalidHandicap)
	})
}

func (s *GameServiceTestSuite) TestAbandonGame() {
	s.Run("deletes the ledger and the game", func() {
		s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.activeGame(), nil)
		gomock.InOrder(
			s.mockLedgerRepo.EXPECT().
				DeleteEntriesForGame(s.ctx, &ledgerRepo.DeleteEntriesForGameInput{GameID: s.testGameID}).
				Return(nil),
			s.mockGameRepo.EXPECT().
				DeleteGame(s.ctx, &gameRepo.DeleteGameInput{GameID: s.testGameID}).
				Return(nil),
		)

		_, err := s.gameService.AbandonGame(s.ctx, &AbandonGameInput{GameID: s.testGameID})
		s.NoError(err)
	})

	s.Run("ledger failure keeps the game", func() {
		s.mockGameRepo.EXPECT().GetGame(s.ctx, gomock.Any()).Return(s.activeGame(), nil)
		s.mockLedgerRepo.EXPECT().DeleteEntriesForGame(s.ctx, gomock.Any()).Return(errors.New("boom"))

		_, err := s.gameService.AbandonGame(s.ctx, &AbandonGameInput{GameID: s.testGameID})
		s.EqualError(err, "boom")
	})
}

func (s *GameServiceTestSuite) TestListing() {
	game := s.activeGame()
	s.mockGameRepo.EXPECT().
		GetActiveGames(s.ctx, &gameRepo.GetActiveGamesInput{}).
		Return(&gameRepo.GetActiveGamesOutput{Games: []*models.Game{game}}, nil)
	s.mockPlayerRepo.EXPECT().
		ListPlayers(s.ctx, &playerRepo.ListPlayersInput{}).
		Return(&playerRepo.ListPlayersOutput{Players: []*models.Player{s.alice, s.bob}}, nil)

	games, err := s.gameService.ListActiveGames(s.ctx, &ListActiveGamesInput{})
	s.Require().NoError(err)
	s.Equal([]*models.Game{game}, games.Games)

	players, err := s.gameService.ListPlayers(s.ctx, &ListPlayersInput{})
	s.Require().NoError(err)
	s.Len(players.Players, 2)
}

func TestGameServiceSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
