package main

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/banker/internal/banker"
	"github.com/KirkDiggler/banker/internal/models"
	gameService "github.com/KirkDiggler/banker/internal/services/game"
	gameMocks "github.com/KirkDiggler/banker/internal/services/game/mocks"
	"github.com/KirkDiggler/banker/internal/services/messaging"
)

type CLITestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockGames *gameMocks.MockService
	app       *app
	game      *models.Game
}

func (s *CLITestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGames = gameMocks.NewMockService(s.mockCtrl)

	messages, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)
	s.app = &app{
		ctx:      context.Background(),
		games:    s.mockGames,
		messages: messages,
		tone:     messaging.ToneNeutral,
	}

	s.game = &models.Game{
		ID: "game-1",
		Players: []*models.Player{
			{ID: "p1", Name: "Alice Smith", DisplayName: "Alice"},
			{ID: "p2", Name: "Bob Jones", DisplayName: "Bob"},
		},
	}
}

func (s *CLITestSuite) TestErrorType() {
	testCases := []struct {
		err  error
		want messaging.ErrorType
	}{
		{fmt.Errorf("%w: p2", banker.ErrMissingScore), messaging.ErrorTypeMissingScore},
		{banker.ErrInvalidScore, messaging.ErrorTypeInvalidScore},
		{fmt.Errorf("wrapped: %w", banker.ErrInvalidWager), messaging.ErrorTypeInvalidWager},
		{banker.ErrHoleNotCurrent, messaging.ErrorTypeWrongHole},
		{banker.ErrHoleOutOfRange, messaging.ErrorTypeWrongHole},
		{banker.ErrGameCompleted, messaging.ErrorTypeGameCompleted},
		{banker.ErrNoPreviousHole, messaging.ErrorTypeFirstHole},
		{fmt.Errorf("%w: 60", banker.ErrInvalidHandicap), messaging.ErrorTypeBadHandicap},
		{gameService.ErrGameNotFound, messaging.ErrorTypeGameNotFound},
		{fmt.Errorf("%w: ghost", gameService.ErrPlayerNotFound), messaging.ErrorTypePlayerNotFound},
		{gameService.ErrCourseNotFound, messaging.ErrorTypeCourseNotFound},
		{gameService.ErrInvalidRosterSize, messaging.ErrorTypeRosterSize},
		{fmt.Errorf("redis: connection refused"), messaging.ErrorTypeUnknown},
	}

	for _, tc := range testCases {
		s.Run(tc.err.Error(), func() {
			s.Equal(tc.want, errorType(tc.err))
		})
	}
}

func (s *CLITestSuite) TestResolvePlayerID() {
	testCases := []struct {
		key    string
		want   string
		wantOK bool
	}{
		{"p1", "p1", true},
		{"bob", "p2", true},
		{"ALICE", "p1", true},
		{"Bob Jones", "p2", true},
		{"carol", "", false},
	}

	for _, tc := range testCases {
		s.Run(tc.key, func() {
			id, ok := resolvePlayerID(s.game, tc.key)
			s.Equal(tc.wantOK, ok)
			s.Equal(tc.want, id)
		})
	}
}

func (s *CLITestSuite) TestByPlayerID() {
	scores, err := byPlayerID(s.game, map[string]int{"alice": 4, "p2": 5})
	s.Require().NoError(err)
	s.Equal(map[string]int{"p1": 4, "p2": 5}, scores)

	_, err = byPlayerID(s.game, map[string]int{"carol": 3})
	s.ErrorIs(err, gameService.ErrPlayerNotFound)
}

func (s *CLITestSuite) TestOutcomeForBanker() {
	hs := &models.HoleScore{
		BankerID:      "p1",
		BankerPressed: true,
		Matches: []*models.BankerMatch{
			{PlayerID: "p2", Result: 2, PlayerPressed: true},
			{PlayerID: "p3", Result: -4},
			{PlayerID: "p4", Result: 0},
			{PlayerID: "p5", Result: 1},
		},
	}

	o := outcomeForBanker(hs)
	s.Equal(2, o.won)
	s.Equal(1, o.lost)
	s.Equal(1, o.pushed)
	s.Equal(2, o.presses)
}

func (s *CLITestSuite) TestFormatting() {
	s.Equal("+3", signed(3))
	s.Equal("-2", signed(-2))
	s.Equal("0", signed(0))

	s.Equal("banker +1", strokeLabel(1))
	s.Equal("player +1", strokeLabel(-1))
	s.Equal("-", strokeLabel(0))

	s.Equal("Alice", displayName(s.game, "p1"))
	s.Equal("ghost", displayName(s.game, "ghost"))

	s.Equal("1b4e28ba", shortID("1b4e28ba-2fa1-11d2-883f-0016d3cca427"))
	s.Equal("plain", shortID("plain"))
}

func (s *CLITestSuite) TestScoreResolvesNames() {
	s.game.CurrentHole = 3
	s.mockGames.EXPECT().
		GetGame(s.app.ctx, &gameService.GetGameInput{GameID: "game-1"}).
		Return(&gameService.GetGameOutput{Game: s.game, Course: &models.Course{Name: "Test"}}, nil)

	hs := &models.HoleScore{
		HoleNumber: 3,
		BankerID:   "p1",
		Matches: []*models.BankerMatch{
			{BankerID: "p1", PlayerID: "p2", BankerScore: 4, PlayerScore: 5, Result: 4, BetAmount: 4, PlayerPressed: true},
		},
	}
	s.mockGames.EXPECT().
		SaveHole(s.app.ctx, &gameService.SaveHoleInput{
			GameID:         "game-1",
			HoleNumber:     3,
			Scores:         map[string]int{"p1": 4, "p2": 5},
			Presses:        map[string]bool{"p2": true},
			DefaultWager:   2,
			PlayerWagers:   map[string]int{},
			BankerOverride: "p1",
		}).
		Return(&gameService.SaveHoleOutput{
			Game:      s.game,
			HoleScore: hs,
			Result:    &models.HoleResult{HoleNumber: 3, BankerID: "p1", Net: map[string]int{"p1": 4, "p2": -4}},
		}, nil)

	cmd := &ScoreCmd{
		Game:   "game-1",
		Score:  map[string]int{"alice": 4, "Bob": 5},
		Press:  []string{"bob"},
		Wager:  2,
		Banker: "Alice",
	}
	s.NoError(cmd.Run(s.app))
}

func (s *CLITestSuite) TestScoreUnknownPlayer() {
	s.mockGames.EXPECT().
		GetGame(s.app.ctx, gomock.Any()).
		Return(&gameService.GetGameOutput{Game: s.game}, nil)

	cmd := &ScoreCmd{
		Game:  "game-1",
		Score: map[string]int{"alice": 4, "carol": 5},
	}
	err := cmd.Run(s.app)
	s.ErrorIs(err, gameService.ErrPlayerNotFound)
	s.Equal(messaging.ErrorTypePlayerNotFound, errorType(err))
}

func (s *CLITestSuite) TestBackReportsFirstHole() {
	s.mockGames.EXPECT().
		PreviousHole(s.app.ctx, &gameService.PreviousHoleInput{GameID: "game-1"}).
		Return(nil, banker.ErrNoPreviousHole)

	err := (&BackCmd{Game: "game-1"}).Run(s.app)
	s.Equal(messaging.ErrorTypeFirstHole, errorType(err))
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
