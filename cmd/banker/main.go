package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/KirkDiggler/banker/internal/common/clock"
	"github.com/KirkDiggler/banker/internal/common/uuid"
	"github.com/KirkDiggler/banker/internal/config"
	"github.com/KirkDiggler/banker/internal/course"
	gameRepo "github.com/KirkDiggler/banker/internal/repositories/game"
	ledgerRepo "github.com/KirkDiggler/banker/internal/repositories/ledger"
	playerRepo "github.com/KirkDiggler/banker/internal/repositories/player"
	gameService "github.com/KirkDiggler/banker/internal/services/game"
	"github.com/KirkDiggler/banker/internal/services/messaging"
	"github.com/KirkDiggler/banker/internal/shuffle"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`
	EnvFile string           `name:"env-file" default:".env" help:"Optional .env file to load"`
	Tone    string           `default:"neutral" enum:"neutral,funny" help:"Message tone (neutral|funny)"`

	Players PlayersCmd `cmd:"" help:"Manage the player roster"`
	Courses CoursesCmd `cmd:"" help:"List available courses"`
	New     NewCmd     `cmd:"" help:"Start a new round"`
	Setup   SetupCmd   `cmd:"" help:"Show the banker and strokes for the current hole"`
	Score   ScoreCmd   `cmd:"" help:"Record scores for the current hole"`
	Back    BackCmd    `cmd:"" help:"Move back one hole to edit it"`
	Summary SummaryCmd `cmd:"" help:"Show the leaderboard"`
	Holes   HolesCmd   `cmd:"" help:"Show the result of every hole"`
	Tab     TabCmd     `cmd:"" help:"Show what a player owes and has collected"`
	Games   GamesCmd   `cmd:"" help:"List rounds in progress"`
	Abandon AbandonCmd `cmd:"" help:"Delete a round and its ledger"`
}

// app holds the wired services every command runs against
type app struct {
	ctx      context.Context
	games    gameService.Service
	courses  course.Catalog
	messages messaging.Service
	tone     messaging.MessageTone
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("banker"),
		kong.Description("Settle Banker golf wagers hole by hole"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	cfg, err := config.Load(cli.EnvFile)
	kctx.FatalIfErrorf(err)
	log.SetLevel(cfg.LogLevel)

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	defer redisClient.Close()

	a, err := newApp(redisClient, cfg, messaging.MessageTone(cli.Tone))
	if err != nil {
		log.WithError(err).Fatal("Failed to start banker")
	}

	if err := kctx.Run(a); err != nil {
		a.reportError(err)
		os.Exit(1)
	}
}

func newApp(redisClient *redis.Client, cfg *config.Config, tone messaging.MessageTone) (*app, error) {
	ctx := context.Background()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.RedisAddr, err)
	}
	log.WithField("addr", cfg.RedisAddr).Debug("Connected to Redis")

	games, err := gameRepo.NewRedis(&gameRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create game repository: %w", err)
	}
	players, err := playerRepo.NewRedis(&playerRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create player repository: %w", err)
	}
	ledger, err := ledgerRepo.NewRedis(&ledgerRepo.Config{RedisClient: redisClient})
	if err != nil {
		return nil, fmt.Errorf("failed to create ledger repository: %w", err)
	}

	courses, err := course.New(&course.Config{File: cfg.CoursesFile})
	if err != nil {
		return nil, fmt.Errorf("failed to load courses: %w", err)
	}

	svc, err := gameService.New(&gameService.Config{
		MaxPlayers:    cfg.MaxPlayers,
		DefaultWager:  cfg.DefaultWager,
		GameRepo:      games,
		PlayerRepo:    players,
		LedgerRepo:    ledger,
		Courses:       courses,
		Shuffler:      shuffle.New(&shuffle.Config{}),
		Clock:         clock.New(),
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create game service: %w", err)
	}

	messages, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create messaging service: %w", err)
	}

	return &app{
		ctx:      ctx,
		games:    svc,
		courses:  courses,
		messages: messages,
		tone:     tone,
	}, nil
}

// reportError prints a friendly message for err, with the raw error underneath
func (a *app) reportError(err error) {
	msg, msgErr := a.messages.GetErrorMessage(a.ctx, &messaging.GetErrorMessageInput{
		ErrorType:     errorType(err),
		PreferredTone: a.tone,
	})
	if msgErr != nil {
		pterm.Error.Println(err.Error())
		return
	}

	pterm.Error.Printfln("%s: %s", msg.Title, msg.Message)
	log.WithError(err).Debug("Command failed")
	pterm.Println(pterm.Gray(err.Error()))
}
