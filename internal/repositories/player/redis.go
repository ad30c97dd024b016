package player

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/KirkDiggler/banker/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	playerKeyPrefix = "banker:player:"
	rosterKey       = "banker:roster"
)

// ErrPlayerNotFound is returned when a player is not found
var ErrPlayerNotFound = errors.New("player not found")

// Config holds configuration for the Redis player repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func playerKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerKeyPrefix, playerID)
}

// SavePlayer persists a player to Redis
func (r *redisRepository) SavePlayer(ctx context.Context, input *SavePlayerInput) error {
	if input == nil || input.Player == nil {
		return errors.New("input and player cannot be nil")
	}

	player := input.Player
	if player.ID == "" {
		return errors.New("player ID cannot be empty")
	}

	playerJSON, err := json.Marshal(player)
	if err != nil {
		return fmt.Errorf("failed to marshal player: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, playerKey(player.ID), playerJSON, 0)
	pipe.SAdd(ctx, rosterKey, player.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save player: %w", err)
	}

	return nil
}

// GetPlayer retrieves a player by ID from Redis
func (r *redisRepository) GetPlayer(ctx context.Context, input *GetPlayerInput) (*models.Player, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	playerJSON, err := r.client.Get(ctx, playerKey(input.PlayerID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrPlayerNotFound
		}
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	var player models.Player
	if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
		return nil, fmt.Errorf("failed to unmarshal player: %w", err)
	}

	return &player, nil
}

// GetPlayers retrieves several players in one round trip. Any missing ID
// fails the whole lookup with ErrPlayerNotFound.
func (r *redisRepository) GetPlayers(ctx context.Context, input *GetPlayersInput) (*GetPlayersOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	players, err := r.fetch(ctx, input.PlayerIDs, false)
	if err != nil {
		return nil, err
	}

	return &GetPlayersOutput{
		Players: players,
	}, nil
}

// ListPlayers retrieves every player on the roster ordered by name
func (r *redisRepository) ListPlayers(ctx context.Context, input *ListPlayersInput) (*ListPlayersOutput, error) {
	playerIDs, err := r.client.SMembers(ctx, rosterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get roster: %w", err)
	}

	players, err := r.fetch(ctx, playerIDs, true)
	if err != nil {
		return nil, err
	}

	sort.Slice(players, func(i, j int) bool {
		if players[i].Name == players[j].Name {
			return players[i].ID < players[j].ID
		}
		return players[i].Name < players[j].Name
	})

	return &ListPlayersOutput{
		Players: players,
	}, nil
}

// DeletePlayer removes a player from Redis. Games keep their own roster
// snapshot so are not affected.
func (r *redisRepository) DeletePlayer(ctx context.Context, input *DeletePlayerInput) error {
	if input == nil || input.PlayerID == "" {
		return errors.New("input and player ID cannot be empty")
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, playerKey(input.PlayerID))
	pipe.SRem(ctx, rosterKey, input.PlayerID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	if del.Val() == 0 {
		return ErrPlayerNotFound
	}

	return nil
}

// fetch loads players with a pipelined GET per ID, keeping the ID order
func (r *redisRepository) fetch(ctx context.Context, playerIDs []string, skipMissing bool) ([]*models.Player, error) {
	if len(playerIDs) == 0 {
		return []*models.Player{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(playerIDs))
	for i, playerID := range playerIDs {
		commands[i] = pipe.Get(ctx, playerKey(playerID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	players := make([]*models.Player, 0, len(playerIDs))
	for i, cmd := range commands {
		playerJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				if skipMissing {
					continue
				}
				return nil, fmt.Errorf("%w: %s", ErrPlayerNotFound, playerIDs[i])
			}
			return nil, fmt.Errorf("failed to get player %s: %w", playerIDs[i], err)
		}

		var player models.Player
		if err := json.Unmarshal([]byte(playerJSON), &player); err != nil {
			return nil, fmt.Errorf("failed to unmarshal player %s: %w", playerIDs[i], err)
		}
		players = append(players, &player)
	}

	return players, nil
}
