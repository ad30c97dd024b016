package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/KirkDiggler/banker/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	entryKeyPrefix         = "banker:ledger:entry:"
	gameEntriesKeyPrefix   = "banker:ledger:game:"
	holeEntriesKeyPrefix   = "banker:ledger:hole:"
	playerEntriesKeyPrefix = "banker:ledger:player:"
	playerStatsKeyPrefix   = "banker:ledger:stats:"

	statsOwed      = "owed"
	statsCollected = "collected"
)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
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

func entryKey(entryID string) string {
	return fmt.Sprintf("%s%s", entryKeyPrefix, entryID)
}

func gameEntriesKey(gameID string) string {
	return fmt.Sprintf("%s%s", gameEntriesKeyPrefix, gameID)
}

func holeEntriesKey(gameID string, holeNumber int) string {
	return fmt.Sprintf("%s%s:%d", holeEntriesKeyPrefix, gameID, holeNumber)
}

func playerFromKey(playerID string) string {
	return fmt.Sprintf("%s%s:from", playerEntriesKeyPrefix, playerID)
}

func playerToKey(playerID string) string {
	return fmt.Sprintf("%s%s:to", playerEntriesKeyPrefix, playerID)
}

func playerStatsKey(playerID string) string {
	return fmt.Sprintf("%s%s", playerStatsKeyPrefix, playerID)
}

// ReplaceHoleEntries removes the entries previously recorded for the hole and
// stores the new ones in a single transaction, so re-saving a hole never
// double counts
func (r *redisRepository) ReplaceHoleEntries(ctx context.Context, input *ReplaceHoleEntriesInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	for _, entry := range input.Entries {
		if entry == nil || entry.ID == "" {
			return errors.New("ledger entry ID cannot be empty")
		}
		if entry.GameID != input.GameID || entry.HoleNumber != input.HoleNumber {
			return fmt.Errorf("ledger entry %s does not belong to game %s hole %d", entry.ID, input.GameID, input.HoleNumber)
		}
		if entry.Amount <= 0 {
			return fmt.Errorf("ledger entry %s has non-positive amount %d", entry.ID, entry.Amount)
		}
	}

	holeKey := holeEntriesKey(input.GameID, input.HoleNumber)
	oldIDs, err := r.client.SMembers(ctx, holeKey).Result()
	if err != nil {
		return fmt.Errorf("failed to get entry IDs for hole: %w", err)
	}

	oldEntries, err := r.loadEntries(ctx, oldIDs)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	for _, entry := range oldEntries {
		r.removeEntry(ctx, pipe, entry)
	}
	pipe.Del(ctx, holeKey)

	for _, entry := range input.Entries {
		if err := r.addEntry(ctx, pipe, entry); err != nil {
			return err
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to replace ledger entries: %w", err)
	}

	return nil
}

// GetEntriesForGame retrieves all entries for a game
func (r *redisRepository) GetEntriesForGame(ctx context.Context, input *GetEntriesForGameInput) (*GetEntriesForGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	entryIDs, err := r.client.ZRange(ctx, gameEntriesKey(input.GameID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get entry IDs for game: %w", err)
	}

	entries, err := r.loadEntries(ctx, entryIDs)
	if err != nil {
		return nil, err
	}
	sortByHole(entries)

	return &GetEntriesForGameOutput{
		Entries: entries,
	}, nil
}

// GetEntriesForPlayer retrieves all entries where the player paid or collected
func (r *redisRepository) GetEntriesForPlayer(ctx context.Context, input *GetEntriesForPlayerInput) (*GetEntriesForPlayerOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	fromCmd := pipe.ZRange(ctx, playerFromKey(input.PlayerID), 0, -1)
	toCmd := pipe.ZRange(ctx, playerToKey(input.PlayerID), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("failed to get entry IDs for player: %w", err)
	}

	entryIDs := append(fromCmd.Val(), toCmd.Val()...)
	entries, err := r.loadEntries(ctx, entryIDs)
	if err != nil {
		return nil, err
	}

	if input.GameID != "" {
		filtered := entries[:0]
		for _, entry := range entries {
			if entry.GameID == input.GameID {
				filtered = append(filtered, entry)
			}
		}
		entries = filtered
	}
	sortByTime(entries)

	return &GetEntriesForPlayerOutput{
		Entries: entries,
	}, nil
}

// GetPlayerTotals retrieves the owed and collected counters for a player
func (r *redisRepository) GetPlayerTotals(ctx context.Context, input *GetPlayerTotalsInput) (*GetPlayerTotalsOutput, error) {
	if input == nil || input.PlayerID == "" {
		return nil, errors.New("input and player ID cannot be empty")
	}

	stats, err := r.client.HGetAll(ctx, playerStatsKey(input.PlayerID)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get player totals: %w", err)
	}

	output := &GetPlayerTotalsOutput{}
	if v, ok := stats[statsOwed]; ok {
		if output.Owed, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("failed to parse owed total %q: %w", v, err)
		}
	}
	if v, ok := stats[statsCollected]; ok {
		if output.Collected, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("failed to parse collected total %q: %w", v, err)
		}
	}

	return output, nil
}

// DeleteEntriesForGame removes every entry for a game and backs them out of
// the player totals
func (r *redisRepository) DeleteEntriesForGame(ctx context.Context, input *DeleteEntriesForGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	gameKey := gameEntriesKey(input.GameID)
	entryIDs, err := r.client.ZRange(ctx, gameKey, 0, -1).Result()
	if err != nil {
		return fmt.Errorf("failed to get entry IDs for game: %w", err)
	}

	entries, err := r.loadEntries(ctx, entryIDs)
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	holes := make(map[int]struct{})
	for _, entry := range entries {
		r.removeEntry(ctx, pipe, entry)
		holes[entry.HoleNumber] = struct{}{}
	}
	for holeNumber := range holes {
		pipe.Del(ctx, holeEntriesKey(input.GameID, holeNumber))
	}
	pipe.Del(ctx, gameKey)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete ledger entries: %w", err)
	}

	return nil
}

func (r *redisRepository) addEntry(ctx context.Context, pipe redis.Pipeliner, entry *models.LedgerEntry) error {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("failed to marshal ledger entry: %w", err)
	}

	timestamp := float64(entry.Timestamp.Unix())

	pipe.Set(ctx, entryKey(entry.ID), entryJSON, 0)
	pipe.ZAdd(ctx, gameEntriesKey(entry.GameID), redis.Z{
		Score:  float64(entry.HoleNumber),
		Member: entry.ID,
	})
	pipe.SAdd(ctx, holeEntriesKey(entry.GameID, entry.HoleNumber), entry.ID)
	pipe.ZAdd(ctx, playerFromKey(entry.FromPlayerID), redis.Z{Score: timestamp, Member: entry.ID})
	pipe.ZAdd(ctx, playerToKey(entry.ToPlayerID), redis.Z{Score: timestamp, Member: entry.ID})
	pipe.HIncrBy(ctx, playerStatsKey(entry.FromPlayerID), statsOwed, int64(entry.Amount))
	pipe.HIncrBy(ctx, playerStatsKey(entry.ToPlayerID), statsCollected, int64(entry.Amount))

	return nil
}

func (r *redisRepository) removeEntry(ctx context.Context, pipe redis.Pipeliner, entry *models.LedgerEntry) {
	pipe.Del(ctx, entryKey(entry.ID))
	pipe.ZRem(ctx, gameEntriesKey(entry.GameID), entry.ID)
	pipe.ZRem(ctx, playerFromKey(entry.FromPlayerID), entry.ID)
	pipe.ZRem(ctx, playerToKey(entry.ToPlayerID), entry.ID)
	pipe.HIncrBy(ctx, playerStatsKey(entry.FromPlayerID), statsOwed, -int64(entry.Amount))
	pipe.HIncrBy(ctx, playerStatsKey(entry.ToPlayerID), statsCollected, -int64(entry.Amount))
}

// loadEntries fetches entries with a pipelined GET, skipping IDs whose entry
// has already gone
func (r *redisRepository) loadEntries(ctx context.Context, entryIDs []string) ([]*models.LedgerEntry, error) {
	if len(entryIDs) == 0 {
		return []*models.LedgerEntry{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(entryIDs))
	for _, entryID := range entryIDs {
		if _, ok := commands[entryID]; ok {
			continue
		}
		commands[entryID] = pipe.Get(ctx, entryKey(entryID))
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}

	entries := make([]*models.LedgerEntry, 0, len(commands))
	for entryID, cmd := range commands {
		entryJSON, err := cmd.Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get ledger entry %s: %w", entryID, err)
		}

		var entry models.LedgerEntry
		if err := json.Unmarshal([]byte(entryJSON), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ledger entry %s: %w", entryID, err)
		}
		entries = append(entries, &entry)
	}

	return entries, nil
}

func sortByHole(entries []*models.LedgerEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].HoleNumber != entries[j].HoleNumber {
			return entries[i].HoleNumber < entries[j].HoleNumber
		}
		return entries[i].ID < entries[j].ID
	})
}

func sortByTime(entries []*models.LedgerEntry) {
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Timestamp.Equal(b.Timestamp) {
			return a.Timestamp.Before(b.Timestamp)
		}
		if a.GameID != b.GameID {
			return a.GameID < b.GameID
		}
		if a.HoleNumber != b.HoleNumber {
			return a.HoleNumber < b.HoleNumber
		}
		return a.ID < b.ID
	})
}
