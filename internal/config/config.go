package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ConfigError is a custom error type for configuration errors
type ConfigError string

// Error implements the error interface
func (e ConfigError) Error() string {
	return string(e)
}

const (
	// ErrInvalidValue is returned when an environment variable cannot be parsed
	ErrInvalidValue ConfigError = "invalid configuration value"
)

// Defaults used when the environment does not set a value
const (
	DefaultRedisAddr  = "localhost:6379"
	DefaultWager      = 1
	DefaultMaxPlayers = 8
	DefaultLogLevel   = "info"
	DefaultEnvFile    = ".env"
)

const minPlayersPerRound = 2

// Config holds the runtime settings for the banker CLI
type Config struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// CoursesFile optionally points at an HCL course catalog
	CoursesFile string

	// DefaultWager pre-fills the wager on a hole with no earlier wager
	DefaultWager int

	// MaxPlayers caps the roster size of a new game
	MaxPlayers int

	LogLevel log.Level
}

// Load reads envFile if it exists and builds the config from the environment.
// A missing env file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	redisDB, err := getEnvInt("BANKER_REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	wager, err := getEnvInt("BANKER_DEFAULT_WAGER", DefaultWager)
	if err != nil {
		return nil, err
	}
	if wager < 1 {
		return nil, fmt.Errorf("%w: BANKER_DEFAULT_WAGER must be at least 1", ErrInvalidValue)
	}

	maxPlayers, err := getEnvInt("BANKER_MAX_PLAYERS", DefaultMaxPlayers)
	if err != nil {
		return nil, err
	}
	if maxPlayers < minPlayersPerRound {
		return nil, fmt.Errorf("%w: BANKER_MAX_PLAYERS must be at least %d", ErrInvalidValue, minPlayersPerRound)
	}

	level, err := log.ParseLevel(getEnv("BANKER_LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("%w: BANKER_LOG_LEVEL: %v", ErrInvalidValue, err)
	}

	return &Config{
		RedisAddr:     getEnv("BANKER_REDIS_ADDR", DefaultRedisAddr),
		RedisPassword: getEnv("BANKER_REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		CoursesFile:   getEnv("BANKER_COURSES_FILE", ""),
		DefaultWager:  wager,
		MaxPlayers:    maxPlayers,
		LogLevel:      level,
	}, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, value)
	}
	return n, nil
}
