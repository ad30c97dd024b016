package shuffle

import (
	"math/rand"
	"time"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_shuffler.go github.com/KirkDiggler/banker/internal/shuffle Shuffler

// Shuffler produces a random ordering of player IDs for the banker rotation
type Shuffler interface {
	Shuffle(ids []string) []string
}

// Random shuffles with a math/rand source
type Random struct {
	random *rand.Rand
}

// Config for the shuffler
type Config struct {
	// Optional seed for testing
	Seed int64
}

// New creates a new shuffler
func New(cfg *Config) *Random {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}

	return &Random{
		random: rand.New(rand.NewSource(seed)),
	}
}

// Shuffle returns a shuffled copy of ids; the input is left untouched
func (r *Random) Shuffle(ids []string) []string {
	shuffled := make([]string, len(ids))
	copy(shuffled, ids)
	r.random.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
