package banker

import (
	"testing"

	"github.com/KirkDiggler/banker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextBanker(t *testing.T) {
	order := []string{"A", "B", "C", "D"}

	t.Run("wraps after every player has banked", func(t *testing.T) {
		got, err := NextBanker(order, 6, 4)
		require.NoError(t, err)
		assert.Equal(t, "B", got)
	})

	t.Run("each player banks once per cycle", func(t *testing.T) {
		seen := map[string]int{}
		for hole := 1; hole <= 4; hole++ {
			got, err := NextBanker(order, hole, 4)
			require.NoError(t, err)
			seen[got]++
		}
		assert.Equal(t, map[string]int{"A": 1, "B": 1, "C": 1, "D": 1}, seen)
	})

	t.Run("repeats with period equal to player count", func(t *testing.T) {
		for hole := 1; hole <= 14; hole++ {
			first, err := NextBanker(order, hole, 4)
			require.NoError(t, err)
			again, err := NextBanker(order, hole+4, 4)
			require.NoError(t, err)
			assert.Equal(t, first, again, "hole %d", hole)
		}
	})

	t.Run("empty order", func(t *testing.T) {
		_, err := NextBanker(nil, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidBankerOrder)
	})

	t.Run("order does not match player count", func(t *testing.T) {
		_, err := NextBanker(order, 1, 3)
		assert.ErrorIs(t, err, ErrInvalidBankerOrder)
	})

	t.Run("hole before the first", func(t *testing.T) {
		_, err := NextBanker(order, 0, 4)
		assert.ErrorIs(t, err, ErrHoleOutOfRange)
	})
}

func TestResolveBanker(t *testing.T) {
	course := testCourse(9)
	players := []*models.Player{testPlayer("A", 0), testPlayer("B", 10), testPlayer("C", 20)}
	game := testGame(course, players, []string{"C", "A", "B"})

	t.Run("rotation", func(t *testing.T) {
		id, overridden, err := ResolveBanker(game, 2, "")
		require.NoError(t, err)
		assert.Equal(t, "A", id)
		assert.False(t, overridden)
	})

	t.Run("override", func(t *testing.T) {
		id, overridden, err := ResolveBanker(game, 2, "C")
		require.NoError(t, err)
		assert.Equal(t, "C", id)
		assert.True(t, overridden)
		assert.Equal(t, []string{"C", "A", "B"}, game.BankerOrder)
	})

	t.Run("override outside roster", func(t *testing.T) {
		_, _, err := ResolveBanker(game, 2, "Z")
		assert.ErrorIs(t, err, ErrBankerNotInRoster)
	})

	t.Run("recorded hole keeps its banker", func(t *testing.T) {
		edited := game.Clone()
		edited.HoleScores[1] = &models.HoleScore{HoleNumber: 1, BankerID: "B", BankerOverridden: true}

		id, overridden, err := ResolveBanker(edited, 1, "")
		require.NoError(t, err)
		assert.Equal(t, "B", id)
		assert.True(t, overridden)
	})
}
