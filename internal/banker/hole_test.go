package banker

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/banker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fourPlayerHole() *SettleHoleInput {
	return &SettleHoleInput{
		Hole: &models.Hole{Number: 1, Par: 4, Yards: 380, Handicap: 5},
		Players: []*models.Player{
			testPlayer("A", 10),
			testPlayer("B", 20),
			testPlayer("C", 5),
			testPlayer("D", 10),
		},
		BankerID: "A",
		Scores:   map[string]int{"A": 4, "B": 5, "C": 4, "D": 3},
		Presses:  map[string]bool{"C": true},
		Wagers: Wagers{
			Default:   1,
			PerPlayer: map[string]int{"C": 3},
		},
	}
}

func TestSettleHole(t *testing.T) {
	hs, err := SettleHole(fourPlayerHole())
	require.NoError(t, err)

	assert.Equal(t, 1, hs.HoleNumber)
	assert.Equal(t, "A", hs.BankerID)
	assert.Equal(t, 1, hs.BetAmount)
	assert.False(t, hs.BankerOverridden)

	require.Len(t, hs.Matches, 3)
	results := map[string]int{}
	for _, m := range hs.Matches {
		assert.Equal(t, "A", m.BankerID)
		results[m.PlayerID] = m.Result
	}
	// B gets a stroke back from A, C gives one to A, D plays level
	assert.Equal(t, map[string]int{"B": 0, "C": 6, "D": -1}, results)

	require.Len(t, hs.PlayerScores, 4)
	diffs := map[string]int{}
	for _, ps := range hs.PlayerScores {
		diffs[ps.PlayerID] = ps.HandicapDiff
	}
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": -1, "D": 0}, diffs)
	assert.True(t, hs.PlayerScore("C").Pressed)
	assert.False(t, hs.PlayerScore("A").Pressed)

	breakdown := HoleBreakdown(hs)
	assert.Equal(t, map[string]int{"A": 5, "B": 0, "C": -6, "D": 1}, breakdown.Net)
}

func TestSettleHole_ZeroSum(t *testing.T) {
	in := fourPlayerHole()
	for a := 1; a <= 7; a++ {
		for d := 1; d <= 7; d++ {
			in.Scores["A"], in.Scores["D"] = a, d
			in.BankerPressed = a%2 == 0

			hs, err := SettleHole(in)
			require.NoError(t, err)

			sum := 0
			for _, net := range HoleBreakdown(hs).Net {
				sum += net
			}
			assert.Zero(t, sum)
		}
	}
}

func TestSettleHole_OneMatchPerNonBanker(t *testing.T) {
	in := fourPlayerHole()
	for _, banker := range []string{"A", "B", "C", "D"} {
		in.BankerID = banker
		hs, err := SettleHole(in)
		require.NoError(t, err)

		require.Len(t, hs.Matches, len(in.Players)-1)
		seen := map[string]bool{}
		for _, m := range hs.Matches {
			assert.NotEqual(t, banker, m.PlayerID)
			assert.False(t, seen[m.PlayerID])
			seen[m.PlayerID] = true
		}
	}
}

func TestSettleHole_Deterministic(t *testing.T) {
	first, err := SettleHole(fourPlayerHole())
	require.NoError(t, err)
	second, err := SettleHole(fourPlayerHole())
	require.NoError(t, err)

	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)
	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)
	assert.Equal(t, string(firstJSON), string(secondJSON))
}

func TestSettleHole_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *SettleHoleInput)
		want   error
	}{
		{
			name:   "missing score",
			modify: func(in *SettleHoleInput) { delete(in.Scores, "D") },
			want:   ErrMissingScore,
		},
		{
			name:   "zero score",
			modify: func(in *SettleHoleInput) { in.Scores["B"] = 0 },
			want:   ErrInvalidScore,
		},
		{
			name:   "zero default wager",
			modify: func(in *SettleHoleInput) { in.Wagers.Default = 0 },
			want:   ErrInvalidWager,
		},
		{
			name:   "negative player wager",
			modify: func(in *SettleHoleInput) { in.Wagers.PerPlayer["D"] = -1 },
			want:   ErrInvalidWager,
		},
		{
			name:   "banker not in roster",
			modify: func(in *SettleHoleInput) { in.BankerID = "Z" },
			want:   ErrBankerNotInRoster,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := fourPlayerHole()
			tt.modify(in)

			hs, err := SettleHole(in)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, hs)
		})
	}
}

func TestWagers_For(t *testing.T) {
	w := Wagers{Default: 2, PerPlayer: map[string]int{"B": 5}}
	assert.Equal(t, 5, w.For("B"))
	assert.Equal(t, 2, w.For("C"))
}
