package models

import (
	"sort"
	"time"
)

// GameStatus represents the current state of a game
type GameStatus string

const (
	// GameStatusInProgress indicates holes are still being scored
	GameStatusInProgress GameStatus = "in_progress"

	// GameStatusCompleted indicates the last hole has been saved
	GameStatusCompleted GameStatus = "completed"
)

// IsCompleted reports whether the game has reached its terminal state
func (s GameStatus) IsCompleted() bool {
	return s == GameStatusCompleted
}

// Game represents a round of Banker played on one course
type Game struct {
	// ID is the unique identifier for the game
	ID string

	// CourseID is the course the round is played on
	CourseID int

	// Players is the roster snapshot taken when the game was created
	Players []*Player

	// BankerOrder is the shuffled rotation of player IDs, fixed for the round
	BankerOrder []string

	// CurrentHole is the 1-based hole being scored or viewed
	CurrentHole int

	// HoleScores holds at most one settled hole per hole number
	HoleScores map[int]*HoleScore

	// Status is the current state of the game
	Status GameStatus

	// CreatedAt is when the game was created
	CreatedAt time.Time

	// UpdatedAt is when the game was last updated
	UpdatedAt time.Time
}

// Player returns the rostered player with the given ID, or nil
func (g *Game) Player(id string) *Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// HoleScore returns the settled hole for a hole number, or nil
func (g *Game) HoleScore(holeNumber int) *HoleScore {
	if g.HoleScores == nil {
		return nil
	}
	return g.HoleScores[holeNumber]
}

// SortedHoleScores returns the settled holes ordered by hole number
func (g *Game) SortedHoleScores() []*HoleScore {
	holes := make([]*HoleScore, 0, len(g.HoleScores))
	for _, hs := range g.HoleScores {
		holes = append(holes, hs)
	}
	sort.Slice(holes, func(i, j int) bool {
		return holes[i].HoleNumber < holes[j].HoleNumber
	})
	return holes
}

// Clone returns a copy of the game that can be modified without touching the
// original. Settled holes are shared since they are never modified in place.
func (g *Game) Clone() *Game {
	clone := *g

	clone.Players = make([]*Player, len(g.Players))
	copy(clone.Players, g.Players)

	clone.BankerOrder = make([]string, len(g.BankerOrder))
	copy(clone.BankerOrder, g.BankerOrder)

	clone.HoleScores = make(map[int]*HoleScore, len(g.HoleScores))
	for k, v := range g.HoleScores {
		clone.HoleScores[k] = v
	}

	return &clone
}
