package banker

import (
	"time"

	"github.com/KirkDiggler/banker/internal/models"
)

// testCourse builds a course where hole i has difficulty rank i
func testCourse(holes int) *models.Course {
	course := &models.Course{ID: 99, Name: "Test Links"}
	for i := 1; i <= holes; i++ {
		course.Holes = append(course.Holes, &models.Hole{
			Number:   i,
			Par:      4,
			Yards:    350,
			Handicap: i,
		})
	}
	return course
}

func testPlayer(id string, handicap int) *models.Player {
	return &models.Player{
		ID:          id,
		Name:        "Player " + id,
		DisplayName: id,
		Handicap:    handicap,
	}
}

func testGame(course *models.Course, players []*models.Player, order []string) *models.Game {
	return &models.Game{
		ID:          "test-game-id",
		CourseID:    course.ID,
		Players:     players,
		BankerOrder: order,
		CurrentHole: 1,
		HoleScores:  map[int]*models.HoleScore{},
		Status:      models.GameStatusInProgress,
		CreatedAt:   time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
		UpdatedAt:   time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC),
	}
}
