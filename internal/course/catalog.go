package course

import (
	"fmt"
	"sort"

	"github.com/KirkDiggler/banker/internal/banker"
	"github.com/KirkDiggler/banker/internal/models"
	log "github.com/sirupsen/logrus"
)

// CourseError is a custom error type for catalog errors
type CourseError string

// Error implements the error interface
func (e CourseError) Error() string {
	return string(e)
}

const (
	// ErrCourseNotFound is returned when no course has the requested ID
	ErrCourseNotFound CourseError = "course not found"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_catalog.go github.com/KirkDiggler/banker/internal/course Catalog

// Catalog looks up course tables
type Catalog interface {
	// GetCourse returns the course with the given ID
	GetCourse(id int) (*models.Course, error)

	// ListCourses returns every course ordered by ID
	ListCourses() []*models.Course
}

// Registry is an in-memory Catalog
type Registry struct {
	courses map[int]*models.Course
}

// Config holds the configuration for the catalog
type Config struct {
	// File optionally points at an HCL catalog; its courses are added to the
	// built-in ones and replace any with the same ID
	File string
}

// New builds the catalog from the built-in tables and the optional file.
// Every course is validated before it is accepted.
func New(cfg *Config) (*Registry, error) {
	courses := Builtin()

	if cfg != nil && cfg.File != "" {
		loaded, err := LoadFile(cfg.File)
		if err != nil {
			return nil, err
		}
		log.WithFields(log.Fields{
			"file":    cfg.File,
			"courses": len(loaded),
		}).Debug("Loaded course catalog file")
		courses = append(courses, loaded...)
	}

	return NewFromCourses(courses)
}

// NewFromCourses builds a catalog from the given courses. Later entries
// replace earlier ones with the same ID.
func NewFromCourses(courses []*models.Course) (*Registry, error) {
	r := &Registry{courses: make(map[int]*models.Course, len(courses))}
	for _, c := range courses {
		normalized := NormalizeRanks(c)
		if err := banker.ValidateCourse(normalized); err != nil {
			return nil, fmt.Errorf("course %d (%s): %w", c.ID, c.Name, err)
		}
		r.courses[c.ID] = normalized
	}
	return r, nil
}

// GetCourse returns the course with the given ID
func (r *Registry) GetCourse(id int) (*models.Course, error) {
	c, ok := r.courses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrCourseNotFound, id)
	}
	return c, nil
}

// ListCourses returns every course ordered by ID
func (r *Registry) ListCourses() []*models.Course {
	courses := make([]*models.Course, 0, len(r.courses))
	for _, c := range r.courses {
		courses = append(courses, c)
	}
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].ID < courses[j].ID
	})
	return courses
}

// NormalizeRanks returns a copy of the course whose difficulty ranks run
// 1..N. A nine played off an eighteen-hole card keeps its relative order, so
// ranks 2,4,..,18 become 1..9. Courses already ranked 1..N are unchanged, and
// duplicate ranks are left for validation to reject.
func NormalizeRanks(c *models.Course) *models.Course {
	out := &models.Course{ID: c.ID, Name: c.Name, Holes: make([]*models.Hole, len(c.Holes))}
	for i, hole := range c.Holes {
		copied := *hole
		out.Holes[i] = &copied
	}

	byRank := make([]*models.Hole, len(out.Holes))
	copy(byRank, out.Holes)
	sort.SliceStable(byRank, func(i, j int) bool {
		return byRank[i].Handicap < byRank[j].Handicap
	})

	for i := 1; i < len(byRank); i++ {
		if byRank[i].Handicap == byRank[i-1].Handicap {
			return out
		}
	}
	for i, hole := range byRank {
		if hole.Handicap < 1 {
			return out
		}
		hole.Handicap = i + 1
	}
	return out
}
