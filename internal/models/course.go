package models

// Hole is a single hole of a course
type Hole struct {
	// Number is the 1-based position of the hole on the course
	Number int

	// Par is the expected number of strokes
	Par int

	// Yards is the length of the hole
	Yards int

	// Handicap is the relative difficulty rank, 1 being the hardest hole
	Handicap int
}

// Course is an ordered list of holes
type Course struct {
	// ID is the catalog identifier of the course
	ID int

	// Name is the display name of the course
	Name string

	// Holes are ordered by hole number
	Holes []*Hole
}

// Hole returns the hole with the given number, or nil
func (c *Course) Hole(number int) *Hole {
	for _, h := range c.Holes {
		if h.Number == number {
			return h
		}
	}
	return nil
}

// IsLastHole reports whether number is the final hole of the course
func (c *Course) IsLastHole(number int) bool {
	return number == len(c.Holes)
}
