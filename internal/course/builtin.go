package course

import "github.com/KirkDiggler/banker/internal/models"

func h(number, par, yards, handicap int) *models.Hole {
	return &models.Hole{Number: number, Par: par, Yards: yards, Handicap: handicap}
}

// Builtin returns the bundled course tables. The nine-hole courses carry the
// ranks printed on the eighteen-hole card; New renumbers them to 1..9.
func Builtin() []*models.Course {
	return []*models.Course{
		{
			ID:   1,
			Name: "EVCC Vale",
			Holes: []*models.Hole{
				h(1, 4, 334, 16), h(2, 4, 448, 6), h(3, 4, 345, 8),
				h(4, 4, 357, 14), h(5, 3, 148, 18), h(6, 5, 552, 4),
				h(7, 3, 190, 10), h(8, 4, 434, 2), h(9, 4, 337, 12),
			},
		},
		{
			ID:   2,
			Name: "EVCC Creek",
			Holes: []*models.Hole{
				h(1, 4, 332, 11), h(2, 5, 517, 7), h(3, 3, 169, 17),
				h(4, 4, 302, 15), h(5, 4, 372, 3), h(6, 5, 490, 9),
				h(7, 4, 440, 1), h(8, 3, 177, 13), h(9, 4, 407, 5),
			},
		},
		{
			ID:   4,
			Name: "EVCC Vale/Ridge",
			Holes: []*models.Hole{
				h(1, 4, 334, 16), h(2, 4, 448, 6), h(3, 4, 345, 8),
				h(4, 4, 357, 14), h(5, 3, 148, 18), h(6, 5, 552, 4),
				h(7, 3, 190, 10), h(8, 4, 434, 2), h(9, 4, 337, 12),
				h(10, 4, 362, 3), h(11, 4, 393, 11), h(12, 3, 157, 17),
				h(13, 5, 538, 1), h(14, 4, 429, 5), h(15, 3, 188, 9),
				h(16, 4, 361, 15), h(17, 4, 365, 7), h(18, 5, 524, 13),
			},
		},
		{
			ID:   5,
			Name: "EVCC Creek/Ridge",
			Holes: []*models.Hole{
				h(1, 4, 332, 11), h(2, 5, 517, 7), h(3, 3, 169, 17),
				h(4, 4, 302, 15), h(5, 4, 372, 3), h(6, 5, 490, 9),
				h(7, 4, 440, 1), h(8, 3, 177, 13), h(9, 4, 407, 5),
				h(10, 4, 362, 4), h(11, 4, 393, 12), h(12, 3, 157, 18),
				h(13, 5, 538, 2), h(14, 4, 429, 6), h(15, 3, 188, 10),
				h(16, 4, 361, 16), h(17, 4, 365, 8), h(18, 5, 524, 14),
			},
		},
		{
			ID:   6,
			Name: "EVCC Ridge",
			Holes: []*models.Hole{
				h(1, 4, 362, 3), h(2, 4, 393, 11), h(3, 3, 157, 17),
				h(4, 5, 538, 1), h(5, 4, 429, 5), h(6, 3, 188, 9),
				h(7, 4, 361, 15), h(8, 4, 365, 7), h(9, 5, 524, 13),
			},
		},
		{
			ID:   8,
			Name: "EVCC Vale/Creek",
			Holes: []*models.Hole{
				h(1, 4, 334, 16), h(2, 4, 448, 6), h(3, 4, 345, 8),
				h(4, 4, 357, 14), h(5, 3, 148, 18), h(6, 5, 552, 4),
				h(7, 3, 190, 10), h(8, 4, 434, 2), h(9, 4, 337, 12),
				h(10, 4, 332, 11), h(11, 5, 517, 7), h(12, 3, 169, 17),
				h(13, 4, 302, 15), h(14, 4, 372, 3), h(15, 5, 490, 9),
				h(16, 4, 440, 1), h(17, 3, 177, 13), h(18, 4, 407, 5),
			},
		},
	}
}
