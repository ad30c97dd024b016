package banker

import (
	"sort"

	"github.com/KirkDiggler/banker/internal/models"
)

// Summarize folds every match of the given holes into one summary per player,
// in roster order. The banker collects +result and the player -result, so the
// fold is order independent.
func Summarize(holeScores []*models.HoleScore, players []*models.Player) []*models.GameSummary {
	byPlayer := make(map[string]*models.GameSummary, len(players))
	summaries := make([]*models.GameSummary, 0, len(players))
	for _, p := range players {
		summary := &models.GameSummary{PlayerID: p.ID}
		byPlayer[p.ID] = summary
		summaries = append(summaries, summary)
	}

	for _, hs := range holeScores {
		for _, m := range hs.Matches {
			banker, player := byPlayer[m.BankerID], byPlayer[m.PlayerID]
			if banker != nil {
				banker.TotalWinnings += m.Result
			}
			if player != nil {
				player.TotalWinnings -= m.Result
			}

			switch {
			case m.Result > 0:
				if banker != nil {
					banker.HolesWon++
				}
				if player != nil {
					player.HolesLost++
				}
			case m.Result < 0:
				if banker != nil {
					banker.HolesLost++
				}
				if player != nil {
					player.HolesWon++
				}
			default:
				if banker != nil {
					banker.HolesTied++
				}
				if player != nil {
					player.HolesTied++
				}
			}
		}
	}

	return summaries
}

// HoleBreakdown returns the net change per player on a single hole. The
// values always sum to zero.
func HoleBreakdown(hs *models.HoleScore) *models.HoleResult {
	net := make(map[string]int, len(hs.PlayerScores))
	for _, ps := range hs.PlayerScores {
		net[ps.PlayerID] = 0
	}
	for _, m := range hs.Matches {
		net[m.BankerID] += m.Result
		net[m.PlayerID] -= m.Result
	}

	return &models.HoleResult{
		HoleNumber: hs.HoleNumber,
		BankerID:   hs.BankerID,
		Net:        net,
	}
}

// RunningTotals sums each player's winnings over the holes played before
// throughHole
func RunningTotals(game *models.Game, throughHole int) map[string]int {
	holes := make([]*models.HoleScore, 0, len(game.HoleScores))
	for number, hs := range game.HoleScores {
		if number < throughHole {
			holes = append(holes, hs)
		}
	}

	totals := make(map[string]int, len(game.Players))
	for _, s := range Summarize(holes, game.Players) {
		totals[s.PlayerID] = s.TotalWinnings
	}
	return totals
}

// Leaderboard orders summaries by total winnings, highest first. Ties keep
// their input order.
func Leaderboard(summaries []*models.GameSummary) []*models.GameSummary {
	sorted := make([]*models.GameSummary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalWinnings > sorted[j].TotalWinnings
	})
	return sorted
}
