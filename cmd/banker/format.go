package main

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/banker/internal/models"
)

// signed formats an amount with an explicit sign, leaving zero bare
func signed(n int) string {
	if n == 0 {
		return "0"
	}
	return fmt.Sprintf("%+d", n)
}

// displayName returns the short name for a player in the game, or the ID
func displayName(game *models.Game, playerID string) string {
	if p := game.Player(playerID); p != nil && p.DisplayName != "" {
		return p.DisplayName
	}
	return playerID
}

// resolvePlayerID accepts a player ID or display name, ignoring case
func resolvePlayerID(game *models.Game, key string) (string, bool) {
	if p := game.Player(key); p != nil {
		return p.ID, true
	}
	for _, p := range game.Players {
		if strings.EqualFold(p.DisplayName, key) || strings.EqualFold(p.Name, key) {
			return p.ID, true
		}
	}
	return "", false
}

// strokeLabel describes who takes the handicap stroke in a match
func strokeLabel(diff int) string {
	switch {
	case diff > 0:
		return "banker +1"
	case diff < 0:
		return "player +1"
	default:
		return "-"
	}
}

type holeOutcome struct {
	won, lost, pushed int

	// presses counts player presses plus the banker's
	presses int
}

// outcomeForBanker counts the banker's matches on a hole
func outcomeForBanker(hs *models.HoleScore) holeOutcome {
	var o holeOutcome
	for _, m := range hs.Matches {
		switch {
		case m.Result > 0:
			o.won++
		case m.Result < 0:
			o.lost++
		default:
			o.pushed++
		}
		if m.PlayerPressed {
			o.presses++
		}
	}
	if hs.BankerPressed {
		o.presses++
	}
	return o
}
