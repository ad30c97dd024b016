package models

// GameSummary is a player's totals over the holes folded into it
type GameSummary struct {
	// PlayerID is the player the totals belong to
	PlayerID string

	// TotalWinnings is the signed sum of the player's match results
	TotalWinnings int

	// HolesWon counts matches the player won
	HolesWon int

	// HolesLost counts matches the player lost
	HolesLost int

	// HolesTied counts pushed matches
	HolesTied int
}

// HoleResult is the net money movement on a single hole
type HoleResult struct {
	// HoleNumber is the hole the result belongs to
	HoleNumber int

	// BankerID is the player who banked the hole
	BankerID string

	// Net maps player ID to the signed amount won or lost on the hole
	Net map[string]int
}
