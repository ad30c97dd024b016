package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/KirkDiggler/banker/internal/models"
	gameService "github.com/KirkDiggler/banker/internal/services/game"
	"github.com/KirkDiggler/banker/internal/services/messaging"
)

type CoursesCmd struct{}

func (c *CoursesCmd) Run(a *app) error {
	data := pterm.TableData{{"ID", "Name", "Holes", "Par"}}
	for _, course := range a.courses.ListCourses() {
		par := 0
		for _, h := range course.Holes {
			par += h.Par
		}
		data = append(data, []string{
			strconv.Itoa(course.ID),
			course.Name,
			strconv.Itoa(len(course.Holes)),
			strconv.Itoa(par),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

type NewCmd struct {
	Course  int      `short:"c" required:"" help:"Course ID (see banker courses)"`
	Players []string `arg:"" help:"Registered player IDs"`
}

func (c *NewCmd) Run(a *app) error {
	out, err := a.games.CreateGame(a.ctx, &gameService.CreateGameInput{
		CourseID:  c.Course,
		PlayerIDs: c.Players,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Started game %s on %s", out.Game.ID, out.Course.Name)

	data := pterm.TableData{{"Order", "Banker", "Handicap"}}
	for i, id := range out.Game.BankerOrder {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			displayName(out.Game, id),
			strconv.Itoa(out.Game.Player(id).Handicap),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

type SetupCmd struct {
	Game   string `arg:"" help:"Game ID"`
	Banker string `help:"Pick the banker for this hole instead of the rotation"`
}

func (c *SetupCmd) Run(a *app) error {
	out, err := a.games.GetHoleSetup(a.ctx, &gameService.GetHoleSetupInput{
		GameID:         c.Game,
		BankerOverride: c.Banker,
	})
	if err != nil {
		return err
	}

	setup := out.Setup
	banker := displayName(out.Game, setup.BankerID)
	if setup.BankerOverridden {
		banker += " (picked)"
	}

	pterm.DefaultSection.Printfln("Hole %d · Par %d · Rank %d", setup.Hole.Number, setup.Hole.Par, setup.Hole.Handicap)
	pterm.Info.Printfln("Banker: %s · Wager: %d", banker, setup.DefaultWager)
	if setup.Existing != nil {
		pterm.Warning.Println("This hole is already recorded; scoring it again replaces the result.")
	}

	data := pterm.TableData{{"Player", "Handicap", "Stroke", "Running"}}
	for _, p := range out.Game.Players {
		stroke := strokeLabel(setup.HandicapDiffs[p.ID])
		if p.ID == setup.BankerID {
			stroke = "banker"
		}
		data = append(data, []string{
			p.DisplayName,
			strconv.Itoa(p.Handicap),
			stroke,
			signed(out.RunningTotals[p.ID]),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

type ScoreCmd struct {
	Game        string         `arg:"" help:"Game ID"`
	Hole        int            `help:"Hole being scored (defaults to the current hole)"`
	Score       map[string]int `short:"s" required:"" help:"Raw score per player, e.g. -s alice=4 -s bob=5"`
	Press       []string       `short:"p" help:"Players pressing the banker"`
	Wager       int            `short:"w" help:"Base wager for the hole (defaults to the previous wager)"`
	Bet         map[string]int `help:"Base wager override per player, e.g. --bet bob=3"`
	BankerPress bool           `name:"banker-press" help:"Banker presses every match"`
	Banker      string         `help:"Pick the banker for this hole instead of the rotation"`
}

func (c *ScoreCmd) Run(a *app) error {
	current, err := a.games.GetGame(a.ctx, &gameService.GetGameInput{GameID: c.Game})
	if err != nil {
		return err
	}
	game := current.Game

	hole := c.Hole
	if hole == 0 {
		hole = game.CurrentHole
	}

	scores, err := byPlayerID(game, c.Score)
	if err != nil {
		return err
	}
	bets, err := byPlayerID(game, c.Bet)
	if err != nil {
		return err
	}
	presses := make(map[string]bool, len(c.Press))
	for _, key := range c.Press {
		id, ok := resolvePlayerID(game, key)
		if !ok {
			return fmt.Errorf("%w: %s", gameService.ErrPlayerNotFound, key)
		}
		presses[id] = true
	}
	bankerOverride := ""
	if c.Banker != "" {
		id, ok := resolvePlayerID(game, c.Banker)
		if !ok {
			return fmt.Errorf("%w: %s", gameService.ErrPlayerNotFound, c.Banker)
		}
		bankerOverride = id
	}

	out, err := a.games.SaveHole(a.ctx, &gameService.SaveHoleInput{
		GameID:         game.ID,
		HoleNumber:     hole,
		Scores:         scores,
		Presses:        presses,
		DefaultWager:   c.Wager,
		PlayerWagers:   bets,
		BankerPressed:  c.BankerPress,
		BankerOverride: bankerOverride,
	})
	if err != nil {
		return err
	}

	hs := out.HoleScore
	data := pterm.TableData{{"Player", "Score", "Banker", "Stroke", "Wager", "Result"}}
	for _, m := range hs.Matches {
		data = append(data, []string{
			displayName(out.Game, m.PlayerID),
			strconv.Itoa(m.PlayerScore),
			strconv.Itoa(m.BankerScore),
			strokeLabel(m.HandicapDiff),
			strconv.Itoa(m.BetAmount),
			signed(-m.Result),
		})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	o := outcomeForBanker(hs)
	msg, err := a.messages.GetHoleResultMessage(a.ctx, &messaging.GetHoleResultMessageInput{
		HoleNumber: hs.HoleNumber,
		BankerName: displayName(out.Game, hs.BankerID),
		BankerNet:  out.Result.Net[hs.BankerID],
		Won:        o.won,
		Lost:       o.lost,
		Pushed:     o.pushed,
		Presses:    o.presses,
		Tone:       a.tone,
	})
	if err != nil {
		return err
	}
	pterm.Info.Printfln("%s: %s", msg.Title, msg.Message)

	if out.Completed {
		return a.printLeaderboard(game.ID, 0, current.Course)
	}
	pterm.Info.Printfln("Next up: hole %d", out.Game.CurrentHole)
	return nil
}

// byPlayerID re-keys a flag map by player ID
func byPlayerID(game *models.Game, values map[string]int) (map[string]int, error) {
	out := make(map[string]int, len(values))
	for key, v := range values {
		id, ok := resolvePlayerID(game, key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", gameService.ErrPlayerNotFound, key)
		}
		out[id] = v
	}
	return out, nil
}

type BackCmd struct {
	Game string `arg:"" help:"Game ID"`
}

func (c *BackCmd) Run(a *app) error {
	out, err := a.games.PreviousHole(a.ctx, &gameService.PreviousHoleInput{GameID: c.Game})
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Back on hole %d", out.Game.CurrentHole)
	return nil
}

type SummaryCmd struct {
	Game    string `arg:"" help:"Game ID"`
	Through int    `help:"Only count holes up to and including this one"`
}

func (c *SummaryCmd) Run(a *app) error {
	current, err := a.games.GetGame(a.ctx, &gameService.GetGameInput{GameID: c.Game})
	if err != nil {
		return err
	}
	return a.printLeaderboard(c.Game, c.Through, current.Course)
}

func (a *app) printLeaderboard(gameID string, through int, course *models.Course) error {
	out, err := a.games.GetSummary(a.ctx, &gameService.GetSummaryInput{
		GameID:      gameID,
		ThroughHole: through,
	})
	if err != nil {
		return err
	}

	data := pterm.TableData{{"#", "Player", "Total", "Won", "Lost", "Tied"}}
	standings := make([]messaging.Standing, 0, len(out.Leaderboard))
	for i, row := range out.Leaderboard {
		name := displayName(out.Game, row.PlayerID)
		data = append(data, []string{
			strconv.Itoa(i + 1),
			name,
			signed(row.TotalWinnings),
			strconv.Itoa(row.HolesWon),
			strconv.Itoa(row.HolesLost),
			strconv.Itoa(row.HolesTied),
		})
		standings = append(standings, messaging.Standing{Name: name, Winnings: row.TotalWinnings})
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}

	if !out.Game.Status.IsCompleted() || through != 0 {
		return nil
	}

	msg, err := a.messages.GetGameCompleteMessage(a.ctx, &messaging.GetGameCompleteMessageInput{
		CourseName: course.Name,
		Standings:  standings,
		Tone:       a.tone,
	})
	if err != nil {
		return err
	}
	pterm.Success.Printfln("%s: %s", msg.Title, msg.Message)
	return nil
}

type HolesCmd struct {
	Game string `arg:"" help:"Game ID"`
}

func (c *HolesCmd) Run(a *app) error {
	out, err := a.games.GetHoleResults(a.ctx, &gameService.GetHoleResultsInput{GameID: c.Game})
	if err != nil {
		return err
	}
	if len(out.Results) == 0 {
		pterm.Info.Println("No holes recorded yet.")
		return nil
	}

	header := []string{"Hole", "Banker"}
	for _, p := range out.Game.Players {
		header = append(header, p.DisplayName)
	}
	data := pterm.TableData{header}
	for _, r := range out.Results {
		row := []string{strconv.Itoa(r.HoleNumber), displayName(out.Game, r.BankerID)}
		for _, p := range out.Game.Players {
			row = append(row, signed(r.Net[p.ID]))
		}
		data = append(data, row)
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

type TabCmd struct {
	Player string `arg:"" help:"Player ID"`
	Game   string `help:"Only show one game"`
}

func (c *TabCmd) Run(a *app) error {
	out, err := a.games.GetPlayerTab(a.ctx, &gameService.GetPlayerTabInput{
		PlayerID: c.Player,
		GameID:   c.Game,
	})
	if err != nil {
		return err
	}

	roster, err := a.games.ListPlayers(a.ctx, &gameService.ListPlayersInput{})
	if err != nil {
		return err
	}
	names := make(map[string]string, len(roster.Players))
	for _, p := range roster.Players {
		names[p.ID] = p.DisplayName
	}
	name := func(id string) string {
		if n, ok := names[id]; ok {
			return n
		}
		return id
	}

	if len(out.Entries) > 0 {
		data := pterm.TableData{{"Game", "Hole", "Paid by", "Paid to", "Amount"}}
		for _, e := range out.Entries {
			data = append(data, []string{
				shortID(e.GameID),
				strconv.Itoa(e.HoleNumber),
				name(e.FromPlayerID),
				name(e.ToPlayerID),
				strconv.Itoa(e.Amount),
			})
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
	}

	pterm.Info.Printfln("%s owes %d, collected %d, net %s", name(c.Player), out.Owed, out.Collected, signed(out.Net))
	return nil
}

type GamesCmd struct{}

func (c *GamesCmd) Run(a *app) error {
	out, err := a.games.ListActiveGames(a.ctx, &gameService.ListActiveGamesInput{})
	if err != nil {
		return err
	}
	if len(out.Games) == 0 {
		pterm.Info.Println("No rounds in progress.")
		return nil
	}

	data := pterm.TableData{{"ID", "Course", "Hole", "Players", "Started"}}
	for _, g := range out.Games {
		courseName := strconv.Itoa(g.CourseID)
		if course, err := a.courses.GetCourse(g.CourseID); err == nil {
			courseName = course.Name
		}
		players := make([]string, 0, len(g.Players))
		for _, p := range g.Players {
			players = append(players, p.DisplayName)
		}
		data = append(data, []string{
			g.ID,
			courseName,
			strconv.Itoa(g.CurrentHole),
			strings.Join(players, ", "),
			g.CreatedAt.Format("Jan 2 15:04"),
		})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

type AbandonCmd struct {
	Game string `arg:"" help:"Game ID"`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt"`
}

func (c *AbandonCmd) Run(a *app) error {
	if !c.Yes {
		ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete game %s and its ledger?", c.Game))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if _, err := a.games.AbandonGame(a.ctx, &gameService.AbandonGameInput{GameID: c.Game}); err != nil {
		return err
	}

	pterm.Success.Printfln("Abandoned game %s", c.Game)
	return nil
}

// shortID trims a UUID to its first block for tables
func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
