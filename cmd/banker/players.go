package main

import (
	"strconv"

	"github.com/pterm/pterm"

	gameService "github.com/KirkDiggler/banker/internal/services/game"
)

type PlayersCmd struct {
	Add  PlayersAddCmd  `cmd:"" help:"Register or update a player"`
	List PlayersListCmd `cmd:"" default:"1" help:"List registered players"`
}

type PlayersAddCmd struct {
	Name        string `arg:"" help:"Full name"`
	Handicap    int    `short:"c" required:"" help:"Course handicap (0-54)"`
	DisplayName string `name:"display" help:"Short name shown in tables (defaults to first name)"`
	ID          string `help:"Existing player ID to update"`
}

func (c *PlayersAddCmd) Run(a *app) error {
	out, err := a.games.RegisterPlayer(a.ctx, &gameService.RegisterPlayerInput{
		PlayerID:    c.ID,
		Name:        c.Name,
		DisplayName: c.DisplayName,
		Handicap:    c.Handicap,
	})
	if err != nil {
		return err
	}

	pterm.Success.Printfln("Registered %s (%s) with handicap %d", out.Player.Name, out.Player.ID, out.Player.Handicap)
	return nil
}

type PlayersListCmd struct{}

func (c *PlayersListCmd) Run(a *app) error {
	out, err := a.games.ListPlayers(a.ctx, &gameService.ListPlayersInput{})
	if err != nil {
		return err
	}
	if len(out.Players) == 0 {
		pterm.Info.Println("No players registered yet. Add one with `banker players add`.")
		return nil
	}

	data := pterm.TableData{{"ID", "Name", "Display", "Handicap"}}
	for _, p := range out.Players {
		data = append(data, []string{p.ID, p.Name, p.DisplayName, strconv.Itoa(p.Handicap)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
