// Package roster renders the player list as a table for CLI output.
package roster

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/termdeck/termdeck/internal/domain"
)

func Render(players []domain.Player) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Player", "Color", "Status"})

	for _, player := range players {
		status := "offline"
		if player.Online {
			status = text.FgGreen.Sprint("online")
		}
		t.AppendRow(table.Row{player.Name, player.Color, status})
	}

	if len(players) == 0 {
		t.AppendRow(table.Row{"no players", "", ""})
	}

	return t.Render()
}
