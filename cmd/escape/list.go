package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/escape-arcade/internal/core"
	"github.com/vovakirdan/escape-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every registered game with its number of levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers("ID", "Title", "Levels")

	for _, info := range games {
		levels := "?"
		if g, err := registry.Create(info.ID); err == nil {
			g.Reset(core.DefaultConfig())
			levels = strconv.Itoa(g.State().Levels)
		}
		t.Row(info.ID, info.Title, levels)
	}

	fmt.Println(t)
	fmt.Println()
	fmt.Println("Run 'escape play <id>' to play a game.")
}
