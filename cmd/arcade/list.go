package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arcade/internal/platform/tui"
	"github.com/vovakirdan/neon-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows the games registered in the arcade with their action keys.`,
	Run: func(cmd *cobra.Command, _ []string) {
		writeList(cmd.OutOrStdout())
	},
}

func writeList(out io.Writer) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Fprintln(out, "No games available.")
		return
	}

	fmt.Fprintln(out, "Available games:")
	fmt.Fprintln(out)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "  ID\tTitle\tActions")
	fmt.Fprintln(tw, "  --\t-----\t-------")
	for _, g := range games {
		fmt.Fprintf(tw, "  %s\t%s\t%s\n", g.ID, g.Title, actionKeys(g.ID))
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Arrows or WASD move. Run 'arcade play <id>' to play a game.")
}

// actionKeys summarizes a game's action bindings beyond movement.
func actionKeys(gameID string) string {
	actions := tui.KeyMapFor(gameID).FullHelp()[1]
	if len(actions) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(actions))
	for _, b := range actions {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, ", ")
}
