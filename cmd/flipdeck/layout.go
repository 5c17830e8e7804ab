package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/phanxgames/flipdeck"
)

var (
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(14)
	valueStyle = lipgloss.NewStyle().Bold(true)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#1f5d58")).
			Padding(0, 1)
)

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout WIDTH HEIGHT",
		Short: "Print the tile grid a viewport produces",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("width: %w", err)
			}
			h, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("height: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), layoutReport(w, h))
			return nil
		},
	}
}

// layoutReport describes the grid for a w×h viewport and its flip timing.
func layoutReport(w, h int) string {
	shape := flipdeck.ComputeGrid(w, h)
	grid := flipdeck.NewTileGrid()
	grid.Apply(shape, true)

	var longest int
	for _, t := range grid.Tiles() {
		longest = max(longest, t.DelayMs+t.DurationMs)
	}
	off := shape.Offset()

	rows := [][2]string{
		{"viewport", fmt.Sprintf("%.0f x %.0f", shape.ViewportWidth, shape.ViewportHeight)},
		{"target tile", strconv.Itoa(flipdeck.TargetTileSize(w, h))},
		{"tile", fmt.Sprintf("%.0f px", shape.TileWidth)},
		{"grid", fmt.Sprintf("%d cols x %d rows (%d tiles)", shape.Cols, shape.Rows, shape.Count())},
		{"grid size", fmt.Sprintf("%.0f x %.0f", shape.GridWidth, shape.GridHeight)},
		{"offset", fmt.Sprintf("%.0f, %.0f", off.X, off.Y)},
		{"flip time", fmt.Sprintf("%d ms (+50 ms grace)", longest)},
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1]))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
