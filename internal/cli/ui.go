package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/grapheditor/pkg/graph"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Public Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleBorder  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconEdge    = "—"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconSuccess.Render(iconSuccess)+" "+msg)
}

// printError prints an error message.
func printError(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

// printInfo prints an info/status message.
func printInfo(w io.Writer, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(w, styleIconInfo.Render(iconInfo)+" "+msg)
}

// printKeyValue prints a labeled value.
func printKeyValue(w io.Writer, key, value string) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(14)
	fmt.Fprintln(w, keyStyle.Render(key)+" "+StyleValue.Render(value))
}

// printCommand prints a command name with its usage and summary.
func printCommand(w io.Writer, name, usage, summary string) {
	line := styleCommand.Render(name)
	if usage != "" {
		line += " " + StyleDim.Render(usage)
	}
	fmt.Fprintln(w, "  "+line)
	fmt.Fprintln(w, "      "+summary)
}

// =============================================================================
// Graph Display
// =============================================================================

// printStats prints graph statistics on a single line.
func printStats(w io.Writer, st graph.Stats) {
	line := "  " + StyleDim.Render(fmt.Sprintf("%d nodes", st.Nodes)) +
		StyleDim.Render(" · ") + StyleDim.Render(fmt.Sprintf("%d edges", st.Edges)) +
		StyleDim.Render(" · ") + StyleDim.Render(fmt.Sprintf("next ids %d/%d", st.NextNodeID, st.NextEdgeID))
	fmt.Fprintln(w, line)
}

// printGraph renders nodes and edges as two tables.
func printGraph(w io.Writer, g graph.Graph) {
	if g.Empty() {
		printInfo(w, "Graph is empty")
		return
	}

	nodeRows := make([][]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		nodeRows = append(nodeRows, []string{
			strconv.FormatUint(n.ID, 10),
			formatCoord(n.X),
			formatCoord(n.Y),
			strconv.Itoa(g.Degree(n.ID)),
		})
	}
	fmt.Fprintln(w, StyleTitle.Render("Nodes"))
	fmt.Fprintln(w, newTable("ID", "X", "Y", "Degree").Rows(nodeRows...))

	if len(g.Edges) == 0 {
		return
	}
	edgeRows := make([][]string, 0, len(g.Edges))
	for _, e := range g.Edges {
		edgeRows = append(edgeRows, []string{
			strconv.FormatUint(e.ID, 10),
			strconv.FormatUint(e.Source, 10) + " " + iconEdge + " " + strconv.FormatUint(e.Target, 10),
		})
	}
	fmt.Fprintln(w, StyleTitle.Render("Edges"))
	fmt.Fprintln(w, newTable("ID", "Endpoints").Rows(edgeRows...))
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleBorder).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
