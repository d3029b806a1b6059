// Package cli implements the budgetwise command-line interface.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
	envelopeStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D7D7", Dark: "#00D7D7"})
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	numberStyle   = cellStyle.Align(lipgloss.Right)
	negativeStyle = numberStyle.Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	borderStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#A8A8A8", Dark: "#585858"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

// PrintError writes a styled error line, used by main for command failures.
func PrintError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// newTable builds a bordered table. Columns listed in numeric are right-aligned and
// negative values in them are highlighted.
func newTable(headers []string, rows [][]string, numeric ...int) *table.Table {
	isNumeric := make(map[int]bool, len(numeric))
	for _, col := range numeric {
		isNumeric[col] = true
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if !isNumeric[col] {
				return cellStyle
			}
			if row >= 0 && row < len(rows) && col < len(rows[row]) && len(rows[row][col]) > 0 && rows[row][col][0] == '-' {
				return negativeStyle
			}
			return numberStyle
		})
}
