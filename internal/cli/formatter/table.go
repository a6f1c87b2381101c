package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const tableColGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Columns are padded to the widest cell in each column; widths are
// measured with lipgloss so styled cells align despite ANSI escapes.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := columnWidths(headers, rows)
	cols := len(headers)

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(gap(widths[i] - lipgloss.Width(h)))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(gap(0))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(gap(widths[i] - lipgloss.Width(cell)))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			if w := lipgloss.Width(row[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func gap(pad int) string {
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad+tableColGap)
}
