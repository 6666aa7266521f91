package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

func NewTable(title string, headers ...string) *Table {
	return &Table{
		Title:   title,
		Headers: headers,
		Rows:    make([][]string, 0),
	}
}

func (t *Table) AddRow(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Render lays the table out in padded columns. An empty table renders its
// title and a placeholder line.
func (t *Table) Render(styles Styles) string {
	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}
	if len(t.Rows) == 0 {
		sb.WriteString(styles.Muted.Render("no records"))
		sb.WriteString("\n")
		return sb.String()
	}

	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	writeRow := func(cells []string, style lipgloss.Style) {
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := widths[i] - lipgloss.Width(cell)
			sb.WriteString(style.Render(cell))
			if i < len(widths)-1 {
				sb.WriteString(strings.Repeat(" ", pad))
				sb.WriteString(styles.Muted.Render(" | "))
			}
		}
		sb.WriteString("\n")
	}

	writeRow(t.Headers, styles.Header)
	total := 0
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("-", total+3*(len(widths)-1))))
	sb.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row, styles.Body)
	}
	return sb.String()
}
