package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Card shows one record as aligned label/value lines.
type Card struct {
	Title  string
	Fields [][2]string
}

func (c *Card) Add(label, value string) {
	c.Fields = append(c.Fields, [2]string{label, value})
}

func (c *Card) Render(styles Styles) string {
	var sb strings.Builder
	if c.Title != "" {
		sb.WriteString(styles.Title.Render(c.Title))
		sb.WriteString("\n")
	}
	width := 0
	for _, f := range c.Fields {
		width = max(width, lipgloss.Width(f[0]))
	}
	for _, f := range c.Fields {
		value := f[1]
		if value == "" {
			value = styles.Muted.Render("-")
		}
		sb.WriteString(styles.Label.Render(f[0]))
		sb.WriteString(strings.Repeat(" ", width-lipgloss.Width(f[0])+2))
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	return sb.String()
}
