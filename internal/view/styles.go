package view

import "github.com/charmbracelet/lipgloss"

type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Body   lipgloss.Style
	Muted  lipgloss.Style
	Label  lipgloss.Style
	Error  lipgloss.Style
	Info   lipgloss.Style
	Status map[string]lipgloss.Style
}

func DefaultStyles() Styles {
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	amber := lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	grey := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	return Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Header: lipgloss.NewStyle().Bold(true),
		Body:   lipgloss.NewStyle(),
		Muted:  grey,
		Label:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244")),
		Error: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("160")).Padding(0, 1),
		Info: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Status: map[string]lipgloss.Style{
			"open":        green,
			"accepted":    green,
			"finished":    green,
			"reviewing":   amber,
			"registered":  amber,
			"draft":       grey,
			"not_started": grey,
			"closed":      red,
			"rejected":    red,
			"withdraw":    red,
		},
	}
}

// PlainStyles renders without colors or padding.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:  plain,
		Header: plain,
		Body:   plain,
		Muted:  plain,
		Label:  plain,
		Error:  plain,
		Info:   plain,
	}
}

func (s Styles) status(value string) string {
	if style, ok := s.Status[value]; ok {
		return style.Render(value)
	}
	return value
}
