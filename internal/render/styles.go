package render

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#4F46E5")
	muted   = lipgloss.Color("#6B7280")
	success = lipgloss.Color("#16A34A")
	danger  = lipgloss.Color("#DC2626")
	chip    = lipgloss.Color("#E5E7EB")
	accent  = lipgloss.Color("#DBEAFE")
)

type styles struct {
	Title    lipgloss.Style
	Heading  lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Success  lipgloss.Style
	Chip     lipgloss.Style
	ChipHit  lipgloss.Style
	Toggle   lipgloss.Style
	ToggleOn lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Card     lipgloss.Style
	CardOn   lipgloss.Style
	Score    lipgloss.Style
	Link     lipgloss.Style
	Section  lipgloss.Style
}

func defaultStyles() styles {
	base := lipgloss.NewStyle()
	card := base.Border(lipgloss.RoundedBorder()).BorderForeground(chip).Padding(0, 1)

	return styles{
		Title:    base.Bold(true).Foreground(primary),
		Heading:  base.Bold(true),
		Muted:    base.Foreground(muted),
		Error:    base.Bold(true).Foreground(danger),
		Success:  base.Foreground(success),
		Chip:     base.Background(chip).Padding(0, 1),
		ChipHit:  base.Background(accent).Foreground(primary).Padding(0, 1),
		Toggle:   base.Foreground(muted).Padding(0, 1),
		ToggleOn: base.Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(primary).Padding(0, 1),
		Tab:      base.Foreground(muted).Padding(0, 2),
		TabOn:    base.Bold(true).Foreground(primary).Underline(true).Padding(0, 2),
		Card:     card,
		CardOn:   card.BorderForeground(primary),
		Score:    base.Bold(true).Foreground(success),
		Link:     base.Foreground(primary).Underline(true),
		Section:  base.MarginTop(1),
	}
}
