package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/spigell/talent-alchemy/internal/filtering"
	"github.com/spigell/talent-alchemy/internal/screen"
)

const (
	searchTitle   = "Smart Talent Search"
	searchTagline = "Find the perfect candidates using natural language search"
	searchBusy    = "Searching..."
	noMatches     = "No candidates found matching your search criteria."
	viewProfile   = "View Profile"
)

// SearchOptions carries the interactive bits the screen state does not know
// about.
type SearchOptions struct {
	// Input replaces the plain query line, e.g. with a text input widget.
	Input string
	// Spinner is shown next to the busy label while searching.
	Spinner string
	// Selected highlights one visible result; -1 highlights none.
	Selected int
}

func (r *Renderer) Search(s *screen.Search, opts SearchOptions) string {
	input := opts.Input
	if input == "" {
		input = "> " + s.Query()
	}

	status := ""
	if s.Searching() {
		status = strings.TrimSpace(opts.Spinner + " " + searchBusy)
	}

	notice := ""
	if s.NoMatches() {
		notice = r.styles.Muted.Render(noMatches)
	}

	blocks := []string{
		r.styles.Title.Render(searchTitle),
		r.styles.Muted.Render(searchTagline),
		spacer,
		input,
		status,
		notice,
		r.Analysis(s.Analysis()),
	}

	if len(s.Results()) > 0 {
		blocks = append(blocks, r.styles.Section.Render(lines(r.FilterBar(s), r.LayoutBar(s.Layout()))))
		blocks = append(blocks, r.Results(s, opts.Selected))
	}

	return lines(blocks...)
}

// Analysis renders the backend's analysis text one paragraph per line.
func (r *Renderer) Analysis(text string) string {
	if text == "" {
		return ""
	}

	paragraphs := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		paragraphs = append(paragraphs, r.wrap(line))
	}

	return r.section("Analysis", paragraphs...)
}

// FilterBar lists the filter toggles with their number keys.
func (r *Renderer) FilterBar(s *screen.Search) string {
	active := s.Filters()
	parts := []string{"Filters:"}
	for i, label := range filtering.Labels() {
		text := fmt.Sprintf("%d %s", i+1, label)
		if active.Has(label) {
			parts = append(parts, r.styles.ToggleOn.Render(text))
		} else {
			parts = append(parts, r.styles.Toggle.Render(text))
		}
	}
	return strings.Join(parts, " ")
}

func (r *Renderer) LayoutBar(current screen.Layout) string {
	parts := []string{"View:"}
	for _, l := range []screen.Layout{screen.LayoutGrid, screen.LayoutTable} {
		label := "Grid"
		if l == screen.LayoutTable {
			label = "Table"
		}
		if l == current {
			parts = append(parts, r.styles.ToggleOn.Render(label))
		} else {
			parts = append(parts, r.styles.Toggle.Render(label))
		}
	}
	return strings.Join(parts, " ")
}

// Results renders the filtered results in the current layout.
func (r *Renderer) Results(s *screen.Search, selected int) string {
	visible := s.Visible()
	cards := make([]screen.CardView, 0, len(visible))
	for _, c := range visible {
		cards = append(cards, screen.BindCard(c, s.Query(), s.Layout()))
	}

	if s.Layout() == screen.LayoutTable {
		return r.Table(cards, selected)
	}
	return r.Grid(cards, selected)
}

func (r *Renderer) Grid(cards []screen.CardView, selected int) string {
	if len(cards) == 0 {
		return ""
	}

	perRow := r.Width / (cardWidth + 1)
	if perRow < 1 {
		perRow = 1
	}

	rows := make([]string, 0, (len(cards)+perRow-1)/perRow)
	for start := 0; start < len(cards); start += perRow {
		end := min(start+perRow, len(cards))
		row := make([]string, 0, perRow)
		for i := start; i < end; i++ {
			row = append(row, r.Card(cards[i], i == selected))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Card renders one grid card.
func (r *Renderer) Card(c screen.CardView, selected bool) string {
	inner := cardWidth - 4
	score := r.styles.Score.Render(strconv.Itoa(c.Score) + "%")
	name := r.styles.Heading.Render(c.Name)
	gap := inner - lipgloss.Width(name) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}

	chips := make([]string, 0, len(c.Skills))
	for _, skill := range c.Skills {
		if skill.InQuery {
			chips = append(chips, r.styles.ChipHit.Render(skill.Name))
		} else {
			chips = append(chips, r.styles.Chip.Render(skill.Name))
		}
	}

	body := lines(
		name+strings.Repeat(" ", gap)+score,
		r.styles.Muted.Render(c.Education),
		lipgloss.NewStyle().Width(inner).Render(strings.Join(chips, " ")),
		"Experience: "+c.Experience,
		r.styles.Link.Render(viewProfile+" → "+c.Link),
	)

	style := r.styles.Card
	if selected {
		style = r.styles.CardOn
	}
	return style.Width(cardWidth - 2).Render(body)
}

func (r *Renderer) Table(cards []screen.CardView, selected int) string {
	if len(cards) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(cards))
	for _, c := range cards {
		skills := make([]string, 0, len(c.Skills))
		for _, s := range c.Skills {
			skills = append(skills, s.Name)
		}
		cell := strings.Join(skills, ", ")
		if c.MoreSkills > 0 {
			cell += fmt.Sprintf(" +%d", c.MoreSkills)
		}

		rows = append(rows, []string{
			c.Name,
			cell,
			c.Education,
			c.Experience,
			strconv.Itoa(c.Score) + "%",
			viewProfile + " " + c.Link,
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.styles.Muted).
		Headers("Name", "Skills", "Education", "Experience", "Match Score", "Actions").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return r.styles.Heading.Padding(0, 1)
			case row == selected:
				return r.styles.TabOn.Padding(0, 1)
			default:
				return lipgloss.NewStyle().Padding(0, 1)
			}
		})

	return t.String()
}
