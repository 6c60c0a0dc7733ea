package render

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth = 100
	cardWidth    = 44
	// spacer is a blank line that survives lines().
	spacer = " "
)

// Renderer turns screen state into terminal text.
type Renderer struct {
	Width  int
	styles styles
}

func New(width int) *Renderer {
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{Width: width, styles: defaultStyles()}
}

func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.Width = width
	}
}

// lines joins non-empty blocks vertically.
func lines(blocks ...string) string {
	kept := make([]string, 0, len(blocks))
	for _, b := range blocks {
		if b != "" {
			kept = append(kept, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, kept...)
}

func (r *Renderer) section(title string, body ...string) string {
	return r.styles.Section.Render(lines(append([]string{r.styles.Heading.Render(title)}, body...)...))
}

func (r *Renderer) wrap(s string) string {
	return lipgloss.NewStyle().Width(r.Width).Render(s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = pad + p
	}
	return strings.Join(parts, "\n")
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
