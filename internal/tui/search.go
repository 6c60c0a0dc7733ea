package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/filtering"
	"github.com/spigell/talent-alchemy/internal/render"
	"github.com/spigell/talent-alchemy/internal/screen"
)

const searchPlaceholder = "e.g. Senior React developer with 5+ years of experience"

type searchModel struct {
	state   *screen.Search
	input   textinput.Model
	keys    searchKeys
	cursor  int
	results bool
}

func newSearchModel(log *zap.Logger) *searchModel {
	input := textinput.New()
	input.Placeholder = searchPlaceholder
	input.Prompt = "> "
	input.Cursor.SetMode(cursor.CursorStatic)
	input.Focus()

	return &searchModel{
		state: screen.NewSearch(log),
		input: input,
		keys:  newSearchKeys(),
	}
}

func (m *searchModel) focusInput() {
	m.results = false
	m.input.Focus()
}

func (m *searchModel) focusResults() {
	m.results = true
	m.input.Blur()
}

func (m *searchModel) update(ctx context.Context, b screen.Backend, msg tea.KeyMsg) tea.Cmd {
	if !m.results {
		return m.updateInput(ctx, b, msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Restart):
		m.focusInput()
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.state.Visible())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Filter):
		n, _ := strconv.Atoi(msg.String())
		labels := filtering.Labels()
		if n >= 1 && n <= len(labels) {
			m.state.ToggleFilter(labels[n-1])
			m.clampCursor()
		}
	case key.Matches(msg, m.keys.Layout):
		m.state.ToggleLayout()
	case key.Matches(msg, m.keys.Open):
		visible := m.state.Visible()
		if m.cursor < len(visible) {
			return navigate(screen.ProfilePath(visible[m.cursor].ID))
		}
	}
	return nil
}

func (m *searchModel) updateInput(ctx context.Context, b screen.Backend, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.state.SetQuery(m.input.Value())
		req, ok := m.state.Submit()
		if !ok {
			return nil
		}
		return dispatch(ctx, b, req)
	case msg.Type == tea.KeyTab:
		if len(m.state.Results()) > 0 {
			m.focusResults()
		}
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.state.SetQuery(m.input.Value())
	return cmd
}

func (m *searchModel) apply(resp screen.Response) {
	if !m.state.Apply(resp) {
		return
	}
	m.cursor = 0
	if len(m.state.Results()) > 0 {
		m.focusResults()
	}
}

func (m *searchModel) clampCursor() {
	if n := len(m.state.Visible()); m.cursor >= n {
		m.cursor = max(n-1, 0)
	}
}

func (m *searchModel) view(r *render.Renderer, spinner string) string {
	selected := -1
	if m.results {
		selected = m.cursor
	}
	return r.Search(m.state, render.SearchOptions{
		Input:    m.input.View(),
		Spinner:  spinner,
		Selected: selected,
	})
}

func (m *searchModel) help() []key.Binding {
	if m.results {
		return m.keys.resultsHelp()
	}
	return m.keys.inputHelp()
}
