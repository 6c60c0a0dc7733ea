package tui

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/render"
	"github.com/spigell/talent-alchemy/internal/screen"
	"github.com/spigell/talent-alchemy/internal/talent"
)

type profileModel struct {
	state *screen.Profile
	keys  profileKeys
}

func newProfileModel(log *zap.Logger) *profileModel {
	return &profileModel{state: screen.NewProfile(log), keys: newProfileKeys()}
}

func (m *profileModel) open(ctx context.Context, b screen.Backend, id string) tea.Cmd {
	return dispatch(ctx, b, m.state.Open(id)...)
}

func (m *profileModel) update(ctx context.Context, b screen.Backend, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Back):
		return navigate("/")
	}

	// Tabs and actions wait for the profile to load.
	if m.state.State() != screen.Ready {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Tab):
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= len(screen.Tabs) {
			return dispatch(ctx, b, m.state.SelectTab(screen.Tabs[n-1])...)
		}
	case key.Matches(msg, m.keys.NextTab):
		return dispatch(ctx, b, m.state.SelectTab(m.shiftTab(1))...)
	case key.Matches(msg, m.keys.PrevTab):
		return dispatch(ctx, b, m.state.SelectTab(m.shiftTab(-1))...)
	case key.Matches(msg, m.keys.Template):
		if m.state.Tab() == screen.TabOutreach {
			return dispatch(ctx, b, m.state.SelectTemplate(nextTemplate(m.state.Template()))...)
		}
	case key.Matches(msg, m.keys.Send):
		if m.state.Tab() != screen.TabOutreach {
			return nil
		}
		if req, ok := m.state.Send(); ok {
			return dispatch(ctx, b, req)
		}
	}
	return nil
}

func (m *profileModel) shiftTab(delta int) screen.Tab {
	current := 0
	for i, t := range screen.Tabs {
		if t == m.state.Tab() {
			current = i
		}
	}
	n := len(screen.Tabs)
	return screen.Tabs[(current+delta+n)%n]
}

func nextTemplate(t talent.Template) talent.Template {
	for i, candidate := range talent.Templates {
		if candidate == t {
			return talent.Templates[(i+1)%len(talent.Templates)]
		}
	}
	return talent.Templates[0]
}

func (m *profileModel) view(r *render.Renderer, spinner string) string {
	return r.Profile(m.state, render.ProfileOptions{Spinner: spinner})
}

func (m *profileModel) help() []key.Binding {
	return m.keys.help(m.state.Tab() == screen.TabOutreach)
}
