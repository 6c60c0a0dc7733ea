package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spigell/talent-alchemy/internal/screen"
)

// responseMsg carries a finished backend call back into the update loop.
type responseMsg struct {
	resp screen.Response
}

// navigateMsg switches the visible screen. Path is "/" or a profile path.
type navigateMsg struct {
	path string
}

func navigate(path string) tea.Cmd {
	return func() tea.Msg { return navigateMsg{path: path} }
}

// dispatch runs every request in its own command.
func dispatch(ctx context.Context, b screen.Backend, requests ...screen.Request) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(requests))
	for _, req := range requests {
		cmds = append(cmds, func() tea.Msg {
			return responseMsg{resp: req.Do(ctx, b)}
		})
	}
	return tea.Batch(cmds...)
}
