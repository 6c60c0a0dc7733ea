package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/render"
	"github.com/spigell/talent-alchemy/internal/screen"
)

type view string

const (
	viewSearch  view = "search"
	viewProfile view = "profile"
)

// Options configures the first screen shown.
type Options struct {
	// Query is submitted on start when set.
	Query string
	// Path opens a profile path on start instead of the search screen.
	Path string
}

// App routes between the search and profile screens.
type App struct {
	ctx     context.Context
	backend screen.Backend
	logger  *zap.Logger
	opts    Options

	view     view
	search   *searchModel
	profile  *profileModel
	renderer *render.Renderer
	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	width  int
	height int
	status string
}

func New(ctx context.Context, backend screen.Backend, log *zap.Logger, opts Options) *App {
	if log == nil {
		log = zap.NewNop()
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown:     key.NewBinding(key.WithKeys("pgdown")),
		PageUp:       key.NewBinding(key.WithKeys("pgup")),
		HalfPageDown: key.NewBinding(key.WithKeys("ctrl+d")),
		HalfPageUp:   key.NewBinding(key.WithKeys("ctrl+u")),
	}

	return &App{
		ctx:      ctx,
		backend:  backend,
		logger:   log,
		opts:     opts,
		view:     viewSearch,
		search:   newSearchModel(log),
		profile:  newProfileModel(log),
		renderer: render.New(0),
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		viewport: vp,
		help:     help.New(),
	}
}

func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.spinner.Tick}
	if a.opts.Path != "" {
		cmds = append(cmds, navigate(a.opts.Path))
	}
	if a.opts.Query != "" {
		a.search.input.SetValue(a.opts.Query)
		a.search.state.SetQuery(a.opts.Query)
		if req, ok := a.search.state.Submit(); ok {
			cmds = append(cmds, dispatch(a.ctx, a.backend, req))
		}
	}
	return tea.Batch(cmds...)
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		a.renderer.SetWidth(m.Width)
		a.viewport.Width = m.Width
		a.help.Width = m.Width
		return a, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(m)
		return a, cmd
	case navigateMsg:
		return a, a.navigate(m.path)
	case responseMsg:
		a.apply(m.resp)
		return a, nil
	case tea.KeyMsg:
		if m.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		if key.Matches(m, a.viewport.KeyMap.PageDown, a.viewport.KeyMap.PageUp,
			a.viewport.KeyMap.HalfPageDown, a.viewport.KeyMap.HalfPageUp) {
			var cmd tea.Cmd
			a.viewport, cmd = a.viewport.Update(m)
			return a, cmd
		}
		a.status = ""
		if a.view == viewProfile {
			return a, a.profile.update(a.ctx, a.backend, m)
		}
		return a, a.search.update(a.ctx, a.backend, m)
	}
	return a, nil
}

func (a *App) navigate(path string) tea.Cmd {
	if path == "/" || path == "" {
		a.logger.Debug("navigating to search")
		a.view = viewSearch
		a.viewport.GotoTop()
		return nil
	}

	id, err := screen.ParseProfilePath(path)
	if err != nil {
		a.logger.Warn("unknown route", zap.String("path", path), zap.Error(err))
		a.status = err.Error()
		return nil
	}

	a.logger.Debug("navigating to profile", zap.String("path", path))
	a.view = viewProfile
	a.viewport.GotoTop()
	return a.profile.open(a.ctx, a.backend, id)
}

func (a *App) apply(resp screen.Response) {
	if _, ok := resp.(screen.SearchResponse); ok {
		a.search.apply(resp)
		return
	}
	a.profile.state.Apply(resp)
}

func (a *App) content() string {
	if a.view == viewProfile {
		return a.profile.view(a.renderer, a.spinner.View())
	}
	return a.search.view(a.renderer, a.spinner.View())
}

func (a *App) footer() string {
	bindings := a.search.help()
	if a.view == viewProfile {
		bindings = a.profile.help()
	}
	footer := a.help.ShortHelpView(bindings)
	if a.status != "" {
		footer = lipgloss.JoinVertical(lipgloss.Left, a.status, footer)
	}
	return footer
}

func (a *App) View() string {
	footer := a.footer()
	body := a.content()

	if a.height <= 0 {
		return lipgloss.JoinVertical(lipgloss.Left, body, footer)
	}

	a.viewport.Height = max(a.height-lipgloss.Height(footer), 1)
	a.viewport.SetContent(body)
	return lipgloss.JoinVertical(lipgloss.Left, a.viewport.View(), footer)
}

// Run starts the interactive program and blocks until it exits.
func Run(ctx context.Context, backend screen.Backend, log *zap.Logger, opts Options) error {
	program := tea.NewProgram(New(ctx, backend, log, opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
