package tui

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/spigell/talent-alchemy/internal/screen"
	"github.com/spigell/talent-alchemy/internal/talent"
)

type fakeBackend struct {
	mu sync.Mutex

	result    *talent.SearchResult
	profile   *talent.Profile
	questions []string
	sendErr   error

	queries  []string
	profiles []string
	drafts   []talent.Template
	sent     []talent.Message
}

func (f *fakeBackend) Search(_ context.Context, query string) (*talent.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, query)
	return f.result, nil
}

func (f *fakeBackend) Profile(_ context.Context, id string) (*talent.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles = append(f.profiles, id)
	if f.profile == nil {
		return nil, errors.New("boom")
	}
	return f.profile, nil
}

func (f *fakeBackend) ScreeningQuestions(context.Context, string) ([]string, error) {
	return f.questions, nil
}

func (f *fakeBackend) GenerateEmail(_ context.Context, _ string, template talent.Template) (*talent.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, template)
	return &talent.Draft{Subject: "About " + template.Label(), Body: "Hello from " + string(template)}, nil
}

func (f *fakeBackend) SendEmail(_ context.Context, _ string, msg *talent.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, *msg)
	return f.sendErr
}

func backendWithResults() *fakeBackend {
	return &fakeBackend{
		result: &talent.SearchResult{
			Analysis: "Two strong matches",
			Matches: []*talent.CandidateSummary{
				{ID: "a1", Name: "Ada", Skills: []string{"React", "TypeScript"}, Experience: "7 years", SimilarityScore: 0.9},
				{ID: "b2", Name: "Bob", Skills: []string{"Python"}, Experience: "3 years", SimilarityScore: 0.7},
			},
		},
		profile: &talent.Profile{
			BasicInfo:   talent.BasicInfo{FullName: "Ada Lovelace"},
			ContactInfo: talent.Contact{Email: "ada@example.com"},
		},
		questions: []string{"Why React?"},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// drain executes cmd and feeds every resulting message back into the app.
func drain(t *testing.T, a *App, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}

	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			drain(t, a, c)
		}
	case tea.QuitMsg:
	default:
		next, nextCmd := a.Update(msg)
		require.Same(t, a, next)
		drain(t, a, nextCmd)
	}
}

func send(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	next, cmd := a.Update(msg)
	require.Same(t, a, next)
	drain(t, a, cmd)
}

func typeText(t *testing.T, a *App, text string) {
	t.Helper()
	for _, r := range text {
		send(t, a, runes(string(r)))
	}
}

func TestSearchFlow(t *testing.T) {
	b := backendWithResults()
	a := New(context.Background(), b, nil, Options{})

	typeText(t, a, "react dev")
	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, []string{"react dev"}, b.queries)
	require.Len(t, a.search.state.Results(), 2)
	require.True(t, a.search.results, "results take focus after a search")

	out := a.View()
	require.Contains(t, out, "Ada")
	require.Contains(t, out, "Two strong matches")
	require.Contains(t, out, "90%")
}

func TestBlankQueryDoesNotSearch(t *testing.T) {
	b := backendWithResults()
	a := New(context.Background(), b, nil, Options{})

	typeText(t, a, "   ")
	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.Empty(t, b.queries)
	require.False(t, a.search.state.Searching())
}

func TestFilterAndLayoutKeys(t *testing.T) {
	b := backendWithResults()
	a := New(context.Background(), b, nil, Options{Query: "python"})
	batch, ok := a.Init()().(tea.BatchMsg)
	require.True(t, ok)
	require.Len(t, batch, 2)
	drain(t, a, batch[1])
	require.Equal(t, []string{"python"}, b.queries)

	require.Len(t, a.search.state.Visible(), 2)

	// 4 is Python.
	send(t, a, runes("4"))
	visible := a.search.state.Visible()
	require.Len(t, visible, 1)
	require.Equal(t, "Bob", visible[0].Name)

	send(t, a, runes("v"))
	require.Equal(t, screen.LayoutTable, a.search.state.Layout())
	require.Contains(t, a.View(), "Match Score")

	send(t, a, runes("4"))
	require.Len(t, a.search.state.Visible(), 2)
}

func TestOpenProfileAndTabs(t *testing.T) {
	b := backendWithResults()
	a := New(context.Background(), b, nil, Options{})

	typeText(t, a, "react")
	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})
	send(t, a, tea.KeyMsg{Type: tea.KeyEnter})

	require.Equal(t, viewProfile, a.view)
	require.Equal(t, []string{"a1"}, b.profiles)
	require.Contains(t, a.View(), "Ada Lovelace")

	send(t, a, runes("2"))
	require.Equal(t, screen.TabScreening, a.profile.state.Tab())
	require.Contains(t, a.View(), "Why React?")

	send(t, a, runes("3"))
	require.Equal(t, []talent.Template{talent.TemplateInitialOutreach}, b.drafts)
	require.Contains(t, a.View(), "Hello from initial_outreach")

	send(t, a, runes("t"))
	require.Equal(t, talent.TemplateInterviewInvitation, a.profile.state.Template())
	require.Len(t, b.drafts, 2)

	send(t, a, runes("s"))
	require.Len(t, b.sent, 1)
	require.Equal(t, "ada@example.com", b.sent[0].To)
	require.Contains(t, a.View(), screen.SendSucceeded)

	send(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	require.Equal(t, viewSearch, a.view)
	require.Len(t, a.search.state.Results(), 2, "search results survive navigation")
}

func TestSendFailureStatus(t *testing.T) {
	b := backendWithResults()
	b.sendErr = errors.New("smtp down")
	a := New(context.Background(), b, nil, Options{Path: "/candidates/a1/profile"})
	drain(t, a, navigate(a.opts.Path))

	send(t, a, runes("3"))
	send(t, a, runes("s"))

	require.Contains(t, a.View(), screen.SendFailed)
	require.False(t, a.profile.state.Sending())
}

func TestProfileLoadFailure(t *testing.T) {
	b := backendWithResults()
	b.profile = nil
	a := New(context.Background(), b, nil, Options{})

	drain(t, a, navigate("/candidates/zz/profile"))

	out := a.View()
	require.Contains(t, out, "Error")
	require.Contains(t, out, screen.ProfileLoadFailed)

	// Tabs stay inert until a profile is shown.
	send(t, a, runes("2"))
	require.Equal(t, screen.TabProfile, a.profile.state.Tab())
}

func TestUnknownRouteKeepsScreen(t *testing.T) {
	a := New(context.Background(), backendWithResults(), nil, Options{})

	drain(t, a, navigate("/jobs/1"))

	require.Equal(t, viewSearch, a.view)
	require.NotEmpty(t, a.status)
}

func TestWindowSizeUsesViewport(t *testing.T) {
	a := New(context.Background(), backendWithResults(), nil, Options{})

	send(t, a, tea.WindowSizeMsg{Width: 90, Height: 12})

	require.Equal(t, 90, a.renderer.Width)
	require.LessOrEqual(t, len(strings.Split(a.View(), "\n")), 12)
}
