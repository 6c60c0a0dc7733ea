package screen

import (
	"context"
	"errors"
	"sync"

	"github.com/spigell/talent-alchemy/internal/talent"
)

var errBackend = errors.New("backend unavailable")

// fakeBackend records every call and answers from its fields.
type fakeBackend struct {
	mu sync.Mutex

	searches  []string
	profiles  []string
	questions []string
	drafts    []talent.Template
	sent      []talent.Message

	searchResult *talent.SearchResult
	searchErr    error
	profile      *talent.Profile
	profileErr   error
	questionList []string
	questionsErr error
	draft        *talent.Draft
	draftErr     error
	sendErr      error
}

func (f *fakeBackend) Search(_ context.Context, query string) (*talent.SearchResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.searches = append(f.searches, query)
	return f.searchResult, f.searchErr
}

func (f *fakeBackend) Profile(_ context.Context, id string) (*talent.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.profiles = append(f.profiles, id)
	return f.profile, f.profileErr
}

func (f *fakeBackend) ScreeningQuestions(_ context.Context, id string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.questions = append(f.questions, id)
	return f.questionList, f.questionsErr
}

func (f *fakeBackend) GenerateEmail(_ context.Context, _ string, template talent.Template) (*talent.Draft, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.drafts = append(f.drafts, template)
	return f.draft, f.draftErr
}

func (f *fakeBackend) SendEmail(_ context.Context, _ string, msg *talent.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, *msg)
	return f.sendErr
}
