package screen

import (
	"context"

	"github.com/spigell/talent-alchemy/internal/talent"
)

// Backend is the part of the recruiting API the screens depend on.
// *talent.Client satisfies it.
type Backend interface {
	Search(ctx context.Context, query string) (*talent.SearchResult, error)
	Profile(ctx context.Context, id string) (*talent.Profile, error)
	ScreeningQuestions(ctx context.Context, id string) ([]string, error)
	GenerateEmail(ctx context.Context, id string, template talent.Template) (*talent.Draft, error)
	SendEmail(ctx context.Context, id string, msg *talent.Message) error
}

// Request is a pending backend call issued by a screen. Do performs the call
// and never touches screen state, so it is safe to run on any goroutine; the
// Response is handed back to the screen that issued it.
type Request interface {
	Do(ctx context.Context, b Backend) Response
}

// Response is the outcome of a Request.
type Response interface {
	token() uint64
}

// Run executes requests sequentially and returns their responses in order.
func Run(ctx context.Context, b Backend, requests ...Request) []Response {
	responses := make([]Response, 0, len(requests))
	for _, req := range requests {
		if req == nil {
			continue
		}
		responses = append(responses, req.Do(ctx, b))
	}
	return responses
}
