package talent

import (
	"context"
	"net/http"

	"go.uber.org/zap"
)

const (
	apiURL    = "http://localhost:8000"
	apiPrefix = "/api/search"
	userAgent = "spigell/talent-alchemy"
)

// Client talks to the recruiting backend. The backend owns ranking, question
// generation and email delivery; the client only moves JSON around.
type Client struct {
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		APIURL: apiURL,
		// No explicit timeout: requests live as long as the caller's context.
		HTTPClient: &http.Client{},
		logger:     logger,
		UserAgent:  userAgent,
	}
}

func (c *Client) Search(ctx context.Context, query string) (*SearchResult, error) {
	return c.search(ctx, &SearchQuery{Query: query})
}

func (c *Client) Profile(ctx context.Context, id string) (*Profile, error) {
	return c.getProfile(ctx, id)
}

func (c *Client) ScreeningQuestions(ctx context.Context, id string) ([]string, error) {
	return c.getScreeningQuestions(ctx, id)
}

func (c *Client) GenerateEmail(ctx context.Context, id string, template Template) (*Draft, error) {
	return c.generateEmail(ctx, id, template)
}

func (c *Client) SendEmail(ctx context.Context, id string, msg *Message) error {
	return c.sendEmail(ctx, id, msg)
}
