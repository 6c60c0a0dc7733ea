package talent

import (
	"context"
	"fmt"
)

const (
	ScreeningPath = "/screening-questions"
)

type screeningResponse struct {
	Questions []string `json:"questions"`
}

func (c *Client) getScreeningQuestions(ctx context.Context, id string) ([]string, error) {
	if id == "" {
		return nil, fmt.Errorf("candidate id is required")
	}

	var response screeningResponse
	if err := c.getJSON(ctx, resumeURL(c, id)+ScreeningPath, nil, &response); err != nil {
		return nil, err
	}

	// A missing field reads as no questions.
	if response.Questions == nil {
		return []string{}, nil
	}

	return response.Questions, nil
}
