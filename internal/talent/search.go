package talent

import (
	"context"
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	SearchPath = "/search/"
)

// SearchQuery is the body of a search request. Location and ExperienceYears
// have no UI today and are always sent as null.
type SearchQuery struct {
	Query           string  `json:"query"`
	Location        *string `json:"location"`
	ExperienceYears *int    `json:"experience_years"`
}

type SearchResult struct {
	Matches  []*CandidateSummary `json:"matches"`
	Analysis string              `json:"analysis"`
}

type Contact struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type CandidateSummary struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Skills          []string `json:"skills"`
	Experience      string   `json:"experience"`
	Education       string   `json:"education"`
	Contact         Contact  `json:"contact"`
	Summary         string   `json:"summary"`
	SimilarityScore float64  `json:"similarity_score"`
}

type searchResponse struct {
	Matches  []map[string]any `json:"matches"`
	Analysis string           `json:"analysis"`
}

func (c *Client) search(ctx context.Context, query *SearchQuery) (*SearchResult, error) {
	var response searchResponse
	if err := c.postJSON(ctx, c.endpoint(SearchPath), nil, query, &response); err != nil {
		return nil, err
	}

	matches := make([]*CandidateSummary, 0, len(response.Matches))
	if err := decodeLoose(response.Matches, &matches); err != nil {
		return nil, fmt.Errorf("decode matches: %w", err)
	}

	c.logger.Debug("got search response", zap.Int("matches", len(matches)))

	return &SearchResult{
		Matches:  matches,
		Analysis: response.Analysis,
	}, nil
}

// DumpToTmpFile writes the result as indented JSON to a new temporary file
// and returns its name.
func (r *SearchResult) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "candidates_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return file.Name(), nil
}

// decodeLoose maps generic JSON values onto typed structs. The backend is
// not strict about scalar types (ids are numbers, phones may be numbers), so
// weak typing is enabled.
func decodeLoose(input, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata:         nil,
		Result:           result,
		TagName:          "json",
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
