package screen

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/filtering"
	"github.com/spigell/talent-alchemy/internal/logger"
	"github.com/spigell/talent-alchemy/internal/talent"
	"github.com/spigell/talent-alchemy/internal/utils"
)

const (
	// SearchFailedAnalysis replaces the analysis text when a search fails.
	SearchFailedAnalysis = "Error searching candidates. Please try again."
)

// Layout is the way search results are laid out.
type Layout int

const (
	LayoutGrid Layout = iota
	LayoutTable
)

func (l Layout) String() string {
	if l == LayoutTable {
		return "table"
	}
	return "grid"
}

// ParseLayout accepts "grid" or "table".
func ParseLayout(s string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "grid", "":
		return LayoutGrid, true
	case "table":
		return LayoutTable, true
	default:
		return LayoutGrid, false
	}
}

// Search holds the state of the candidate search screen.
type Search struct {
	Session string

	query     string
	searching bool
	searched  bool
	results   []*talent.CandidateSummary
	analysis  string
	filters   filtering.Active
	layout    Layout
	token     uint64
	logger    *zap.Logger
}

type SearchRequest struct {
	Token uint64
	Query string
}

type SearchResponse struct {
	Token  uint64
	Result *talent.SearchResult
	Err    error
}

func (r SearchResponse) token() uint64 { return r.Token }

func (r SearchRequest) Do(ctx context.Context, b Backend) Response {
	result, err := b.Search(ctx, r.Query)
	return SearchResponse{Token: r.Token, Result: result, Err: err}
}

func NewSearch(log *zap.Logger) *Search {
	session := uuid.NewString()
	return &Search{
		Session: session,
		filters: filtering.NewActive(),
		layout:  LayoutGrid,
		logger:  logger.WithFields(log, logger.ScreenFields("search", session)...),
	}
}

func (s *Search) Query() string                       { return s.query }
func (s *Search) Searching() bool                     { return s.searching }
func (s *Search) Results() []*talent.CandidateSummary { return s.results }
func (s *Search) Analysis() string                    { return s.analysis }
func (s *Search) Layout() Layout                      { return s.layout }
func (s *Search) Filters() filtering.Active           { return s.filters.Clone() }

func (s *Search) SetQuery(q string) { s.query = q }

// Submit starts a search for the current query. Blank queries issue nothing.
func (s *Search) Submit() (SearchRequest, bool) {
	if strings.TrimSpace(s.query) == "" {
		return SearchRequest{}, false
	}

	s.token++
	s.searching = true
	s.logger.Debug("submitting search", zap.String("query", utils.TruncateForLog(s.query, utils.MaxLogLength)), zap.Uint64("token", s.token))

	return SearchRequest{Token: s.token, Query: s.query}, true
}

// Apply stores a search response. Responses to superseded searches are
// dropped; it reports whether resp was applied.
func (s *Search) Apply(resp Response) bool {
	r, ok := resp.(SearchResponse)
	if !ok {
		return false
	}

	if r.Token != s.token {
		s.logger.Debug("dropping stale search response", zap.Uint64("token", r.Token), zap.Uint64("current", s.token))
		return false
	}

	s.searching = false
	s.searched = true

	if r.Err != nil || r.Result == nil {
		s.logger.Warn("search failed", zap.Error(r.Err))
		s.results = []*talent.CandidateSummary{}
		s.analysis = SearchFailedAnalysis
		return true
	}

	s.results = r.Result.Matches
	if s.results == nil {
		s.results = []*talent.CandidateSummary{}
	}
	s.analysis = r.Result.Analysis
	s.logger.Info("search completed", zap.Int("matches", len(s.results)))

	return true
}

// Run submits the current query and waits for the backend.
func (s *Search) Run(ctx context.Context, b Backend) bool {
	req, ok := s.Submit()
	if !ok {
		return false
	}
	return s.Apply(req.Do(ctx, b))
}

// ToggleFilter flips a filter label and reports whether it is now active.
func (s *Search) ToggleFilter(label string) bool {
	return s.filters.Toggle(label)
}

func (s *Search) ToggleLayout() Layout {
	if s.layout == LayoutGrid {
		s.layout = LayoutTable
	} else {
		s.layout = LayoutGrid
	}
	return s.layout
}

func (s *Search) SetLayout(l Layout) { s.layout = l }

// Snapshot returns the visible results with the analysis text.
func (s *Search) Snapshot() *talent.SearchResult {
	return &talent.SearchResult{Matches: s.Visible(), Analysis: s.analysis}
}

// Visible returns the results after local filtering.
func (s *Search) Visible() []*talent.CandidateSummary {
	return filtering.Apply(s.results, s.filters)
}

// NoMatches reports whether the empty-result notice should be shown: a
// search has completed, the query box is not empty and nothing came back.
func (s *Search) NoMatches() bool {
	return s.searched && s.query != "" && !s.searching && len(s.results) == 0
}

// MatchScore converts a similarity score into a percentage, rounding halves
// up. Out of range scores are passed through.
func MatchScore(score float64) int {
	return int(math.Floor(score*100 + 0.5))
}
