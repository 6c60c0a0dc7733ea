package screen

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/logger"
	"github.com/spigell/talent-alchemy/internal/talent"
)

const (
	ProfileLoadFailed = "Failed to load candidate profile"
	ProfileNotFound   = "Profile not found"
	SendSucceeded     = "Email sent successfully!"
	SendFailed        = "Failed to send email."
)

// Tab is a section of the profile screen.
type Tab string

const (
	TabProfile   Tab = "profile"
	TabScreening Tab = "screening"
	TabOutreach  Tab = "outreach"
)

// Tabs lists the profile tabs in display order.
var Tabs = []Tab{TabProfile, TabScreening, TabOutreach}

func (t Tab) Label() string {
	switch t {
	case TabProfile:
		return "Profile"
	case TabScreening:
		return "AI Screening"
	case TabOutreach:
		return "Outreach"
	default:
		return string(t)
	}
}

// ParseTab accepts a tab name, ignoring case.
func ParseTab(s string) (Tab, bool) {
	for _, t := range Tabs {
		if strings.EqualFold(strings.TrimSpace(s), string(t)) {
			return t, true
		}
	}
	return "", false
}

// Profile holds the state of the candidate profile screen. The main profile
// loads on Open; screening questions and the outreach draft load lazily when
// their tab is activated.
type Profile struct {
	Session string

	id       string
	profile  Resource[string, *talent.Profile]
	tab      Tab
	template talent.Template

	questions Resource[string, []string]
	draft     Resource[talent.Template, *talent.Draft]

	sending    bool
	sendStatus string
	sendToken  uint64

	logger *zap.Logger
	base   *zap.Logger
}

type ProfileRequest struct {
	Token uint64
	ID    string
}

type ProfileResponse struct {
	Token   uint64
	Profile *talent.Profile
	Err     error
}

type QuestionsRequest struct {
	Token uint64
	ID    string
}

type QuestionsResponse struct {
	Token     uint64
	Questions []string
	Err       error
}

type DraftRequest struct {
	Token    uint64
	ID       string
	Template talent.Template
}

type DraftResponse struct {
	Token uint64
	Draft *talent.Draft
	Err   error
}

type SendRequest struct {
	Token   uint64
	ID      string
	Message talent.Message
}

type SendResponse struct {
	Token uint64
	Err   error
}

func (r ProfileResponse) token() uint64   { return r.Token }
func (r QuestionsResponse) token() uint64 { return r.Token }
func (r DraftResponse) token() uint64     { return r.Token }
func (r SendResponse) token() uint64      { return r.Token }

func (r ProfileRequest) Do(ctx context.Context, b Backend) Response {
	p, err := b.Profile(ctx, r.ID)
	return ProfileResponse{Token: r.Token, Profile: p, Err: err}
}

func (r QuestionsRequest) Do(ctx context.Context, b Backend) Response {
	q, err := b.ScreeningQuestions(ctx, r.ID)
	return QuestionsResponse{Token: r.Token, Questions: q, Err: err}
}

func (r DraftRequest) Do(ctx context.Context, b Backend) Response {
	d, err := b.GenerateEmail(ctx, r.ID, r.Template)
	return DraftResponse{Token: r.Token, Draft: d, Err: err}
}

func (r SendRequest) Do(ctx context.Context, b Backend) Response {
	msg := r.Message
	return SendResponse{Token: r.Token, Err: b.SendEmail(ctx, r.ID, &msg)}
}

func NewProfile(log *zap.Logger) *Profile {
	session := uuid.NewString()
	base := logger.WithFields(log, logger.ScreenFields("profile", session)...)
	return &Profile{
		Session:  session,
		tab:      TabProfile,
		template: talent.TemplateInitialOutreach,
		profile:  Resource[string, *talent.Profile]{Policy: FetchOnce},
		questions: Resource[string, []string]{
			Policy: FetchOnce,
			Empty:  func(q []string) bool { return len(q) == 0 },
		},
		draft:  Resource[talent.Template, *talent.Draft]{Policy: FetchOnActivate},
		logger: base,
		base:   base,
	}
}

func (p *Profile) ID() string                { return p.id }
func (p *Profile) Tab() Tab                  { return p.tab }
func (p *Profile) Template() talent.Template { return p.template }
func (p *Profile) State() State              { return p.profile.State() }
func (p *Profile) Candidate() *talent.Profile {
	return p.profile.Value()
}

// Error is the blocking message for a failed profile load, or "".
func (p *Profile) Error() string {
	if p.profile.State() != Failed {
		return ""
	}
	if errors.Is(p.profile.Err(), talent.ErrEmptyProfile) {
		return ProfileNotFound
	}
	return ProfileLoadFailed
}

func (p *Profile) QuestionsLoading() bool { return p.questions.Loading() }

// Questions returns the cached questions. A failed fetch reads as none.
func (p *Profile) Questions() []string { return p.questions.Value() }

func (p *Profile) DraftLoading() bool { return p.draft.Loading() }

// Draft returns the current draft; a failed fetch yields an empty one.
func (p *Profile) Draft() talent.Draft {
	if d := p.draft.Value(); d != nil {
		return *d
	}
	return talent.Draft{}
}

func (p *Profile) Sending() bool      { return p.sending }
func (p *Profile) SendStatus() string { return p.sendStatus }

// Recipient is the email the draft would be sent to. It is empty until the
// profile of the current candidate is loaded.
func (p *Profile) Recipient() string {
	if p.profile.State() != Ready {
		return ""
	}
	if c := p.Candidate(); c != nil {
		return strings.TrimSpace(c.ContactInfo.Email)
	}
	return ""
}

// CanSend reports whether the send action is available: the profile is
// loaded, a draft body is shown and the candidate has an email address.
func (p *Profile) CanSend() bool {
	if p.sending || p.profile.State() != Ready || p.draft.State() != Ready {
		return false
	}
	return p.Draft().Body != "" && p.Recipient() != ""
}

// Open mounts the screen for a candidate id. Opening a different id drops
// everything cached for the previous candidate.
func (p *Profile) Open(id string) []Request {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil
	}
	if id == p.id && !p.profile.ShouldFetch(id) {
		return nil
	}

	if id != p.id {
		p.questions.Reset()
		p.draft.Reset()
		p.sendStatus = ""
		p.sending = false
		p.sendToken++
	}

	p.id = id
	p.logger = p.base.With(logger.CandidateFields(id)...)

	requests := []Request{ProfileRequest{Token: p.profile.Begin(id), ID: id}}
	p.logger.Debug("loading candidate profile")

	return append(requests, p.activate()...)
}

// SelectTab switches tabs. Selecting the active tab is a no-op.
func (p *Profile) SelectTab(tab Tab) []Request {
	if tab == p.tab {
		return nil
	}
	p.tab = tab
	return p.activate()
}

// SelectTemplate changes the outreach template. The draft is only refetched
// while the outreach tab is active.
func (p *Profile) SelectTemplate(t talent.Template) []Request {
	if t == p.template {
		return nil
	}
	p.template = t
	if p.tab != TabOutreach {
		return nil
	}
	return p.activate()
}

func (p *Profile) activate() []Request {
	if p.id == "" {
		return nil
	}

	switch p.tab {
	case TabScreening:
		if !p.questions.ShouldFetch(p.id) {
			p.logger.Debug("screening questions cached")
			return nil
		}
		p.logger.Debug("fetching screening questions")
		return []Request{QuestionsRequest{Token: p.questions.Begin(p.id), ID: p.id}}
	case TabOutreach:
		// The draft is refetched on every activation, cached or not.
		p.logger.Debug("generating outreach email", logger.TemplateFields(string(p.template))...)
		return []Request{DraftRequest{Token: p.draft.Begin(p.template), ID: p.id, Template: p.template}}
	default:
		return nil
	}
}

// Send issues the current draft to the candidate. It clears the previous
// status and returns false when sending is unavailable.
func (p *Profile) Send() (SendRequest, bool) {
	if !p.CanSend() {
		return SendRequest{}, false
	}

	draft := p.Draft()
	p.sendStatus = ""
	p.sending = true
	p.sendToken++

	return SendRequest{
		Token: p.sendToken,
		ID:    p.id,
		Message: talent.Message{
			To:      p.Recipient(),
			Subject: draft.Subject,
			Body:    draft.Body,
		},
	}, true
}

// Apply stores a response issued by this screen and reports whether it was
// current.
func (p *Profile) Apply(resp Response) bool {
	switch r := resp.(type) {
	case ProfileResponse:
		if r.Err == nil && r.Profile == nil {
			r.Err = talent.ErrEmptyProfile
		}
		if !p.profile.Resolve(r.Token, r.Profile, r.Err) {
			return false
		}
		if r.Err != nil {
			p.logger.Error("error fetching profile", zap.Error(r.Err))
		}
		return true
	case QuestionsResponse:
		if !p.questions.Resolve(r.Token, r.Questions, r.Err) {
			return false
		}
		if r.Err != nil {
			p.logger.Debug("screening questions unavailable", zap.Error(r.Err))
		}
		return true
	case DraftResponse:
		if !p.draft.Resolve(r.Token, r.Draft, r.Err) {
			return false
		}
		if r.Err != nil {
			p.logger.Debug("outreach email unavailable", zap.Error(r.Err))
		}
		return true
	case SendResponse:
		if r.Token != p.sendToken || !p.sending {
			return false
		}
		p.sending = false
		if r.Err != nil {
			p.logger.Warn("sending email failed", zap.Error(r.Err))
			p.sendStatus = SendFailed
			return true
		}
		p.logger.Info("email sent")
		p.sendStatus = SendSucceeded
		return true
	default:
		return false
	}
}

// ApplyAll applies responses in order.
func (p *Profile) ApplyAll(responses []Response) {
	for _, r := range responses {
		p.Apply(r)
	}
}
