package talent

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/talent-alchemy/internal/utils"
)

const (
	GenerateEmailPath = "/generate-email"
	SendEmailPath     = "/send-email"
)

// Template names an outreach email variant known to the backend.
type Template string

const (
	TemplateInitialOutreach     Template = "initial_outreach"
	TemplateInterviewInvitation Template = "interview_invitation"
	TemplateCongratulations     Template = "congratulations"
	TemplateRegret              Template = "regret"
)

// Templates lists every template in display order.
var Templates = []Template{
	TemplateInitialOutreach,
	TemplateInterviewInvitation,
	TemplateCongratulations,
	TemplateRegret,
}

var templateLabels = map[Template]string{
	TemplateInitialOutreach:     "Initial Outreach",
	TemplateInterviewInvitation: "Interview Invitation",
	TemplateCongratulations:     "Congratulations",
	TemplateRegret:              "Regret",
}

func (t Template) Label() string {
	if label, ok := templateLabels[t]; ok {
		return label
	}
	return string(t)
}

func (t Template) Valid() bool {
	_, ok := templateLabels[t]
	return ok
}

// ParseTemplate accepts a template name or its label, ignoring case.
func ParseTemplate(s string) (Template, error) {
	s = strings.TrimSpace(s)
	for _, t := range Templates {
		if strings.EqualFold(s, string(t)) || strings.EqualFold(s, t.Label()) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown email template %q", s)
}

// Draft is a generated email. Missing fields decode to empty strings.
type Draft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (c *Client) generateEmail(ctx context.Context, id string, template Template) (*Draft, error) {
	if id == "" {
		return nil, fmt.Errorf("candidate id is required")
	}

	q := url.Values{}
	q.Set("template", string(template))

	var draft Draft
	if err := c.postJSON(ctx, resumeURL(c, id)+GenerateEmailPath, q, nil, &draft); err != nil {
		return nil, err
	}

	c.logger.Debug("got generated email",
		zap.String("template", string(template)),
		zap.String("subject", utils.TruncateForLog(draft.Subject, utils.MaxLogLength)),
	)

	return &draft, nil
}

func (c *Client) sendEmail(ctx context.Context, id string, msg *Message) error {
	if id == "" {
		return fmt.Errorf("candidate id is required")
	}
	if msg == nil || strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("recipient email is required")
	}

	if err := c.postJSON(ctx, resumeURL(c, id)+SendEmailPath, nil, msg, nil); err != nil {
		return err
	}

	c.logger.Debug("email accepted by backend", zap.String("candidate_id", id))
	return nil
}
