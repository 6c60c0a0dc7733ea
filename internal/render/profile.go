package render

import (
	"fmt"
	"strings"

	"github.com/spigell/talent-alchemy/internal/screen"
	"github.com/spigell/talent-alchemy/internal/talent"
)

const (
	profileLoading  = "Loading profile..."
	questionsBusy   = "Loading questions..."
	draftBusy       = "Generating email..."
	sendingLabel    = "Sending..."
	sendButton      = "Send Email"
	screeningTitle  = "AI-Generated Screening Questions"
	screeningIntro  = "These questions are generated based on the candidate's skills and experience."
	outreachTitle   = "AI-Generated Emails"
	outreachIntro   = "Choose the type of email you want to send to this candidate."
	profileCreated  = "Profile created "
	contactLinkText = "Contact"
)

type ProfileOptions struct {
	Spinner string
}

func (r *Renderer) Profile(p *screen.Profile, opts ProfileOptions) string {
	switch p.State() {
	case screen.Unfetched, screen.Loading:
		return strings.TrimSpace(opts.Spinner + " " + profileLoading)
	case screen.Failed:
		return lines(r.styles.Error.Render("Error"), r.styles.Muted.Render(p.Error()))
	}

	view := screen.BindProfile(p.Candidate())

	var body string
	switch p.Tab() {
	case screen.TabScreening:
		body = r.ScreeningTab(p, opts)
	case screen.TabOutreach:
		body = r.OutreachTab(p, opts)
	default:
		body = r.ProfileTab(view)
	}

	return lines(r.ProfileHeader(view), r.TabBar(p.Tab()), body)
}

func (r *Renderer) ProfileHeader(v screen.ProfileView) string {
	contact := ""
	if !v.Email.Missing {
		contact = r.styles.Link.Render(contactLinkText + ": mailto:" + v.Email.Text)
	}

	return r.styles.Card.Width(r.Width - 2).Render(lines(
		r.styles.Title.Render(v.Name.Text),
		r.wrapInCard(v.Summary.Text),
		"Experience: "+v.Experience.Text,
		profileCreated+v.Created.Text,
		contact,
	))
}

func (r *Renderer) wrapInCard(s string) string {
	width := r.Width - 4
	if width < 1 {
		return s
	}
	return r.styles.Muted.Width(width).Render(s)
}

func (r *Renderer) TabBar(active screen.Tab) string {
	parts := make([]string, 0, len(screen.Tabs))
	for i, tab := range screen.Tabs {
		label := fmt.Sprintf("%d %s", i+1, tab.Label())
		if tab == active {
			parts = append(parts, r.styles.TabOn.Render(label))
		} else {
			parts = append(parts, r.styles.Tab.Render(label))
		}
	}
	return r.styles.Section.Render(strings.Join(parts, " "))
}

func (r *Renderer) ProfileTab(v screen.ProfileView) string {
	return lines(
		r.section("Contact Information", "Email: "+v.Email.Text, "Phone: "+v.Phone.Text),
		r.section("Skills", r.skills(v)),
		r.section("Education", r.education(v)...),
		r.section("Certifications", r.certifications(v)...),
		r.section("Work Experience", r.work(v)...),
	)
}

func (r *Renderer) skills(v screen.ProfileView) string {
	if len(v.Skills) == 0 {
		return r.styles.Muted.Render(v.SkillsEmpty.Text)
	}

	chips := make([]string, 0, len(v.Skills))
	for _, s := range v.Skills {
		chips = append(chips, r.styles.Chip.Render(s))
	}
	return r.wrap(strings.Join(chips, " "))
}

func (r *Renderer) education(v screen.ProfileView) []string {
	if len(v.Education) == 0 {
		return []string{r.styles.Muted.Render(v.EducationEmpty.Text)}
	}

	out := make([]string, 0, len(v.Education))
	for _, edu := range v.Education {
		out = append(out, entry(r, edu.Degree.Text, edu.Institution, edu.Year))
	}
	return out
}

func (r *Renderer) certifications(v screen.ProfileView) []string {
	if len(v.Certifications) == 0 {
		return []string{r.styles.Muted.Render(v.CertificationsEmpty.Text)}
	}

	out := make([]string, 0, len(v.Certifications))
	for _, cert := range v.Certifications {
		out = append(out, entry(r, cert.Name.Text, cert.Organization, cert.Year))
	}
	return out
}

// entry renders a titled list item; empty secondary lines are skipped.
func entry(r *Renderer, title string, secondary ...string) string {
	rows := []string{"• " + title}
	for _, s := range secondary {
		if s != "" {
			rows = append(rows, indent(r.styles.Muted.Render(s), 2))
		}
	}
	return lines(rows...)
}

func (r *Renderer) work(v screen.ProfileView) []string {
	if v.WorkSummary.Missing {
		return []string{r.styles.Muted.Render(v.WorkSummary.Text)}
	}

	out := []string{"• " + v.WorkSummary.Text}
	for _, detail := range v.WorkDetails {
		if text := describe(detail); text != "" {
			out = append(out, indent(text, 2))
		}
	}
	return out
}

// describe prints an opaque work experience detail.
func describe(v any) string {
	switch typed := v.(type) {
	case nil:
		return ""
	case string:
		return typed
	case map[string]any:
		keys := sortedKeys(typed)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, typed[k]))
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (r *Renderer) ScreeningTab(p *screen.Profile, opts ProfileOptions) string {
	header := lines(r.styles.Heading.Render(screeningTitle), r.styles.Muted.Render(screeningIntro))

	var body string
	questions := p.Questions()
	switch {
	case p.QuestionsLoading():
		body = strings.TrimSpace(opts.Spinner + " " + questionsBusy)
	case len(questions) > 0:
		items := make([]string, 0, len(questions))
		for i, q := range questions {
			items = append(items, lines(r.styles.Heading.Render(fmt.Sprintf("Question %d", i+1)), r.wrap(q)))
		}
		body = lines(items...)
	default:
		body = r.styles.Muted.Render(screen.Fallbacks[screen.FieldQuestions])
	}

	return r.styles.Section.Render(lines(header, spacer, body))
}

func (r *Renderer) OutreachTab(p *screen.Profile, opts ProfileOptions) string {
	header := lines(r.styles.Heading.Render(outreachTitle), r.styles.Muted.Render(outreachIntro))

	buttons := make([]string, 0, len(talent.Templates))
	for _, t := range talent.Templates {
		if t == p.Template() {
			buttons = append(buttons, r.styles.ToggleOn.Render(t.Label()))
		} else {
			buttons = append(buttons, r.styles.Toggle.Render(t.Label()))
		}
	}

	var body string
	draft := p.Draft()
	switch {
	case p.DraftLoading():
		body = strings.TrimSpace(opts.Spinner + " " + draftBusy)
	case draft.Body != "":
		body = lines(
			r.styles.Heading.Render("Subject:")+" "+draft.Subject,
			r.styles.Heading.Render("Body:"),
			r.wrap(draft.Body),
			spacer,
			r.sendLine(p, opts),
		)
	default:
		body = r.styles.Muted.Render(screen.Fallbacks[screen.FieldDraft])
	}

	return r.styles.Section.Render(lines(header, spacer, strings.Join(buttons, " "), spacer, body))
}

func (r *Renderer) sendLine(p *screen.Profile, opts ProfileOptions) string {
	button := "[" + sendButton + "]"
	if p.CanSend() {
		button = r.styles.ToggleOn.Render(button)
	} else {
		button = r.styles.Muted.Render(button)
	}

	status := ""
	switch {
	case p.Sending():
		status = strings.TrimSpace(opts.Spinner + " " + sendingLabel)
	case p.SendStatus() == screen.SendSucceeded:
		status = r.styles.Success.Render(p.SendStatus())
	case p.SendStatus() != "":
		status = r.styles.Error.Render(p.SendStatus())
	}

	if status == "" {
		return button
	}
	return button + "  " + status
}
