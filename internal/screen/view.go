package screen

import (
	"strings"

	"github.com/spigell/talent-alchemy/internal/talent"
)

const (
	gridSkills  = 5
	tableSkills = 3
)

// ProfileView is a candidate profile with every fallback already applied.
type ProfileView struct {
	Name       Value
	Summary    Value
	Experience Value
	Created    Value
	Email      Value
	Phone      Value

	Skills      []string
	SkillsEmpty Value

	Education      []EducationView
	EducationEmpty Value

	Certifications      []CertificationView
	CertificationsEmpty Value

	WorkSummary Value
	WorkDetails []any
}

// EducationView keeps the entry even when every field is missing; the
// optional lines are left blank and omitted by renderers.
type EducationView struct {
	Degree      Value
	Institution string
	Year        string
}

type CertificationView struct {
	Name         Value
	Organization string
	Year         string
}

func BindProfile(p *talent.Profile) ProfileView {
	if p == nil {
		p = &talent.Profile{}
	}

	created := Bind(FieldCreatedAt, "")
	if strings.TrimSpace(p.CreatedAt) != "" {
		created = Value{Text: FormatDate(p.CreatedAt)}
	}

	view := ProfileView{
		Name:                Bind(FieldName, p.BasicInfo.FullName),
		Summary:             Bind(FieldSummary, p.BasicInfo.Summary),
		Experience:          Bind(FieldExperience, p.BasicInfo.ExperienceYears),
		Created:             created,
		Email:               Bind(FieldEmail, p.ContactInfo.Email),
		Phone:               Bind(FieldPhone, p.ContactInfo.Phone),
		Skills:              p.Skills,
		SkillsEmpty:         Bind(FieldSkills, ""),
		EducationEmpty:      Bind(FieldEducation, ""),
		CertificationsEmpty: Bind(FieldCertifications, ""),
		WorkSummary:         Bind(FieldWorkExperience, p.WorkExperience.Summary),
		WorkDetails:         p.WorkExperience.Details,
	}

	for _, edu := range p.Education.Details {
		view.Education = append(view.Education, EducationView{
			Degree:      Bind(FieldDegree, edu.Degree),
			Institution: strings.TrimSpace(edu.Institution),
			Year:        strings.TrimSpace(edu.Year),
		})
	}

	for _, cert := range p.Education.Certifications {
		view.Certifications = append(view.Certifications, CertificationView{
			Name:         Bind(FieldCertification, cert.Name),
			Organization: strings.TrimSpace(cert.IssuingOrganization),
			Year:         strings.TrimSpace(cert.Year),
		})
	}

	return view
}

// Skill is a skill chip on a search card.
type Skill struct {
	Name string
	// InQuery is set when the query mentions the skill, ignoring case.
	InQuery bool
}

// CardView is one search result bound for display.
type CardView struct {
	ID         string
	Name       string
	Education  string
	Experience string
	Summary    string
	Score      int
	Skills     []Skill
	// MoreSkills counts skills left out of Skills.
	MoreSkills int
	Link       string
}

// BindCard prepares a result for the given layout. The grid shows up to five
// skills, the table up to three plus a counter.
func BindCard(c *talent.CandidateSummary, query string, layout Layout) CardView {
	limit := gridSkills
	if layout == LayoutTable {
		limit = tableSkills
	}

	shown := c.Skills
	if len(shown) > limit {
		shown = shown[:limit]
	}

	lowered := strings.ToLower(query)
	skills := make([]Skill, 0, len(shown))
	for _, name := range shown {
		skills = append(skills, Skill{Name: name, InQuery: strings.Contains(lowered, strings.ToLower(name))})
	}

	more := 0
	if layout == LayoutTable {
		more = len(c.Skills) - len(shown)
	}

	return CardView{
		ID:         c.ID,
		Name:       c.Name,
		Education:  c.Education,
		Experience: c.Experience,
		Summary:    c.Summary,
		Score:      MatchScore(c.SimilarityScore),
		Skills:     skills,
		MoreSkills: more,
		Link:       ProfilePath(c.ID),
	}
}
