package talent

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

const (
	ResumePath = "/resume/%s"
)

// ErrEmptyProfile is returned when the backend answers 2xx without a body.
var ErrEmptyProfile = errors.New("profile not found")

type Profile struct {
	BasicInfo      BasicInfo      `json:"basic_info"`
	ContactInfo    Contact        `json:"contact_info"`
	Skills         []string       `json:"skills"`
	Education      Education      `json:"education"`
	WorkExperience WorkExperience `json:"work_experience"`
	CreatedAt      string         `json:"created_at"`
}

type BasicInfo struct {
	ID              string `json:"id"`
	FirstName       string `json:"first_name"`
	FullName        string `json:"full_name"`
	ExperienceYears string `json:"experience_years"`
	Summary         string `json:"summary"`
}

type Education struct {
	Details        []EducationDetail `json:"details"`
	Certifications []Certification   `json:"certifications"`
}

type EducationDetail struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

type Certification struct {
	Name                string `json:"name"`
	IssuingOrganization string `json:"issuing_organization"`
	Year                string `json:"year"`
}

// WorkExperience details have no fixed shape and are passed through as is.
type WorkExperience struct {
	Summary string `json:"summary"`
	Details []any  `json:"details"`
}

func resumeURL(c *Client, id string) string {
	return c.endpoint(ResumePath, url.PathEscape(id))
}

func (c *Client) getProfile(ctx context.Context, id string) (*Profile, error) {
	if id == "" {
		return nil, fmt.Errorf("candidate id is required")
	}

	var raw map[string]any
	if err := c.getJSON(ctx, resumeURL(c, id), nil, &raw); err != nil {
		return nil, err
	}

	if raw == nil {
		return nil, ErrEmptyProfile
	}

	var profile Profile
	if err := decodeLoose(raw, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}

	return &profile, nil
}
