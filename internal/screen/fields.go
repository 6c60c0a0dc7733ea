package screen

import (
	"strings"
	"time"
)

// Field names a displayed value that has a literal fallback.
type Field string

const (
	FieldName           Field = "name"
	FieldSummary        Field = "summary"
	FieldExperience     Field = "experience"
	FieldCreatedAt      Field = "created_at"
	FieldEmail          Field = "email"
	FieldPhone          Field = "phone"
	FieldSkills         Field = "skills"
	FieldEducation      Field = "education"
	FieldDegree         Field = "degree"
	FieldCertifications Field = "certifications"
	FieldCertification  Field = "certification"
	FieldWorkExperience Field = "work_experience"
	FieldQuestions      Field = "questions"
	FieldDraft          Field = "draft"
)

// Fallbacks is the text shown in place of a missing value, per field.
var Fallbacks = map[Field]string{
	FieldName:           "Name not provided",
	FieldSummary:        "No summary available",
	FieldExperience:     "No experience listed",
	FieldCreatedAt:      "Date not available",
	FieldEmail:          "Email not provided",
	FieldPhone:          "Phone not provided",
	FieldSkills:         "No skills listed",
	FieldEducation:      "No education details available",
	FieldDegree:         "Degree not specified",
	FieldCertifications: "No certifications listed",
	FieldCertification:  "Certification not specified",
	FieldWorkExperience: "No work experience details available",
	FieldQuestions:      "No questions generated.",
	FieldDraft:          "No email generated.",
}

// Value is a bound display string. Missing is set when Text is the fallback.
type Value struct {
	Text    string
	Missing bool
}

func (v Value) String() string { return v.Text }

// Bind returns value, or the fallback for field when value is blank.
func Bind(field Field, value string) Value {
	if strings.TrimSpace(value) == "" {
		return Value{Text: Fallbacks[field], Missing: true}
	}
	return Value{Text: value}
}

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02",
}

// FormatDate renders a backend timestamp as M/D/YYYY. Unknown formats are
// returned unchanged.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(raw)
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("1/2/2006")
		}
	}
	return raw
}
