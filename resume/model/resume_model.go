package model

import (
	"fmt"
	"strings"
)

// ResumeData is the record collected by the résumé form. Every field is
// optional; absent strings render as empty and absent slices as empty
// sequences.
type ResumeData struct {
	Name        string       `json:"name" yaml:"name"`
	Title       string       `json:"title" yaml:"title"`
	Email       string       `json:"email" yaml:"email"`
	Phone       string       `json:"phone" yaml:"phone"`
	Location    string       `json:"location" yaml:"location"`
	Website     string       `json:"website" yaml:"website"`
	Summary     string       `json:"summary" yaml:"summary"`
	Skills      []string     `json:"skills" yaml:"skills"`
	Experiences []Experience `json:"experiences" yaml:"experiences"`
	Education   []Education  `json:"education" yaml:"education"`
}

// Experience represents a work history entry. Details is free text that the
// renderer splits into bullets.
type Experience struct {
	Role    string `json:"role" yaml:"role"`
	Company string `json:"company" yaml:"company"`
	Start   string `json:"start" yaml:"start"`
	End     string `json:"end" yaml:"end"`
	Details string `json:"details" yaml:"details"`
}

// Education represents a school or program entry. Details is rendered as a
// single paragraph.
type Education struct {
	School  string `json:"school" yaml:"school"`
	Degree  string `json:"degree" yaml:"degree"`
	Period  string `json:"period" yaml:"period"`
	Details string `json:"details" yaml:"details"`
}

// Clone returns a deep copy so callers can hand out snapshots without sharing
// slice backing arrays.
func (d ResumeData) Clone() ResumeData {
	out := d
	if d.Skills != nil {
		out.Skills = append([]string(nil), d.Skills...)
	}
	if d.Experiences != nil {
		out.Experiences = append([]Experience(nil), d.Experiences...)
	}
	if d.Education != nil {
		out.Education = append([]Education(nil), d.Education...)
	}
	return out
}

// Default returns the initial form state: empty fields, no skills and one
// blank experience and education entry ready for editing.
func Default() ResumeData {
	return ResumeData{
		Skills:      []string{},
		Experiences: []Experience{{}},
		Education:   []Education{{}},
	}
}

// AddSkill appends raw to skills the way the tag input does: the value is
// trimmed, blanks are ignored and exact duplicates are dropped. The input
// slice is never modified.
func AddSkill(skills []string, raw string) []string {
	out := append([]string(nil), skills...)
	v := strings.TrimSpace(raw)
	if v == "" {
		return out
	}
	for _, existing := range out {
		if existing == v {
			return out
		}
	}
	return append(out, v)
}

// NormalizeSkills applies AddSkill over a whole list, keeping first-seen
// order. The renderer never calls this; duplicates are a caller concern.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		out = AddSkill(out, s)
	}
	return out
}

// MissingRequired lists the labels of fields the form marks as required but
// which are blank. The result is informational only and never blocks
// rendering.
func MissingRequired(d ResumeData) []string {
	var missing []string
	if isBlank(d.Name) {
		missing = append(missing, "Full Name")
	}
	if isBlank(d.Title) {
		missing = append(missing, "Headline / Title")
	}
	for i, exp := range d.Experiences {
		if isBlank(exp.Role) {
			missing = append(missing, entryLabel("Experience", i, "Role"))
		}
		if isBlank(exp.Company) {
			missing = append(missing, entryLabel("Experience", i, "Company"))
		}
	}
	for i, edu := range d.Education {
		if isBlank(edu.School) {
			missing = append(missing, entryLabel("Education", i, "School"))
		}
	}
	return missing
}

func entryLabel(section string, idx int, field string) string {
	return fmt.Sprintf("%s #%d %s", section, idx+1, field)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
