package parse

import (
	"strings"

	"github.com/resumeforge/backend/pkg/nlp"
	"github.com/resumeforge/backend/pkg/resume"
)

// Placeholder values substituted for required contact fields the parser
// could not determine. The editor shows them as prompts to fill in.
const (
	PlaceholderName     = "Your Name"
	PlaceholderEmail    = "your.email@example.com"
	PlaceholderPhone    = "+1 (555) 123-4567"
	PlaceholderRole     = "Your Role"
	PlaceholderLocation = "Your Location"
)

// Normalize fills required-but-missing scalar fields with placeholders,
// cleans the skill and language lists and drops entries whose identifying
// field is empty. It is idempotent.
func Normalize(rec resume.Record) resume.Record {
	if strings.TrimSpace(rec.Name) == "" {
		rec.Name = PlaceholderName
	}
	if strings.TrimSpace(rec.Email) == "" {
		rec.Email = PlaceholderEmail
	}
	if strings.TrimSpace(rec.Phone) == "" {
		rec.Phone = PlaceholderPhone
	}
	if strings.TrimSpace(rec.Role) == "" {
		rec.Role = PlaceholderRole
	}
	if strings.TrimSpace(rec.Location) == "" {
		rec.Location = PlaceholderLocation
	}

	rec.Skills = cleanTokens(rec.Skills)
	rec.Languages = cleanTokens(rec.Languages)

	exp := rec.Experience[:0]
	for _, e := range rec.Experience {
		if strings.TrimSpace(e.Title) != "" {
			exp = append(exp, e)
		}
	}
	rec.Experience = exp

	edu := rec.Education[:0]
	for _, e := range rec.Education {
		if strings.TrimSpace(e.Degree) != "" {
			edu = append(edu, e)
		}
	}
	rec.Education = edu

	ach := rec.Achievements[:0]
	for _, a := range rec.Achievements {
		if strings.TrimSpace(a.KeyAchievements) != "" {
			ach = append(ach, a)
		}
	}
	rec.Achievements = ach

	prj := rec.Projects[:0]
	for _, p := range rec.Projects {
		if strings.TrimSpace(p.Title) != "" {
			prj = append(prj, p)
		}
	}
	rec.Projects = prj

	crt := rec.Certifications[:0]
	for _, c := range rec.Certifications {
		if strings.TrimSpace(c.Title) != "" {
			crt = append(crt, c)
		}
	}
	rec.Certifications = crt

	crs := rec.Courses[:0]
	for _, c := range rec.Courses {
		if strings.TrimSpace(c.Title) != "" {
			crs = append(crs, c)
		}
	}
	rec.Courses = crs

	return rec
}

// cleanTokens trims entries, drops empty ones and removes case-insensitive
// duplicates, keeping the first spelling encountered.
func cleanTokens(tokens []string) []string {
	out := make([]string, 0, len(tokens))
	seen := map[string]struct{}{}
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		key := nlp.NormalizeSkill(tok)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tok)
	}
	return out
}
