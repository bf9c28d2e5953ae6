package parse

import (
	"strings"
	"unicode/utf8"

	"github.com/resumeforge/backend/pkg/resume"
)

// freeTextMinLen is the minimum length for a line to be treated as free
// text (an accomplishment bullet or a description fragment).
const freeTextMinLen = 10

// parseExperience folds the section lines into job entries. A title-like
// line starts a new entry; every other line fills the first still-empty
// field whose predicate accepts it, else lands in the accomplishment list.
func parseExperience(lines []string) []resume.ExperienceEntry {
	var out []resume.ExperienceEntry
	var cur *resume.ExperienceEntry

	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if IsJobTitle(line) {
			flush()
			cur = &resume.ExperienceEntry{Title: line, Accomplishment: []string{}}
			continue
		}
		if cur == nil {
			continue
		}
		switch {
		case cur.CompanyName == "" && IsCompanyName(line):
			cur.CompanyName = line
		case cur.Date == "" && IsDateRange(line):
			cur.Date = line
		case cur.CompanyLocation == "" && IsLocation(line):
			cur.CompanyLocation = line
		case utf8.RuneCountInString(line) > freeTextMinLen:
			cur.Accomplishment = append(cur.Accomplishment, line)
		}
	}
	flush()
	return out
}

func parseEducation(lines []string) []resume.EducationEntry {
	var out []resume.EducationEntry
	var cur *resume.EducationEntry

	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if IsDegree(line) {
			flush()
			cur = &resume.EducationEntry{Degree: line}
			continue
		}
		if cur == nil {
			continue
		}
		switch {
		case cur.Institution == "" && IsInstitution(line):
			cur.Institution = line
		case cur.Duration == "" && IsDateRange(line):
			cur.Duration = line
		case cur.Location == "" && IsLocation(line):
			cur.Location = line
		}
	}
	flush()
	return out
}

func parseProjects(lines []string) []resume.ProjectEntry {
	var out []resume.ProjectEntry
	var cur *resume.ProjectEntry

	flush := func() {
		if cur != nil {
			out = append(out, *cur)
		}
		cur = nil
	}

	for _, line := range lines {
		if IsProjectTitle(line) {
			flush()
			cur = &resume.ProjectEntry{Title: line}
			continue
		}
		if cur == nil {
			continue
		}
		switch {
		case cur.Duration == "" && IsDateRange(line):
			cur.Duration = line
		case utf8.RuneCountInString(line) > freeTextMinLen:
			if cur.Description == "" {
				cur.Description = line
			} else {
				cur.Description += " " + line
			}
		}
	}
	flush()
	return out
}

// parseAchievements has no multi-line entries: every sufficiently long line
// becomes one achievement, headlined by its first three words.
func parseAchievements(lines []string) []resume.AchievementEntry {
	var out []resume.AchievementEntry
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= freeTextMinLen {
			continue
		}
		words := strings.Fields(line)
		if len(words) > 3 {
			words = words[:3]
		}
		out = append(out, resume.AchievementEntry{
			KeyAchievements: strings.Join(words, " "),
			Describe:        line,
		})
	}
	return out
}

func parseCertifications(lines []string) []resume.CertificationEntry {
	var out []resume.CertificationEntry
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= 5 {
			continue
		}
		// IssuedBy is not derivable from a single line.
		out = append(out, resume.CertificationEntry{
			Title: line,
			Year:  reYear.FindString(line),
		})
	}
	return out
}

func parseCourses(lines []string) []resume.CourseEntry {
	var out []resume.CourseEntry
	for _, line := range lines {
		if utf8.RuneCountInString(line) <= 5 {
			continue
		}
		out = append(out, resume.CourseEntry{Title: line})
	}
	return out
}

// splitListTokens splits skills-style sections on common list separators and
// keeps tokens within a sane length range.
func splitListTokens(lines []string) []string {
	text := strings.Join(lines, "\n")
	isSep := func(r rune) bool {
		switch r {
		case ',', '•', '·', '|', '\n', ';':
			return true
		}
		return false
	}
	var out []string
	for _, tok := range strings.FieldsFunc(text, isSep) {
		tok = strings.TrimSpace(tok)
		n := utf8.RuneCountInString(tok)
		if n >= 2 && n <= 49 {
			out = append(out, tok)
		}
	}
	return out
}
