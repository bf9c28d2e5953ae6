package parse

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Line classifier predicates. They are intentionally weak and overlapping:
// a line may satisfy several of them, and the entry parsers resolve the
// ambiguity through their fixed routing order. The keyword lists and regex
// shapes below are the contract of the parser and are pinned by tests.

var (
	reEmail = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	rePhone = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)

	reZip       = regexp.MustCompile(`\b\d{5}\b`)
	reCityState = regexp.MustCompile(`^[A-Za-z][A-Za-z .'-]*,\s*[A-Za-z][A-Za-z .]*$`)

	reYearRange      = regexp.MustCompile(`(19|20)\d{2}\s*[-–—]\s*(19|20)\d{2}`)
	reMonthNumRange  = regexp.MustCompile(`\d{1,2}/\d{4}\s*[-–—]\s*\d{1,2}/\d{4}`)
	reMonthNameRange = regexp.MustCompile(`(?i)(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}\s*[-–—]\s*(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\.?\s+\d{4}`)
	reDuration       = regexp.MustCompile(`(?i)\b\d+\+?\s*(week|month|year)s?\b`)

	reYear = regexp.MustCompile(`(19|20)\d{2}`)
)

var roleKeywords = []string{
	"developer", "engineer", "manager", "analyst", "designer", "consultant", "specialist",
}

var degreeKeywords = []string{
	"bachelor", "master", "phd", "doctorate", "associate", "diploma", "certificate",
}

var institutionKeywords = []string{
	"university", "college", "institute", "school",
}

// IsEmail reports whether the line contains an email address.
func IsEmail(line string) bool { return reEmail.MatchString(line) }

// IsPhone reports whether the line contains a loose US/international phone number.
func IsPhone(line string) bool { return rePhone.MatchString(line) }

// IsLinkedIn reports whether the line carries a LinkedIn profile URL.
func IsLinkedIn(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "linkedin.com/in/") || strings.Contains(lower, "linkedin.com/pub/")
}

// IsLocationLine matches "City, State" / "City, ST" shapes or a 5-digit ZIP.
func IsLocationLine(line string) bool {
	return reCityState.MatchString(line) || reZip.MatchString(line)
}

// IsRoleLine reports whether the line mentions a common job-role keyword.
func IsRoleLine(line string) bool {
	return containsAny(strings.ToLower(line), roleKeywords)
}

// IsDateRange matches YYYY-YYYY, MM/YYYY-MM/YYYY and Month YYYY-Month YYYY
// ranges, bare durations ("6 months"), or lines mentioning present/current.
func IsDateRange(line string) bool {
	if reYearRange.MatchString(line) || reMonthNumRange.MatchString(line) ||
		reMonthNameRange.MatchString(line) || reDuration.MatchString(line) {
		return true
	}
	lower := strings.ToLower(line)
	return strings.Contains(lower, "present") || strings.Contains(lower, "current")
}

// IsDegree reports whether the line mentions an academic degree keyword.
func IsDegree(line string) bool {
	return containsAny(strings.ToLower(line), degreeKeywords)
}

// IsInstitution matches institution keywords, falling back to a generic
// length bound so that short names like "MIT" are still accepted.
func IsInstitution(line string) bool {
	if containsAny(strings.ToLower(line), institutionKeywords) {
		return true
	}
	return lengthBetween(line, 2, 100)
}

// IsJobTitle is a weak title heuristic: starts with an uppercase letter,
// bounded length, and does not read like a sentence.
func IsJobTitle(line string) bool { return isTitleLike(line) }

// IsProjectTitle shares the job-title heuristic.
func IsProjectTitle(line string) bool { return isTitleLike(line) }

// IsCompanyName accepts anything within a generous length bound.
func IsCompanyName(line string) bool { return lengthBetween(line, 2, 100) }

// IsLocation accepts anything within a tighter length bound.
func IsLocation(line string) bool { return lengthBetween(line, 3, 50) }

func isTitleLike(line string) bool {
	if !lengthBetween(line, 5, 100) {
		return false
	}
	// Sentence-like lines ("Built a thing.") are content, not titles.
	if strings.HasSuffix(line, ".") {
		return false
	}
	r, _ := utf8.DecodeRuneInString(line)
	return unicode.IsUpper(r)
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func lengthBetween(line string, min, max int) bool {
	n := utf8.RuneCountInString(line)
	return n >= min && n <= max
}
