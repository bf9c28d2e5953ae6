package nlp

import (
	"regexp"
	"strings"
)

var (
	reNonWord = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reSpaces  = regexp.MustCompile(`\s+`)
)

// NormalizeText reduces text to a comparable form:
// - lower case
// - all non-alphanumeric runs become single spaces
// - surrounding whitespace stripped
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeSkill normalizes a skill phrase so multi-word skills compare
// correctly ("CI/CD" == "ci cd").
func NormalizeSkill(skill string) string {
	return NormalizeText(skill)
}
