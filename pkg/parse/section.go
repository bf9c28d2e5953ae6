package parse

import (
	"strings"

	"github.com/resumeforge/backend/pkg/resume"
)

type sectionTag string

const (
	tagNone           sectionTag = ""
	tagSummary        sectionTag = "summary"
	tagExperience     sectionTag = "experience"
	tagEducation      sectionTag = "education"
	tagSkills         sectionTag = "skills"
	tagAchievements   sectionTag = "achievements"
	tagProjects       sectionTag = "projects"
	tagCertifications sectionTag = "certifications"
	tagCourses        sectionTag = "courses"
)

// headerMaxLen bounds section-header lines: real headers are short.
const headerMaxLen = 50

// sectionKeywords is an ordered table; the first section whose keyword is
// contained in a lowercased header line wins.
var sectionKeywords = []struct {
	tag      sectionTag
	keywords []string
}{
	{tagSummary, []string{"summary", "profile", "objective", "about"}},
	{tagExperience, []string{"experience", "employment", "work history", "career", "professional experience"}},
	{tagEducation, []string{"education", "academic", "qualification", "degree"}},
	{tagSkills, []string{"skills", "technical skills", "competencies", "expertise"}},
	{tagAchievements, []string{"achievements", "accomplishments", "awards", "recognition"}},
	{tagProjects, []string{"projects", "portfolio", "work samples"}},
	{tagCertifications, []string{"certifications", "certificates", "licenses"}},
	{tagCourses, []string{"courses", "training", "coursework"}},
}

func matchSectionHeader(line string) (sectionTag, bool) {
	if len(line) >= headerMaxLen {
		return tagNone, false
	}
	lower := strings.ToLower(line)
	for _, s := range sectionKeywords {
		for _, kw := range s.keywords {
			if strings.Contains(lower, kw) {
				return s.tag, true
			}
		}
	}
	return tagNone, false
}

// segment walks the line sequence once, grouping body lines under the most
// recently seen section header. Lines before the first header belong to no
// section and are consumed only by the basic-info scan.
func segment(lines []string, rec *resume.Record) {
	current := tagNone
	var buffer []string

	for _, line := range lines {
		if tag, ok := matchSectionHeader(line); ok {
			flushSection(current, buffer, rec)
			current = tag
			buffer = nil
			continue
		}
		if current != tagNone {
			buffer = append(buffer, line)
		}
	}
	flushSection(current, buffer, rec)
}

func flushSection(tag sectionTag, buffer []string, rec *resume.Record) {
	if tag == tagNone || len(buffer) == 0 {
		return
	}
	switch tag {
	case tagSummary:
		text := strings.Join(buffer, " ")
		if rec.Summary != "" {
			text = rec.Summary + " " + text
		}
		rec.Summary = text
	case tagExperience:
		rec.Experience = append(rec.Experience, parseExperience(buffer)...)
	case tagEducation:
		rec.Education = append(rec.Education, parseEducation(buffer)...)
	case tagSkills:
		rec.Skills = append(rec.Skills, splitListTokens(buffer)...)
	case tagAchievements:
		rec.Achievements = append(rec.Achievements, parseAchievements(buffer)...)
	case tagProjects:
		rec.Projects = append(rec.Projects, parseProjects(buffer)...)
	case tagCertifications:
		rec.Certifications = append(rec.Certifications, parseCertifications(buffer)...)
	case tagCourses:
		rec.Courses = append(rec.Courses, parseCourses(buffer)...)
	}
}
