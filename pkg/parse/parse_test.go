package parse

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resumeforge/backend/pkg/resume"
)

func parseText(t *testing.T, text string) resume.Record {
	t.Helper()
	r, err := ParseResumeContent([]byte(text), MediaPlainText)
	require.NoError(t, err)
	return r
}

func TestParseBasicInfoAndEducation(t *testing.T) {
	doc := "Jane Doe\nSoftware Engineer\njane@x.com\n555-123-4567\nEDUCATION\nBachelor of Science\nMIT\n2018-2022"

	rec := parseText(t, doc)

	assert.Equal(t, "Jane Doe", rec.Name)
	assert.Equal(t, "Software Engineer", rec.Role)
	assert.Equal(t, "jane@x.com", rec.Email)
	assert.Equal(t, "555-123-4567", rec.Phone)

	require.Len(t, rec.Education, 1)
	edu := rec.Education[0]
	assert.Equal(t, "Bachelor of Science", edu.Degree)
	assert.Equal(t, "MIT", edu.Institution)
	assert.Equal(t, "2018-2022", edu.Duration)
	assert.Equal(t, "", edu.Location)
}

func TestParseSkillsSplitting(t *testing.T) {
	rec := parseText(t, "SKILLS\nPython, Go; Rust | Docker")
	assert.Equal(t, []string{"Python", "Go", "Rust", "Docker"}, rec.Skills)
}

func TestParseEmptyInput(t *testing.T) {
	_, err := ParseResumeContent([]byte(""), MediaPlainText)
	require.ErrorIs(t, err, ErrEmptyContent)

	_, err = ParseResumeContent([]byte("   \n\t\n  "), MediaPlainText)
	require.ErrorIs(t, err, ErrEmptyContent)
}

func TestParseProjectEntry(t *testing.T) {
	rec := parseText(t, "PROJECTS\nProject Alpha\n6 months\nBuilt a thing.")

	require.Len(t, rec.Projects, 1)
	p := rec.Projects[0]
	assert.Equal(t, "Project Alpha", p.Title)
	assert.Equal(t, "6 months", p.Duration)
	assert.Equal(t, "Built a thing.", p.Description)
}

func TestParseNoSectionHeaders(t *testing.T) {
	doc := "John Smith\nSenior Developer\njohn@example.com\n+1 212 555 0100\nSome random line\nAnother random line"

	rec := parseText(t, doc)

	assert.Equal(t, "John Smith", rec.Name)
	assert.Equal(t, "Senior Developer", rec.Role)
	assert.Equal(t, "john@example.com", rec.Email)
	assert.Empty(t, rec.Experience)
	assert.Empty(t, rec.Education)
	assert.Empty(t, rec.Projects)
	assert.Empty(t, rec.Skills)
	assert.Empty(t, rec.Achievements)
	assert.Equal(t, "", rec.Summary)
}

func TestParseRequiredFieldsNeverEmpty(t *testing.T) {
	docs := []string{
		"x",
		"just one line of nothing in particular",
		"SKILLS\nGo",
		"A\nB\nC",
	}
	for _, doc := range docs {
		rec := parseText(t, doc)
		assert.NotEmpty(t, rec.Name, "doc: %q", doc)
		assert.NotEmpty(t, rec.Email, "doc: %q", doc)
		assert.NotEmpty(t, rec.Phone, "doc: %q", doc)
		assert.NotEmpty(t, rec.Role, "doc: %q", doc)
		assert.NotEmpty(t, rec.Location, "doc: %q", doc)
	}
}

func TestParsePlaceholdersForMissingContact(t *testing.T) {
	rec := parseText(t, "Some Person")
	assert.Equal(t, "Some Person", rec.Name)
	assert.Equal(t, PlaceholderEmail, rec.Email)
	assert.Equal(t, PlaceholderPhone, rec.Phone)
	assert.Equal(t, PlaceholderRole, rec.Role)
	assert.Equal(t, PlaceholderLocation, rec.Location)
}

func TestParseExperienceSection(t *testing.T) {
	doc := strings.Join([]string{
		"Jane Doe",
		"Backend Engineer",
		"WORK HISTORY",
		"Senior Backend Engineer",
		"acme corp ltd",
		"2019-2023",
		"remote, united states",
		"• Shipped the billing pipeline serving 2M users",
	}, "\n")

	rec := parseText(t, doc)

	require.Len(t, rec.Experience, 1)
	exp := rec.Experience[0]
	assert.Equal(t, "Senior Backend Engineer", exp.Title)
	assert.Equal(t, "acme corp ltd", exp.CompanyName)
	assert.Equal(t, "2019-2023", exp.Date)
	assert.Equal(t, "remote, united states", exp.CompanyLocation)
	assert.Equal(t, []string{"• Shipped the billing pipeline serving 2M users"}, exp.Accomplishment)
}

func TestParseExperienceTitleLikeLinesStartEntries(t *testing.T) {
	// Capitalized lines of plausible length are each taken as a new
	// position; no lookahead corrects an over-eager split.
	rec := parseText(t, strings.Join([]string{
		"Jane Doe",
		"EXPERIENCE",
		"Backend Engineer",
		"Platform Engineer",
	}, "\n"))

	require.Len(t, rec.Experience, 2)
	assert.Equal(t, "Backend Engineer", rec.Experience[0].Title)
	assert.Equal(t, "Platform Engineer", rec.Experience[1].Title)
}

func TestParseSummarySection(t *testing.T) {
	rec := parseText(t, "Jane Doe\nSUMMARY\nSeasoned engineer.\nLikes distributed systems.")
	assert.Equal(t, "Seasoned engineer. Likes distributed systems.", rec.Summary)
}

func TestParseLinkedInNormalized(t *testing.T) {
	rec := parseText(t, "Jane Doe\nlinkedin.com/in/janedoe")
	assert.Equal(t, "https://linkedin.com/in/janedoe", rec.LinkedIn)

	rec = parseText(t, "Jane Doe\nhttps://www.linkedin.com/in/janedoe")
	assert.Equal(t, "https://www.linkedin.com/in/janedoe", rec.LinkedIn)
}

func TestParseLocationFromHeader(t *testing.T) {
	rec := parseText(t, "Jane Doe\nSeattle, WA\njane@x.com")
	assert.Equal(t, "Seattle, WA", rec.Location)
}

func TestParseCertificationsAndCourses(t *testing.T) {
	doc := strings.Join([]string{
		"Jane Doe",
		"CERTIFICATIONS",
		"AWS Solutions Architect 2021",
		"CKA",
		"COURSES",
		"Advanced Databases",
	}, "\n")

	rec := parseText(t, doc)

	require.Len(t, rec.Certifications, 1)
	assert.Equal(t, "AWS Solutions Architect 2021", rec.Certifications[0].Title)
	assert.Equal(t, "2021", rec.Certifications[0].Year)
	assert.Equal(t, "", rec.Certifications[0].IssuedBy)

	require.Len(t, rec.Courses, 1)
	assert.Equal(t, "Advanced Databases", rec.Courses[0].Title)
	assert.Equal(t, "", rec.Courses[0].Description)
}

func TestParseAchievements(t *testing.T) {
	rec := parseText(t, "Jane Doe\nACHIEVEMENTS\nWon the 2020 company hackathon\nok")

	require.Len(t, rec.Achievements, 1)
	a := rec.Achievements[0]
	assert.Equal(t, "Won the 2020", a.KeyAchievements)
	assert.Equal(t, "Won the 2020 company hackathon", a.Describe)
}

func TestParseRecordIsJSONStable(t *testing.T) {
	// every list field must round-trip as [] rather than null
	rec := parseText(t, "Only a name")
	assert.NotNil(t, rec.Experience)
	assert.NotNil(t, rec.Education)
	assert.NotNil(t, rec.Skills)
	assert.NotNil(t, rec.Languages)
	assert.NotNil(t, rec.Projects)
	assert.NotNil(t, rec.Certifications)
	assert.NotNil(t, rec.Courses)
	assert.NotNil(t, rec.Achievements)
}
