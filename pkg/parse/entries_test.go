package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEducationRouting(t *testing.T) {
	entries := parseEducation([]string{
		"Bachelor of Science in Computer Science",
		"Stanford University",
		"2015-2019",
		"Palo Alto",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Science in Computer Science", entries[0].Degree)
	assert.Equal(t, "Stanford University", entries[0].Institution)
	assert.Equal(t, "2015-2019", entries[0].Duration)
	assert.Equal(t, "Palo Alto", entries[0].Location)
}

func TestParseEducationIgnoresLinesBeforeFirstDegree(t *testing.T) {
	entries := parseEducation([]string{
		"Stanford University",
		"Bachelor of Arts",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Bachelor of Arts", entries[0].Degree)
	assert.Empty(t, entries[0].Institution)
}

func TestParseProjectsJoinsDescription(t *testing.T) {
	entries := parseProjects([]string{
		"Inventory Service",
		"3 months",
		"wrote the ingestion layer",
		"added a reconciliation job",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Inventory Service", entries[0].Title)
	assert.Equal(t, "3 months", entries[0].Duration)
	assert.Equal(t, "wrote the ingestion layer added a reconciliation job", entries[0].Description)
}

func TestParseAchievementsHeadline(t *testing.T) {
	entries := parseAchievements([]string{
		"Won the 2020 company-wide hackathon",
		"short one",
	})

	require.Len(t, entries, 1)
	assert.Equal(t, "Won the 2020", entries[0].KeyAchievements)
	assert.Equal(t, "Won the 2020 company-wide hackathon", entries[0].Describe)
}

func TestParseCertificationsPullsYear(t *testing.T) {
	entries := parseCertifications([]string{
		"AWS Solutions Architect, 2021",
		"Scrum Master",
		"CKA",
	})

	require.Len(t, entries, 2)
	assert.Equal(t, "2021", entries[0].Year)
	assert.Empty(t, entries[1].Year)
}

func TestSplitListTokens(t *testing.T) {
	tokens := splitListTokens([]string{
		"Go, PostgreSQL • Docker",
		"Kubernetes | Terraform; Redis",
	})
	assert.Equal(t, []string{"Go", "PostgreSQL", "Docker", "Kubernetes", "Terraform", "Redis"}, tokens)
}

func TestSplitListTokensDropsDegenerate(t *testing.T) {
	long := make([]byte, 60)
	for i := range long {
		long[i] = 'x'
	}
	tokens := splitListTokens([]string{"a, " + string(long) + ", Go"})
	assert.Equal(t, []string{"Go"}, tokens)
}
