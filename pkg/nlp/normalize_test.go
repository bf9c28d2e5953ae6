package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"  Hello,   World! ", "hello world"},
		{"CI/CD", "ci cd"},
		{"C++", "c"},
		{"Golang", "golang"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeText(tc.in), "input %q", tc.in)
	}
}

func TestNormalizeSkillMatchesVariants(t *testing.T) {
	assert.Equal(t, NormalizeSkill("CI/CD"), NormalizeSkill("ci cd"))
	assert.Equal(t, NormalizeSkill("Node.js"), NormalizeSkill("node js"))
}
