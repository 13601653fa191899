package slug_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"studytimer/internal/platform/slug"
)

func TestMake(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"Study 25 min":       "study-25-min",
		"  Deep Work!! ":     "deep-work",
		"休憩":                 "untitled",
		"":                   "untitled",
		"Exam prep / Week 3": "exam-prep-week-3",
	}
	for in, want := range cases {
		assert.Equal(t, want, slug.Make(in), in)
	}
	long := slug.Make(strings.Repeat("ab ", 40))
	assert.LessOrEqual(t, len(long), 48)
	assert.False(t, strings.HasSuffix(long, "-"))
}
