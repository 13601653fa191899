package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytimer/internal/platform/markdown"
)

func TestRenderThenParse(t *testing.T) {
	t.Parallel()
	rendered, err := markdown.RenderFrontmatter(map[string]any{"study_minutes": 25, "weekday": "Monday"}, "# Study 25 min\n")
	require.NoError(t, err)

	note, err := markdown.Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, 25, note.Meta["study_minutes"])
	assert.Equal(t, "Monday", note.Meta["weekday"])
	assert.Equal(t, "\n# Study 25 min\n", note.Body)
}

func TestParseWithoutFrontmatter(t *testing.T) {
	t.Parallel()
	note, err := markdown.Parse("plain body")
	require.NoError(t, err)
	assert.Empty(t, note.Meta)
	assert.Equal(t, "plain body", note.Body)

	_, err = markdown.Parse("---\nkey: value\nno closing fence")
	require.Error(t, err)
}
