package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompt(t *testing.T) {
	prompt, err := Get("compiler.json", "narrative")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Name}}")
	assert.Contains(t, prompt, "career evidence narrative")
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("compiler.json", "missing")
	assert.Error(t, err)
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("nope.json", "narrative")
	assert.Error(t, err)
}

func TestFormat_ReplacesPlaceholders(t *testing.T) {
	result := Format("Repo: {{.Name}} ({{.Stars}} stars)", map[string]string{
		"Name":  "me/alpha",
		"Stars": "12",
	})
	assert.Equal(t, "Repo: me/alpha (12 stars)", result)
}

func TestFormat_LeavesUnknownPlaceholders(t *testing.T) {
	result := Format("{{.Known}} {{.Unknown}}", map[string]string{"Known": "x"})
	assert.Equal(t, "x {{.Unknown}}", result)
}

func TestAllPromptFilesParse(t *testing.T) {
	for _, file := range []string{"compiler.json", "onboarding.json", "interview.json", "cv.json"} {
		_, err := loadFile(file)
		require.NoError(t, err, file)
	}
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("compiler.json", "missing") })

	prompt := MustGet("interview.json", "feedback")
	assert.True(t, strings.Contains(prompt, "{{.Solution}}"))
}
