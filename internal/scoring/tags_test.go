package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTags_TableOrder(t *testing.T) {
	tags := ExtractTags("Built with React and TypeScript for full-stack delivery")
	assert.Equal(t, []string{"React", "TypeScript", "Full-stack"}, tags)
}

func TestExtractTags_CaseInsensitive(t *testing.T) {
	tags := ExtractTags("PYTHON and Machine Learning pipeline")
	assert.Equal(t, []string{"ML", "Python"}, tags)
}

func TestExtractTags_DuplicatesSuppressed(t *testing.T) {
	// Two keywords mapping to the same tag produce the tag once.
	tags := ExtractTags("full-stack and full stack react react")
	assert.Equal(t, []string{"React", "Full-stack"}, tags)
}

func TestExtractTags_EmptyText(t *testing.T) {
	assert.Empty(t, ExtractTags(""))
}

func TestExtractTags_NoMatches(t *testing.T) {
	assert.Empty(t, ExtractTags("wrote some documentation"))
}

func TestExtractTags_SubstringMatch(t *testing.T) {
	// "reacted" contains "react"; substring matching is intentional.
	tags := ExtractTags("the team reacted quickly")
	assert.Equal(t, []string{"React"}, tags)
}
