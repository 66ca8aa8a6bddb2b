package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_ProjectWithAllSignals(t *testing.T) {
	score := Score(EvidenceInput{
		Type:          TypeProject,
		Title:         "Distributed cache",
		Links:         []string{"https://example.com/repo"},
		HasPublicRepo: true,
		HasDates:      true,
	})

	// 40 base + 15 dates + 10 links + 20 public repo
	assert.Equal(t, 85, score)
}

func TestScore_BareAchievement(t *testing.T) {
	score := Score(EvidenceInput{Type: TypeAchievement, Title: "Hackathon winner"})
	assert.Equal(t, 30, score)
}

func TestScore_BareCredential(t *testing.T) {
	score := Score(EvidenceInput{Type: TypeCredential, Title: "AWS SAA"})
	assert.Equal(t, 35, score)
}

func TestScore_ClampedAt100(t *testing.T) {
	// No combination of the current bonuses exceeds 100, but the clamp is
	// part of the contract.
	score := Score(EvidenceInput{
		Type:          TypeProject,
		Links:         []string{"a", "b"},
		HasPublicRepo: true,
		HasDates:      true,
	})
	assert.LessOrEqual(t, score, 100)
	assert.Equal(t, 85, score)
}

func TestScore_EmptyLinksGetNoBonus(t *testing.T) {
	withEmpty := Score(EvidenceInput{Type: TypeProject, Links: []string{}})
	withNil := Score(EvidenceInput{Type: TypeProject})
	assert.Equal(t, 40, withEmpty)
	assert.Equal(t, withNil, withEmpty)
}

func TestScore_Deterministic(t *testing.T) {
	input := EvidenceInput{Type: TypeCredential, HasDates: true}
	assert.Equal(t, Score(input), Score(input))
}
