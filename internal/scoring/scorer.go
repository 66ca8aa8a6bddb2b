// Package scoring produces deterministic credibility scores and skill tags
// for submitted evidence. No randomness, no external calls: the same
// evidence always scores the same.
package scoring

// EvidenceType identifies the kind of evidence being scored.
type EvidenceType string

// Evidence types accepted by the vault.
const (
	TypeProject     EvidenceType = "project"
	TypeCredential  EvidenceType = "credential"
	TypeAchievement EvidenceType = "achievement"
)

// EvidenceInput is the immutable input to scoring. Absent optional fields
// are treated as false/empty.
type EvidenceInput struct {
	Type          EvidenceType
	Title         string
	Description   string
	Links         []string
	HasPublicRepo bool
	HasDates      bool
}

// Base scores by evidence type (0-100 scale). Projects carry the most
// inherent weight because they are independently inspectable.
var baseScores = map[EvidenceType]int{
	TypeProject:     40,
	TypeCredential:  35,
	TypeAchievement: 30,
}

// Score computes the 0-100 credibility score for a piece of evidence.
// Evidence with dates, links, and a public repo scores higher.
func Score(input EvidenceInput) int {
	score := baseScores[input.Type]

	if input.HasDates {
		score += 15
	}
	if len(input.Links) > 0 {
		score += 10
	}
	if input.HasPublicRepo {
		score += 20
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}
