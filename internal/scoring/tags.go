package scoring

import "strings"

// keywordTag pairs a lowercase keyword with the tag it produces. The table
// is an ordered slice, not a map: tags must be appended in table order so
// extraction is deterministic.
type keywordTag struct {
	keyword string
	tag     string
}

var keywordTable = []keywordTag{
	{"machine learning", "ML"},
	{"machine-learning", "ML"},
	{"team lead", "leadership"},
	{"teamlead", "leadership"},
	{"leadership", "leadership"},
	{"react", "React"},
	{"typescript", "TypeScript"},
	{"node.js", "Node.js"},
	{"python", "Python"},
	{"full-stack", "Full-stack"},
	{"full stack", "Full-stack"},
}

// ExtractTags derives skill tags from free text by case-insensitive
// substring match against the keyword table. Tags appear in table order,
// once each; empty text yields an empty list.
func ExtractTags(text string) []string {
	tags := []string{}
	if text == "" {
		return tags
	}

	lower := strings.ToLower(text)
	seen := make(map[string]bool)
	for _, entry := range keywordTable {
		if seen[entry.tag] {
			continue
		}
		if strings.Contains(lower, entry.keyword) {
			tags = append(tags, entry.tag)
			seen[entry.tag] = true
		}
	}
	return tags
}
