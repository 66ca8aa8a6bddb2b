package interview

// TemplateSeed hashes the selection tuple into an unsigned 32-bit seed.
// The date string is first in the fold so the daily problem rotates once
// per calendar day while staying stable within it for a given
// (role, difficulty, company).
func TemplateSeed(roleType, difficulty, company, dateStr string) uint32 {
	s := dateStr + "-" + roleType + "-" + difficulty + "-" + company
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*31 + uint32(s[i])
	}
	return h
}

// ProblemTemplate is immutable reference data a session is minted from.
type ProblemTemplate struct {
	ID           int64   `json:"id"`
	RoleType     string  `json:"role_type"`
	Difficulty   string  `json:"difficulty"`
	TemplateText string  `json:"template_text"`
	Rubric       Weights `json:"rubric"`
}

// SelectTemplate picks a template by seed. Callers must pass a non-empty
// candidate list.
func SelectTemplate(candidates []ProblemTemplate, seed uint32) ProblemTemplate {
	return candidates[int(seed%uint32(len(candidates)))]
}
