// Package classification maps onboarding facts to a career-phase label.
// Classification is deterministic: the same input always yields the same phase.
package classification

// Phase is a career-phase label.
type Phase string

// Career phases, ordered roughly by seniority.
const (
	PhaseEducation   Phase = "education"
	PhaseEarlyCareer Phase = "early_career"
	PhaseMidCareer   Phase = "mid_career"
	PhaseLeadership  Phase = "leadership"
	PhaseExecutive   Phase = "executive"
	PhaseLegacy      Phase = "legacy"
)

// AllPhases lists every valid phase slug, matching the career_phases
// reference table. PhaseEducation is valid reference data but is only
// assigned out-of-band; Classify never returns it.
var AllPhases = []Phase{
	PhaseEducation,
	PhaseEarlyCareer,
	PhaseMidCareer,
	PhaseLeadership,
	PhaseExecutive,
	PhaseLegacy,
}

// Input holds the onboarding facts used for classification.
type Input struct {
	YearsExperience float64 `json:"years_experience"`
	DegreeType      string  `json:"degree_type"`
	InternshipCount int     `json:"internship_count"`
}

// Classify returns the career phase for the given input. It is a total
// function: every input maps to a phase, evaluated as an ordered cascade
// where the first matching rule wins.
//
// Early career covers 0-2 years, or zero years with at least one
// internship (the second clause is redundant with the first but kept so
// the rule reads the same as the product definition).
func Classify(input Input) Phase {
	years := input.YearsExperience

	if years <= 2 || (years == 0 && input.InternshipCount > 0) {
		return PhaseEarlyCareer
	}
	if years <= 7 {
		return PhaseMidCareer
	}
	if years <= 12 {
		return PhaseLeadership
	}
	if years <= 25 {
		return PhaseExecutive
	}
	return PhaseLegacy
}
