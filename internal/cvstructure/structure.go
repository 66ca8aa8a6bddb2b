// Package cvstructure turns a user's ranked evidence into a deterministic,
// sectioned CV outline. The outline is recomputed on every request; the
// LLM tailoring that follows decorates it but never changes it.
package cvstructure

import (
	"regexp"
	"sort"
	"strings"
)

// SectionType identifies a CV section.
type SectionType string

// CV section types, in their fixed emission order.
const (
	SectionExperience SectionType = "experience"
	SectionProjects   SectionType = "projects"
	SectionEducation  SectionType = "education"
	SectionSkills     SectionType = "skills"
)

// maxSkills caps the deduplicated skills summary.
const maxSkills = 15

// maxBullets caps bullets derived per item.
const maxBullets = 3

// EvidenceItem is the slice of an evidence record the structurer needs.
type EvidenceItem struct {
	Type             string
	Title            string
	Description      string
	CredibilityScore *int
	SkillTags        []string
}

// Item is a single entry within a section.
type Item struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Bullets  []string `json:"bullets"`
	Score    int      `json:"score,omitempty"`
}

// Section is an ordered group of items under a typed heading.
type Section struct {
	Type  SectionType `json:"type"`
	Title string      `json:"title"`
	Items []Item      `json:"items"`
}

// Structure is the full deterministic CV outline.
type Structure struct {
	Role          string    `json:"role"`
	Company       string    `json:"company,omitempty"`
	Headline      string    `json:"headline"`
	Sections      []Section `json:"sections"`
	SkillsSummary []string  `json:"skillsSummary"`
}

// sentenceBreak splits descriptions into bullet candidates on line breaks
// or a period followed by whitespace.
var sentenceBreak = regexp.MustCompile(`\n|\.\s+`)

// bulletsFor derives up to three bullets from an item's description,
// falling back to the title when there is nothing to split.
func bulletsFor(item EvidenceItem) []string {
	if item.Description == "" {
		return []string{item.Title}
	}

	var bullets []string
	for _, part := range sentenceBreak.Split(item.Description, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bullets = append(bullets, strings.TrimSuffix(part, ".")+".")
		if len(bullets) == maxBullets {
			break
		}
	}
	if len(bullets) == 0 {
		return []string{item.Title}
	}
	return bullets
}

// NewStructure builds the CV outline for a target role. Evidence is ranked
// by credibility score descending with the incoming order preserved among
// ties, then partitioned by type: credentials become education, projects
// become projects, everything else lands in experience.
func NewStructure(targetRole, targetCompany string, evidence []EvidenceItem) Structure {
	role := strings.TrimSpace(targetRole)
	if role == "" {
		role = "Professional"
	}
	company := strings.TrimSpace(targetCompany)

	ranked := make([]EvidenceItem, len(evidence))
	copy(ranked, evidence)
	sort.SliceStable(ranked, func(i, j int) bool {
		return scoreOf(ranked[i]) > scoreOf(ranked[j])
	})

	var experience, projects, education []Item
	for _, e := range ranked {
		item := Item{
			Title:    e.Title,
			Subtitle: e.Type,
			Bullets:  bulletsFor(e),
			Score:    scoreOf(e),
		}
		switch e.Type {
		case "credential":
			education = append(education, item)
		case "project":
			projects = append(projects, item)
		default:
			experience = append(experience, item)
		}
	}

	// Skills summary keeps insertion order over the original evidence
	// order, not the ranked order.
	seen := make(map[string]bool)
	skills := []string{}
	for _, e := range evidence {
		for _, tag := range e.SkillTags {
			if tag == "" || seen[tag] {
				continue
			}
			seen[tag] = true
			if len(skills) < maxSkills {
				skills = append(skills, tag)
			}
		}
	}

	headline := role
	if company != "" {
		headline = role + " at " + company
	}

	var sections []Section
	if len(experience) > 0 {
		sections = append(sections, Section{Type: SectionExperience, Title: "Experience", Items: experience})
	}
	if len(projects) > 0 {
		sections = append(sections, Section{Type: SectionProjects, Title: "Projects", Items: projects})
	}
	if len(education) > 0 {
		sections = append(sections, Section{Type: SectionEducation, Title: "Education & Credentials", Items: education})
	}
	if len(skills) > 0 {
		sections = append(sections, Section{Type: SectionSkills, Title: "Skills", Items: []Item{{Bullets: skills}}})
	}

	return Structure{
		Role:          role,
		Company:       company,
		Headline:      headline,
		Sections:      sections,
		SkillsSummary: skills,
	}
}

func scoreOf(e EvidenceItem) int {
	if e.CredibilityScore == nil {
		return 0
	}
	return *e.CredibilityScore
}
