// Package analysis normalizes raw repository metadata into a deterministic
// analysis record with a 0-100 base credibility score. Obtaining the
// metadata (including the commit count) is the caller's job; this package
// performs no I/O.
package analysis

import (
	"sort"
	"strings"
)

// RepoInput is raw repository metadata plus inferred signals supplied by
// the caller. Field names track the hosting API's repository payload.
type RepoInput struct {
	Name        string         `json:"name"`
	FullName    string         `json:"full_name,omitempty"`
	Stars       int            `json:"stargazers_count"`
	Language    string         `json:"language,omitempty"`
	Languages   map[string]int `json:"languages,omitempty"`
	Fork        bool           `json:"fork"`
	CommitCount int            `json:"commit_count"`
	Contents    []string       `json:"contents,omitempty"`
	Readme      string         `json:"readme,omitempty"`
}

// RepoAnalysis is the normalized analysis record embedded in compiler
// drafts.
type RepoAnalysis struct {
	Name                 string   `json:"name"`
	Stars                int      `json:"stars"`
	Languages            []string `json:"languages"`
	IsFork               bool     `json:"isFork"`
	CommitCount          int      `json:"commitCount"`
	HasTests             bool     `json:"hasTests"`
	IsDeployed           bool     `json:"isDeployed"`
	CredibilityBaseScore int      `json:"credibilityBaseScore"`
}

// Path substrings that indicate a test suite.
var testIndicators = []string{
	"test",
	"tests",
	"__tests__",
	"spec",
	"specs",
	".test.",
	".spec.",
}

// README substrings that indicate a live deployment.
var deployedIndicators = []string{
	"vercel.app",
	"netlify.app",
	"heroku",
	"railway",
	"deployed",
	"github.io",
	"production",
}

// inferHasTests reports whether any content path carries a test indicator.
func inferHasTests(contents []string) bool {
	for _, path := range contents {
		lower := strings.ToLower(path)
		for _, indicator := range testIndicators {
			if strings.Contains(lower, indicator) {
				return true
			}
		}
	}
	return false
}

// inferIsDeployed reports whether the README mentions a deployment target.
func inferIsDeployed(readme string) bool {
	lower := strings.ToLower(readme)
	for _, indicator := range deployedIndicators {
		if strings.Contains(lower, indicator) {
			return true
		}
	}
	return false
}

// languageList derives the ordered language list. A single primary language
// wins outright; otherwise languages are ordered by byte count descending,
// with the name as tiebreaker so the order is stable across runs.
func languageList(input RepoInput) []string {
	if input.Language != "" {
		return []string{input.Language}
	}
	if len(input.Languages) == 0 {
		return []string{}
	}

	langs := make([]string, 0, len(input.Languages))
	for name := range input.Languages {
		langs = append(langs, name)
	}
	sort.Slice(langs, func(i, j int) bool {
		bi, bj := input.Languages[langs[i]], input.Languages[langs[j]]
		if bi != bj {
			return bi > bj
		}
		return langs[i] < langs[j]
	})
	return langs
}

// AnalyzeRepo produces the analysis record for the given metadata.
// Deterministic: the same input always yields the same record.
func AnalyzeRepo(input RepoInput) RepoAnalysis {
	langs := languageList(input)
	hasTests := inferHasTests(input.Contents)
	isDeployed := inferIsDeployed(input.Readme)

	score := 20
	switch {
	case input.Stars >= 100:
		score += 25
	case input.Stars >= 10:
		score += 15
	case input.Stars >= 1:
		score += 5
	}
	if len(langs) > 0 {
		score += 10
	}
	if !input.Fork {
		score += 10
	}
	switch {
	case input.CommitCount >= 50:
		score += 15
	case input.CommitCount >= 10:
		score += 10
	}
	if hasTests {
		score += 10
	}
	if isDeployed {
		score += 10
	}
	if score > 100 {
		score = 100
	}

	name := input.FullName
	if name == "" {
		name = input.Name
	}

	return RepoAnalysis{
		Name:                 name,
		Stars:                input.Stars,
		Languages:            langs,
		IsFork:               input.Fork,
		CommitCount:          input.CommitCount,
		HasTests:             hasTests,
		IsDeployed:           isDeployed,
		CredibilityBaseScore: score,
	}
}
