package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeRepo_StarredGoRepo(t *testing.T) {
	result := AnalyzeRepo(RepoInput{
		Name:        "cache",
		FullName:    "octocat/cache",
		Stars:       150,
		Language:    "Go",
		Fork:        false,
		CommitCount: 60,
	})

	// 20 base + 25 stars + 10 language + 10 not-fork + 15 commits
	assert.Equal(t, 80, result.CredibilityBaseScore)
	assert.Equal(t, "octocat/cache", result.Name)
	assert.Equal(t, []string{"Go"}, result.Languages)
	assert.False(t, result.HasTests)
	assert.False(t, result.IsDeployed)
}

func TestAnalyzeRepo_StarTiers(t *testing.T) {
	base := RepoInput{Name: "r", Fork: true}

	zero := AnalyzeRepo(base)
	assert.Equal(t, 20, zero.CredibilityBaseScore)

	one := base
	one.Stars = 1
	assert.Equal(t, 25, AnalyzeRepo(one).CredibilityBaseScore)

	ten := base
	ten.Stars = 10
	assert.Equal(t, 35, AnalyzeRepo(ten).CredibilityBaseScore)

	hundred := base
	hundred.Stars = 100
	assert.Equal(t, 45, AnalyzeRepo(hundred).CredibilityBaseScore)
}

func TestAnalyzeRepo_LanguagesOrderedByBytes(t *testing.T) {
	result := AnalyzeRepo(RepoInput{
		Name: "polyglot",
		Languages: map[string]int{
			"Go":         5000,
			"TypeScript": 12000,
			"Shell":      300,
		},
	})
	assert.Equal(t, []string{"TypeScript", "Go", "Shell"}, result.Languages)
}

func TestAnalyzeRepo_LanguageTieBrokenByName(t *testing.T) {
	result := AnalyzeRepo(RepoInput{
		Name:      "even",
		Languages: map[string]int{"Ruby": 100, "Go": 100},
	})
	assert.Equal(t, []string{"Go", "Ruby"}, result.Languages)
}

func TestAnalyzeRepo_PrimaryLanguageWins(t *testing.T) {
	result := AnalyzeRepo(RepoInput{
		Name:      "solo",
		Language:  "Rust",
		Languages: map[string]int{"Rust": 100, "C": 9000},
	})
	assert.Equal(t, []string{"Rust"}, result.Languages)
}

func TestAnalyzeRepo_TestDetection(t *testing.T) {
	withTests := AnalyzeRepo(RepoInput{
		Name:     "tested",
		Contents: []string{"main.go", "internal/server/Handlers_TEST.go"},
	})
	assert.True(t, withTests.HasTests)

	specStyle := AnalyzeRepo(RepoInput{
		Name:     "spec",
		Contents: []string{"app.spec.ts"},
	})
	assert.True(t, specStyle.HasTests)

	without := AnalyzeRepo(RepoInput{
		Name:     "bare",
		Contents: []string{"main.go", "README.md"},
	})
	assert.False(t, without.HasTests)
}

func TestAnalyzeRepo_DeployDetection(t *testing.T) {
	deployed := AnalyzeRepo(RepoInput{
		Name:   "live",
		Readme: "Live demo at https://demo.VERCEL.app",
	})
	assert.True(t, deployed.IsDeployed)

	local := AnalyzeRepo(RepoInput{
		Name:   "local",
		Readme: "Run locally with make dev",
	})
	assert.False(t, local.IsDeployed)
}

func TestAnalyzeRepo_ClampedAt100(t *testing.T) {
	result := AnalyzeRepo(RepoInput{
		Name:        "maxed",
		Stars:       500,
		Language:    "Go",
		CommitCount: 1000,
		Contents:    []string{"pkg/server/server_test.go"},
		Readme:      "deployed to production",
	})
	assert.Equal(t, 100, result.CredibilityBaseScore)
}

func TestAnalyzeRepo_ForkPenalty(t *testing.T) {
	fork := AnalyzeRepo(RepoInput{Name: "f", Fork: true})
	owned := AnalyzeRepo(RepoInput{Name: "f", Fork: false})
	assert.Equal(t, 10, owned.CredibilityBaseScore-fork.CredibilityBaseScore)
}
