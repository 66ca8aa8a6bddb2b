package compiler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-vault/internal/analysis"
)

func TestValidateDraftJSON_AcceptsRunnerOutput(t *testing.T) {
	draft := Draft{Repos: []DraftRepo{{
		Name: "me/alpha",
		Analysis: analysis.AnalyzeRepo(analysis.RepoInput{
			Name:        "alpha",
			FullName:    "me/alpha",
			Stars:       3,
			Language:    "Go",
			CommitCount: 12,
		}),
		Narrative: "A small but active Go service.",
	}}}

	data, err := json.Marshal(draft)
	require.NoError(t, err)
	assert.NoError(t, ValidateDraftJSON(data))
}

func TestValidateDraftJSON_AcceptsEmptyRepoList(t *testing.T) {
	assert.NoError(t, ValidateDraftJSON([]byte(`{"repos":[]}`)))
}

func TestValidateDraftJSON_Rejects(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"missing repos", `{}`},
		{"repo without analysis", `{"repos":[{"name":"me/alpha","narrative":"x"}]}`},
		{"empty repo name", `{"repos":[{"name":"","narrative":"x","analysis":{"name":"a","stars":0,"languages":[],"isFork":false,"commitCount":0,"hasTests":false,"isDeployed":false,"credibilityBaseScore":30}}]}`},
		{"score above range", `{"repos":[{"name":"me/alpha","narrative":"x","analysis":{"name":"a","stars":0,"languages":[],"isFork":false,"commitCount":0,"hasTests":false,"isDeployed":false,"credibilityBaseScore":120}}]}`},
		{"negative stars", `{"repos":[{"name":"me/alpha","narrative":"x","analysis":{"name":"a","stars":-1,"languages":[],"isFork":false,"commitCount":0,"hasTests":false,"isDeployed":false,"credibilityBaseScore":30}}]}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateDraftJSON([]byte(tc.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid draft")
		})
	}
}
