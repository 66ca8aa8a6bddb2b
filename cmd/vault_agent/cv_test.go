package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-vault/internal/db"
)

func TestCVCommand_Registered(t *testing.T) {
	var found bool
	for _, cmd := range rootCmd.Commands() {
		if cmd.Use == "cv" {
			found = true
		}
	}
	assert.True(t, found, "cv command should be registered on the root command")
}

func TestCVCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	err := runCV(cvCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}

func TestOutlineItems_MapsEvidenceRows(t *testing.T) {
	score := 85
	records := []db.Evidence{
		{
			Type:             "project",
			Title:            "Payments service",
			Description:      "Built the payments service. Cut checkout latency.",
			CredibilityScore: &score,
			SkillTags:        []string{"Go", "PostgreSQL"},
		},
		{
			Type:  "credential",
			Title: "AWS Solutions Architect",
		},
	}

	items := outlineItems(records)

	require.Len(t, items, 2)
	assert.Equal(t, "project", items[0].Type)
	assert.Equal(t, "Payments service", items[0].Title)
	assert.Equal(t, "Built the payments service. Cut checkout latency.", items[0].Description)
	require.NotNil(t, items[0].CredibilityScore)
	assert.Equal(t, 85, *items[0].CredibilityScore)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, items[0].SkillTags)
	assert.Equal(t, "credential", items[1].Type)
	assert.Nil(t, items[1].CredibilityScore)
}

func TestOutlineItems_EmptyVault(t *testing.T) {
	items := outlineItems(nil)
	assert.Empty(t, items)
}
