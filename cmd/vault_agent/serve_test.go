package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeCommand_MigrateFlagDefaultsOn(t *testing.T) {
	flag := serveCmd.Flags().Lookup("migrate")
	require.NotNil(t, flag)
	assert.Equal(t, "true", flag.DefValue)
}

func TestServeCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "test-key")

	err := runServe(serveCmd, nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL")
}
