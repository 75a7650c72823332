package main

import (
	"testing"

	"github.com/phrazzld/typeflow-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandFlags(t *testing.T) {
	cmd := newRootCommand()

	for _, name := range []string{"config", "env-file", "port", "log-level"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %s should exist", name)
	}

	port, err := cmd.Flags().GetInt("port")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, port)
}

func TestRunServerRejectsInvalidConfig(t *testing.T) {
	t.Setenv("TYPEFLOW_LLM_PROVIDER", "unsupported")
	t.Chdir(t.TempDir())

	cmd := newRootCommand()
	cmd.SetArgs([]string{"--env-file", "missing.env"})

	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load configuration")
}
