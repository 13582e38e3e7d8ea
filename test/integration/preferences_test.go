package integration_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/test/integration/harness"
)

func TestAgent(t *testing.T) {
	tests := []struct {
		name     string
		steps    [][]string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:  "no agent by default",
			steps: [][]string{{"agent", "show"}},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No agent set.")
			},
		},
		{
			name: "identifier is resolved and kept as typed",
			steps: [][]string{
				{"agent", "set", "12.345.678-K"},
				{"agent", "show"},
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Ana Pérez", "12.345.678-K")
			},
		},
		{
			name: "unknown identifier keeps the input as name",
			steps: [][]string{
				{"agent", "set", "Operador 7"},
				{"agent", "show", "--format", "json"},
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				var agent map[string]any
				harness.AssertValidJSON(t, result, &agent)
				assert.Equal(t, "Operador 7", agent["displayName"])
				assert.Equal(t, "Operador 7", agent["identifier"])
			},
		},
		{
			name: "clear removes the agent",
			steps: [][]string{
				{"agent", "set", "12345678k"},
				{"agent", "clear"},
				{"agent", "clear"},
				{"agent", "show"},
			},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No agent set.")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteAgents([][]string{
				{"11.111.111-1", "Bruno Díaz"},
				{"12.345.678-K", "Ana Pérez"},
			})

			var result harness.CommandResult
			for _, args := range tt.steps {
				result = harness.RunCommand(t, env, args...)
				harness.AssertSuccess(t, result)
			}
			tt.validate(t, result)
		})
	}
}

func TestAgent_MissingDirectory(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	// Lookup failure falls back to the raw input
	result := harness.RunCommand(t, env, "agent", "set", "ana")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Agent: ana")
}

func TestTheme(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "theme", "show")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "light")

	result = harness.RunCommand(t, env, "theme", "toggle")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Theme: dark")

	result = harness.RunCommand(t, env, "theme")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "dark")

	result = harness.RunCommand(t, env, "theme", "set", "light")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "theme", "show")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "light")

	result = harness.RunCommand(t, env, "theme", "set", "blue")
	harness.AssertFailure(t, result)
}

func TestTheme_FallsBackWhenDatabaseUnusable(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	// A directory where the database file should be makes SQLite unusable
	require.NoError(t, os.MkdirAll(filepath.Join(env.GuionHome, "state.db"), 0755))

	result := harness.RunCommand(t, env, "theme", "toggle")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Theme: dark")

	result = harness.RunCommand(t, env, "theme", "show")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "dark")

	_, err := os.Stat(filepath.Join(env.GuionHome, "prefs.yaml"))
	assert.NoError(t, err, "fallback store file should exist")
}
