package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/callscripts/guion/test/integration/harness"
)

func TestScriptsList(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantExitCode int
		validate     func(t *testing.T, result harness.CommandResult)
	}{
		{
			name:         "all scripts in source order",
			args:         []string{"scripts", "list"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Venta nueva", "Baja de servicio", "Reclamo técnico")
				harness.AssertStdoutContains(t, result, "3 of 3 scripts")
			},
		},
		{
			name:         "case-insensitive title filter",
			args:         []string{"scripts", "list", "VENTA"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Venta nueva", "1 of 3 scripts")
				harness.AssertStdoutNotContains(t, result, "Baja de servicio")
			},
		},
		{
			name:         "no matches",
			args:         []string{"scripts", "list", "zzz"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "No scripts match your search.")
			},
		},
		{
			name:         "json keeps source rows",
			args:         []string{"scripts", "list", "--format", "json"},
			wantExitCode: 0,
			validate: func(t *testing.T, result harness.CommandResult) {
				var scripts []map[string]any
				harness.AssertValidJSON(t, result, &scripts)
				require.Len(t, scripts, 3)
				assert.Equal(t, float64(1), scripts[0]["row"])
				assert.Equal(t, "#336699", scripts[0]["accent_color"])
				assert.Equal(t, float64(3), scripts[1]["row"])
				assert.Equal(t, float64(4), scripts[2]["row"])
				_, hasAccent := scripts[2]["accent_color"]
				assert.False(t, hasAccent, "invalid colors are dropped")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)
			env.WriteScripts(harness.SampleScripts())

			result := harness.RunCommand(t, env, tt.args...)

			if tt.wantExitCode == 0 {
				harness.AssertSuccess(t, result)
			} else {
				harness.AssertFailure(t, result)
			}

			if tt.validate != nil {
				tt.validate(t, result)
			}
		})
	}
}

func TestScriptsList_MissingSource(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "scripts", "list")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "spreadsheet source unavailable")
}

func TestScriptsList_DataFlagAndClassicLayout(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	path := env.GuionHome + "/classic.xlsx"
	harness.WriteWorkbook(t, path, [][]string{
		{"Consulta", "", "", "", "", "", "Sugerencia", "", "", "Facturación", "#abc"},
	})

	result := harness.RunCommand(t, env, "--data", path, "--layout", "classic", "scripts", "list", "--format", "json")

	harness.AssertSuccess(t, result)
	var scripts []map[string]any
	harness.AssertValidJSON(t, result, &scripts)
	require.Len(t, scripts, 1)
	assert.Equal(t, "Facturación", scripts[0]["subtitle"])
	assert.Equal(t, "#aabbcc", scripts[0]["accent_color"])
}

func TestScriptsShow(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteScripts(harness.SampleScripts())

	result := harness.RunCommand(t, env, "scripts", "show", "1")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result,
		"Venta nueva",
		"Alta de servicio",
		"Classification",
		"[Premium]",
		"Reason",
		"Upgrade",
		"• Validar titular",
		"• Validar dirección",
		"Suggestions",
		"Mencionar promoción vigente",
		"Date and time (read-only)",
		"Plan",
		"Notes",
	)
}

func TestScriptsShow_UnknownRow(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteScripts(harness.SampleScripts())

	// Row 2 is blank in the sample sheet
	result := harness.RunCommand(t, env, "scripts", "show", "2")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "record not found")
}

func TestScriptsExport(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteScripts(harness.SampleScripts())

	result := harness.RunCommand(t, env, "scripts", "export", "4",
		"--field", "ID=A-1",
		"-f", "equipo=X1",
		"-f", "Notes=volver a llamar")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result,
		"DATE AND TIME: ",
		"ID: A-1",
		"CONTACT REASON: Sin señal",
		"PROCESS: Crear ticket",
		"EQUIPO: X1",
		"NOTES:\nvolver a llamar",
	)
}

func TestScriptsExport_InvalidField(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteScripts(harness.SampleScripts())

	result := harness.RunCommand(t, env, "scripts", "export", "1", "-f", "Missing=x")

	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "unknown field 'missing'")
}
