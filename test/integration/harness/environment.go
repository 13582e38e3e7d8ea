package harness

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

// TestEnvironment provides an isolated test environment with its own GUION_HOME.
type TestEnvironment struct {
	GuionHome string
	extraEnv  map[string]string
	tb        testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp GUION_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		GuionHome: tb.TempDir(),
		extraEnv:  make(map[string]string),
		tb:        tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out GUION_* variables and sets:
//   - GUION_HOME to the temp directory
//   - GUION_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "GUION_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"GUION_HOME="+e.GuionHome,
		"GUION_DEBUG=",
	)

	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// DataPath returns the default scripts spreadsheet path.
func (e *TestEnvironment) DataPath() string {
	return filepath.Join(e.GuionHome, "data.xlsx")
}

// AgentsPath returns the default agents spreadsheet path.
func (e *TestEnvironment) AgentsPath() string {
	return filepath.Join(e.GuionHome, "agents.xlsx")
}

// SettingsPath returns the settings file path.
func (e *TestEnvironment) SettingsPath() string {
	return filepath.Join(e.GuionHome, "settings.json")
}

// WriteSettings writes raw JSON to settings.json.
func (e *TestEnvironment) WriteSettings(json string) {
	e.tb.Helper()
	if err := os.WriteFile(e.SettingsPath(), []byte(json), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}

// WriteScripts writes rows to the default scripts spreadsheet.
func (e *TestEnvironment) WriteScripts(rows [][]string) {
	e.tb.Helper()
	WriteWorkbook(e.tb, e.DataPath(), rows)
}

// WriteAgents writes identifier/name rows to the default agents spreadsheet.
func (e *TestEnvironment) WriteAgents(rows [][]string) {
	e.tb.Helper()
	WriteWorkbook(e.tb, e.AgentsPath(), rows)
}

// WriteWorkbook creates an .xlsx file whose first sheet holds rows, starting at A1.
func WriteWorkbook(tb testing.TB, path string, rows [][]string) {
	tb.Helper()

	book := excelize.NewFile()
	defer book.Close()

	sheet := book.GetSheetName(0)
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cellRef, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			tb.Fatalf("Failed to compute cell name: %v", err)
		}
		if err := book.SetSheetRow(sheet, cellRef, &cells); err != nil {
			tb.Fatalf("Failed to write row %d: %v", i+1, err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		tb.Fatalf("Failed to save workbook %s: %v", path, err)
	}
}

// SampleScripts is a small scripts sheet in the default column layout.
// Row 2 is blank, so the records sit at source rows 1, 3 and 4.
func SampleScripts() [][]string {
	return [][]string{
		{"Venta nueva", "Plan: Plan ofrecido", "Upgrade", "¿Qué plan tiene hoy?", "Ofrecer plan", "Validar titular, Validar dirección", "Ventas, Hogar, Fibra, Premium", "Retención", "Alta de servicio", "#336699", "Mencionar promoción vigente"},
		{""},
		{"Baja de servicio", "", "Cancelación", "", "Derivar a retención", "", "", "", "Retención"},
		{"Reclamo técnico", "Equipo: Modelo del equipo", "Sin señal", "¿Desde cuándo?", "Crear ticket", "Validar titular", "Soporte", "", "", "not-a-color"},
	}
}
