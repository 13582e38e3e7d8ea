// Package harness provides utilities for integration testing the guion CLI.
// It handles binary compilation, environment isolation, spreadsheet fixtures
// and command execution.
//
// Environment variables managed:
//   - GUION_HOME: Isolated per test (temp directory)
//   - GUION_DEBUG: Disabled to reduce noise
//   - GUION_DATA, GUION_AGENTS, GUION_LAYOUT: Removed so the defaults under GUION_HOME apply
package harness
