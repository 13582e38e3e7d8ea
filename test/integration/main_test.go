// Package integration_test provides end-to-end tests for guion CLI commands.
// Tests compile the binary once via TestMain and run each test with an
// isolated GUION_HOME to ensure test independence.
package integration_test

import (
	"log"
	"os"
	"testing"

	"github.com/callscripts/guion/test/integration/harness"
)

func TestMain(m *testing.M) {
	if _, err := harness.BuildBinary(); err != nil {
		log.Fatalf("Failed to build binary: %v", err)
	}

	code := m.Run()

	harness.CleanupBinary()

	os.Exit(code)
}

func TestVersion(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "guion "+harness.BuildVersion)
}
