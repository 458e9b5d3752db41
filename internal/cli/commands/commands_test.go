// Package commands_test provides tests for CLI command creation.
package commands

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danishazizi96/campus/internal/cli/config"
	"github.com/danishazizi96/campus/internal/roster"
	"github.com/danishazizi96/campus/internal/store"
)

// setupDataDir points the commands at a fresh temp data directory via the
// environment fallback and returns it.
func setupDataDir(t *testing.T) string {
	t.Helper()
	config.ResetConfig()
	dir := t.TempDir()
	t.Setenv("CAMPUS_DATA_DIR", filepath.Join(dir, "data"))
	t.Setenv("CAMPUS_REPORTS_DIR", filepath.Join(dir, "reports"))
	return dir
}

// seedDataDir writes the sample roster into the configured data directory.
func seedDataDir(t *testing.T, dir string) {
	t.Helper()
	ros := roster.New()
	ros.Seed()
	require.NoError(t, store.New(filepath.Join(dir, "data"), nil).Save(ros))
}

// execute runs a command with args and returns the combined output.
func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestNewStudentCommand(t *testing.T) {
	cmd := NewStudentCommand()

	assert.Equal(t, "student", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	subs := []string{"add NAME...", "remove ID", "list", "search KEYWORD", "show ID"}
	for _, use := range subs {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Use == use {
				found = true
				break
			}
		}
		assert.True(t, found, "subcommand %q should exist", use)
	}
}

func TestNewCourseCommand(t *testing.T) {
	cmd := NewCourseCommand()

	assert.Equal(t, "course", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.Len(t, cmd.Commands(), 4)
}

func TestNewEnrollCommand(t *testing.T) {
	cmd := NewEnrollCommand()

	assert.Equal(t, "enroll STUDENT_ID COURSE_CODE", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewReportCommand(t *testing.T) {
	cmd := NewReportCommand()

	assert.Equal(t, "report", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	for _, sub := range cmd.Commands() {
		assert.NotNil(t, sub.Flags().Lookup("write"), "%s should have --write", sub.Use)
		assert.NotNil(t, sub.Flags().Lookup("format"), "%s should have --format", sub.Use)
	}
}

func TestNewExportCommand(t *testing.T) {
	cmd := NewExportCommand()

	assert.Equal(t, "export", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	flags := []string{"format", "out"}
	for _, flag := range flags {
		assert.NotNil(t, cmd.Flags().Lookup(flag), "flag %q should exist", flag)
	}
}

func TestNewSeedCommand(t *testing.T) {
	cmd := NewSeedCommand()

	assert.Equal(t, "seed", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")
	assert.NotEmpty(t, cmd.Example, "Example should not be empty")
}

func TestNewShellCommand(t *testing.T) {
	cmd := NewShellCommand()

	assert.Equal(t, "shell", cmd.Use)
	assert.NotEmpty(t, cmd.Short, "Short should not be empty")

	// Verify alias exists
	assert.NotEmpty(t, cmd.Aliases, "shell command should have aliases")
	assert.Equal(t, "repl", cmd.Aliases[0], "shell command should have 'repl' alias")
}
