// Package main provides tests for the campus CLI.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danishazizi96/campus/internal/cli"
	"github.com/danishazizi96/campus/internal/cli/config"
)

// runCLI executes the root command with args from inside dir and returns the
// combined output.
func runCLI(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	config.ResetConfig()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cmd := cli.NewRootCmd()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	execErr := cmd.Execute()
	return buf.String(), execErr
}

func TestVersionCommand(t *testing.T) {
	output, err := runCLI(t, t.TempDir(), "version")
	if err != nil {
		t.Errorf("version command error = %v", err)
	}
	if !strings.Contains(output, "campus") {
		t.Errorf("version output should contain 'campus', got: %s", output)
	}
}

func TestHelpCommand(t *testing.T) {
	output, err := runCLI(t, t.TempDir(), "--help")
	if err != nil {
		t.Errorf("help command error = %v", err)
	}

	expectedCommands := []string{"student", "course", "enroll", "unenroll", "report", "export", "seed", "shell", "init"}
	for _, expected := range expectedCommands {
		if !strings.Contains(output, expected) {
			t.Errorf("help output should contain '%s', got: %s", expected, output)
		}
	}
}

func TestStudentLifecycle(t *testing.T) {
	dir := t.TempDir()

	output, err := runCLI(t, dir, "student", "add", "Grace", "Hopper", "--id", "S001", "--type", "pg")
	if err != nil {
		t.Fatalf("student add error = %v", err)
	}
	if !strings.Contains(output, "S001") {
		t.Errorf("add output should contain 'S001', got: %s", output)
	}

	output, err = runCLI(t, dir, "student", "list")
	if err != nil {
		t.Fatalf("student list error = %v", err)
	}
	if !strings.Contains(output, "Grace Hopper") {
		t.Errorf("list output should contain 'Grace Hopper', got: %s", output)
	}

	output, err = runCLI(t, dir, "student", "show", "S001")
	if err != nil {
		t.Fatalf("student show error = %v", err)
	}
	if !strings.Contains(output, "Postgraduate") {
		t.Errorf("show output should contain 'Postgraduate', got: %s", output)
	}

	if _, err = runCLI(t, dir, "student", "remove", "S001"); err != nil {
		t.Fatalf("student remove error = %v", err)
	}
	output, err = runCLI(t, dir, "student", "list")
	if err != nil {
		t.Fatalf("student list error = %v", err)
	}
	if strings.Contains(output, "Grace Hopper") {
		t.Errorf("removed student should not appear, got: %s", output)
	}
}

func TestEnrollAndReport(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "student", "add", "Alice", "--id", "S001", "--type", "ug"); err != nil {
		t.Fatalf("student add error = %v", err)
	}
	if _, err := runCLI(t, dir, "course", "add", "CSE101", "Introduction", "to", "Programming"); err != nil {
		t.Fatalf("course add error = %v", err)
	}
	if _, err := runCLI(t, dir, "enroll", "S001", "CSE101"); err != nil {
		t.Fatalf("enroll error = %v", err)
	}

	output, err := runCLI(t, dir, "report", "course", "CSE101")
	if err != nil {
		t.Fatalf("report course error = %v", err)
	}
	if !strings.Contains(output, "Alice") {
		t.Errorf("course report should contain 'Alice', got: %s", output)
	}

	output, err = runCLI(t, dir, "report", "student", "S001")
	if err != nil {
		t.Fatalf("report student error = %v", err)
	}
	if !strings.Contains(output, "CSE101") {
		t.Errorf("student report should contain 'CSE101', got: %s", output)
	}
}

func TestSeedAndExport(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "seed"); err != nil {
		t.Fatalf("seed error = %v", err)
	}

	workbook := filepath.Join(dir, "campus.xlsx")
	if _, err := runCLI(t, dir, "export", "--format", "xlsx", "--out", workbook); err != nil {
		t.Fatalf("export error = %v", err)
	}
	if _, err := os.Stat(workbook); err != nil {
		t.Errorf("exported workbook should exist: %v", err)
	}
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()

	if _, err := runCLI(t, dir, "init", "--example"); err != nil {
		t.Fatalf("init error = %v", err)
	}
	for _, f := range []string{"campus.yaml", "data/students.csv", "data/courses.csv"} {
		if _, err := os.Stat(filepath.Join(dir, f)); err != nil {
			t.Errorf("init should create %s: %v", f, err)
		}
	}
}

func TestCompletionCommand(t *testing.T) {
	shells := []string{"bash", "zsh", "fish", "powershell"}

	for _, shell := range shells {
		t.Run(shell, func(t *testing.T) {
			if _, err := runCLI(t, t.TempDir(), "completion", shell); err != nil {
				t.Errorf("completion %s command error = %v", shell, err)
			}
		})
	}
}

func TestUnknownCommand(t *testing.T) {
	if _, err := runCLI(t, t.TempDir(), "unknown-command"); err == nil {
		t.Error("unknown command should return an error")
	}
}

func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
