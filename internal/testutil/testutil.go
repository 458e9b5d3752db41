// Package testutil provides shared helpers for tests: a slog logger that
// writes through t.Log, and data-directory fixtures.
package testutil

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// WriteDataDir creates a data directory containing the given students.csv
// and courses.csv contents and returns its path.
func WriteDataDir(t *testing.T, studentsCSV, coursesCSV string) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "students.csv"), []byte(studentsCSV), 0600); err != nil {
		t.Fatalf("failed to write students.csv: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "courses.csv"), []byte(coursesCSV), 0600); err != nil {
		t.Fatalf("failed to write courses.csv: %v", err)
	}
	return dir
}

// SeededDataDir creates a data directory populated with the sample roster
// (5 students, 4 courses, 8 enrolments) and returns its path.
func SeededDataDir(t *testing.T) string {
	t.Helper()

	students := `StudentID,Name,Type,EnrolledCourses
S001,Alice Johnson,Undergraduate,CSE101;CSE102
S002,Bob Smith,Postgraduate,CSE101
S003,Charlie Brown,Undergraduate,CSE103
S004,David Williams,Undergraduate,CSE104
S005,Eve Davis,Postgraduate,CSE101;CSE102;CSE104
`
	courses := `CourseCode,CourseName,EnrolledStudents
CSE101,Introduction to Programming,S001;S002;S005
CSE102,Data Structures,S001;S005
CSE103,Algorithms,S003
CSE104,Operating Systems,S004;S005
`
	return WriteDataDir(t, students, courses)
}
