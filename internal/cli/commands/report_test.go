package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/danishazizi96/campus/internal/roster"
)

func TestReportCourseCommand(t *testing.T) {
	dir := setupDataDir(t)
	seedDataDir(t, dir)

	out, err := execute(t, NewReportCommand(), "course", "CSE101")
	require.NoError(t, err)

	assert.Contains(t, out, "CSE101")
	for _, want := range []string{"Alice Johnson", "Bob Smith", "Eve Davis"} {
		assert.Contains(t, out, want)
	}
	assert.NotContains(t, out, "Charlie Brown", "unenrolled students should not appear")

	_, err = execute(t, NewReportCommand(), "course", "CSE999")
	assert.Error(t, err)
}

func TestReportStudentCommand(t *testing.T) {
	dir := setupDataDir(t)
	seedDataDir(t, dir)

	out, err := execute(t, NewReportCommand(), "student", "S005")
	require.NoError(t, err)

	assert.Contains(t, out, "Eve Davis")
	assert.Contains(t, out, "Postgraduate")
	for _, code := range []string{"CSE101", "CSE102", "CSE104"} {
		assert.Contains(t, out, code)
	}

	_, err = execute(t, NewReportCommand(), "student", "S999")
	assert.Error(t, err)
}

func TestReportWriteCSV(t *testing.T) {
	dir := setupDataDir(t)
	seedDataDir(t, dir)

	out, err := execute(t, NewReportCommand(), "course", "CSE101", "--write")
	require.NoError(t, err)
	assert.Contains(t, out, "Report saved to")

	path := filepath.Join(dir, "reports", "courses", "CSE101.csv")
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "StudentID,Name,Type")
	assert.Contains(t, string(content), "S001,Alice Johnson,Undergraduate")
}

func TestReportWriteXLSX(t *testing.T) {
	dir := setupDataDir(t)
	seedDataDir(t, dir)

	_, err := execute(t, NewReportCommand(), "student", "S001", "--write", "--format", "xlsx")
	require.NoError(t, err)

	path := filepath.Join(dir, "reports", "students", "S001.xlsx")
	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)

	var flat []string
	for _, row := range rows {
		flat = append(flat, strings.Join(row, " "))
	}
	joined := strings.Join(flat, "\n")
	assert.Contains(t, joined, "Alice Johnson")
	assert.Contains(t, joined, "CSE101")
}

func TestReportWriteUnsupportedFormat(t *testing.T) {
	dir := setupDataDir(t)
	seedDataDir(t, dir)

	_, err := execute(t, NewReportCommand(), "course", "CSE101", "--write", "--format", "pdf")
	assert.Error(t, err)
}

func TestReportFor(t *testing.T) {
	ros := roster.New()
	ros.Seed()

	rep, err := reportFor(ros, "course", "CSE101")
	require.NoError(t, err)
	assert.Equal(t, "CSE101", rep.Name)

	rep, err = reportFor(ros, "student", "S001")
	require.NoError(t, err)
	assert.Equal(t, "S001", rep.Name)

	_, err = reportFor(ros, "teacher", "T001")
	assert.Error(t, err)
}
