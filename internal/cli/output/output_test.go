package output

import (
	"bytes"
	"encoding/json"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func newBufRenderer(mode OutputMode, isTTY bool) (*Renderer, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return NewRendererWithTTY(out, errOut, isTTY, mode), out, errOut
}

func TestMode(t *testing.T) {
	tests := []struct {
		in   string
		want OutputMode
	}{
		{"text", ModeText},
		{"markdown", ModeMarkdown},
		{"md", ModeMarkdown},
		{"JSON", ModeJSON},
		{"auto", ModeAuto},
		{"", ModeAuto},
		{"bogus", ModeAuto},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Mode(tt.in), "Mode(%q)", tt.in)
	}
}

func TestEffectiveMode(t *testing.T) {
	r, _, _ := newBufRenderer(ModeAuto, true)
	assert.Equal(t, ModeText, r.EffectiveMode())

	r, _, _ = newBufRenderer(ModeAuto, false)
	assert.Equal(t, ModeMarkdown, r.EffectiveMode())

	r, _, _ = newBufRenderer(ModeJSON, true)
	assert.Equal(t, ModeJSON, r.EffectiveMode())
}

func TestNonTTYOutputHasNoANSI(t *testing.T) {
	r, out, errOut := newBufRenderer(ModeMarkdown, false)

	r.Header(1, "Students")
	r.Success("saved")
	r.Error("boom")
	r.Muted("quiet")
	r.StatusLine("students.csv", "success", "5 rows")

	assert.False(t, ansiPattern.MatchString(out.String()), "stdout contains ANSI codes: %q", out.String())
	assert.False(t, ansiPattern.MatchString(errOut.String()), "stderr contains ANSI codes: %q", errOut.String())
}

func TestHeaderMarkdown(t *testing.T) {
	r, out, _ := newBufRenderer(ModeMarkdown, false)
	r.Header(2, "Courses")
	assert.Equal(t, "## Courses\n", out.String())
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "# Title", FormatHeader(1, "Title"))
	assert.Equal(t, "### Title", FormatHeader(3, "Title"))
	assert.Equal(t, "# Title", FormatHeader(0, "Title"))
	assert.Equal(t, "**Key:** value", FormatKeyValue("Key", "value"))
}

func TestTableMarkdown(t *testing.T) {
	r, out, _ := newBufRenderer(ModeMarkdown, false)

	r.Table([]string{"StudentID", "Name"}, [][]string{
		{"S001", "Alice Johnson"},
		{"S002", "Bob Smith"},
	})

	want := "| StudentID | Name |\n" +
		"| --- | --- |\n" +
		"| S001 | Alice Johnson |\n" +
		"| S002 | Bob Smith |\n"
	assert.Equal(t, want, out.String())
}

func TestTableText(t *testing.T) {
	r, out, _ := newBufRenderer(ModeText, false)

	r.Table([]string{"StudentID", "Name"}, [][]string{
		{"S001", "Alice Johnson"},
	})

	s := out.String()
	assert.Contains(t, s, "S001")
	assert.Contains(t, s, "Alice Johnson")
	assert.Contains(t, s, "(1 rows)")
}

func TestTableEmpty(t *testing.T) {
	r, out, _ := newBufRenderer(ModeText, false)
	r.Table([]string{"A"}, nil)
	assert.Equal(t, "(0 rows)\n", out.String())
}

func TestJSON(t *testing.T) {
	r, out, _ := newBufRenderer(ModeJSON, false)

	require.NoError(t, r.JSON(StudentListOutput{
		Students: []StudentInfo{{ID: "S001", Name: "Alice", Type: "Undergraduate", Courses: []string{"CSE101"}}},
		Total:    1,
	}))

	var decoded StudentListOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, 1, decoded.Total)
	require.Len(t, decoded.Students, 1)
	assert.Equal(t, "S001", decoded.Students[0].ID)
}
