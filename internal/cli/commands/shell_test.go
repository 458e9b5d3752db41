package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danishazizi96/campus/internal/cli/output"
	"github.com/danishazizi96/campus/internal/store"
)

// newTestSession builds a shell session over a seeded temp data directory.
// The renderer is forced non-TTY so output is deterministic.
func newTestSession(t *testing.T) (*shellSession, *bytes.Buffer) {
	t.Helper()
	dir := setupDataDir(t)
	seedDataDir(t, dir)

	cfg := getConfig()
	st := store.New(cfg.DataDir, nil)
	ros, err := st.Load()
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	ctx := &CommandContext{
		Cfg:      cfg,
		Store:    st,
		Renderer: output.NewRendererWithTTY(buf, buf, false, output.ModeText),
	}
	return &shellSession{ctx: ctx, roster: ros}, buf
}

func TestShellDispatch(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantErr   string
		wantOut   string
		wantDirty bool
	}{
		{
			name:      "student add",
			line:      "student add S006 ug Frank Miller",
			wantOut:   "Frank Miller",
			wantDirty: true,
		},
		{
			name:      "student remove",
			line:      "student remove S003",
			wantOut:   "Student removed",
			wantDirty: true,
		},
		{
			name:    "student list",
			line:    "student list",
			wantOut: "Alice Johnson",
		},
		{
			name:    "student search",
			line:    "student search smith",
			wantOut: "S002",
		},
		{
			name:    "student show",
			line:    "student show S001",
			wantOut: "Alice Johnson",
		},
		{
			name:      "course add",
			line:      "course add CSE105 Computer Networks",
			wantOut:   "Computer Networks",
			wantDirty: true,
		},
		{
			name:    "course list",
			line:    "course list",
			wantOut: "Data Structures",
		},
		{
			name:      "enroll",
			line:      "enroll S003 CSE101",
			wantOut:   "Enrolled S003 in CSE101",
			wantDirty: true,
		},
		{
			name:      "unenroll",
			line:      "unenroll S001 CSE101",
			wantOut:   "Removed S001 from CSE101",
			wantDirty: true,
		},
		{
			name:    "report course",
			line:    "report course CSE101",
			wantOut: "Course Report for CSE101",
		},
		{
			name:    "report student",
			line:    "report student S005",
			wantOut: "Eve Davis",
		},
		{
			name:    "search shortcut",
			line:    "search davis",
			wantOut: "S005",
		},
		{
			name:    "unknown verb",
			line:    "teacher add T001",
			wantErr: "unknown command",
		},
		{
			name:    "enroll bad usage",
			line:    "enroll S001",
			wantErr: "usage",
		},
		{
			name:    "student add duplicate",
			line:    "student add S001 ug Twin",
			wantErr: "exists",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, buf := newTestSession(t)

			err := session.dispatch(strings.Fields(tt.line))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, buf.String(), tt.wantOut)
			assert.Equal(t, tt.wantDirty, session.dirty)
		})
	}
}

func TestShellDotCommands(t *testing.T) {
	session, _ := newTestSession(t)
	cmd := &cobra.Command{}
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)

	assert.True(t, session.handleDotCommand(cmd, ".quit"))
	assert.True(t, session.handleDotCommand(cmd, ".exit"))

	assert.False(t, session.handleDotCommand(cmd, ".help"))
	assert.Contains(t, out.String(), "student add")
	assert.Contains(t, out.String(), ".save")

	out.Reset()
	assert.False(t, session.handleDotCommand(cmd, ".bogus"))
	assert.Contains(t, out.String(), "Unknown command")
}

func TestShellTablesCommand(t *testing.T) {
	session, buf := newTestSession(t)
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	assert.False(t, session.handleDotCommand(cmd, ".tables"))
	assert.Contains(t, buf.String(), "Alice Johnson")
	assert.Contains(t, buf.String(), "Data Structures")
}

func TestShellSaveCommand(t *testing.T) {
	session, _ := newTestSession(t)
	cmd := &cobra.Command{}
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))

	require.NoError(t, session.dispatch(strings.Fields("student add S007 pg Grace Lee")))
	assert.True(t, session.dirty)

	assert.False(t, session.handleDotCommand(cmd, ".save"))
	assert.False(t, session.dirty, "save should clear the dirty flag")

	// The saved roster must include the new student
	ros, err := session.ctx.Store.Load()
	require.NoError(t, err)
	require.NotNil(t, ros.Student("S007"))
	assert.Equal(t, "Grace Lee", ros.Student("S007").Name)
}

func TestShellSeedDispatch(t *testing.T) {
	setupDataDir(t)

	cfg := getConfig()
	st := store.New(cfg.DataDir, nil)
	ros, err := st.Load()
	require.NoError(t, err)

	buf := new(bytes.Buffer)
	session := &shellSession{
		ctx: &CommandContext{
			Cfg:      cfg,
			Store:    st,
			Renderer: output.NewRendererWithTTY(buf, buf, false, output.ModeText),
		},
		roster: ros,
	}

	require.NoError(t, session.dispatch([]string{"seed"}))
	assert.True(t, session.dirty)
	assert.Len(t, session.roster.Students(), 5)
}
