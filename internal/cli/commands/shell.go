package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/roster"
)

// NewShellCommand creates the shell command.
func NewShellCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "shell",
		Aliases: []string{"repl"},
		Short:   "Start an interactive session",
		Long: `Start an interactive session against the roster.

The shell keeps the roster in memory across commands and saves it on exit
and on .save. Tab completion covers verbs, student IDs, and course codes;
arrow keys navigate history.`,
		Example: `  campus> student add S006 ug Frank Miller
  campus> enroll S006 CSE101
  campus> report course CSE101
  campus> .quit`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShell(cmd)
		},
	}
}

// shellSession holds the in-memory roster for one interactive session.
type shellSession struct {
	ctx    *CommandContext
	roster *roster.Roster
	dirty  bool
}

func runShell(cmd *cobra.Command) error {
	ctx := NewCommandContext(cmd)

	ros, err := ctx.Store.Load()
	if err != nil {
		return err
	}
	session := &shellSession{ctx: ctx, roster: ros}

	// Setup history file (inside the data directory)
	if err := os.MkdirAll(ctx.Cfg.DataDir, 0750); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	historyFile := filepath.Join(ctx.Cfg.DataDir, ".shell_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "campus> ",
		HistoryFile:     historyFile,
		AutoComplete:    session.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize shell: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "campus shell (data: %s)\n", ctx.Cfg.DataDir)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := session.handleDotCommand(cmd, line); quit {
				break
			}
			continue
		}

		if err := session.dispatch(strings.Fields(line)); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
	}

	if session.dirty {
		if err := ctx.Store.Save(session.roster); err != nil {
			return err
		}
		ctx.Renderer.Success("Roster saved to " + ctx.Cfg.DataDir)
	}
	return nil
}

// handleDotCommand runs a dot-command and reports whether the shell should
// exit.
func (s *shellSession) handleDotCommand(cmd *cobra.Command, line string) bool {
	parts := strings.Fields(line)
	command := strings.ToLower(parts[0])

	switch command {
	case ".quit", ".exit":
		return true

	case ".help":
		printShellHelp(cmd.OutOrStdout())

	case ".tables":
		_ = renderStudents(s.ctx.Renderer, "Students", s.roster.Students())
		_, _ = fmt.Fprintln(cmd.OutOrStdout())
		_ = renderCourses(s.ctx.Renderer, "Courses", s.roster.Courses())

	case ".save":
		if err := s.ctx.Store.Save(s.roster); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return false
		}
		s.dirty = false
		s.ctx.Renderer.Success("Roster saved to " + s.ctx.Cfg.DataDir)

	case ".clear":
		fmt.Print("\033[H\033[2J")

	default:
		_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Unknown command: %s (type .help for commands)\n", command)
	}
	return false
}

// dispatch executes one shell line against the in-memory roster.
func (s *shellSession) dispatch(args []string) error {
	r := s.ctx.Renderer

	switch args[0] {
	case "student":
		if len(args) < 2 {
			return errors.New("usage: student add|remove|list|search|show ...")
		}
		return s.dispatchStudent(args[1], args[2:])

	case "course":
		if len(args) < 2 {
			return errors.New("usage: course add|remove|list|show ...")
		}
		return s.dispatchCourse(args[1], args[2:])

	case "enroll":
		if len(args) != 3 {
			return errors.New("usage: enroll STUDENT_ID COURSE_CODE")
		}
		if err := s.roster.Enroll(args[1], args[2]); err != nil {
			return err
		}
		s.dirty = true
		r.Success(fmt.Sprintf("Enrolled %s in %s", args[1], args[2]))
		return nil

	case "unenroll":
		if len(args) != 3 {
			return errors.New("usage: unenroll STUDENT_ID COURSE_CODE")
		}
		if err := s.roster.Unenroll(args[1], args[2]); err != nil {
			return err
		}
		s.dirty = true
		r.Success(fmt.Sprintf("Removed %s from %s", args[1], args[2]))
		return nil

	case "report":
		if len(args) != 3 {
			return errors.New("usage: report student ID | report course CODE")
		}
		rep, err := reportFor(s.roster, args[1], args[2])
		if err != nil {
			return err
		}
		return renderReport(r, rep, "")

	case "search":
		if len(args) != 2 {
			return errors.New("usage: search KEYWORD")
		}
		return renderStudents(r, fmt.Sprintf("Search Results for %q", args[1]), s.roster.SearchStudents(args[1]))

	case "seed":
		s.roster.Seed()
		s.dirty = true
		r.Success("Sample data populated")
		return nil

	default:
		return fmt.Errorf("unknown command %q (type .help for commands)", args[0])
	}
}

func (s *shellSession) dispatchStudent(verb string, args []string) error {
	r := s.ctx.Renderer

	switch verb {
	case "add":
		// student add ID TYPE NAME...
		if len(args) < 3 {
			return errors.New("usage: student add ID TYPE NAME...")
		}
		typ, err := roster.ParseStudentType(args[1])
		if err != nil {
			return err
		}
		name := strings.Join(args[2:], " ")
		if _, err := s.roster.AddStudent(name, args[0], typ); err != nil {
			return err
		}
		s.dirty = true
		r.Success(fmt.Sprintf("Student added: %s (%s, %s)", name, args[0], typ))
		return nil

	case "remove":
		if len(args) != 1 {
			return errors.New("usage: student remove ID")
		}
		if err := s.roster.RemoveStudent(args[0]); err != nil {
			return err
		}
		s.dirty = true
		r.Success("Student removed: " + args[0])
		return nil

	case "list":
		return renderStudents(r, "Students", s.roster.Students())

	case "search":
		if len(args) != 1 {
			return errors.New("usage: student search KEYWORD")
		}
		return renderStudents(r, fmt.Sprintf("Search Results for %q", args[0]), s.roster.SearchStudents(args[0]))

	case "show":
		if len(args) != 1 {
			return errors.New("usage: student show ID")
		}
		st := s.roster.Student(args[0])
		if st == nil {
			return fmt.Errorf("%s: %w", args[0], roster.ErrStudentNotFound)
		}
		return renderStudent(r, st)

	default:
		return fmt.Errorf("unknown student command %q", verb)
	}
}

func (s *shellSession) dispatchCourse(verb string, args []string) error {
	r := s.ctx.Renderer

	switch verb {
	case "add":
		// course add CODE NAME...
		if len(args) < 2 {
			return errors.New("usage: course add CODE NAME...")
		}
		name := strings.Join(args[1:], " ")
		if _, err := s.roster.AddCourse(args[0], name); err != nil {
			return err
		}
		s.dirty = true
		r.Success(fmt.Sprintf("Course added: %s (%s)", name, args[0]))
		return nil

	case "remove":
		if len(args) != 1 {
			return errors.New("usage: course remove CODE")
		}
		if err := s.roster.RemoveCourse(args[0]); err != nil {
			return err
		}
		s.dirty = true
		r.Success("Course removed: " + args[0])
		return nil

	case "list":
		return renderCourses(r, "Courses", s.roster.Courses())

	case "show":
		if len(args) != 1 {
			return errors.New("usage: course show CODE")
		}
		c := s.roster.Course(args[0])
		if c == nil {
			return fmt.Errorf("%s: %w", args[0], roster.ErrCourseNotFound)
		}
		return renderCourse(r, c)

	default:
		return fmt.Errorf("unknown course command %q", verb)
	}
}

func printShellHelp(w io.Writer) {
	help := `
Commands:
  student add ID TYPE NAME...   Add a student (TYPE: ug or pg)
  student remove ID             Remove a student
  student list                  List all students
  student search KEYWORD        Search students
  student show ID               Show one student
  course add CODE NAME...       Add a course
  course remove CODE            Remove a course
  course list                   List all courses
  course show CODE              Show one course
  enroll ID CODE                Enroll a student in a course
  unenroll ID CODE              Remove a student from a course
  report student ID             Print a student report
  report course CODE            Print a course report
  search KEYWORD                Shortcut for student search
  seed                          Populate sample data

  .help           Show this help message
  .tables         List all students and courses
  .save           Save the roster now
  .clear          Clear the screen
  .quit / .exit   Save and exit

Tips:
  - Changes are kept in memory and saved on exit or .save
  - Use arrow keys to navigate history
  - Tab completion works for IDs and course codes
`
	_, _ = fmt.Fprintln(w, help)
}

// completer builds the readline completer. Student IDs and course codes are
// resolved dynamically so entries added during the session complete too.
func (s *shellSession) completer() *readline.PrefixCompleter {
	studentIDs := func(string) []string {
		var ids []string
		for _, st := range s.roster.Students() {
			ids = append(ids, st.ID)
		}
		return ids
	}
	courseCodes := func(string) []string {
		var codes []string
		for _, c := range s.roster.Courses() {
			codes = append(codes, c.Code)
		}
		return codes
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("student",
			readline.PcItem("add"),
			readline.PcItem("remove", readline.PcItemDynamic(studentIDs)),
			readline.PcItem("list"),
			readline.PcItem("search"),
			readline.PcItem("show", readline.PcItemDynamic(studentIDs)),
		),
		readline.PcItem("course",
			readline.PcItem("add"),
			readline.PcItem("remove", readline.PcItemDynamic(courseCodes)),
			readline.PcItem("list"),
			readline.PcItem("show", readline.PcItemDynamic(courseCodes)),
		),
		readline.PcItem("enroll", readline.PcItemDynamic(studentIDs, readline.PcItemDynamic(courseCodes))),
		readline.PcItem("unenroll", readline.PcItemDynamic(studentIDs, readline.PcItemDynamic(courseCodes))),
		readline.PcItem("report",
			readline.PcItem("student", readline.PcItemDynamic(studentIDs)),
			readline.PcItem("course", readline.PcItemDynamic(courseCodes)),
		),
		readline.PcItem("search"),
		readline.PcItem("seed"),
		readline.PcItem(".help"),
		readline.PcItem(".tables"),
		readline.PcItem(".save"),
		readline.PcItem(".clear"),
		readline.PcItem(".quit"),
		readline.PcItem(".exit"),
	)
}
