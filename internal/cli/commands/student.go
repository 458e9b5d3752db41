package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/roster"
)

// NewStudentCommand creates the student command group.
func NewStudentCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Manage students",
		Long: `Add, remove, list, and search students.

Every mutation is persisted to the data directory immediately.`,
	}

	cmd.AddCommand(newStudentAddCommand())
	cmd.AddCommand(newStudentRemoveCommand())
	cmd.AddCommand(newStudentListCommand())
	cmd.AddCommand(newStudentSearchCommand())
	cmd.AddCommand(newStudentShowCommand())

	return cmd
}

func newStudentAddCommand() *cobra.Command {
	var id string
	var typ string

	cmd := &cobra.Command{
		Use:   "add NAME...",
		Short: "Add a new student",
		Long: `Add a new student with a unique ID in the Sxxx format.

The student type is either Undergraduate or Postgraduate (ug/pg for short).`,
		Example: `  # Add an undergraduate
  campus student add Alice Johnson --id S001 --type undergraduate

  # Add a postgraduate
  campus student add Bob Smith --id S002 --type pg`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			name := strings.Join(args, " ")

			studentType, err := roster.ParseStudentType(typ)
			if err != nil {
				return err
			}

			err = ctx.Mutate(func(r *roster.Roster) error {
				_, err := r.AddStudent(name, id, studentType)
				return err
			})
			if err != nil {
				return err
			}

			ctx.Renderer.Success(fmt.Sprintf("Student added: %s (%s, %s)", name, id, studentType))
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Student ID in the Sxxx format (required)")
	cmd.Flags().StringVar(&typ, "type", "", "Student type: undergraduate or postgraduate (required)")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("type")

	return cmd
}

func newStudentRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a student",
		Long:  `Remove a student and unenrol them from every course.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			id := args[0]

			err := ctx.Mutate(func(r *roster.Roster) error {
				return r.RemoveStudent(id)
			})
			if err != nil {
				return err
			}

			ctx.Renderer.Success("Student removed: " + id)
			return nil
		},
	}
}

func newStudentListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all students",
		Long: `List all students with their type and enrolled courses.

Output adapts to environment:
  - Terminal: Styled table output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all students
  campus student list

  # List students as JSON
  campus student list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			return renderStudents(ctx.Renderer, "Students", ros.Students())
		},
	}
}

func newStudentSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search KEYWORD",
		Short: "Search students by name, ID, or course code",
		Example: `  # Find students by name fragment
  campus student search johnson

  # Find students enrolled in a course
  campus student search CSE102`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			matches := ros.SearchStudents(args[0])
			return renderStudents(ctx.Renderer, fmt.Sprintf("Search Results for %q", args[0]), matches)
		},
	}
}

func newStudentShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one student's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			s := ros.Student(args[0])
			if s == nil {
				return fmt.Errorf("%s: %w", args[0], roster.ErrStudentNotFound)
			}
			return renderStudent(ctx.Renderer, s)
		},
	}
}
