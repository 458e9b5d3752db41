package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/roster"
)

// NewCourseCommand creates the course command group.
func NewCourseCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "course",
		Short: "Manage courses",
		Long: `Add, remove, and list courses.

Every mutation is persisted to the data directory immediately.`,
	}

	cmd.AddCommand(newCourseAddCommand())
	cmd.AddCommand(newCourseRemoveCommand())
	cmd.AddCommand(newCourseListCommand())
	cmd.AddCommand(newCourseShowCommand())

	return cmd
}

func newCourseAddCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add CODE NAME...",
		Short: "Add a new course",
		Example: `  # Add a course
  campus course add CSE101 Introduction to Programming`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			code := args[0]
			name := strings.Join(args[1:], " ")

			err := ctx.Mutate(func(r *roster.Roster) error {
				_, err := r.AddCourse(code, name)
				return err
			})
			if err != nil {
				return err
			}

			ctx.Renderer.Success(fmt.Sprintf("Course added: %s (%s)", name, code))
			return nil
		},
	}
}

func newCourseRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove CODE",
		Short: "Remove a course",
		Long:  `Remove a course and drop it from every student's enrolment list.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			code := args[0]

			err := ctx.Mutate(func(r *roster.Roster) error {
				return r.RemoveCourse(code)
			})
			if err != nil {
				return err
			}

			ctx.Renderer.Success("Course removed: " + code)
			return nil
		},
	}
}

func newCourseListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all courses",
		Long: `List all courses with enrolment counts.

Output adapts to environment:
  - Terminal: Styled table output
  - Piped/Scripted: Markdown format (agent-friendly)

Use --output to override: auto, text, markdown, json`,
		Example: `  # List all courses
  campus course list

  # List courses as JSON
  campus course list --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			return renderCourses(ctx.Renderer, "Courses", ros.Courses())
		},
	}
}

func newCourseShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show CODE",
		Short: "Show one course's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}
			c := ros.Course(args[0])
			if c == nil {
				return fmt.Errorf("%s: %w", args[0], roster.ErrCourseNotFound)
			}
			return renderCourse(ctx.Renderer, c)
		},
	}
}
