package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/roster"
)

// NewEnrollCommand creates the enroll command.
func NewEnrollCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "enroll STUDENT_ID COURSE_CODE",
		Short: "Enroll a student in a course",
		Long: `Enroll a student in a course.

Both sides of the enrolment are updated together: the course code is added
to the student's list and the student ID to the course's list.`,
		Example: `  campus enroll S001 CSE101`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			studentID, courseCode := args[0], args[1]

			err := ctx.Mutate(func(r *roster.Roster) error {
				return r.Enroll(studentID, courseCode)
			})
			if err != nil {
				return err
			}

			ctx.Renderer.Success(fmt.Sprintf("Enrolled %s in %s", studentID, courseCode))
			return nil
		},
	}
}

// NewUnenrollCommand creates the unenroll command.
func NewUnenrollCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "unenroll STUDENT_ID COURSE_CODE",
		Short:   "Remove a student from a course",
		Example: `  campus unenroll S001 CSE101`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			studentID, courseCode := args[0], args[1]

			err := ctx.Mutate(func(r *roster.Roster) error {
				return r.Unenroll(studentID, courseCode)
			})
			if err != nil {
				return err
			}

			ctx.Renderer.Success(fmt.Sprintf("Removed %s from %s", studentID, courseCode))
			return nil
		},
	}
}
