package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/cli/output"
	"github.com/danishazizi96/campus/internal/roster"
)

// NewSeedCommand creates the seed command.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate sample students and courses",
		Long: `Populate the roster with sample data: five students, four courses, and
eight enrolments.

Seeding is idempotent; entries that already exist are left alone.`,
		Example: `  # Populate sample data
  campus seed

  # Seed and show the result as JSON
  campus seed --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)

			var students, courses, enrolments int
			err := ctx.Mutate(func(r *roster.Roster) error {
				r.Seed()
				students = len(r.Students())
				courses = len(r.Courses())
				for _, c := range r.Courses() {
					enrolments += len(c.Students)
				}
				return nil
			})
			if err != nil {
				return err
			}

			r := ctx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(output.SeedOutput{
					Students:   students,
					Courses:    courses,
					Enrolments: enrolments,
				})
			}

			r.Success(fmt.Sprintf("Sample data populated: %d students, %d courses, %d enrolments",
				students, courses, enrolments))
			return nil
		},
	}
}
