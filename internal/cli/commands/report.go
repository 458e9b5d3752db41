package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/report"
	"github.com/danishazizi96/campus/internal/roster"
)

// NewReportCommand creates the report command group.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate course and student reports",
		Long: `Generate fixed-format reports.

A course report lists every enrolled student; a student report lists the
student's details and every enrolled course. Reports print to the terminal
and, with --write, are saved under the reports directory.`,
	}

	cmd.AddCommand(newReportCourseCommand())
	cmd.AddCommand(newReportStudentCommand())

	return cmd
}

func newReportCourseCommand() *cobra.Command {
	var write bool
	var format string

	cmd := &cobra.Command{
		Use:   "course CODE",
		Short: "Report the students enrolled in a course",
		Example: `  # Print the report
  campus report course CSE101

  # Save it under reports/courses/
  campus report course CSE101 --write

  # Save as an Excel workbook
  campus report course CSE101 --write --format xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}

			rep, err := report.ForCourse(ros, args[0])
			if err != nil {
				return err
			}

			return writeAndRender(ctx, rep, "courses", write, format)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Save the report under the reports directory")
	cmd.Flags().StringVar(&format, "format", "csv", "Report file format: csv or xlsx")

	return cmd
}

func newReportStudentCommand() *cobra.Command {
	var write bool
	var format string

	cmd := &cobra.Command{
		Use:   "student ID",
		Short: "Report a student's details and enrolled courses",
		Example: `  # Print the report
  campus report student S001

  # Save it under reports/students/
  campus report student S001 --write`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}

			rep, err := report.ForStudent(ros, args[0])
			if err != nil {
				return err
			}

			return writeAndRender(ctx, rep, "students", write, format)
		},
	}

	cmd.Flags().BoolVar(&write, "write", false, "Save the report under the reports directory")
	cmd.Flags().StringVar(&format, "format", "csv", "Report file format: csv or xlsx")

	return cmd
}

// writeAndRender optionally saves the report under the reports directory
// and renders it to the terminal.
func writeAndRender(ctx *CommandContext, rep *report.Report, subdir string, write bool, format string) error {
	var file string
	if write {
		var err error
		file, err = saveReport(ctx, rep, subdir, format)
		if err != nil {
			return err
		}
	}
	return renderReport(ctx.Renderer, rep, file)
}

func saveReport(ctx *CommandContext, rep *report.Report, subdir, format string) (string, error) {
	dir := filepath.Join(ctx.Cfg.ReportsDir, subdir)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	switch format {
	case "csv":
		path := filepath.Join(dir, rep.Name+".csv")
		f, err := os.Create(path)
		if err != nil {
			return "", fmt.Errorf("create report file: %w", err)
		}
		if err := rep.WriteCSV(f); err != nil {
			_ = f.Close()
			return "", err
		}
		if err := f.Close(); err != nil {
			return "", err
		}
		return path, nil
	case "xlsx":
		path := filepath.Join(dir, rep.Name+".xlsx")
		if err := rep.WriteXLSX(path); err != nil {
			return "", err
		}
		return path, nil
	default:
		return "", fmt.Errorf("unsupported report format %q (expected csv or xlsx)", format)
	}
}

// reportFor builds a report by kind; shared with the interactive shell.
func reportFor(ros *roster.Roster, kind, name string) (*report.Report, error) {
	switch kind {
	case "course":
		return report.ForCourse(ros, name)
	case "student":
		return report.ForStudent(ros, name)
	default:
		return nil, fmt.Errorf("unknown report kind %q (expected student or course)", kind)
	}
}
