package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/danishazizi96/campus/internal/cli/output"
	"github.com/danishazizi96/campus/internal/report"
	"github.com/danishazizi96/campus/internal/store"
)

// NewExportCommand creates the export command.
func NewExportCommand() *cobra.Command {
	var format string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export students and courses",
		Long: `Export the full roster.

CSV export writes students.csv and courses.csv in the same format as the
data directory, so an export doubles as a backup. XLSX export writes a
single workbook with Students and Courses sheets.`,
		Example: `  # Export CSV snapshots next to the data directory
  campus export --out ./backup

  # Export a single Excel workbook
  campus export --format xlsx --out campus.xlsx`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := NewCommandContext(cmd)
			ros, err := ctx.Store.Load()
			if err != nil {
				return err
			}

			var files []string
			switch format {
			case "csv":
				dir := out
				if dir == "" {
					dir = ctx.Cfg.DataDir
				}
				dst := store.New(dir, ctx.Logger)
				if err := dst.Save(ros); err != nil {
					return err
				}
				files = []string{
					filepath.Join(dir, "students.csv"),
					filepath.Join(dir, "courses.csv"),
				}
			case "xlsx":
				path := out
				if path == "" {
					path = "campus.xlsx"
				}
				if err := report.WriteWorkbook(ros, path); err != nil {
					return err
				}
				files = []string{path}
			default:
				return fmt.Errorf("unsupported export format %q (expected csv or xlsx)", format)
			}

			r := ctx.Renderer
			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(output.ExportOutput{
					Files:    files,
					Students: len(ros.Students()),
					Courses:  len(ros.Courses()),
				})
			}

			for _, f := range files {
				r.StatusLine(f, "success", "")
			}
			r.Println("")
			r.Success(fmt.Sprintf("Exported %d students and %d courses", len(ros.Students()), len(ros.Courses())))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "Export format: csv or xlsx")
	cmd.Flags().StringVar(&out, "out", "", "Output directory (csv) or file (xlsx)")

	return cmd
}
