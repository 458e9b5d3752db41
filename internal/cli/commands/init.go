package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danishazizi96/campus/internal/cli/config"
	"github.com/danishazizi96/campus/internal/cli/output"
	"github.com/danishazizi96/campus/internal/roster"
	"github.com/danishazizi96/campus/internal/store"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	var force bool
	var example bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new campus project",
		Long: `Initialize a campus project with default directory structure and
configuration.

This creates:
  - campus.yaml configuration file
  - data/ directory for the roster CSV files
  - reports/ directory for generated reports

Use --example to also populate the sample roster.`,
		Example: `  # Initialize in current directory
  campus init

  # Initialize with sample data
  campus init --example

  # Initialize in a new directory
  campus init my-campus --example

  # Force overwrite existing config
  campus init --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			cfg := getConfig()
			mode := output.Mode(cfg.OutputFormat)
			r := output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), mode)

			return runInit(r, dir, force, example)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing configuration")
	cmd.Flags().BoolVar(&example, "example", false, "Populate the sample roster")

	return cmd
}

// initConfig is the config shape written to campus.yaml by init.
type initConfig struct {
	DataDir    string `yaml:"data_dir"`
	ReportsDir string `yaml:"reports_dir"`
	Output     string `yaml:"output"`
	Verbose    bool   `yaml:"verbose"`
}

func runInit(r *output.Renderer, dir string, force, example bool) error {
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	configPath := filepath.Join(dir, "campus.yaml")
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("campus.yaml already exists. Use --force to overwrite")
	}

	content, err := yaml.Marshal(initConfig{
		DataDir:    config.DefaultDataDir,
		ReportsDir: config.DefaultReportsDir,
		Output:     config.DefaultOutput,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(configPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write campus.yaml: %w", err)
	}

	dataDir := filepath.Join(dir, config.DefaultDataDir)
	reportsDir := filepath.Join(dir, config.DefaultReportsDir)
	for _, d := range []string{dataDir, reportsDir} {
		if err := os.MkdirAll(d, 0750); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", d, err)
		}
	}

	created := []string{"campus.yaml", config.DefaultDataDir + "/", config.DefaultReportsDir + "/"}

	if example {
		ros := roster.New()
		ros.Seed()
		if err := store.New(dataDir, nil).Save(ros); err != nil {
			return fmt.Errorf("failed to write sample data: %w", err)
		}
		created = append(created,
			filepath.Join(config.DefaultDataDir, "students.csv"),
			filepath.Join(config.DefaultDataDir, "courses.csv"))
	}

	for _, f := range created {
		r.StatusLine(f, "success", "")
	}

	r.Println("")
	r.Success("campus project initialized!")
	r.Println("")
	r.Println("Next steps:")
	r.Println("  campus student add NAME --id S001 --type ug   Add a student")
	r.Println("  campus course add CSE101 Intro                Add a course")
	r.Println("  campus enroll S001 CSE101                     Enroll a student")
	r.Println("  campus shell                                  Interactive session")

	return nil
}
