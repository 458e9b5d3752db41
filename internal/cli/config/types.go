// Package config provides configuration management for the campus CLI.
//
// Configuration comes from campus.yaml, CAMPUS_* environment variables, and
// command-line flags, with flags taking the highest precedence.
package config

// Config holds all CLI configuration options.
type Config struct {
	DataDir      string `koanf:"data_dir"`
	ReportsDir   string `koanf:"reports_dir"`
	OutputFormat string `koanf:"output"`
	Verbose      bool   `koanf:"verbose"`

	// ProjectRoot is the directory relative paths are resolved against.
	// It is inferred at load time, not read from the config file.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultDataDir    = "data"
	DefaultReportsDir = "reports"
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
)

// Config file names searched for, in order.
var configFileNames = []string{"campus.yaml", "campus.yml"}
