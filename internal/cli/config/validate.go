package config

import "fmt"

// validOutputs are the accepted values for the output format setting.
var validOutputs = map[string]bool{
	"":         true, // treated as auto
	"auto":     true,
	"text":     true,
	"markdown": true,
	"md":       true,
	"json":     true,
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	if c.ReportsDir == "" {
		return fmt.Errorf("reports_dir is required")
	}
	if !validOutputs[c.OutputFormat] {
		return fmt.Errorf("invalid output format %q (expected auto, text, markdown, or json)", c.OutputFormat)
	}
	return nil
}
