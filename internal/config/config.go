// Package config loads optional session defaults from an HCL file. Command
// line flags always win over file values.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the full drill configuration file
type Config struct {
	Drill DrillSettings `hcl:"drill,block"`
}

// DrillSettings contains session defaults. Timeout is a pointer so an
// explicit `timeout = 0` (auto-advance immediately) is distinguishable from
// the attribute being absent.
type DrillSettings struct {
	Timeout    *int   `hcl:"timeout,optional"`
	ShowResult bool   `hcl:"show_result,optional"`
	LogLevel   string `hcl:"log_level,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Drill: DrillSettings{
			Timeout:  intPtr(600),
			LogLevel: "info",
		},
	}
}

func intPtr(n int) *int { return &n }

// Load loads configuration from an HCL file. A missing file is not an error;
// the defaults are returned instead.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing config file %s: %s", filename, diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding config file %s: %s", filename, diags.Error())
	}

	// Apply defaults for missing values
	if config.Drill.Timeout == nil {
		config.Drill.Timeout = intPtr(600)
	}
	if config.Drill.LogLevel == "" {
		config.Drill.LogLevel = "info"
	}

	return &config, nil
}
