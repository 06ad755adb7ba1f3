package cli

import (
	"fmt"
	"os"

	"github.com/ehcplan/ehcplan/internal/config"
)

// ConfigCommand manages the run configuration file.
type ConfigCommand struct {
	Init ConfigInitCommand `cmd:"" help:"Write a new configuration file"`
}

// ConfigInitCommand writes an example config file to disk.
type ConfigInitCommand struct {
	Output string `name:"output" help:"Output path for config file" default:"ehcplan.yaml"`
	Force  bool   `name:"force" help:"Overwrite an existing file"`
}

// Run executes the config init command.
func (cmd *ConfigInitCommand) Run() error {
	if _, err := os.Stat(cmd.Output); err == nil && !cmd.Force {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", cmd.Output)
	}

	if err := os.WriteFile(cmd.Output, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("✓ wrote %s\n", cmd.Output)
	return nil
}
