package cli

import (
	"fmt"

	"github.com/ehcplan/ehcplan/internal/config"
	"github.com/ehcplan/ehcplan/internal/taskvalidate"
)

// ValidateCommand checks a task (and, if given, a run config) for
// structural problems before a search begins.
type ValidateCommand struct {
	Task   string `arg:"" help:"Task name, e.g. corridor:10 or blocksworld:4"`
	Config string `name:"config" help:"Run configuration file to also validate" type:"path"`
}

// Run executes the validate command.
func (cmd *ValidateCommand) Run() error {
	task, _, err := ResolveTask(cmd.Task)
	if err != nil {
		return err
	}

	result := taskvalidate.Task(task)
	printIssues("task", result)

	if cmd.Config != "" {
		rcfg, err := config.LoadConfig(cmd.Config)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfgResult := taskvalidate.Config(rcfg.ToEHCConfig())
		printIssues("config", cfgResult)
		result.Errors = append(result.Errors, cfgResult.Errors...)
	}

	if !result.IsValid() {
		return fmt.Errorf("validation failed")
	}
	fmt.Println("✓ valid")
	return nil
}

func printIssues(label string, result *taskvalidate.Result) {
	for _, e := range result.Errors {
		fmt.Printf("❌ %s: %s\n", label, e.Error())
	}
	for _, w := range result.Warnings {
		fmt.Printf("⚠ %s: %s\n", label, w.Error())
	}
}
