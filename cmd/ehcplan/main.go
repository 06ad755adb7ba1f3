package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/ehcplan/ehcplan/internal/cli"
)

var CLI struct {
	Run      cli.RunCommand      `cmd:"" help:"Run one EHC variant against a task" default:"withargs"`
	Bench    cli.BenchCommand    `cmd:"" help:"Run every EHC variant against a task and print benchmark lines"`
	Validate cli.ValidateCommand `cmd:"" help:"Validate a task and/or run config"`
	Config   cli.ConfigCommand   `cmd:"" help:"Manage run configuration"`
}

const banner = `
 ____ _  _ ____ ____ _    ____ _  _
 |___ |__| |    |__/ |    |__| |\ |
 |___ |  | |___ |  \ |___ |  | | \|

Enforced Hill-Climbing planner family
`

func main() {
	log.SetLevel(log.InfoLevel)

	ctx := kong.Parse(&CLI,
		kong.Name("ehcplan"),
		kong.Description("Run and benchmark the enforced hill-climbing planner family over a grounded STRIPS-like task."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: false,
			Summary: true,
		}),
	)

	if ctx.Command() == "" {
		fmt.Println(banner)
		fmt.Println("Quick start:")
		fmt.Println("  $ ehcplan validate corridor:10              # check a task")
		fmt.Println("  $ ehcplan run corridor:10 --variant=guided_ehc")
		fmt.Println("  $ ehcplan bench blocksworld:4")
		fmt.Println()
		fmt.Println("Run 'ehcplan --help' for all commands")
		os.Exit(0)
	}

	if err := ctx.Run(); err != nil {
		log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
