package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ehcplan/ehcplan/internal/config"
	"github.com/ehcplan/ehcplan/internal/ehc"
	"github.com/ehcplan/ehcplan/internal/progress"
	"github.com/ehcplan/ehcplan/internal/telemetry"
)

// RunCommand runs one named EHC variant against one demo task.
type RunCommand struct {
	Task    string `arg:"" help:"Task name, e.g. corridor:10 or blocksworld:4"`
	Variant string `name:"variant" help:"EHC variant (overrides the config file; default classic_ehc): classic_ehc, depthbound_ehc, episodic_ehc, adapted_ehc, db_adapted_ehc, guided_ehc, super_ehc, hb_ehc"`
	Config  string `name:"config" help:"Run configuration file" type:"path"`
	OutDir  string `name:"out" help:"Override the run record output directory"`
	Quiet   bool   `name:"quiet" help:"Suppress progress output"`
}

// Run executes the run command.
func (cmd *RunCommand) Run() error {
	rcfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Variant != "" {
		rcfg.Variant = cmd.Variant
	}
	if cmd.OutDir != "" {
		rcfg.OutputDir = cmd.OutDir
	}

	task, heuristic, err := ResolveTask(cmd.Task)
	if err != nil {
		return err
	}

	indicator := progress.NewIndicator(!cmd.Quiet)
	indicator.Phase(fmt.Sprintf("%s on %s", rcfg.Variant, task.Name()))

	runID := uuid.NewString()
	driver := ehc.NewDriver(runID, task, heuristic, rcfg.ToEHCConfig())

	lastRestarts := 0
	driver.SetObserver(func(index int, la ehc.LookaheadRecord, restarts int) {
		if restarts != lastRestarts {
			indicator.Phase(fmt.Sprintf("restart %d", restarts))
			lastRestarts = restarts
		}
		indicator.Step(fmt.Sprintf("lookahead %d: %s", index, la.ExitReason))
		indicator.Stat(fmt.Sprintf("expansions=%d heuristic_calls=%d ordering_calls=%d elapsed=%s",
			la.Expansions, la.HeuristicCalls, la.OrderingCalls, indicator.Elapsed()))
		if la.Success {
			indicator.Success(fmt.Sprintf("lookahead %d improved", index))
		}
	})

	plan, rec := driver.Run()

	sink := telemetry.NewSink(telemetry.Config{
		Enabled:        rcfg.Metrics.Enabled,
		PushgatewayURL: rcfg.Metrics.PushgatewayURL,
		InfluxURL:      rcfg.Metrics.InfluxURL,
		InfluxToken:    rcfg.Metrics.InfluxToken,
		InfluxOrg:      rcfg.Metrics.InfluxOrg,
		InfluxBucket:   rcfg.Metrics.InfluxBucket,
	})
	sink.Record(rec)

	store := ehc.NewRecordStore(rcfg.OutputDir)
	if err := store.Save(runID, rec, plan); err != nil {
		indicator.Error("saving run record", err)
	}

	if rec.SolutionFound {
		indicator.Summary(true, fmt.Sprintf("plan length %d, %d lookaheads, %d expansions", rec.SolutionLength, rec.LookaheadCount, rec.TotalExpansions))
		fmt.Println(rec.CSVLine())
		for _, op := range plan {
			fmt.Println(" ", op.Name())
		}
		return nil
	}

	indicator.Summary(false, rec.ExitMessage)
	fmt.Println(rec.CSVLine())
	return fmt.Errorf("no plan found: %s", rec.ExitMessage)
}
