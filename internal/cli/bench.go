package cli

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/ehcplan/ehcplan/internal/config"
	"github.com/ehcplan/ehcplan/internal/ehc"
	"github.com/ehcplan/ehcplan/internal/telemetry"
)

var allVariants = []ehc.Variant{
	ehc.ClassicEHC, ehc.DepthBoundEHC, ehc.EpisodicEHC, ehc.AdaptedEHC,
	ehc.DBAdaptedEHC, ehc.GuidedEHC, ehc.SuperEHC, ehc.BacktrackEHC,
}

// BenchCommand runs every EHC variant against one demo task and prints one
// benchmark CSV line per variant (spec.md §6 record format), not a
// configurable batch-runner framework.
type BenchCommand struct {
	Task   string `arg:"" help:"Task name, e.g. corridor:10 or blocksworld:4"`
	Config string `name:"config" help:"Run configuration file" type:"path"`
	OutDir string `name:"out" help:"Override the run record output directory"`
}

// Run executes the bench command.
func (cmd *BenchCommand) Run() error {
	rcfg, err := config.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.OutDir != "" {
		rcfg.OutputDir = cmd.OutDir
	}

	sink := telemetry.NewSink(telemetry.Config{
		Enabled:        rcfg.Metrics.Enabled,
		PushgatewayURL: rcfg.Metrics.PushgatewayURL,
		InfluxURL:      rcfg.Metrics.InfluxURL,
		InfluxToken:    rcfg.Metrics.InfluxToken,
		InfluxOrg:      rcfg.Metrics.InfluxOrg,
		InfluxBucket:   rcfg.Metrics.InfluxBucket,
	})
	store := ehc.NewRecordStore(rcfg.OutputDir)

	for _, variant := range allVariants {
		task, heuristic, err := ResolveTask(cmd.Task)
		if err != nil {
			return err
		}

		ecfg := ehc.VariantConfig(variant)
		if rcfg.TimeBudgetSec > 0 {
			ecfg.TimeBudget = rcfg.TimeBudget()
		}

		runID := uuid.NewString()
		driver := ehc.NewDriver(runID, task, heuristic, ecfg)
		plan, rec := driver.Run()

		sink.Record(rec)
		if err := store.Save(runID, rec, plan); err != nil {
			fmt.Printf("warning: failed to save run record for %s: %v\n", variant, err)
		}

		fmt.Println(rec.CSVLine())
	}

	return nil
}
