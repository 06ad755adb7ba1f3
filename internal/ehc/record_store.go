package ehc

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// StoredRun is the on-disk shape of one finished run: the finalized
// benchmark record plus the resolved plan, if one was found.
type StoredRun struct {
	Benchmark  *BenchmarkRecord `json:"benchmark"`
	PlanFound  bool             `json:"plan_found"`
	PlanOps    []string         `json:"plan_ops,omitempty"`
}

// RecordStore persists benchmark records and solutions to disk, one JSON
// file per run ID.
type RecordStore struct {
	basePath string
}

// NewRecordStore creates a store rooted at basePath. basePath is created
// lazily on first Save.
func NewRecordStore(basePath string) *RecordStore {
	return &RecordStore{basePath: basePath}
}

// Save writes rec and plan (nil if no plan was found) to
// <basePath>/<runID>.json.
func (s *RecordStore) Save(runID string, rec *BenchmarkRecord, plan []Operator) error {
	if err := os.MkdirAll(s.basePath, 0755); err != nil {
		return fmt.Errorf("failed to create record store directory: %w", err)
	}

	stored := &StoredRun{Benchmark: rec, PlanFound: plan != nil}
	for _, op := range plan {
		stored.PlanOps = append(stored.PlanOps, op.Name())
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run record: %w", err)
	}

	path := filepath.Join(s.basePath, runID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write run record: %w", err)
	}

	log.Info("run record saved", "path", path, "solutionFound", stored.PlanFound)
	return nil
}

// Load reads a previously saved run record.
func (s *RecordStore) Load(runID string) (*StoredRun, error) {
	path := filepath.Join(s.basePath, runID+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read run record: %w", err)
	}

	var stored StoredRun
	if err := json.Unmarshal(data, &stored); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run record: %w", err)
	}
	return &stored, nil
}
