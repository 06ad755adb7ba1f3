package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ehcplan/ehcplan/internal/ehc"
	"github.com/ehcplan/ehcplan/internal/stripstask"
)

// ResolveTask builds one of the fixed demo tasks named "corridor:N" or
// "blocksworld:N" (see internal/stripstask/demo.go). PDDL parsing is out of
// scope: this CLI only ever drives the in-process demo domains.
func ResolveTask(name string) (ehc.Task, ehc.Heuristic, error) {
	kind, arg, ok := strings.Cut(name, ":")
	if !ok {
		return nil, nil, fmt.Errorf("task %q must be of the form kind:N, e.g. corridor:10", name)
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return nil, nil, fmt.Errorf("task %q: size must be a non-negative integer", name)
	}

	switch kind {
	case "corridor":
		task := stripstask.BuildCorridor(n)
		return task, stripstask.GoalCountHeuristic{Goal: task.Goal}, nil
	case "blocksworld":
		task := stripstask.BuildBlocksWorld(n)
		return task, stripstask.GoalCountHeuristic{Goal: task.Goal}, nil
	default:
		return nil, nil, fmt.Errorf("unknown task kind %q (want corridor or blocksworld)", kind)
	}
}
