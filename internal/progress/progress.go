// Package progress prints a tree-drawing progress indicator for CLI runs,
// reporting EHC phases: one phase per driver restart,
// stepped by lookahead, summarized by the found plan.
package progress

import (
	"fmt"
	"sync"
	"time"
)

// Indicator tracks and prints progress for one CLI run.
type Indicator struct {
	enabled bool
	mu      sync.Mutex
	phase   string
	start   time.Time
}

// NewIndicator creates a progress indicator. When enabled is false, every
// method is a no-op (used for the non-interactive / piped-output path).
func NewIndicator(enabled bool) *Indicator {
	return &Indicator{enabled: enabled, start: time.Now()}
}

// Phase announces a new top-level phase, e.g. "restart 3".
func (p *Indicator) Phase(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.phase = name
	fmt.Printf("\n📋 %s\n", name)
}

// Step reports a step within the current phase, e.g. "lookahead 2: BFS".
func (p *Indicator) Step(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  ├─ %s\n", name)
}

// Stat reports a sub-step statistic line, e.g. "expansions=48 h=3".
func (p *Indicator) Stat(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  │  ├─ %s\n", name)
}

// Success marks a step as successful.
func (p *Indicator) Success(name string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  └─ ✓ %s\n", name)
}

// Error reports a step failure.
func (p *Indicator) Error(name string, err error) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("  └─ ✗ %s: %v\n", name, err)
}

// Elapsed reports time since the indicator was created.
func (p *Indicator) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Summary prints the final outcome line for the run.
func (p *Indicator) Summary(found bool, details string) {
	if !p.enabled {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	symbol := "✓"
	if !found {
		symbol = "✗"
	}

	elapsed := time.Since(p.start)
	fmt.Printf("\n%s Complete in %s\n", symbol, formatDuration(elapsed))
	if details != "" {
		fmt.Printf("  %s\n", details)
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}
