// Package telemetry pushes per-run EHC search statistics to Prometheus and
// optionally writes a solution point to InfluxDB. All network I/O is
// opt-in: a Sink
// constructed with Enabled=false never dials anything.
package telemetry

import (
	"context"
	"fmt"
	"sync"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api/write"
	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	"github.com/ehcplan/ehcplan/internal/ehc"
)

var telemetryLog = log.With("component", "telemetry")

// Config controls where a Sink sends data. See internal/config.MetricsConfig
// for the on-disk shape.
type Config struct {
	Enabled        bool
	PushgatewayURL string
	InfluxURL      string
	InfluxToken    string
	InfluxOrg      string
	InfluxBucket   string
}

// Sink owns the Prometheus gauge/counter vectors this package exposes,
// labeled by {task, search, lookahead, ordering}, and an optional InfluxDB
// writer for per-run solution points.
type Sink struct {
	cfg Config

	mu         sync.Mutex
	pusher     *push.Pusher
	expansions *prometheus.GaugeVec
	heuristics *prometheus.GaugeVec
	orderings  *prometheus.GaugeVec
	restarts   *prometheus.GaugeVec
	lookaheads *prometheus.GaugeVec
	planLength *prometheus.GaugeVec
	runsTotal  *prometheus.CounterVec
}

const labelsJobName = "ehc_pusher"

var metricLabels = []string{"task", "search", "lookahead", "ordering"}

// NewSink builds a Sink. When cfg.Enabled is false, the returned Sink's
// Record method is a no-op and no Pushgateway connection is attempted.
func NewSink(cfg Config) *Sink {
	s := &Sink{
		cfg: cfg,
		expansions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ehc_total_expansions", Help: "Total node expansions in the run",
		}, metricLabels),
		heuristics: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ehc_total_heuristic_calls", Help: "Total heuristic evaluations in the run",
		}, metricLabels),
		orderings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ehc_total_ordering_calls", Help: "Total ordering updates in the run",
		}, metricLabels),
		restarts: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ehc_restart_count", Help: "Restart count in the run",
		}, metricLabels),
		lookaheads: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ehc_lookahead_count", Help: "Number of lookahead invocations in the run",
		}, metricLabels),
		planLength: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "ehc_solution_length", Help: "Length of the found plan, or -1 if none",
		}, metricLabels),
		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ehc_runs_total", Help: "Total finished runs, by solution outcome",
		}, append(append([]string{}, metricLabels...), "found")),
	}

	if cfg.Enabled {
		url := cfg.PushgatewayURL
		if url == "" {
			url = "http://localhost:9091"
		}
		s.pusher = push.New(url, labelsJobName).
			Collector(s.expansions).
			Collector(s.heuristics).
			Collector(s.orderings).
			Collector(s.restarts).
			Collector(s.lookaheads).
			Collector(s.planLength).
			Collector(s.runsTotal)
	}

	return s
}

// Record pushes one finished run's benchmark record to Prometheus and,
// when an Influx endpoint is configured, writes a matching point. No-op
// when the Sink is disabled.
func (s *Sink) Record(rec *ehc.BenchmarkRecord) {
	if !s.cfg.Enabled {
		return
	}

	labels := prometheus.Labels{
		"task": rec.TaskName, "search": rec.SearchName,
		"lookahead": rec.LookaheadName, "ordering": rec.OrderingName,
	}

	s.mu.Lock()
	s.expansions.With(labels).Set(float64(rec.TotalExpansions))
	s.heuristics.With(labels).Set(float64(rec.TotalHeuristicCalls))
	s.orderings.With(labels).Set(float64(rec.TotalOrderingCalls))
	s.restarts.With(labels).Set(float64(rec.RestartCount))
	s.lookaheads.With(labels).Set(float64(rec.LookaheadCount))
	length := -1
	if rec.SolutionFound {
		length = rec.SolutionLength
	}
	s.planLength.With(labels).Set(float64(length))
	foundLabels := prometheus.Labels{
		"task": rec.TaskName, "search": rec.SearchName,
		"lookahead": rec.LookaheadName, "ordering": rec.OrderingName,
		"found": fmt.Sprintf("%v", rec.SolutionFound),
	}
	s.runsTotal.With(foundLabels).Inc()
	s.mu.Unlock()

	go func() {
		if err := s.pusher.Push(); err != nil {
			telemetryLog.Error("pushgateway push failed", "error", err)
		}
	}()

	if s.cfg.InfluxURL != "" {
		s.writeInflux(rec)
	}
}

func (s *Sink) writeInflux(rec *ehc.BenchmarkRecord) {
	client := influxdb2.NewClient(s.cfg.InfluxURL, s.cfg.InfluxToken)
	defer client.Close()

	writeAPI := client.WriteAPIBlocking(s.cfg.InfluxOrg, s.cfg.InfluxBucket)
	tags := map[string]string{
		"task": rec.TaskName, "search": rec.SearchName,
		"lookahead": rec.LookaheadName, "ordering": rec.OrderingName,
	}
	fields := map[string]interface{}{
		"solution_found":        rec.SolutionFound,
		"solution_length":       rec.SolutionLength,
		"elapsed_seconds":       rec.ElapsedSeconds,
		"lookahead_count":       rec.LookaheadCount,
		"total_expansions":      rec.TotalExpansions,
		"total_heuristic_calls": rec.TotalHeuristicCalls,
		"total_ordering_calls":  rec.TotalOrderingCalls,
		"restart_count":         rec.RestartCount,
	}
	point := write.NewPoint("ehc_run", tags, fields, time.Now())
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := writeAPI.WritePoint(ctx, point); err != nil {
		telemetryLog.Error("influx write failed", "error", err)
	}
}
