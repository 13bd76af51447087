package main

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/kchristidis/duallist/config"
	"github.com/kchristidis/duallist/scenario"
	"github.com/kchristidis/duallist/stats"
	"go.uber.org/zap"
)

// The file that this harness writes its per-step stats to, prefixed with
// the run ID.
const OutputSteps = "steps.csv"

var (
	cfg *config.Config

	// Identifies this run in logs, stats rows and the output file name.
	runID string

	// Track the duration of a run
	timestart time.Time

	sc        *scenario.Scenario
	runner    *scenario.Runner
	collector *stats.Collector

	zlog   *zap.Logger
	writer io.Writer = os.Stdout

	// Closed once the runner returns. Tells the stats collector to drain
	// its buffer and exit.
	doneStatsC chan struct{}
	wgStats    sync.WaitGroup
)
