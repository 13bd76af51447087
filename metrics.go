package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kchristidis/duallist/stats"
	"go.uber.org/zap"
)

func metrics() error {
	steps := collector.Steps()

	var failed int
	for _, s := range steps {
		if s.Err != "" {
			failed++
		}
	}

	msg := fmt.Sprintf("main • %d steps collected, %d failed", len(steps), failed)
	fmt.Fprintln(writer, msg)

	// Create the output dir if it doesn't exist already
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return err
	}

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("%s-%s", runID, OutputSteps))
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := stats.WriteCSV(f, steps); err != nil {
		return err
	}

	zlog.Info("stats written", zap.String("path", path), zap.Int("rows", len(steps)))
	return nil
}
