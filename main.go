package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/kchristidis/duallist/config"
	"github.com/kchristidis/duallist/logger"
	"github.com/kchristidis/duallist/scenario"
	"github.com/kchristidis/duallist/stats"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}
}

func run() error {
	var err error

	timestart = time.Now()
	runID = uuid.NewString()

	if cfg, err = config.Load(); err != nil {
		return err
	}

	zlog = logger.New(logger.Options{
		Level:  cfg.Level(),
		File:   cfg.Log.File,
		MaxMB:  cfg.Log.MaxMB,
		MaxAge: cfg.Log.MaxAge,
	})
	defer zlog.Sync()

	if sc, err = scenario.Load(cfg.Scenario); err != nil {
		return err
	}
	zlog.Info("scenario loaded",
		zap.String("run", runID),
		zap.String("path", cfg.Scenario),
		zap.Int("steps", len(sc.Steps)))

	// Set up the stats collector

	doneStatsC = make(chan struct{})
	collector = stats.New(cfg.StatsBuffer, writer, doneStatsC)
	wgStats.Add(1)
	go func() {
		collector.Run()
		wgStats.Done()
	}()

	// Run the scenario

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	runner = scenario.New(sc, collector, zlog, writer, runID)
	runner.CheckInvariants = cfg.CheckInvariants
	runErr := runner.Run(ctx)

	msg := fmt.Sprint("main • closing doneStatsC...")
	fmt.Fprintln(writer, msg)
	close(doneStatsC)
	wgStats.Wait()

	if err := metrics(); err != nil {
		return err
	}

	zlog.Info("run completed",
		zap.String("run", runID),
		zap.Duration("elapsed", time.Since(timestart)),
		zap.Bool("ok", runErr == nil))

	return runErr
}
