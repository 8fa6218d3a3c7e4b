package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mutker/fanmon/internal/config"
	"codeberg.org/mutker/fanmon/internal/console"
	"codeberg.org/mutker/fanmon/internal/errors"
	"codeberg.org/mutker/fanmon/internal/journal"
	"codeberg.org/mutker/fanmon/internal/logger"
	"codeberg.org/mutker/fanmon/internal/pid"
	"codeberg.org/mutker/fanmon/internal/sensor"
	"codeberg.org/mutker/fanmon/internal/telemetry"
	"github.com/spf13/pflag"
)

var (
	cfg       *config.Config
	collector *sensor.Collector
	snapshots *journal.Journal
	history   telemetry.Collector
)

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")

	sources, err := sensor.LoadConfig(cfg.Sources)
	if err != nil {
		logger.FatalWithCode(err).Msg("failed to load sensor sources")
	}

	collector, err = sensor.NewCollector(sources)
	if err != nil {
		logger.FatalWithCode(err).Msg("failed to initialize collector")
	}

	snapshots, err = journal.New(journal.Config{Dir: cfg.LogDir})
	if err != nil {
		logger.FatalWithCode(err).Msg("failed to create log directory")
	}
	logger.Debug().Str("log_dir", cfg.LogDir).Msg("Journal ready")

	history, err = telemetry.NewService(telemetry.Config{Enabled: cfg.Telemetry, DBPath: cfg.Database})
	if err != nil {
		// A broken history store must not stop the poll itself.
		logger.Warn().Err(err).Msg("Snapshot history unavailable, continuing without it")
		history = telemetry.Noop()
	}
}

func main() {
	defer func() {
		if err := history.Close(); err != nil {
			logger.ErrorWithCode(err).Msg("failed to close snapshot history")
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	if !cfg.Monitor {
		poll(ctx)
		return
	}

	if err := pid.Write(); err != nil {
		logger.FatalWithCode(err).Msg("failed to write PID file")
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.ErrorWithCode(err).Msg("failed to remove PID file")
		}
	}()

	loop(ctx)
	logger.Info().Msg("Exiting...")
}

// poll captures one snapshot, reports it and records it. Recording
// failures are warnings: monitoring is best-effort and a failed write
// must not abort the poll.
func poll(ctx context.Context) {
	snapshot := collector.Capture(ctx)

	console.Render(os.Stdout, snapshot)

	if err := snapshots.Append(ctx, snapshot); err != nil {
		logger.Warn().Err(err).Msg("failed to write snapshot log")
	}

	if err := history.Record(ctx, snapshot); err != nil {
		logger.Warn().Err(err).Msg("failed to record snapshot history")
	}

	if snapshot.FanStatus == nil {
		console.FanWarning(os.Stdout)
	}
}

func loop(ctx context.Context) {
	interval := time.Duration(cfg.Interval) * time.Second
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info().Int("interval", cfg.Interval).Msg("Monitor mode activated. Polling sensors...")

	poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			poll(ctx)
		}
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}
