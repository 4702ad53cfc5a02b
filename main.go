package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/andareed/census-timeline/config"
	"github.com/andareed/census-timeline/dataset"
	"github.com/andareed/census-timeline/logging"
	"github.com/andareed/census-timeline/scene"
)

var Version = "dev"

var (
	logFile    = flag.String("debug", "", "Write Debug Logs to file")
	logLevel   = flag.String("log-level", "debug", "log level: trace, debug, info, warn, error")
	configPath = flag.String("config", "", "TOML config file")
	policy     = flag.String("policy", "", "rotation policy override: fade or replace")
	headless   = flag.Bool("headless", false, "run without the terminal UI and log focus changes")
	cycles     = flag.Int("cycles", 0, "headless: stop after this many rotations (0 runs until interrupted)")
)

func main() {
	versionFlag := flag.Bool("version", false, "print version and exit")

	flag.Parse()

	// --- EARLY EXIT ---
	if *versionFlag {
		fmt.Println("Version:", Version)
		os.Exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}

	if *headless {
		os.Exit(runHeadless(cfg))
	}

	os.Exit(runTUI(cfg))
}

// runTUI returns the exit code so deferred log cleanup runs before exit.
func runTUI(cfg config.Config) int {
	cleanup, err := logging.SetupLogging(*logFile, *logLevel)
	if err != nil {
		log.Printf("Failed to setup logging %v", err)
		return 1
	}
	defer cleanup()

	logging.Infof("census-timeline: Started")

	e, err := scene.NewEngine(dataset.Census(), cfg, logging.Named("scene"))
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	m, err := newModel(e, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}

	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	// the rotation timer must not outlive the program on any exit path
	e.Stop()
	if err != nil {
		logging.Warnf("Tea program error: %v", err)
		fmt.Println("Error:", err)
		return 1
	}
	return 0
}

func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return config.Config{}, err
	}
	if *policy != "" {
		cfg.Animation.Policy = *policy
		if err := cfg.Validate(); err != nil {
			return config.Config{}, err
		}
	}
	return cfg, nil
}

func runHeadless(cfg config.Config) int {
	logging.Setup(os.Stderr, *logLevel)
	e, err := scene.NewEngine(dataset.Census(), cfg, logging.Named("scene"))
	if err != nil {
		logging.L().Error().Err(err).Msg("failed to build scene")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = scene.Run(ctx, e, cfg.FrameInterval(), cfg.Animation.RotateEvery.Duration, *cycles)
	if err != nil && !errors.Is(err, context.Canceled) {
		logging.L().Error().Err(err).Msg("headless run failed")
		return 1
	}
	logging.L().Info().Int("frames", e.Frames()).Int("retired", e.Retired()).Int("skipped", e.Misses()).Msg("done")
	return 0
}
