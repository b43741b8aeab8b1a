// Command vanity searches for key pairs whose address matches the configured
// prefixes and suffix. It runs until interrupted; the counter file lets a
// later run resume where this one stopped.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/mahdiidarabi/solvanity/pkg/vanity"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to YAML config file (defaults apply when empty)")
		logLevel   = flag.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR; overrides config)")
		maxBatches = flag.Uint64("max-batches", 0, "Stop after this many batches (0 = run until interrupted; overrides config)")
	)
	flag.Parse()

	cfg := vanity.DefaultConfig()
	if *configFile != "" {
		var err error
		cfg, err = vanity.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *maxBatches != 0 {
		cfg.Search.MaxBatches = *maxBatches
	}

	log, err := vanity.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats, err := vanity.NewClient(cfg).WithLogger(log).Search(ctx)
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	fmt.Printf("\n[+] Run %s finished\n", stats.RunID)
	fmt.Printf("    Batches: %d\n", stats.Batches)
	fmt.Printf("    Keys checked: %d\n", stats.Lanes)
	fmt.Printf("    Matches: %d (saved under %s)\n", stats.Matches, cfg.Search.OutputDir)
	fmt.Printf("    Average speed: %.2f MH/s\n", stats.MHps())
}
