// Command genpattern compiles prefix patterns into the prefix audit file and,
// optionally, rewrites the table declarations of an external kernel source.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mahdiidarabi/solvanity/pkg/vanity"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to YAML config file (defaults apply when empty)")
		kernelFile = flag.String("kernel", "", "Kernel source whose table declarations are rewritten (overrides config)")
		logLevel   = flag.String("log-level", "", "Log level (DEBUG, INFO, WARN, ERROR; overrides config)")
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
	if *kernelFile != "" {
		cfg.Pattern.KernelFile = *kernelFile
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	log, err := vanity.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	comp, err := vanity.NewClient(cfg).WithLogger(log).Compile()
	if err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}

	fmt.Printf("[+] %d of %d candidate prefixes accepted, written to %s\n", comp.Table.Count, comp.Candidates, cfg.Pattern.AuditFile)
	if cfg.Pattern.KernelFile != "" {
		fmt.Printf("    Kernel source updated: %s\n", cfg.Pattern.KernelFile)
	}
}
