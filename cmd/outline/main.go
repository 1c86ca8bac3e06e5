// Command outline writes a title and heading outline for every document in
// a directory.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dgallion1/docoutline/internal/config"
	"github.com/dgallion1/docoutline/internal/outline"
	"github.com/dgallion1/docoutline/internal/pipeline"
)

func main() {
	cfg := config.Load()

	in := flag.String("in", cfg.InputDir, "directory of input documents")
	out := flag.String("out", cfg.OutputDir, "directory for <name>.json results")
	workers := flag.Int("workers", 1, "documents processed concurrently")
	report := flag.Bool("report", false, "also write <name>.report.json with the decisions taken")
	heuristics := flag.String("config", cfg.HeuristicsFile, "YAML file overriding heuristic thresholds")
	flag.Parse()

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	params := outline.DefaultParams()
	if *heuristics != "" {
		p, err := config.LoadHeuristics(*heuristics)
		if err != nil {
			log.Error("invalid heuristics", "error", err)
			os.Exit(1)
		}
		params = p
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := &pipeline.Batch{
		Engine:  outline.NewEngine(params, log),
		Log:     log,
		Workers: *workers,
		Reports: *report,
	}
	if _, err := b.Run(ctx, *in, *out); err != nil {
		log.Error("batch failed", "error", err)
		os.Exit(1)
	}
}
