// Command ladder reads raw job titles, one per line, and emits resolved
// results as NDJSON. Input comes from the path given as the first argument,
// or stdin when the argument is "-" or absent.
//
// Configuration is environment-driven; see internal/config.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wagescope/ladder/internal/config"
	"github.com/wagescope/ladder/internal/engine"
	"github.com/wagescope/ladder/internal/engine/matcher"
	"github.com/wagescope/ladder/internal/engine/normalizer"
	"github.com/wagescope/ladder/internal/engine/rules"
	"github.com/wagescope/ladder/internal/engine/semantic"
	"github.com/wagescope/ladder/internal/engine/seniority"
	"github.com/wagescope/ladder/internal/engine/taxonomy"
	"github.com/wagescope/ladder/internal/logging"
	"github.com/wagescope/ladder/internal/metrics"
	"github.com/wagescope/ladder/internal/output"
	"github.com/wagescope/ladder/internal/output/file"
	"github.com/wagescope/ladder/internal/output/stdout"
	"github.com/wagescope/ladder/internal/pipeline"
	"github.com/wagescope/ladder/internal/source"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.Init(cfg.Output == "stdout", logging.ParseLevel(cfg.LogLevel))

	// Load rule tables.
	r := rules.Default()
	if cfg.RulesPath != "" {
		if r, err = rules.LoadFile(cfg.RulesPath); err != nil {
			log.Fatalf("failed to load rules: %v", err)
		}
	}

	// Load the role taxonomy.
	roleSet := taxonomy.DefaultRoles()
	if cfg.RolesPath != "" {
		if roleSet, err = taxonomy.LoadFile(cfg.RolesPath); err != nil {
			log.Fatalf("failed to load roles: %v", err)
		}
	}

	// Optional semantic tier.
	var emb *semantic.ONNXEmbedder
	if cfg.ModelDir != "" {
		if emb, err = semantic.New(cfg.ModelDir); err != nil {
			log.Fatalf("failed to create embedder: %v", err)
		}
		defer emb.Close()
	}

	taxOpts := []taxonomy.Option{}
	if emb != nil {
		taxOpts = append(taxOpts, taxonomy.WithEmbedder(emb))
	}
	snap, err := taxonomy.New(roleSet, r, taxOpts...)
	if err != nil {
		log.Fatalf("failed to build taxonomy: %v", err)
	}

	matchOpts := []matcher.Option{
		matcher.WithOverlapThreshold(cfg.OverlapThreshold),
		matcher.WithKeywordConfidence(cfg.KeywordConfidence),
	}
	if emb != nil {
		matchOpts = append(matchOpts, matcher.WithEmbedder(emb, cfg.SemanticThreshold))
	}

	eng := engine.New(
		normalizer.New(r.Acronyms, r.MinorWords),
		seniority.New(r.SeniorityTiers()),
		matcher.New(matchOpts...),
		snap,
	)

	// Input: first argument, "-" or absent means stdin.
	inputPath := "-"
	if len(os.Args) > 1 {
		inputPath = os.Args[1]
	}
	src, err := source.Open(inputPath)
	if err != nil {
		log.Fatalf("failed to open input: %v", err)
	}

	var out output.Output
	if cfg.Output == "stdout" {
		out = stdout.New(cfg.Pretty)
	} else {
		if out, err = file.New(cfg.Output); err != nil {
			log.Fatalf("failed to open output: %v", err)
		}
	}

	pipeOpts := []pipeline.Option{
		pipeline.WithWorkers(cfg.Workers),
		pipeline.WithBatchSize(cfg.BatchSize),
		pipeline.WithDedupe(cfg.Dedupe),
	}
	if cfg.MetricsAddr != "" {
		rec := metrics.NewRecorder()
		pipeOpts = append(pipeOpts, pipeline.WithRecorder(rec))
		go serveMetrics(cfg.MetricsAddr, rec)
	}

	p := pipeline.New(src, eng, out, pipeOpts...)
	defer p.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("starting", "input", inputPath, "output", cfg.Output, "roles", snap.Len())
	start := time.Now()
	if err := p.Run(ctx); err != nil && err != context.Canceled {
		log.Fatalf("pipeline error: %v", err)
	}
	slog.Info("done", "elapsed", time.Since(start).Round(time.Millisecond).String())
}

func serveMetrics(addr string, rec *metrics.Recorder) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", rec.Handler())
	slog.Info("metrics listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics server", "error", err)
	}
}
