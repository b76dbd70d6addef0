// Package pipeline runs the batch harness around the resolution engine:
// read raw titles from a source, collapse duplicates, resolve them across a
// worker pool, and write results to an output. The engine itself is pure —
// all I/O and concurrency lives here, with the callers.
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/wagescope/ladder/internal/engine"
	"github.com/wagescope/ladder/internal/metrics"
	"github.com/wagescope/ladder/internal/model"
	"github.com/wagescope/ladder/internal/output"
	"github.com/wagescope/ladder/internal/source"
)

const defaultBatchSize = 500

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers sets the number of parallel resolution goroutines.
// Default: runtime.NumCPU(). Rows are independent, so more workers scale
// until the cores run out.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBatchSize sets how many titles accumulate before a flush. Default 500.
func WithBatchSize(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.batchSize = n
		}
	}
}

// WithDedupe toggles collapsing identical raw titles within a batch.
// Payroll exports repeat titles heavily; parsing each distinct string once
// and emitting a count is usually what the aggregation job wants anyway.
func WithDedupe(enabled bool) Option {
	return func(p *Pipeline) { p.dedupe = enabled }
}

// WithRecorder attaches a metrics recorder observing every result.
func WithRecorder(rec *metrics.Recorder) Option {
	return func(p *Pipeline) { p.recorder = rec }
}

// Pipeline connects a source, the engine, and an output.
type Pipeline struct {
	source    source.Source
	engine    *engine.Engine
	out       output.Output
	recorder  *metrics.Recorder
	workers   int
	batchSize int
	dedupe    bool
}

// New creates a Pipeline from its components.
func New(src source.Source, eng *engine.Engine, out output.Output, opts ...Option) *Pipeline {
	p := &Pipeline{
		source:    src,
		engine:    eng,
		out:       out,
		workers:   runtime.NumCPU(),
		batchSize: defaultBatchSize,
		dedupe:    true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run drains the source, processing titles in batches until the source is
// exhausted or the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	ch, err := p.source.Stream(ctx)
	if err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}

	batch := make([]string, 0, p.batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		err := p.processBatch(ctx, batch)
		batch = batch[:0]
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case title, ok := <-ch:
			if !ok {
				return flush()
			}
			batch = append(batch, title)
			if len(batch) >= p.batchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
	}
}

// processBatch resolves one batch: dedupe, fan out across workers, then
// write results in first-occurrence order so output stays deterministic.
func (p *Pipeline) processBatch(ctx context.Context, batch []string) error {
	titles := batch
	counts := []int(nil)
	if p.dedupe {
		titles, counts = collapse(batch)
	}

	results := p.resolveParallel(titles)

	for i, result := range results {
		if counts != nil && counts[i] > 1 {
			result.Count = counts[i]
		}
		if p.recorder != nil {
			p.recorder.Observe(result)
		}
		if err := p.out.Write(ctx, result); err != nil {
			return fmt.Errorf("pipeline: %w", err)
		}
	}
	return nil
}

// resolveParallel runs the engine over the titles with the configured
// worker count, preserving input order. The engine is stateless over an
// immutable snapshot, so workers share it without locks.
func (p *Pipeline) resolveParallel(titles []string) []model.ParseResult {
	results := make([]model.ParseResult, len(titles))

	workers := p.workers
	if workers > len(titles) {
		workers = len(titles)
	}
	if workers <= 1 {
		for i, t := range titles {
			results[i] = p.engine.Process(t)
		}
		return results
	}

	indexes := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range indexes {
				results[i] = p.engine.Process(titles[i])
			}
		}()
	}
	for i := range titles {
		indexes <- i
	}
	close(indexes)
	wg.Wait()

	return results
}

// Close shuts down the source and output.
func (p *Pipeline) Close() error {
	srcErr := p.source.Close()
	if err := p.out.Close(); err != nil {
		return err
	}
	return srcErr
}
