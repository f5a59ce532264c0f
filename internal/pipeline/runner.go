package pipeline

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/wavefold/shrinktune/internal/config"
	"github.com/wavefold/shrinktune/internal/encoder"
)

// ErrNoFiles means discovery matched nothing. Callers treat it as a clean
// exit, not a failure.
var ErrNoFiles = errors.New("no MP3 files found")

// ErrNoResults means tasks were dispatched but nothing was recorded, which
// points at a systemic failure rather than per-file ones.
var ErrNoResults = errors.New("no results recorded")

// Observer is handed the file total and the shared completion counter once
// dispatch begins. It runs concurrently with the workers and should return
// once the counter reaches the total.
type Observer func(total int, completed *atomic.Int64)

// Run is the top-level batch entry point: discover files, mirror their
// destinations, fan out over the worker pool, and aggregate the results.
// Individual file failures are logged and excluded from totals; they never
// abort the run.
func Run(ctx context.Context, cfg *config.Config, enc encoder.Encoder, log *zap.Logger, observe Observer) (Summary, error) {
	files, err := Discover(cfg.InputRoot)
	if err != nil {
		return Summary{}, err
	}
	if len(files) == 0 {
		return Summary{}, ErrNoFiles
	}

	mode, err := encoder.ParseTrimMode(string(cfg.SilenceMode))
	if err != nil {
		return Summary{}, err
	}
	iv := encoder.NewInvoker(enc, cfg.QualityLevel(), cfg.SilenceThreshold, mode, log)

	pool := NewPool(cfg.Parallelism)

	// Files whose destination cannot even be computed are recorded as
	// failures up front, and counted so the observer still terminates.
	var tasks []Task
	var preFailed []encoder.Result
	for _, source := range files {
		dest, err := MirrorPath(cfg.InputRoot, cfg.OutputRoot, source)
		if err != nil {
			log.Error("encode failed",
				zap.String("source", source),
				zap.String("detail", err.Error()),
			)
			preFailed = append(preFailed, encoder.Result{Source: source, Detail: err.Error()})
			pool.Completed().Add(1)
			continue
		}
		tasks = append(tasks, Task{Source: source, Dest: dest})
	}

	log.Info("starting run",
		zap.Int("files", len(files)),
		zap.Int("parallelism", cfg.Parallelism),
		zap.String("quality", cfg.Quality),
		zap.String("silence_mode", string(cfg.SilenceMode)),
		zap.String("silence_threshold", cfg.SilenceThreshold),
	)

	var obsWG sync.WaitGroup
	if observe != nil {
		obsWG.Add(1)
		go func() {
			defer obsWG.Done()
			observe(len(files), pool.Completed())
		}()
	}

	start := time.Now()
	results := pool.Run(ctx, tasks, func(ctx context.Context, task Task) encoder.Result {
		return iv.Process(ctx, task.Source, task.Dest)
	})
	obsWG.Wait()

	results = append(results, preFailed...)
	if len(results) == 0 {
		return Summary{}, ErrNoResults
	}

	summary := Summarize(results)
	summary.Elapsed = time.Since(start)

	log.Info("run complete",
		zap.Int("processed", summary.FilesProcessed),
		zap.Int("failed", summary.Failed),
		zap.Int64("original_bytes", summary.TotalOriginalBytes),
		zap.Int64("compressed_bytes", summary.TotalCompressedBytes),
		zap.Duration("elapsed", summary.Elapsed),
	)
	return summary, nil
}
