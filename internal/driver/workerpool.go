package driver

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/alippai/gots-annotate/internal/host"
	"github.com/alippai/gots-annotate/internal/printer"
	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/internal/stparser"
	"github.com/alippai/gots-annotate/pkg/annotator"
	"github.com/alippai/gots-annotate/pkg/externs"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
	"github.com/alippai/gots-annotate/pkg/util"
)

// FileJob is one already-parsed file queued for annotation/printing.
// Parsing and symbol-table construction happen up front in a single
// goroutine (see Run in run.go), since every Builder mutates
// the shared ProjectIndex's counter and name table directly; only the
// checker-query and print phase modeled here is safe to parallelize.
type FileJob struct {
	FilePath string
	File     *stast.SourceFile
	JobID    int
}

// FileResult is the translated output (or failure) for one FileJob.
type FileResult struct {
	FilePath    string
	JobID       int
	Output      string
	Diagnostics []moduletranslator.Diagnostic
}

// FileError reports a job that could not be read or parsed at all,
// distinct from a Diagnostic (which is a translation-time warning on an
// otherwise-successful file).
type FileError struct {
	FilePath string
	Error    error
}

// WorkerPool runs a bounded number of translation workers over a stream
// of already-parsed FileJobs, each consulting the shared, by-then
// read-mostly ProjectIndex through its own Checker.
//
// Worker count defaults to util.GetOptimalPoolSize(), matching
// internal/stparser's own parser pool sizing so a run's parse phase and
// its translate phase agree on available parallelism.
type WorkerPool struct {
	numWorkers int
	jobs       chan FileJob
	results    chan FileResult
	errors     chan FileError
	wg         sync.WaitGroup
	logger     *slog.Logger

	index *stparser.ProjectIndex
	cfg   *ProjectConfig

	started    atomic.Bool
	stopped    atomic.Bool
	jobsClosed atomic.Bool

	jobsSubmitted atomic.Int64
	jobsProcessed atomic.Int64
	jobsFailed    atomic.Int64
}

// NewWorkerPool creates a WorkerPool sharing index across every worker.
// numWorkers == 0 auto-sizes via the same policy as the parser pool.
func NewWorkerPool(numWorkers int, index *stparser.ProjectIndex, cfg *ProjectConfig, logger *slog.Logger) *WorkerPool {
	if numWorkers == 0 {
		numWorkers = util.GetOptimalPoolSize()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkerPool{
		numWorkers: numWorkers,
		jobs:       make(chan FileJob, numWorkers*2),
		results:    make(chan FileResult, numWorkers),
		errors:     make(chan FileError, numWorkers),
		logger:     logger,
		index:      index,
		cfg:        cfg,
	}
}

// Start spawns the worker goroutines.
func (wp *WorkerPool) Start() {
	if !wp.started.CompareAndSwap(false, true) {
		wp.logger.Warn("worker pool already started")
		return
	}
	wp.logger.Info("starting translation worker pool", "workers", wp.numWorkers)
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for job := range wp.jobs {
		wp.logger.Debug("worker processing job", "worker_id", id, "file", job.FilePath)
		result, err := wp.translateOne(job)
		if err != nil {
			wp.jobsFailed.Add(1)
			wp.errors <- FileError{FilePath: job.FilePath, Error: err}
			continue
		}
		wp.jobsProcessed.Add(1)
		wp.results <- *result
	}
}

// translateOne dispatches one already-built SourceFile to the externs
// generator (declaration files) or the annotation transformer
// (everything else), printing the result with internal/printer.
func (wp *WorkerPool) translateOne(job FileJob) (*FileResult, error) {
	file := job.File
	checker := stparser.NewChecker(wp.index)

	var diags []moduletranslator.Diagnostic
	h := &host.Host{
		ConvertIndexImportShorthandFlag: wp.cfg.ConvertIndexImports,
		Blacklist:                       wp.cfg.BlacklistSet(),
		UntypedFlag:                     wp.cfg.Untyped,
		DisableAutoQuotingFlag:          wp.cfg.DisableAutoQuoting,
		OutputFormatMatchesTargetFlag:   true,
		OnWarning: func(d moduletranslator.Diagnostic) {
			diags = append(diags, d)
		},
	}

	isDecl := IsDeclarationFile(job.FilePath)
	mtt := moduletranslator.New(file, checker, h, wp.cfg.BlacklistSet(), isDecl)

	var output string
	if isDecl {
		gen := externs.New(mtt)
		output = gen.Generate(file.Statements)
	} else {
		tr := annotator.New(mtt, h)
		rewritten := tr.TransformFile(file)
		output = printer.New(rewritten).Print(rewritten)
	}

	return &FileResult{
		FilePath:    job.FilePath,
		JobID:       job.JobID,
		Output:      output,
		Diagnostics: diags,
	}, nil
}

// IsDeclarationFile reports whether path names a .d.ts ambient
// declaration file, which the externs generator handles instead of the
// annotation transformer.
func IsDeclarationFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, ".d.ts")
}

// Submit enqueues job. Blocks if the job buffer is full.
func (wp *WorkerPool) Submit(job FileJob) error {
	if wp.stopped.Load() {
		return fmt.Errorf("driver: worker pool is stopped")
	}
	wp.jobsSubmitted.Add(1)
	wp.jobs <- job
	return nil
}

// Results returns the channel translated files are delivered on.
func (wp *WorkerPool) Results() <-chan FileResult { return wp.results }

// Errors returns the channel jobs whose translation returned an error are
// reported on. Reading and parsing happen before a job is submitted, so
// their failures never arrive here.
func (wp *WorkerPool) Errors() <-chan FileError { return wp.errors }

// FinishSubmitting closes the jobs channel. Idempotent.
func (wp *WorkerPool) FinishSubmitting() {
	if wp.jobsClosed.CompareAndSwap(false, true) {
		close(wp.jobs)
	}
}

// Wait blocks until every worker has exited.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Stop closes the jobs channel (if not already closed), waits for
// workers to drain, then closes the result and error channels.
func (wp *WorkerPool) Stop() {
	if !wp.stopped.CompareAndSwap(false, true) {
		return
	}
	wp.FinishSubmitting()
	wp.wg.Wait()
	close(wp.results)
	close(wp.errors)
	wp.logger.Info("worker pool stopped",
		"jobs_submitted", wp.jobsSubmitted.Load(),
		"jobs_processed", wp.jobsProcessed.Load(),
		"jobs_failed", wp.jobsFailed.Load())
}

// GetStats returns a snapshot of the pool's counters.
func (wp *WorkerPool) GetStats() WorkerPoolStats {
	return WorkerPoolStats{
		NumWorkers:    wp.numWorkers,
		JobsSubmitted: wp.jobsSubmitted.Load(),
		JobsProcessed: wp.jobsProcessed.Load(),
		JobsFailed:    wp.jobsFailed.Load(),
		QueueLength:   len(wp.jobs),
	}
}

// WorkerPoolStats is a point-in-time snapshot of WorkerPool counters.
type WorkerPoolStats struct {
	NumWorkers    int
	JobsSubmitted int64
	JobsProcessed int64
	JobsFailed    int64
	QueueLength   int
}
