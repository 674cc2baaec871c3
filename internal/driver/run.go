package driver

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alippai/gots-annotate/internal/stast"
	"github.com/alippai/gots-annotate/internal/stparser"
	"github.com/alippai/gots-annotate/pkg/moduletranslator"
	"github.com/alippai/gots-annotate/pkg/util"
)

// RunOptions configures one end-to-end translation run.
type RunOptions struct {
	RootDir    string
	NumWorkers int // 0 = auto
	Logger     *slog.Logger
}

// RunResult summarizes one completed translation run.
type RunResult struct {
	FilesTranslated int
	Diagnostics     []moduletranslator.Diagnostic
	Errors          []FileError
}

// Run discovers, parses, and translates every ST-dialect file under
// opts.RootDir into its AT-dialect counterpart, writing each output
// next to the translated run's configured output directory.
//
// Two phases, matching internal/stparser.ProjectIndex's concurrency
// contract: files are parsed and absorbed into a shared ProjectIndex
// sequentially (Builder mutates the index's shared counter and name
// table directly), then every file's annotation/extern pass and
// printing runs in parallel across a WorkerPool, since by that point
// the index is read-mostly (only its memoization caches are written,
// and those are guarded by a mutex).
func Run(opts RunOptions) (*RunResult, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cfg, err := LoadProjectConfig(opts.RootDir)
	if err != nil {
		return nil, err
	}

	paths, err := DiscoverFiles(opts.RootDir, cfg)
	if err != nil {
		return nil, err
	}
	logger.Info("discovered files", "count", len(paths))

	cache := util.NewFileCache(util.DefaultFileCacheConfig())
	defer cache.Close()

	mgr := stparser.NewManager(logger)
	defer mgr.Close()

	index := stparser.NewProjectIndex()

	files := make([]*stast.SourceFile, 0, len(paths))
	var parseErrors []FileError
	for _, path := range paths {
		mapped, err := cache.Get(path)
		if err != nil {
			parseErrors = append(parseErrors, FileError{FilePath: path, Error: fmt.Errorf("driver: read %s: %w", path, err)})
			continue
		}
		source := []byte(mapped.Data)

		tree, err := mgr.ParseFile(source, path)
		if err != nil {
			parseErrors = append(parseErrors, FileError{FilePath: path, Error: fmt.Errorf("driver: parse %s: %w", path, err)})
			continue
		}

		builder := index.NewBuilderFor(path, source)
		file := builder.Build(tree)
		index.Absorb(builder)
		tree.Close()

		files = append(files, file)
	}

	pool := NewWorkerPool(opts.NumWorkers, index, cfg, logger)
	pool.Start()

	go func() {
		for i, file := range files {
			if err := pool.Submit(FileJob{FilePath: file.Path, File: file, JobID: i}); err != nil {
				logger.Error("failed to submit job", "file", file.Path, "error", err)
			}
		}
		pool.Stop()
	}()

	result := &RunResult{Errors: parseErrors}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for r := range pool.Results() {
			if err := writeOutput(opts.RootDir, cfg, r); err != nil {
				result.Errors = append(result.Errors, FileError{FilePath: r.FilePath, Error: err})
				continue
			}
			result.FilesTranslated++
			result.Diagnostics = append(result.Diagnostics, r.Diagnostics...)
		}
	}()

	var poolErrors []FileError
	for e := range pool.Errors() {
		poolErrors = append(poolErrors, e)
	}
	pool.Wait()
	<-done
	result.Errors = append(result.Errors, poolErrors...)

	logger.Info("translation run complete", "translated", result.FilesTranslated, "errors", len(result.Errors))
	return result, nil
}

// writeOutput writes a FileResult's translated text to cfg.OutputDir
// (or alongside the source file, when unset), preserving the relative
// path under root.
func writeOutput(root string, cfg *ProjectConfig, r FileResult) error {
	outPath := r.FilePath
	if cfg.OutputDir != "" {
		rel, err := filepath.Rel(root, r.FilePath)
		if err != nil {
			rel = filepath.Base(r.FilePath)
		}
		outPath = filepath.Join(cfg.OutputDir, rel)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("driver: create output dir for %s: %w", outPath, err)
	}
	if err := os.WriteFile(outPath, []byte(r.Output), 0o644); err != nil {
		return fmt.Errorf("driver: write %s: %w", outPath, err)
	}
	return nil
}
