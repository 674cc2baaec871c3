package driver

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alippai/gots-annotate/internal/stparser"
)

// TranslateSingleFile runs one file through the full ST -> AT pipeline
// in isolation, with a fresh ProjectIndex scoped to just that file.
// This is what internal/mcpserver calls for its per-file tools: unlike
// Run, it does no cross-file symbol resolution and writes nothing to
// disk, since a single-file MCP call has no project root to discover
// siblings from.
func TranslateSingleFile(path string, logger *slog.Logger) (*FileResult, error) {
	if logger == nil {
		logger = slog.Default()
	}

	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}

	mgr := stparser.NewManager(logger)
	defer mgr.Close()

	tree, err := mgr.ParseFile(source, path)
	if err != nil {
		return nil, fmt.Errorf("driver: parse %s: %w", path, err)
	}
	defer tree.Close()

	index := stparser.NewProjectIndex()
	builder := index.NewBuilderFor(path, source)
	file := builder.Build(tree)
	index.Absorb(builder)

	cfg := DefaultProjectConfig()
	pool := NewWorkerPool(1, index, cfg, logger)
	pool.Start()

	if err := pool.Submit(FileJob{FilePath: path, File: file, JobID: 0}); err != nil {
		pool.Stop()
		return nil, err
	}
	pool.FinishSubmitting()

	select {
	case r := <-pool.Results():
		pool.Wait()
		return &r, nil
	case e := <-pool.Errors():
		pool.Wait()
		return nil, e.Error
	}
}
