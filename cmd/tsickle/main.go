// Command tsickle translates a project's ST-dialect (structural types,
// TypeScript-like) source files into the AT-dialect (annotation types,
// JSDoc-comment-based) form a downstream Closure-style toolchain
// expects, mirroring Google's tsickle in spirit if not in target
// language.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alippai/gots-annotate/internal/driver"
	"github.com/alippai/gots-annotate/internal/mcpserver"
	"github.com/alippai/gots-annotate/pkg/mcplog"
	"github.com/alippai/gots-annotate/pkg/util"
)

const version = "0.1.0-dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "translate":
		runTranslate(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "version":
		fmt.Printf("tsickle %s\n", version)
	case "help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runTranslate(args []string) {
	root, jobs := parseRunFlags(args)
	reportPath := reportFlag(args)

	logger := util.NewLogger(util.DefaultLoggerConfig())

	result, err := driver.Run(driver.RunOptions{
		RootDir:    root,
		NumWorkers: jobs,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "translate failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("translated %d file(s)\n", result.FilesTranslated)
	for _, d := range result.Diagnostics {
		fmt.Printf("  %s: %s:%d %s\n", d.Category, d.File, d.Start, d.MessageText)
	}

	if reportPath != "" {
		if err := writeDiagnosticsReport(reportPath, result.Diagnostics); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write report: %v\n", err)
		}
	}

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			fmt.Fprintf(os.Stderr, "  error: %s: %v\n", e.FilePath, e.Error)
		}
		os.Exit(1)
	}
}

// writeDiagnosticsReport renders every diagnostic from one run as a
// JSON array file — the ambient driver-local reporting concern
// described alongside the Externs Generator and Annotation Transformer.
func writeDiagnosticsReport(path string, diags any) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(diags)
}

func reportFlag(args []string) string {
	for i, a := range args {
		if a == "--report" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func runWatch(args []string) {
	root, _ := parseRunFlags(args)
	logger := util.NewLogger(util.DefaultLoggerConfig())

	retranslate := func(path string, removed bool) {
		if removed {
			logger.Info("file removed, skipping retranslation", "path", path)
			return
		}
		logger.Info("retranslating", "path", path)
		if _, err := driver.Run(driver.RunOptions{RootDir: root, Logger: logger}); err != nil {
			logger.Error("retranslation failed", "path", path, "error", err)
		}
	}

	w, err := driver.NewFileWatcher(retranslate, driver.DefaultWatchOptions(), logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to start watcher: %v\n", err)
		os.Exit(1)
	}
	if err := w.Start(root); err != nil {
		fmt.Fprintf(os.Stderr, "failed to watch %s: %v\n", root, err)
		os.Exit(1)
	}
	defer w.Stop()

	fmt.Printf("watching %s for changes (Ctrl+C to stop)\n", root)
	select {}
}

func runServe(args []string) {
	root := "."
	logPath := ""
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--root":
			if i+1 < len(args) {
				i++
				root = args[i]
			}
		case "--log":
			if i+1 < len(args) {
				i++
				logPath = args[i]
			}
		}
	}

	logger := util.NewLogger(util.DefaultLoggerConfig())

	var mcpLog *mcplog.Logger
	if logPath != "" {
		var err error
		mcpLog, err = mcplog.NewLogger(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open mcp log: %v\n", err)
			os.Exit(1)
		}
		defer mcpLog.Close()
	}

	srv := mcpserver.NewServer(root, logger, mcpLog)
	if err := srv.ServeStdio(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %v\n", err)
		os.Exit(1)
	}
}

// parseRunFlags parses the shared --root and --jobs flags, defaulting
// root to the working directory and jobs to auto-detect (0).
func parseRunFlags(args []string) (root string, jobs int) {
	root = "."
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--root" && i+1 < len(args):
			i++
			root = args[i]
		case args[i] == "--jobs" && i+1 < len(args):
			i++
			fmt.Sscanf(args[i], "%d", &jobs)
		case args[i] == "--report" && i+1 < len(args):
			i++ // consumed by reportFlag
		case !strings.HasPrefix(args[i], "--"):
			root = args[i]
		}
	}
	abs, err := filepath.Abs(root)
	if err == nil {
		root = abs
	}
	return root, jobs
}

func printUsage() {
	fmt.Println("Usage: tsickle <command>")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  translate [root] [--jobs n] [--report f.json]  Translate a project's .ts/.tsx files to AT dialect")
	fmt.Println("  watch [root]                  Watch a project and retranslate on change")
	fmt.Println("  serve [--root dir] [--log p]  Start the MCP server")
	fmt.Println("  version                       Print version")
	fmt.Println("  help                          Show this help message")
}
