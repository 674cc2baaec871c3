// Package mcpserver exposes the translation pipeline over the Model
// Context Protocol, so an editor or agent can ask for one file's
// AT-dialect form without shelling out to the tsickle CLI.
package mcpserver

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/alippai/gots-annotate/pkg/mcplog"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server for gots-annotate, exposing
// single-file translation and externs generation tools.
type Server struct {
	mcpServer *server.MCPServer
	root      string
	logger    *slog.Logger
	mcpLog    *mcplog.Logger // may be nil if logging is disabled
}

// NewServer creates an MCP server rooted at root (used to resolve
// relative paths the tools are called with). Pass a nil mcpLog to
// disable per-call JSONL logging.
func NewServer(root string, logger *slog.Logger, mcpLog *mcplog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{root: root, logger: logger, mcpLog: mcpLog}

	opts := []server.ServerOption{
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	}
	if mcpLog != nil {
		opts = append(opts, server.WithToolHandlerMiddleware(s.loggingMiddleware()))
	}

	s.mcpServer = server.NewMCPServer("gots-annotate", serverVersion, opts...)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: translateFileTool(), Handler: s.handleTranslateFile},
		server.ServerTool{Tool: generateExternsTool(), Handler: s.handleGenerateExterns},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Close shuts down the per-call logger if one is active.
func (s *Server) Close() error {
	if s.mcpLog != nil {
		return s.mcpLog.Close()
	}
	return nil
}
