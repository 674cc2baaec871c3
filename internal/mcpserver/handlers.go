package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/alippai/gots-annotate/internal/driver"
)

func (s *Server) resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(s.root, p)
}

func (s *Server) handleTranslateFile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resolved := s.resolvePath(path)

	if driver.IsDeclarationFile(resolved) {
		return mcp.NewToolResultError(fmt.Sprintf("%s is a .d.ts file; use generate_externs instead", path)), nil
	}

	result, err := driver.TranslateSingleFile(resolved, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result.Output), nil
}

func (s *Server) handleGenerateExterns(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	resolved := s.resolvePath(path)

	if !driver.IsDeclarationFile(resolved) {
		return mcp.NewToolResultError(fmt.Sprintf("%s is not a .d.ts file; use translate_file instead", path)), nil
	}

	result, err := driver.TranslateSingleFile(resolved, s.logger)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(result.Output), nil
}
