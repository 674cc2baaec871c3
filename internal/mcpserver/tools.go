package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// translateFileTool describes the translate_file tool: takes a
// path (absolute, or relative to the server's root) to an ST-dialect
// .ts/.tsx file and returns its AT-dialect translation text. Diagnostics
// are not included in the result.
func translateFileTool() mcp.Tool {
	return mcp.NewTool("translate_file",
		mcp.WithDescription("Translate one ST-dialect (.ts/.tsx) source file into its AT-dialect (JSDoc-annotated) form"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the source file, absolute or relative to the server root"),
		),
	)
}

// generateExternsTool describes the generate_externs tool: takes a path
// to an ambient .d.ts declaration file and returns its AT-dialect
// externs stub text.
func generateExternsTool() mcp.Tool {
	return mcp.NewTool("generate_externs",
		mcp.WithDescription("Generate AT-dialect externs stub text for an ambient .d.ts declaration file"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Path to the .d.ts file, absolute or relative to the server root"),
		),
	)
}
