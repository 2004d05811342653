package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all available tools with the MCP server
func RegisterAll(srv *mcp.Server) {
	RegisterParseMarkdown(srv)
	RegisterFormatMarkdown(srv)
	RegisterPlainText(srv)
	RegisterEscapeMarkdown(srv)
}
