package tools

import (
	"context"

	"github.com/davral/styledtext-mcp/internal/styledtext"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// EscapeMarkdownInput defines input parameters for escape_markdown tool
type EscapeMarkdownInput struct {
	Text string `json:"text" jsonschema:"Arbitrary text to escape for verbatim embedding in a markdown format string"`
}

// EscapeMarkdownOutput is the result of the escape_markdown tool.
type EscapeMarkdownOutput struct {
	Escaped string `json:"escaped"`
}

// RegisterEscapeMarkdown registers the escape_markdown tool with the MCP server
func RegisterEscapeMarkdown(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "escape_markdown",
			Description: "Escapes markdown and inline HTML metacharacters so arbitrary text can be embedded in a format string without being interpreted.",
			InputSchema: GenerateSchema[EscapeMarkdownInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Escape Markdown",
				ReadOnlyHint:    true,
				IdempotentHint:  false,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		handleEscapeMarkdown,
	)
}

func handleEscapeMarkdown(ctx context.Context, request *mcp.CallToolRequest, input EscapeMarkdownInput) (*mcp.CallToolResult, any, error) {
	return nil, EscapeMarkdownOutput{Escaped: styledtext.EscapeMarkdown(input.Text)}, nil
}
