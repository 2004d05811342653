package tools

import (
	"context"
	"fmt"

	"github.com/davral/styledtext-mcp/internal/styledtext"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ParseMarkdownInput defines input parameters for parse_markdown tool
type ParseMarkdownInput struct {
	Markdown string `json:"markdown" jsonschema:"Markdown source to compile. Supports emphasis, strong, strikethrough, inline code, links, lists, and the <u> and <font color=\"...\"> inline tags. Unsupported constructs (headings, tables, block quotes, code blocks, images) are rejected."`
}

// RegisterParseMarkdown registers the parse_markdown tool with the MCP server
func RegisterParseMarkdown(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "parse_markdown",
			Description: "Compiles markdown into paragraphs of plain text plus out-of-band formatting spans and link targets, so the text can be rendered as rich text without markup in the text buffer.",
			InputSchema: GenerateSchema[ParseMarkdownInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Parse Markdown",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		handleParseMarkdown,
	)
}

func handleParseMarkdown(ctx context.Context, request *mcp.CallToolRequest, input ParseMarkdownInput) (*mcp.CallToolResult, any, error) {
	st, err := styledtext.Parse(input.Markdown)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse markdown: %w", err)
	}
	return nil, NewStyledTextOutput(st), nil
}
