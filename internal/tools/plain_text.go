package tools

import (
	"context"
	"fmt"

	"github.com/davral/styledtext-mcp/internal/styledtext"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PlainTextInput defines input parameters for plain_text tool
type PlainTextInput struct {
	Markdown string `json:"markdown" jsonschema:"Markdown source to reduce to plain text"`
}

// PlainTextOutput is the result of the plain_text tool.
type PlainTextOutput struct {
	Text string `json:"text"`
}

// RegisterPlainText registers the plain_text tool with the MCP server
func RegisterPlainText(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "plain_text",
			Description: "Compiles markdown and returns only the raw text, with paragraphs joined by newlines and all formatting dropped.",
			InputSchema: GenerateSchema[PlainTextInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Plain Text",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		handlePlainText,
	)
}

func handlePlainText(ctx context.Context, request *mcp.CallToolRequest, input PlainTextInput) (*mcp.CallToolResult, any, error) {
	st, err := styledtext.Parse(input.Markdown)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse markdown: %w", err)
	}
	return nil, PlainTextOutput{Text: st.RawText()}, nil
}
