package tools

import (
	"context"
	"fmt"

	"github.com/davral/styledtext-mcp/internal/styledtext"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// FormatArgument is one interpolation argument for format_markdown.
type FormatArgument struct {
	Text     string `json:"text" jsonschema:"Argument content spliced into the matching placeholder"`
	Markdown bool   `json:"markdown,omitempty" jsonschema:"Compile the argument as markdown before splicing so its own styling is preserved; plain text otherwise"`
}

// FormatMarkdownInput defines input parameters for format_markdown tool
type FormatMarkdownInput struct {
	Format string           `json:"format" jsonschema:"Markdown format string with {} or {N} placeholders. Escape literal braces with {{ and }}. Implicit and positional placeholders cannot be mixed."`
	Args   []FormatArgument `json:"args,omitempty" jsonschema:"Arguments resolved into the placeholders, in order"`
}

// RegisterFormatMarkdown registers the format_markdown tool with the MCP server
func RegisterFormatMarkdown(srv *mcp.Server) {
	mcp.AddTool(srv,
		&mcp.Tool{
			Name:        "format_markdown",
			Description: "Compiles a markdown format string, splicing each argument into its {} or {N} placeholder with formatting and link spans translated to the insertion point. Arguments must compile to a single paragraph.",
			InputSchema: GenerateSchema[FormatMarkdownInput](),
			Annotations: &mcp.ToolAnnotations{
				Title:           "Format Markdown",
				ReadOnlyHint:    true,
				IdempotentHint:  true,
				DestructiveHint: new(false),
				OpenWorldHint:   new(false),
			},
		},
		handleFormatMarkdown,
	)
}

func handleFormatMarkdown(ctx context.Context, request *mcp.CallToolRequest, input FormatMarkdownInput) (*mcp.CallToolResult, any, error) {
	args := make([]*styledtext.StyledText, 0, len(input.Args))
	for i, arg := range input.Args {
		if arg.Markdown {
			st, err := styledtext.Parse(arg.Text)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to parse argument %d: %w", i, err)
			}
			args = append(args, st)
		} else {
			args = append(args, styledtext.FromPlainText(arg.Text))
		}
	}

	st, err := styledtext.ParseInterpolated(input.Format, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to format markdown: %w", err)
	}
	return nil, NewStyledTextOutput(st), nil
}
