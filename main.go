package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/davral/styledtext-mcp/internal/colors"
	"github.com/davral/styledtext-mcp/internal/completion"
	"github.com/davral/styledtext-mcp/internal/opts"
	"github.com/davral/styledtext-mcp/internal/opts/typed_flags"
	"github.com/davral/styledtext-mcp/internal/styledtext"
	"github.com/davral/styledtext-mcp/internal/tools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	serverName    = "styledtext"
	serverVersion = "0.1.0"
)

func main() {
	wireHandlers()

	parser, err := opts.Parse()
	if err != nil {
		log.Fatalf("Failed to parse options: %v", err)
	}

	if opts.GlobalOpts.Version {
		fmt.Printf("%s v%s\n", serverName, serverVersion)
		return
	}

	// No command specified: run the server with the defaults.
	if parser.Active == nil {
		if err := runServer(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

// wireHandlers connects the command structs to their implementations
// before parsing, since go-flags executes the active command during
// Parse.
func wireHandlers() {
	opts.GlobalOpts.Run.Handler = runServer
	opts.GlobalOpts.Completion.Bash.Handler = func() error {
		completion.GenerateBash()
		return nil
	}
	opts.GlobalOpts.Tool.ParseMarkdown.Handler = runParseMarkdown
	opts.GlobalOpts.Tool.FormatMarkdown.Handler = runFormatMarkdown
	opts.GlobalOpts.Tool.PlainText.Handler = runPlainText
	opts.GlobalOpts.Tool.EscapeMarkdown.Handler = runEscapeMarkdown
}

// debugMiddleware logs all MCP requests and responses when debug is enabled
func debugMiddleware(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		// Log the request
		if req != nil {
			p := req.GetParams()
			j, _ := json.MarshalIndent(p, "", "  ")
			log.Printf("[DEBUG] MCP Request: %s\nParams: %s\n", method, string(j))
		} else {
			log.Printf("[DEBUG] MCP Request: %s\n", method)
		}

		// Call the next handler
		result, err := next(ctx, method, req)

		// Log the response
		if err != nil {
			log.Printf("[DEBUG] MCP Response: %s\nError: %v\n", method, err)
		} else if result != nil {
			resultJSON, _ := json.MarshalIndent(result, "", "  ")
			log.Printf("[DEBUG] MCP Response: %s\nResult: %s\n", method, string(resultJSON))
		} else {
			log.Printf("[DEBUG] MCP Response: %s\n", method)
		}

		return result, err
	}
}

// createServer creates and configures a new MCP server instance
func createServer(options *opts.RunCmd) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    serverName,
		Version: serverVersion,
	}, nil)

	// Add debug middleware if debug mode is enabled
	if options.Debug {
		srv.AddReceivingMiddleware(debugMiddleware)
	}

	// Register all tools
	tools.RegisterAll(srv)

	return srv
}

func runServer() error {
	ctx := context.Background()
	options := &opts.GlobalOpts.Run

	if options.NamedColors != "" {
		if err := colors.Load(options.NamedColors); err != nil {
			return fmt.Errorf("failed to load named colors: %w", err)
		}
	}

	// Log to stderr (stdout is used for MCP communication in stdio mode)
	log.Printf("Styled text MCP server v%s initialized\n", serverVersion)

	srv := createServer(options)

	// Run the server with the selected transport
	switch options.Transport {
	case typed_flags.TransportStdio:
		log.Println("Using STDIO transport")
		if err := srv.Run(ctx, &mcp.StdioTransport{}); err != nil {
			return err
		}
	case typed_flags.TransportHTTP:
		addr := fmt.Sprintf("%s:%d", options.Host, options.Port)

		handler := mcp.NewStreamableHTTPHandler(
			func(r *http.Request) *mcp.Server {
				// since we are stateless, we can return the same server instance
				return srv
			},
			&mcp.StreamableHTTPOptions{
				Stateless: true,
			},
		)

		// Create HTTP server
		httpServer := &http.Server{
			Addr:    addr,
			Handler: handler,
		}

		// Run the HTTP server
		log.Printf("HTTP server listening on http://%s\n", addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("HTTP server error: %w", err)
		}
	default:
		return fmt.Errorf("unsupported transport: %s", options.Transport)
	}

	return nil
}

func runParseMarkdown(markdown string) error {
	st, err := styledtext.Parse(markdown)
	if err != nil {
		return err
	}
	return printJSON(tools.NewStyledTextOutput(st))
}

func runFormatMarkdown(format string, rawArgs []string, markdownArgs bool) error {
	args := make([]*styledtext.StyledText, 0, len(rawArgs))
	for i, raw := range rawArgs {
		if markdownArgs {
			st, err := styledtext.Parse(raw)
			if err != nil {
				return fmt.Errorf("failed to parse argument %d: %w", i, err)
			}
			args = append(args, st)
		} else {
			args = append(args, styledtext.FromPlainText(raw))
		}
	}
	st, err := styledtext.ParseInterpolated(format, args...)
	if err != nil {
		return err
	}
	return printJSON(tools.NewStyledTextOutput(st))
}

func runPlainText(markdown string) error {
	st, err := styledtext.Parse(markdown)
	if err != nil {
		return err
	}
	fmt.Println(st.RawText())
	return nil
}

func runEscapeMarkdown(text string) error {
	fmt.Println(styledtext.EscapeMarkdown(text))
	return nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
