package opts

import (
	"fmt"
	"os"

	"github.com/davral/styledtext-mcp/internal/opts/typed_flags"
	"github.com/jessevdk/go-flags"
	"github.com/joho/godotenv"
)

// Options defines the command-line options for the MCP server
type Options struct {
	Version bool `long:"version" short:"v" description:"Show version information and exit"`

	Run        RunCmd        `command:"run" description:"Run the server"`
	Completion CompletionCmd `command:"completion" description:"Generate completion scripts"`
	Tool       ToolCmd       `command:"tool" description:"Execute a tool directly"`
}

// RunCmd defines the 'run' command
type RunCmd struct {
	Transport   typed_flags.Transport `long:"transport" env:"STYLEDTEXT_MCP_TRANSPORT" description:"Transport type: stdio or http" default:"stdio"`
	Port        int                   `long:"port" env:"STYLEDTEXT_MCP_PORT" description:"HTTP port (only used with --transport=http)" default:"8787"`
	Host        string                `long:"host" env:"STYLEDTEXT_MCP_HOST" description:"HTTP host (only used with --transport=http)" default:"localhost"`
	Debug       bool                  `long:"debug" env:"STYLEDTEXT_MCP_DEBUG" description:"Enable debug logging of tool calls and results to stderr"`
	NamedColors string                `long:"named-colors" env:"STYLEDTEXT_MCP_NAMED_COLORS" description:"Path to a YAML file extending the named-color table used by <font color> tags (embedded CSS keywords are the default)"`

	Handler func() error
}

// Execute runs the run command
func (c *RunCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// CompletionCmd holds completion subcommands
type CompletionCmd struct {
	Bash CompletionBashCmd `command:"bash" description:"Generate bash completion script"`
}

// CompletionBashCmd represents the 'completion bash' command
type CompletionBashCmd struct {
	Handler func() error
}

// Execute runs the completion bash command
func (c *CompletionBashCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler()
	}
	return nil
}

// ToolCmd holds tool subcommands
type ToolCmd struct {
	ParseMarkdown  ParseMarkdownCmd  `command:"parse_markdown" description:"Compile markdown to styled text"`
	FormatMarkdown FormatMarkdownCmd `command:"format_markdown" description:"Compile a markdown format string with interpolated arguments"`
	PlainText      PlainTextCmd      `command:"plain_text" description:"Compile markdown and print only the raw text"`
	EscapeMarkdown EscapeMarkdownCmd `command:"escape_markdown" description:"Escape markdown metacharacters in text"`
}

// ParseMarkdownCmd represents the 'tool parse_markdown' command
type ParseMarkdownCmd struct {
	Positional struct {
		Markdown string `positional-arg-name:"markdown" required:"yes" description:"Markdown source"`
	} `positional-args:"yes"`

	Handler func(markdown string) error
}

// Execute runs the parse_markdown tool command
func (c *ParseMarkdownCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.Positional.Markdown)
	}
	return nil
}

// FormatMarkdownCmd represents the 'tool format_markdown' command
type FormatMarkdownCmd struct {
	Args         []string `long:"arg" short:"a" description:"Argument for the next placeholder, in order (repeatable)"`
	MarkdownArgs bool     `long:"markdown-args" description:"Compile arguments as markdown instead of treating them as plain text"`

	Positional struct {
		Format string `positional-arg-name:"format" required:"yes" description:"Markdown format string with {} or {N} placeholders"`
	} `positional-args:"yes"`

	Handler func(format string, args []string, markdownArgs bool) error
}

// Execute runs the format_markdown tool command
func (c *FormatMarkdownCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.Positional.Format, c.Args, c.MarkdownArgs)
	}
	return nil
}

// PlainTextCmd represents the 'tool plain_text' command
type PlainTextCmd struct {
	Positional struct {
		Markdown string `positional-arg-name:"markdown" required:"yes" description:"Markdown source"`
	} `positional-args:"yes"`

	Handler func(markdown string) error
}

// Execute runs the plain_text tool command
func (c *PlainTextCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.Positional.Markdown)
	}
	return nil
}

// EscapeMarkdownCmd represents the 'tool escape_markdown' command
type EscapeMarkdownCmd struct {
	Positional struct {
		Text string `positional-arg-name:"text" required:"yes" description:"Text to escape"`
	} `positional-args:"yes"`

	Handler func(text string) error
}

// Execute runs the escape_markdown tool command
func (c *EscapeMarkdownCmd) Execute(args []string) error {
	if c.Handler != nil {
		return c.Handler(c.Positional.Text)
	}
	return nil
}

var GlobalOpts = Options{}

// Parse parses command-line arguments and environment variables
// It also loads .env file if present (but doesn't fail if missing)
func Parse() (*flags.Parser, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	// This allows local development with .env files while working in production with env vars
	_ = godotenv.Load()

	parser := flags.NewParser(&GlobalOpts, flags.HelpFlag|flags.PassDoubleDash)

	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			switch flagsErr.Type {
			case flags.ErrHelp:
				// Print help message
				parser.WriteHelp(os.Stdout)
				os.Exit(0)
			case flags.ErrCommandRequired:
				// No command specified - that's OK, we'll run the server
				return parser, nil
			default:
				return nil, fmt.Errorf("failed to parse options: %w", err)
			}
		}
		return nil, fmt.Errorf("failed to parse options: %w", err)
	}

	return parser, nil
}
