package opts

import (
	"os"
	"testing"

	"github.com/davral/styledtext-mcp/internal/opts/typed_flags"
)

func TestParse_DefaultValues(t *testing.T) {
	// Save original args and restore after test
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	// Set args to use run command
	os.Args = []string{"styledtext-mcp", "run"}

	_, err := Parse()
	if err != nil {
		t.Fatalf("Parse() failed with default values: %v", err)
	}

	if GlobalOpts.Run.Transport != typed_flags.TransportStdio {
		t.Errorf("Expected default transport 'stdio', got '%s'", GlobalOpts.Run.Transport)
	}

	if GlobalOpts.Run.Port != 8787 {
		t.Errorf("Expected default port 8787, got %d", GlobalOpts.Run.Port)
	}

	if GlobalOpts.Run.Host != "localhost" {
		t.Errorf("Expected default host 'localhost', got '%s'", GlobalOpts.Run.Host)
	}

	if GlobalOpts.Run.NamedColors != "" {
		t.Errorf("Expected no named colors file by default, got '%s'", GlobalOpts.Run.NamedColors)
	}
}

func TestParse_HTTPTransport(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"styledtext-mcp", "run", "--transport=http", "--host=0.0.0.0", "--port=9000"}

	_, err := Parse()
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if GlobalOpts.Run.Transport != typed_flags.TransportHTTP {
		t.Errorf("Expected transport 'http', got '%s'", GlobalOpts.Run.Transport)
	}

	if GlobalOpts.Run.Host != "0.0.0.0" {
		t.Errorf("Expected host '0.0.0.0', got '%s'", GlobalOpts.Run.Host)
	}

	if GlobalOpts.Run.Port != 9000 {
		t.Errorf("Expected port 9000, got %d", GlobalOpts.Run.Port)
	}
}

func TestParse_InvalidTransport(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"styledtext-mcp", "run", "--transport=invalid"}

	_, err := Parse()
	if err == nil {
		t.Error("Parse() should have failed with invalid transport")
	}
}

func TestParse_NamedColors(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"styledtext-mcp", "run", "--named-colors=/tmp/colors.yaml"}

	_, err := Parse()
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if GlobalOpts.Run.NamedColors != "/tmp/colors.yaml" {
		t.Errorf("Expected named colors file '/tmp/colors.yaml', got '%s'", GlobalOpts.Run.NamedColors)
	}
}

func TestParse_NoCommand(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"styledtext-mcp"}

	parser, err := Parse()
	if err != nil {
		t.Fatalf("Parse() without a command should succeed: %v", err)
	}
	if parser == nil {
		t.Fatal("Parse() without a command should still return the parser")
	}
	if parser.Active != nil {
		t.Errorf("Expected no active command, got '%s'", parser.Active.Name)
	}
}

func TestParse_ToolParseMarkdown(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"styledtext-mcp", "tool", "parse_markdown", "hello *world*"}

	var gotMarkdown string
	GlobalOpts.Tool.ParseMarkdown.Handler = func(markdown string) error {
		gotMarkdown = markdown
		return nil
	}
	defer func() { GlobalOpts.Tool.ParseMarkdown.Handler = nil }()

	_, err := Parse()
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if gotMarkdown != "hello *world*" {
		t.Errorf("Expected handler to receive 'hello *world*', got '%s'", gotMarkdown)
	}
}

func TestParse_ToolFormatMarkdown(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{
		"styledtext-mcp", "tool", "format_markdown",
		"--arg=a", "-a", "b", "--markdown-args",
		"{} {}",
	}

	var gotFormat string
	var gotArgs []string
	var gotMarkdownArgs bool
	GlobalOpts.Tool.FormatMarkdown.Handler = func(format string, args []string, markdownArgs bool) error {
		gotFormat = format
		gotArgs = args
		gotMarkdownArgs = markdownArgs
		return nil
	}
	defer func() { GlobalOpts.Tool.FormatMarkdown.Handler = nil }()

	_, err := Parse()
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if gotFormat != "{} {}" {
		t.Errorf("Expected format '{} {}', got '%s'", gotFormat)
	}
	if len(gotArgs) != 2 || gotArgs[0] != "a" || gotArgs[1] != "b" {
		t.Errorf("Expected args [a b], got %v", gotArgs)
	}
	if !gotMarkdownArgs {
		t.Error("Expected markdown-args to be set")
	}
}
