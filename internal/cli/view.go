package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/yaklabco/gomdless/internal/configloader"
	"github.com/yaklabco/gomdless/internal/logging"
	"github.com/yaklabco/gomdless/internal/ui/pretty"
	"github.com/yaklabco/gomdless/internal/ui/term"
	"github.com/yaklabco/gomdless/pkg/config"
	"github.com/yaklabco/gomdless/pkg/document"
	"github.com/yaklabco/gomdless/pkg/layout"
	"github.com/yaklabco/gomdless/pkg/outline"
	"github.com/yaklabco/gomdless/pkg/pager"
)

// viewOptions carries the root command's flag values.
type viewOptions struct {
	debug      bool
	configPath string
	color      string
	mode       string
}

// runView loads configuration and the document, then either opens the
// interactive pager or, when stdout is not a terminal, prints the
// document once.
func runView(ctx context.Context, path string, opts *viewOptions) error {
	result, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: opts.configPath,
		CLIConfig:    &config.Config{Color: opts.color, Mode: opts.mode},
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errConfig, err)
	}
	cfg := result.Config

	doc, err := document.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %w", errIO, err)
	}

	logger := logging.Default()
	logger.Debug("document loaded",
		logging.FieldPath, doc.Path(),
		logging.FieldLines, doc.LineCount(),
		logging.FieldMarkdown, doc.Markdown(),
	)

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return printOnce(doc, cfg)
	}

	return runInteractive(doc, cfg, opts.debug)
}

// printOnce writes the document to stdout without paging: the rendered
// layout for markdown, the raw source otherwise.
func printOnce(doc *document.Document, cfg *config.Config) error {
	var res *layout.Result
	if doc.Markdown() {
		res = layout.Markdown(doc.Lines())
	} else {
		res = layout.Source(doc.Lines())
	}

	styles := pretty.NewStyles(pretty.IsColorEnabled(cfg.Color, os.Stdout))
	return pretty.NewPrinter(os.Stdout, styles).Print(res)
}

// runInteractive opens the full-screen pager.
func runInteractive(doc *document.Document, cfg *config.Config, debug bool) error {
	session := pager.NewSession(doc, 1)
	session.SetPageLines(cfg.PageLines)

	if cfg.Mode != "" && doc.Markdown() {
		mode, err := pager.ParseMode(cfg.Mode)
		if err != nil {
			return fmt.Errorf("%w: %w", errConfig, err)
		}
		session.SetMode(mode)
	}

	var sections []outline.Section
	if doc.Markdown() {
		sections = outline.Extract(doc.Content())
	}

	termOpts := term.Options{
		SplitWidth: cfg.SplitWidth,
		Sections:   sections,
	}

	// While the screen is in full-screen mode stderr is not visible, so
	// debug logging goes to a file next to the user's cache.
	if debug {
		logFile, err := openDebugLog()
		if err == nil {
			defer logFile.Close()
			termOpts.Logger = logging.NewWithWriter(logFile, "debug")
		}
	}

	return term.Run(session, termOpts)
}

// openDebugLog creates the debug log file under the user cache dir.
func openDebugLog() (*os.File, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, fmt.Errorf("resolve cache dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "gomdless"), 0755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	path := filepath.Join(dir, "gomdless", "debug.log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	return f, nil
}
