// Package cli provides the Cobra command structure for gomdless.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/gomdless/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root gomdless command.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &viewOptions{}

	rootCmd := &cobra.Command{
		Use:   "gomdless <file>",
		Short: "A less-like viewer with markdown support",
		Long: `gomdless is a terminal pager for plain text and markdown files.

Markdown files open in a rendered view; Tab cycles through rendered,
raw source, and a scroll-synchronized side-by-side presentation.
Everything else pages like less. When stdout is not a terminal the
document is printed once instead of opening the pager.`,
		Args: cobra.ExactArgs(1),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if opts.debug {
				logging.SetLevel("debug")
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runView(cmd.Context(), args[0], opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&opts.color, "color", "",
		"colorize output: auto, always, never")
	rootCmd.Flags().StringVar(&opts.mode, "mode", "",
		"initial view for markdown files: rendered, source, split")

	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
