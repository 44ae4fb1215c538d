package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pictolab/glyphgrid/pkg/buildinfo"
)

// Execute runs the glyphgrid CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands (place, serve,
// assets, letters), configures logging based on the --verbose flag, and
// executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "glyphgrid",
		Short:        "Glyphgrid computes arrow placements for pictographs",
		Long:         `Glyphgrid is the positioning engine for pictograph notation: given a letter and the motions of its two arrows, it computes where each arrow sits on the 950x950 grid and how it is rotated and mirrored.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newPlaceCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newAssetsCmd())
	root.AddCommand(newLettersCmd())
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
