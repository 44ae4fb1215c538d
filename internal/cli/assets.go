package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

// newAssetsCmd creates the assets command group.
func newAssetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assets",
		Short: "Work with placement asset packs",
	}
	cmd.AddCommand(newAssetsValidateCmd())
	return cmd
}

// newAssetsValidateCmd creates the validate subcommand. It loads the pack,
// which runs the full key-format and schema validation, and prints a summary
// per grid mode.
func newAssetsValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <dir>",
		Short: "Validate a placement asset pack",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssetsValidate(cmd.Context(), args[0])
		},
	}
}

func runAssetsValidate(ctx context.Context, dir string) error {
	logger := loggerFromContext(ctx)
	logger.Infof("Validating asset pack %s", dir)

	store, err := assets.Load(dir)
	if err != nil {
		printError("invalid asset pack: %v", err)
		return err
	}

	printSuccess("asset pack is valid")
	for _, grid := range []pictograph.GridMode{pictograph.Diamond, pictograph.Box} {
		letters := store.Letters(grid)
		printKeyValue(string(grid),
			fmt.Sprintf("%d default keys, %d letters with special placements",
				store.DefaultKeyCount(grid), len(letters)))
	}
	return nil
}
