package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
	"github.com/pictolab/glyphgrid/pkg/placement"
	"github.com/pictolab/glyphgrid/pkg/placement/assets"
)

// placeOpts holds the command-line flags for the place command.
type placeOpts struct {
	assetsDir string // placement asset pack directory ("" means built-in defaults only)
	propSize  string // prop size for beta separation: small, medium, large
	asJSON    bool   // emit the raw result as JSON instead of the formatted table
}

// newPlaceCmd creates the place command for one-shot placement computation.
// The pictograph is read as JSON from a file argument or from stdin when the
// argument is "-" or missing.
//
// Input format (see examples/pictograph.json):
//
//	{
//	  "letter": "A",
//	  "grid_mode": "diamond",
//	  "arrows": {
//	    "blue": {
//	      "color": "blue",
//	      "motion": {"motion_type": "pro", "start_loc": "n", "end_loc": "e",
//	                 "start_ori": "in", "turns": 1, "prop_rot_dir": "cw"}
//	    },
//	    "red": {...}
//	  }
//	}
func newPlaceCmd() *cobra.Command {
	opts := placeOpts{propSize: string(placement.DefaultPropSize)}

	cmd := &cobra.Command{
		Use:   "place [file]",
		Short: "Compute placements for a pictograph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := "-"
			if len(args) == 1 {
				input = args[0]
			}
			return runPlace(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.assetsDir, "assets", "", "placement asset pack directory")
	cmd.Flags().StringVar(&opts.propSize, "prop-size", opts.propSize, "prop size: small, medium (default), large")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "emit raw JSON result")

	return cmd
}

// runPlace reads the pictograph, builds an engine, and prints the result.
func runPlace(ctx context.Context, input string, opts *placeOpts) error {
	logger := loggerFromContext(ctx)

	pic, err := readPictograph(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded pictograph: letter=%s grid=%s arrows=%d", pic.Letter, pic.GridMode, len(pic.Arrows))

	engine, err := newEngine(opts.assetsDir, placement.PropSize(opts.propSize), logger)
	if err != nil {
		return err
	}

	result, err := engine.Compute(pic)
	if err != nil {
		return err
	}

	if opts.asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(pic, result)
	return nil
}

// readPictograph decodes a pictograph from a file path or stdin ("-").
func readPictograph(input string) (*pictograph.Pictograph, error) {
	var r io.Reader = os.Stdin
	if input != "-" {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	var pic pictograph.Pictograph
	if err := json.NewDecoder(r).Decode(&pic); err != nil {
		return nil, fmt.Errorf("decoding pictograph: %w", err)
	}
	return &pic, nil
}

// newEngine builds a placement engine, loading the asset pack when a
// directory is given.
func newEngine(assetsDir string, size placement.PropSize, logger *log.Logger) (*placement.Engine, error) {
	store := assets.Empty()
	if assetsDir != "" {
		loaded, err := assets.Load(assetsDir)
		if err != nil {
			return nil, err
		}
		store = loaded
	}
	return placement.New(store,
		placement.WithLogger(logger),
		placement.WithPropSize(size),
	)
}

// printResult renders a computed result as a formatted terminal table.
func printResult(pic *pictograph.Pictograph, result placement.Result) {
	fmt.Println(StyleTitle.Render(fmt.Sprintf("Pictograph %s (%s)", pic.Letter, pic.GridMode)))

	colors := make([]pictograph.Color, 0, len(result.Placements))
	for color := range result.Placements {
		colors = append(colors, color)
	}
	sort.Slice(colors, func(i, j int) bool { return colors[i] < colors[j] })

	for _, color := range colors {
		p := result.Placements[color]
		printKeyValue(string(color),
			fmt.Sprintf("(%.1f, %.1f) rot=%.0f mirror=%t loc=%s [%s]",
				p.X, p.Y, p.Rotation, p.Mirror, p.Location, p.Source))
		if p.SwapPropBeta {
			printDetail("swap-beta flag set")
		}
	}

	if result.Offsets.Overlap {
		if result.Offsets.Override {
			printDetail("beta separation suppressed by override (props overlap)")
		} else {
			printKeyValue("sep blue", fmt.Sprintf("(%.2f, %.2f)", result.Offsets.Blue.X, result.Offsets.Blue.Y))
			printKeyValue("sep red", fmt.Sprintf("(%.2f, %.2f)", result.Offsets.Red.X, result.Offsets.Red.Y))
		}
	}

	for color, msg := range result.Errors {
		printWarning("%s: %s", color, msg)
	}
}
