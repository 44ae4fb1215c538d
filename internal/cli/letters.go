package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/pictolab/glyphgrid/pkg/pictograph"
)

// newLettersCmd creates the letters command for browsing the letter
// taxonomy. With a letter argument it prints that letter's classification;
// without one it opens the interactive browser when attached to a terminal,
// otherwise it lists all letters.
func newLettersCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "letters [letter]",
		Short: "Browse or query the letter taxonomy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return printLetter(pictograph.Letter(args[0]))
			}
			if plain || !isatty.IsTerminal(os.Stdout.Fd()) {
				printLetterList()
				return nil
			}
			return runLetterBrowser()
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "list letters without the interactive browser")

	return cmd
}

// printLetter prints one letter's classification.
func printLetter(l pictograph.Letter) error {
	t := l.Type()
	if t == pictograph.TypeUnknown {
		return fmt.Errorf("unknown letter: %s", l)
	}

	fmt.Println(StyleTitle.Render(string(l)))
	printKeyValue("type", t.String())
	printKeyValue("key suffix", l.KeySuffix())
	for _, f := range letterFlags(l) {
		printDetail("%s", f)
	}
	return nil
}

// printLetterList prints every letter with its type, one per line.
func printLetterList() {
	for _, l := range pictograph.AllLetters() {
		line := fmt.Sprintf("%-3s %s", l, l.Type())
		for _, f := range letterFlags(l) {
			line += StyleDim.Render(" · " + f)
		}
		fmt.Println(line)
	}
}

// letterFlags names the placement-relevant attribute sets l belongs to.
func letterFlags(l pictograph.Letter) []string {
	var flags []string
	if l.IsDashFamily() {
		flags = append(flags, "dash family")
	}
	if l.IsPhiDashOrPsiDash() {
		flags = append(flags, "phi/psi dash")
	}
	if l.IsLambdaFamily() {
		flags = append(flags, "lambda family")
	}
	if l.IsBetaEnding() {
		flags = append(flags, "beta ending")
	}
	return flags
}
