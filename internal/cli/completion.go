package cli

import (
	"os"

	"github.com/spf13/cobra"
)

// newCompletionCmd creates the completion command. Letter arguments and
// flag values complete through the generated scripts.
func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for glyphgrid.

To load completions:

Bash:
  $ source <(glyphgrid completion bash)

  # To load on every session:
  # Linux:
  $ glyphgrid completion bash > /etc/bash_completion.d/glyphgrid
  # macOS:
  $ glyphgrid completion bash > $(brew --prefix)/etc/bash_completion.d/glyphgrid

Zsh:
  # Enable shell completion once if it is not already:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  $ glyphgrid completion zsh > "${fpath[1]}/_glyphgrid"

  # Start a new shell for this to take effect.

Fish:
  $ glyphgrid completion fish | source

  # To load on every session:
  $ glyphgrid completion fish > ~/.config/fish/completions/glyphgrid.fish

PowerShell:
  PS> glyphgrid completion powershell | Out-String | Invoke-Expression

  # To load on every session, write the script and source it from your
  # PowerShell profile:
  PS> glyphgrid completion powershell > glyphgrid.ps1
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}
