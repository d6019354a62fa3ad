package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/jobtimeline/pkg/errors"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Print a completion script for the given shell to stdout.

  bash:        source <(jobtimeline completion bash)
  zsh:         jobtimeline completion zsh > "${fpath[1]}/_jobtimeline"
  fish:        jobtimeline completion fish > ~/.config/fish/completions/jobtimeline.fish
  powershell:  jobtimeline completion powershell | Out-String | Invoke-Expression

Start a new shell afterwards.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := completionGenerators[args[0]]
			if !ok {
				return errors.New(errors.ErrCodeInvalidInput, "unsupported shell %q", args[0])
			}
			return gen(cmd.Root(), cmd.OutOrStdout())
		},
	}
	return cmd
}

// completionGenerators maps a shell name to its cobra script generator.
var completionGenerators = map[string]func(*cobra.Command, io.Writer) error{
	"bash":       func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) },
	"zsh":        (*cobra.Command).GenZshCompletion,
	"fish":       func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) },
	"powershell": (*cobra.Command).GenPowerShellCompletionWithDesc,
}
