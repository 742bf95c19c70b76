package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for actlog.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(actlog completion bash)

  # Install completion permanently:
  # Linux:
  actlog completion bash > ~/.local/share/bash-completion/completions/actlog

  # macOS (requires bash-completion from Homebrew):
  actlog completion bash > $(brew --prefix)/etc/bash_completion.d/actlog

Zsh:
  # Load completion temporarily (current session only):
  source <(actlog completion zsh)

  # Install completion permanently:
  mkdir -p ~/.zsh/completion
  actlog completion zsh > ~/.zsh/completion/_actlog

Fish:
  # Install completion permanently:
  actlog completion fish > ~/.config/fish/completions/actlog.fish

PowerShell:
  # Add this line to your PowerShell profile:
  actlog completion powershell | Out-String | Invoke-Expression`,
	ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		generateCompletion(args[0])
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

// generateCompletion generates the appropriate completion script based on shell type
func generateCompletion(shell string) {
	d := deps()
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(d.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(d.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(d.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(d.Stdout)
	default:
		_, _ = fmt.Fprintf(d.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(d.Stderr, "Supported shells: bash, zsh, fish, powershell")
		d.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(d.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		d.Exit(1)
		return
	}
}
