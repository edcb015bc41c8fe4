package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for sked.

The completion command allows you to generate shell completion scripts for
bash, zsh, fish, and powershell. This enables tab-completion for commands,
flags, and arguments in your shell.

Usage:
  sked completion bash       Generate bash completion script
  sked completion zsh        Generate zsh completion script
  sked completion fish       Generate fish completion script
  sked completion powershell Generate powershell completion script

Installation Instructions:

Bash:
  # Load completion temporarily (current session only):
  source <(sked completion bash)

  # Install completion permanently:
  # Linux:
  sked completion bash > ~/.local/share/bash-completion/completions/sked

  # macOS (requires bash-completion from Homebrew):
  sked completion bash > $(brew --prefix)/etc/bash_completion.d/sked

Zsh:
  # Load completion temporarily (current session only):
  source <(sked completion zsh)

  # Install completion permanently:
  mkdir -p ~/.zsh/completion
  sked completion zsh > ~/.zsh/completion/_sked

  # Then add ~/.zsh/completion to fpath in ~/.zshrc and restart your shell

Fish:
  # Install completion permanently:
  sked completion fish > ~/.config/fish/completions/sked.fish

PowerShell:
  # Add this line to your PowerShell profile:
  sked completion powershell | Out-String | Invoke-Expression`,
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
	var err error

	switch shell {
	case "bash":
		err = rootCmd.GenBashCompletion(deps.Stdout)
	case "zsh":
		err = rootCmd.GenZshCompletion(deps.Stdout)
	case "fish":
		err = rootCmd.GenFishCompletion(deps.Stdout, true)
	case "powershell":
		err = rootCmd.GenPowerShellCompletionWithDesc(deps.Stdout)
	default:
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Unsupported shell '%s'\n", shell)
		_, _ = fmt.Fprintln(deps.Stderr, "Supported shells: bash, zsh, fish, powershell")
		deps.Exit(1)
		return
	}

	if err != nil {
		_, _ = fmt.Fprintf(deps.Stderr, "Error: Failed to generate %s completion: %v\n", shell, err)
		deps.Exit(1)
		return
	}
}
