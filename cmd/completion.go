package cmd

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// detectShell auto-detects the current shell from environment
func detectShell() string {
	shell := strings.ToLower(os.Getenv("SHELL"))

	if strings.Contains(shell, "fish") {
		return "fish"
	}
	if strings.Contains(shell, "zsh") {
		return "zsh"
	}
	if strings.Contains(shell, "pwsh") || strings.Contains(shell, "powershell") {
		return "powershell"
	}

	return "bash"
}

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate shell completion script",
	Long: `Generate shell completion script for r2slurm.

If no shell is specified, the shell is auto-detected from $SHELL.

To load completions:

Bash:
  $ source <(r2slurm completion bash)

Zsh:
  $ r2slurm completion zsh > "${fpath[1]}/_r2slurm"

Fish:
  $ r2slurm completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	Run: func(cmd *cobra.Command, args []string) {
		shell := detectShell()
		if len(args) > 0 {
			shell = args[0]
		}

		switch shell {
		case "bash":
			cmd.Root().GenBashCompletionV2(os.Stdout, true)
		case "zsh":
			cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}
