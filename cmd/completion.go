package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/manav03panchal/clubportal/internal/export"
	"github.com/manav03panchal/clubportal/internal/model"
)

// completionCmd represents the completion command.
var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish]",
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for clubportal.

To load completions:

Bash:
  $ source <(clubportal completion bash)

Zsh:
  $ clubportal completion zsh > "${fpath[1]}/_clubportal"

Fish:
  $ clubportal completion fish | source
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(out)
		case "zsh":
			return rootCmd.GenZshCompletion(out)
		case "fish":
			return rootCmd.GenFishCompletion(out, true)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
	// Keep cobra's generated completion command out of the way.
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// completeStatuses completes the --status flag.
func completeStatuses(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var out []string
	for _, s := range model.Statuses {
		if strings.HasPrefix(strings.ToLower(s.String()), strings.ToLower(toComplete)) {
			out = append(out, s.String())
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}

// completeExportFormats completes the export --format flag.
func completeExportFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	out := make([]string, len(export.Formats))
	for i, f := range export.Formats {
		out[i] = string(f)
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
