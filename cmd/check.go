package cmd

import (
	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <job-file>",
	Short: "Validate a job definition or batch script",
	Long: `Validate a job definition file or an existing batch script.

Checks the option mapping for mutually exclusive directive pairs
(mem/mem-per-cpu, ntasks/ntasks-per-node) and reports the rendered
directive count.`,
	Example: `  r2slurm check job.yaml
  r2slurm check run.sbatch`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}

	if err := j.Validate(); err != nil {
		return err
	}

	if len(j.Body()) == 0 {
		utils.PrintWarning("Job has no body commands; the script will do nothing")
	}

	utils.PrintSuccess("%s is valid (%s directives, %s body lines)",
		utils.StylePath(args[0]),
		utils.StyleNumber(len(j.DirectiveLines())),
		utils.StyleNumber(len(j.Body())))
	return nil
}
