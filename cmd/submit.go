package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/Joshua-Kaluf/r2slurm/internal/config"
	"github.com/Joshua-Kaluf/r2slurm/internal/job"
	"github.com/Joshua-Kaluf/r2slurm/internal/scheduler"
	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
	"github.com/spf13/cobra"
)

var (
	submitDryRun     bool
	submitScriptPath string
	submitDepJobIDs  []string
)

var submitCmd = &cobra.Command{
	Use:   "submit <job-file>",
	Short: "Render a job and hand the script to sbatch",
	Long: `Render a job definition, write the script, and submit it via sbatch.

With --dry-run the script is written but sbatch is not invoked; the script
path is printed instead so it can be inspected or submitted manually.`,
	Example: `  r2slurm submit job.yaml
  r2slurm submit job.yaml --dry-run
  r2slurm submit job.yaml --dep 123456 --dep 123457`,
	Args: cobra.ExactArgs(1),
	RunE: runSubmit,
}

func init() {
	submitCmd.Flags().BoolVar(&submitDryRun, "dry-run", false, "Write the script but do not invoke sbatch")
	submitCmd.Flags().StringVarP(&submitScriptPath, "out", "o", "", "Script path (default: generated under the scripts directory)")
	submitCmd.Flags().StringSliceVar(&submitDepJobIDs, "dep", nil, "Job IDs this job depends on (afterok)")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}

	scriptPath := submitScriptPath
	if scriptPath == "" && config.Global.ScriptsDir != "" {
		scriptPath = filepath.Join(config.Global.ScriptsDir, filepath.Base(scheduler.TempScriptPath(j)))
	}

	dryRun := submitDryRun || !config.Global.SubmitJob
	if dryRun {
		return submitDry(j, scriptPath)
	}

	sched := scheduler.ActiveScheduler()
	if sched == nil {
		if scheduler.IsInsideJob() {
			return scheduler.ErrAlreadyInJob
		}
		return scheduler.ErrSchedulerNotFound
	}

	result, err := sched.SubmitJob(j, scriptPath, false, submitDepJobIDs)
	if err != nil {
		return err
	}

	utils.PrintSuccess("Submitted %s", utils.StylePath(result.ScriptPath))
	if result.Output != "" {
		fmt.Println(result.Output)
	}
	return nil
}

// submitDry writes the script without touching sbatch and prints the path.
func submitDry(j *job.Job, scriptPath string) error {
	if scriptPath == "" {
		scriptPath = scheduler.TempScriptPath(j)
	}
	path, err := j.Write(scriptPath)
	if err != nil {
		return err
	}
	utils.PrintMessage("Dry run: script written to %s", utils.StylePath(path))
	fmt.Println(path)
	return nil
}
