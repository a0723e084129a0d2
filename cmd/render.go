package cmd

import (
	"fmt"

	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
	"github.com/spf13/cobra"
)

var renderOutputPath string

var renderCmd = &cobra.Command{
	Use:   "render <job-file>",
	Short: "Render a job definition into an sbatch script",
	Long: `Render a declarative job definition into an sbatch script.

The script is printed to stdout unless -o is given. The job is validated
first; conflicting directive pairs (e.g. mem vs mem-per-cpu) abort the
render.`,
	Example: `  r2slurm render job.yaml             # Print script to stdout
  r2slurm render job.yaml -o run.sbatch  # Write script to a file`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderOutputPath, "output", "o", "", "Write the script to this path instead of stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	j, err := loadJob(args[0])
	if err != nil {
		return err
	}

	if renderOutputPath != "" {
		path, err := j.Write(renderOutputPath)
		if err != nil {
			return err
		}
		utils.PrintSuccess("Script written to %s", utils.StylePath(path))
		return nil
	}

	script, err := j.Script()
	if err != nil {
		return err
	}
	fmt.Print(script)
	return nil
}
