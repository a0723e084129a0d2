package cmd

import (
	"fmt"

	"github.com/Joshua-Kaluf/r2slurm/internal/config"
	"github.com/Joshua-Kaluf/r2slurm/internal/scheduler"
	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
	"github.com/spf13/cobra"
)

var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Display scheduler information",
	Long: `Display information about the detected SLURM installation.

Shows the sbatch binary path, version, and availability status.`,
	Example: `  r2slurm scheduler`,
	Run:     runScheduler,
}

func init() {
	rootCmd.AddCommand(schedulerCmd)
}

func runScheduler(cmd *cobra.Command, args []string) {
	sched, err := scheduler.NewSlurmSchedulerWithBinary(config.Global.SbatchBin)

	if err != nil {
		if scheduler.IsInsideJob() {
			utils.PrintMessage("Scheduler Status: %s", utils.StyleWarning("Unavailable (inside job)"))
			utils.PrintMessage("")
			utils.PrintMessage("You are currently inside a scheduled job; job submission is disabled to prevent nested submissions.")
			return
		}

		utils.PrintMessage("Scheduler Status: %s", utils.StyleError("Not Found"))
		utils.PrintMessage("")
		utils.PrintMessage("No sbatch binary detected on this system.")
		utils.PrintHint("Set sbatch_bin in the config file or put sbatch on PATH.")
		return
	}

	info := sched.GetInfo()

	// Display scheduler information (no [R2S] prefix for structured output)
	fmt.Println("Scheduler Information:")
	fmt.Printf("  Type:      %s\n", utils.StyleInfo(info.Type))
	fmt.Printf("  Binary:    %s\n", utils.StylePath(info.Binary))

	if info.Version != "" {
		fmt.Printf("  Version:   %s\n", utils.StyleNumber(info.Version))
		if !scheduler.VersionSupported(info.Version) {
			utils.PrintWarning("SLURM %s predates the oldest supported release (%s); generated directives may not be understood.",
				info.Version, scheduler.MinSlurmVersion)
		}
	}

	if info.InJob {
		fmt.Printf("  Status:    %s (inside job)\n", utils.StyleError("Unavailable"))
		fmt.Println()
		fmt.Println("You are currently inside a scheduled job (detected via environment).")
		fmt.Println("Job submission is disabled to prevent nested job submissions.")
	} else if info.Available {
		fmt.Printf("  Status:    %s\n", utils.StyleSuccess("Available"))
		fmt.Println()
		fmt.Println("The scheduler is available and ready for job submission.")
	} else {
		fmt.Printf("  Status:    %s\n", utils.StyleError("Unavailable"))
		fmt.Println()
		fmt.Println("Scheduler detected but not available for job submission.")
	}
}
