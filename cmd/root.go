package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Joshua-Kaluf/r2slurm/internal/config"
	"github.com/Joshua-Kaluf/r2slurm/internal/scheduler"
	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	debugMode bool
	quietMode bool
	localMode bool
)

var rootCmd = &cobra.Command{
	Use:           "r2slurm",
	Short:         "r2slurm: Build, render, validate, and submit SLURM batch scripts from declarative job definitions.",
	Version:       config.VERSION,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Step 1: Load defaults
		config.LoadDefaults()

		// Step 2: Initialize Viper (read config file, env vars)
		if err := config.InitViper(); err != nil {
			utils.PrintDebug("Error reading config file: %v", err)
		}

		// Step 3: Auto-detect sbatch if needed and save to config
		updated, err := config.AutoDetectAndSave()
		if err != nil {
			utils.PrintDebug("Failed to save config: %v", err)
		} else if updated {
			if configPath, err := config.GetUserConfigPath(); err == nil {
				utils.PrintDebug("Auto-detected sbatch saved to: %s", configPath)
			}
		}

		// Step 4: Load detected values from Viper into Global config
		config.LoadFromViper()

		// Step 5: Apply command-line flags (highest priority)
		if debugMode {
			utils.DebugMode = true
			config.Global.Debug = true
			utils.PrintDebug("Debug mode enabled")
			utils.PrintDebug("r2slurm Version: %s", utils.StyleInfo(config.VERSION))
			utils.PrintDebug("Scripts Directory: %s", config.Global.ScriptsDir)
			if config.Global.SbatchBin != "" {
				utils.PrintDebug("Sbatch Binary: %s", config.Global.SbatchBin)
			}
			cmd.Flags().Visit(func(f *pflag.Flag) {
				utils.PrintDebug("Flag --%s=%s", f.Name, f.Value.String())
			})
		}

		if quietMode {
			utils.QuietMode = true
			config.Global.Quiet = true
		}

		if localMode {
			config.Global.SubmitJob = false
			utils.PrintDebug("Local mode enabled (job submission disabled)")
		}

		// Step 6: Initialize scheduler if job submission is enabled
		if config.Global.SubmitJob {
			sched, err := scheduler.NewSlurmSchedulerWithBinary(config.Global.SbatchBin)
			if err == nil && sched.IsAvailable() {
				scheduler.SetActiveScheduler(sched)
				utils.PrintDebug("Scheduler initialized and available")
			} else {
				if err != nil {
					utils.PrintDebug("Scheduler not available: %v", err)
				} else {
					utils.PrintDebug("Scheduler not available (already in a job)")
				}
			}
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// Cobra's automatic error printing is silenced. For submission errors
		// print only the captured sbatch output (trimmed) and exit non-zero.
		// For other errors, print the default error string.
		var se *scheduler.SubmissionError
		if errors.As(err, &se) {
			if out := strings.TrimSpace(se.Output); out != "" {
				fmt.Fprintln(os.Stderr, out)
			} else {
				fmt.Fprintln(os.Stderr, err)
			}
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Subcommands are attached to rootCmd in their respective init() functions
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode with verbose output")
	rootCmd.PersistentFlags().BoolVar(&quietMode, "quiet", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVar(&localMode, "local", false, "Disable job submission (render/write only)")
}
