// Package scheduler locates the SLURM submission binary and hands rendered
// batch scripts to it. It performs no scheduling itself; sbatch output is
// surfaced to the caller as-is.
package scheduler

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/Joshua-Kaluf/r2slurm/internal/job"
	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
)

// SchedulerInfo holds information about the detected scheduler
type SchedulerInfo struct {
	Type      string // Scheduler type (always "SLURM")
	Binary    string // Path to the sbatch binary
	Version   string // SLURM version (if available)
	InJob     bool   // Whether we're currently inside a scheduled job
	Available bool   // Whether sbatch can be used for submission
}

// SubmitResult is the outcome of a submission attempt. In dry-run mode only
// ScriptPath is set; otherwise Output carries sbatch's combined output.
type SubmitResult struct {
	ScriptPath string // Where the script was written
	Output     string // Raw sbatch output (empty on dry run)
	DryRun     bool   // Whether sbatch was skipped
}

// SlurmScheduler wraps the sbatch binary used to submit batch scripts.
type SlurmScheduler struct {
	sbatchBin string
}

// NewSlurmScheduler creates a scheduler instance using sbatch from PATH.
func NewSlurmScheduler() (*SlurmScheduler, error) {
	return newSlurmSchedulerWithBinary("")
}

// NewSlurmSchedulerWithBinary creates a scheduler using an explicit sbatch path.
func NewSlurmSchedulerWithBinary(sbatchBin string) (*SlurmScheduler, error) {
	return newSlurmSchedulerWithBinary(sbatchBin)
}

func newSlurmSchedulerWithBinary(sbatchBin string) (*SlurmScheduler, error) {
	binPath := sbatchBin
	if binPath == "" {
		var err error
		binPath, err = exec.LookPath("sbatch")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchedulerNotFound, err)
		}
	} else {
		if absPath, err := filepath.Abs(binPath); err == nil {
			binPath = absPath
		}
		info, err := os.Stat(binPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSchedulerNotFound, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", ErrSchedulerNotFound, binPath)
		}
	}

	return &SlurmScheduler{sbatchBin: binPath}, nil
}

// IsInsideJob checks if we're currently running inside a SLURM job.
// Submission is refused in that case to avoid nested jobs.
func IsInsideJob() bool {
	_, ok := os.LookupEnv("SLURM_JOB_ID")
	return ok
}

// IsAvailable checks if sbatch is usable and we're not inside a job.
func (s *SlurmScheduler) IsAvailable() bool {
	if s.sbatchBin == "" {
		return false
	}
	return !IsInsideJob()
}

// GetInfo returns information about the scheduler.
func (s *SlurmScheduler) GetInfo() *SchedulerInfo {
	info := &SchedulerInfo{
		Type:      "SLURM",
		Binary:    s.sbatchBin,
		InJob:     IsInsideJob(),
		Available: s.IsAvailable(),
	}

	if s.sbatchBin != "" {
		if version, err := s.getSlurmVersion(); err == nil {
			info.Version = version
		}
	}

	return info
}

// getSlurmVersion attempts to get the SLURM version
func (s *SlurmScheduler) getSlurmVersion() (string, error) {
	cmd := exec.Command(s.sbatchBin, "--version")
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}

	// Parse version from output like "slurm 23.02.6"
	versionStr := strings.TrimSpace(string(output))
	parts := strings.Fields(versionStr)
	if len(parts) >= 2 {
		return parts[1], nil
	}

	return versionStr, nil
}

// Submit hands a script path to sbatch, optionally chained behind dependency
// job IDs (afterok). Returns sbatch's combined output verbatim; failures to
// locate or execute the tool surface as *SubmissionError.
func (s *SlurmScheduler) Submit(scriptPath string, dependencyJobIDs []string) (string, error) {
	args := []string{scriptPath}

	if len(dependencyJobIDs) > 0 {
		depArg := fmt.Sprintf("--dependency=afterok:%s", strings.Join(dependencyJobIDs, ","))
		args = append([]string{depArg}, args...)
	}

	utils.PrintDebug("Executing: %s %s", s.sbatchBin, strings.Join(args, " "))
	cmd := exec.Command(s.sbatchBin, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", NewSubmissionError(scriptPath, string(output), err)
	}

	return strings.TrimSpace(string(output)), nil
}

// SubmitJob writes a Job's script and submits it. scriptPath may be empty,
// in which case a temporary path is generated. In dry-run mode the script is
// written but sbatch is never invoked; the result carries the path so the
// caller can inspect or submit it later.
func (s *SlurmScheduler) SubmitJob(j *job.Job, scriptPath string, dryRun bool, dependencyJobIDs []string) (*SubmitResult, error) {
	if scriptPath == "" {
		scriptPath = TempScriptPath(j)
	}

	if _, err := j.Write(scriptPath); err != nil {
		return nil, err
	}

	if dryRun {
		return &SubmitResult{ScriptPath: scriptPath, DryRun: true}, nil
	}

	output, err := s.Submit(scriptPath, dependencyJobIDs)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{ScriptPath: scriptPath, Output: output}, nil
}

// TempScriptPath generates a script path under the system temp directory,
// derived from the job name when one is set.
func TempScriptPath(j *job.Job) string {
	name := "job"
	if v, ok := j.Opt("job_name"); ok {
		if s, isStr := v.(string); isStr && s != "" {
			name = utils.SafeJobName(s)
		}
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("%s-%s.sbatch", name, utils.Timestamp()))
}
