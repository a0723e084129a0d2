package cmd

import (
	"strings"

	"github.com/Joshua-Kaluf/r2slurm/internal/config"
	"github.com/Joshua-Kaluf/r2slurm/internal/job"
)

// loadJob reads a job from a path: existing batch scripts (.sh, .sbatch,
// .slurm) are re-parsed, anything else is treated as a declarative job
// definition file.
func loadJob(path string) (*job.Job, error) {
	if isScriptPath(path) {
		return job.ParseScript(path)
	}
	j, err := job.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return applyConfigDefaults(j), nil
}

func isScriptPath(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".sh") ||
		strings.HasSuffix(lower, ".sbatch") ||
		strings.HasSuffix(lower, ".slurm")
}

// applyConfigDefaults layers configured render defaults over a freshly
// loaded Job. Values the job file set explicitly are left alone; only the
// built-in defaults are swapped for the configured ones.
func applyConfigDefaults(j *job.Job) *job.Job {
	if j.Preamble == job.DefaultPreamble {
		j.Preamble = config.Global.Shebang
	}
	if v, ok := j.Opt("output"); ok && v == job.DefaultOutput {
		j = j.Set("output", config.Global.OutputPattern)
	}
	if v, ok := j.Opt("error"); ok && v == job.DefaultError {
		j = j.Set("error", config.Global.ErrorPattern)
	}
	return j
}
