package job

import (
	"os"
	"path/filepath"

	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
)

// Write renders the Job and writes the script to path, creating parent
// directories as needed. An existing file is overwritten. Returns the path
// on success; filesystem failures are wrapped as *WriteError.
func (j *Job) Write(path string) (string, error) {
	script, err := j.Script()
	if err != nil {
		return "", err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := utils.EnsureDir(dir); err != nil {
			return "", NewWriteError(path, err)
		}
	}

	// Scripts are handed to sbatch, keep them executable
	if err := os.WriteFile(path, []byte(script), utils.PermExec); err != nil {
		return "", NewWriteError(path, err)
	}
	return path, nil
}
