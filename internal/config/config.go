package config

import (
	"os"
	"path/filepath"
)

const VERSION = "0.4.2"

// Config holds global application settings
type Config struct {
	Debug     bool
	Quiet     bool
	SubmitJob bool
	Version   string

	SbatchBin  string // Path to sbatch (auto-detected when empty)
	ScriptsDir string // Where generated scripts are written

	// Render defaults, overridable per job file
	Shebang       string
	OutputPattern string
	ErrorPattern  string
}

// Global holds the singleton configuration instance
var Global Config

// LoadDefaults resets Global to built-in defaults. Viper values and
// command-line flags are layered on top afterwards.
func LoadDefaults() {
	scriptsDir := "scripts"
	if home, err := os.UserHomeDir(); err == nil {
		scriptsDir = filepath.Join(home, ".r2slurm", "scripts")
	}

	Global = Config{
		Debug:     false,
		Quiet:     false,
		SubmitJob: true,
		Version:   VERSION,

		SbatchBin:  "",
		ScriptsDir: scriptsDir,

		Shebang:       "#!/bin/bash",
		OutputPattern: "%x-%j.out",
		ErrorPattern:  "%x-%j.err",
	}
}
