package config

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigFilename is the name of the config file
const ConfigFilename = "config"

// ConfigType is the type of config file (yaml, json, toml)
const ConfigType = "yaml"

// InitViper initializes Viper with proper search paths and defaults
// Priority (highest to lowest):
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (R2SLURM_*)
// 3. User config file (~/.config/r2slurm/config.yaml)
// 4. System config file (/etc/r2slurm/config.yaml)
// 5. Defaults
func InitViper() error {
	viper.SetConfigName(ConfigFilename)
	viper.SetConfigType(ConfigType)

	// User config (highest priority)
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(filepath.Join(userConfigDir, "r2slurm"))
	}

	// Home directory fallback
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".r2slurm"))
	}

	// System-wide config (lower priority)
	viper.AddConfigPath("/etc/r2slurm")

	// Current directory (for development)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("R2SLURM")
	viper.AutomaticEnv()

	setDefaults()

	// Read config file (non-fatal if not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}

	return nil
}

// setDefaults sets default values for all config keys
func setDefaults() {
	viper.SetDefault("sbatch_bin", "")
	viper.SetDefault("submit_job", true)
	viper.SetDefault("scripts_dir", "")

	// Render defaults
	viper.SetDefault("render.shebang", "#!/bin/bash")
	viper.SetDefault("render.output_pattern", "%x-%j.out")
	viper.SetDefault("render.error_pattern", "%x-%j.err")
}

// LoadFromViper copies resolved Viper values into the Global config.
// Empty values keep the built-in defaults set by LoadDefaults.
func LoadFromViper() {
	if bin := viper.GetString("sbatch_bin"); bin != "" {
		Global.SbatchBin = bin
	}
	Global.SubmitJob = viper.GetBool("submit_job")
	if dir := viper.GetString("scripts_dir"); dir != "" {
		Global.ScriptsDir = dir
	}
	if shebang := viper.GetString("render.shebang"); shebang != "" {
		Global.Shebang = shebang
	}
	if pattern := viper.GetString("render.output_pattern"); pattern != "" {
		Global.OutputPattern = pattern
	}
	if pattern := viper.GetString("render.error_pattern"); pattern != "" {
		Global.ErrorPattern = pattern
	}
}

// GetUserConfigPath returns the path to the user config file
func GetUserConfigPath() (string, error) {
	userConfigDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".r2slurm", ConfigFilename+"."+ConfigType), nil
	}

	return filepath.Join(userConfigDir, "r2slurm", ConfigFilename+"."+ConfigType), nil
}

// SaveConfig saves current Viper config to user config file
func SaveConfig() error {
	configPath, err := GetUserConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ValidateBinary checks if a binary exists and is executable
func ValidateBinary(binPath string) bool {
	if binPath == "" {
		return false
	}

	if filepath.IsAbs(binPath) {
		info, err := os.Stat(binPath)
		if err != nil {
			return false
		}
		// Check if it's executable (unix-style check)
		return info.Mode()&0111 != 0
	}

	_, err := exec.LookPath(binPath)
	return err == nil
}

// DetectSbatchBin attempts to find the sbatch binary in PATH.
// Returns the full absolute path if found, empty string otherwise.
func DetectSbatchBin() string {
	if path, err := exec.LookPath("sbatch"); err == nil {
		return path
	}
	return ""
}

// AutoDetectAndSave fills in sbatch_bin by PATH lookup when it is unset or
// stale, and persists the result. Returns whether the config was updated.
func AutoDetectAndSave() (bool, error) {
	current := viper.GetString("sbatch_bin")
	if ValidateBinary(current) {
		return false, nil
	}

	detected := DetectSbatchBin()
	if detected == "" || detected == current {
		return false, nil
	}

	viper.Set("sbatch_bin", detected)
	if err := SaveConfig(); err != nil {
		return false, err
	}
	return true, nil
}
