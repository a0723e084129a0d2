package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateBinary(t *testing.T) {
	if ValidateBinary("") {
		t.Errorf("empty path reported as valid")
	}
	if ValidateBinary("/nonexistent/bin/sbatch") {
		t.Errorf("missing absolute path reported as valid")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "fake-sbatch")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if !ValidateBinary(exe) {
		t.Errorf("executable file reported as invalid")
	}

	plain := filepath.Join(dir, "not-executable")
	if err := os.WriteFile(plain, []byte("data"), 0644); err != nil {
		t.Fatal(err)
	}
	if ValidateBinary(plain) {
		t.Errorf("non-executable file reported as valid")
	}
}

func TestGetUserConfigPath(t *testing.T) {
	path, err := GetUserConfigPath()
	if err != nil {
		t.Fatalf("GetUserConfigPath failed: %v", err)
	}
	if !strings.HasSuffix(path, ConfigFilename+"."+ConfigType) {
		t.Errorf("config path %q missing %s.%s suffix", path, ConfigFilename, ConfigType)
	}
	if !strings.Contains(path, "r2slurm") {
		t.Errorf("config path %q not scoped to r2slurm", path)
	}
}

func TestLoadDefaults(t *testing.T) {
	LoadDefaults()

	if !Global.SubmitJob {
		t.Errorf("SubmitJob default = false; want true")
	}
	if Global.Shebang != "#!/bin/bash" {
		t.Errorf("Shebang default = %q", Global.Shebang)
	}
	if Global.OutputPattern != "%x-%j.out" || Global.ErrorPattern != "%x-%j.err" {
		t.Errorf("log patterns = %q / %q", Global.OutputPattern, Global.ErrorPattern)
	}
	if Global.Version != VERSION {
		t.Errorf("Version = %q; want %q", Global.Version, VERSION)
	}
}
