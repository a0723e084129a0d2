package job

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func writeScript(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.sbatch")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write script: %v", err)
	}
	return path
}

func TestParseScript(t *testing.T) {
	path := writeScript(t, `#!/bin/bash
#SBATCH --job-name=align
#SBATCH --cpus-per-task=4
#SBATCH --mem=8G
#SBATCH --requeue
#SBATCH -o out.log

set -euo pipefail

module load bwa
bwa mem ref.fa reads.fq
`)

	j, err := ParseScript(path)
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	if j.Preamble != "#!/bin/bash" {
		t.Errorf("Preamble = %q", j.Preamble)
	}
	if v, _ := j.Opt("job_name"); v != "align" {
		t.Errorf("job_name = %v; want align", v)
	}
	if v, _ := j.Opt("cpus"); v != 4 {
		t.Errorf("cpus = %v (%T); want int 4", v, v)
	}
	if v, _ := j.Opt("mem"); v != "8G" {
		t.Errorf("mem = %v; want 8G", v)
	}
	if v, _ := j.Opt("requeue"); v != true {
		t.Errorf("requeue = %v; want true (bare flag)", v)
	}
	if v, _ := j.Opt("o"); v != "out.log" {
		t.Errorf("o = %v; want out.log", v)
	}

	wantBody := []string{"module load bwa", "bwa mem ref.fa reads.fq"}
	if !slices.Equal(j.Body(), wantBody) {
		t.Errorf("Body() = %v; want %v", j.Body(), wantBody)
	}
}

func TestParseScriptRoundTrip(t *testing.T) {
	orig := bare(t, []string{"echo start", "./run.sh"}, map[string]any{
		"job_name":  "cycle",
		"partition": "short",
		"cpus":      2,
	})

	lines, err := orig.Render()
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "cycle.sbatch")
	if _, err := orig.Write(path); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}

	parsed, err := ParseScript(path)
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}

	relines, err := parsed.Render()
	if err != nil {
		t.Fatalf("re-Render() failed: %v", err)
	}
	if !slices.Equal(relines, lines) {
		t.Errorf("round trip changed the script:\nfirst:  %v\nsecond: %v", lines, relines)
	}
}

func TestParseScriptInlineComment(t *testing.T) {
	path := writeScript(t, `#!/bin/bash
#SBATCH --mem=4G  # per node
echo hi
`)

	j, err := ParseScript(path)
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	if v, _ := j.Opt("mem"); v != "4G" {
		t.Errorf("mem = %q; want 4G (inline comment stripped)", v)
	}
}

func TestParseScriptMissingFile(t *testing.T) {
	_, err := ParseScript("/nonexistent/path/script.sbatch")
	if !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("ParseScript() = %v; want ErrScriptNotFound", err)
	}
}
