package job

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/Joshua-Kaluf/r2slurm/internal/utils"
)

var directiveRe = regexp.MustCompile(`^\s*#SBATCH\s+(.+)$`)

// ParseScript reads an existing batch script back into a Job: the shebang
// becomes the preamble, #SBATCH lines become options via the reverse flag
// rule, and the remaining non-blank lines (minus the safety preamble)
// become the body. Defaults are not re-applied, so a parsed Job renders
// only what the script contained.
func ParseScript(path string) (*Job, error) {
	lines, err := readFileLines(path)
	if err != nil {
		return nil, err
	}

	j := &Job{
		Preamble: DefaultPreamble,
		opts:     make(map[string]any),
	}

	for i, line := range lines {
		if i == 0 && strings.HasPrefix(line, "#!") {
			j.Preamble = line
			continue
		}
		if m := directiveRe.FindStringSubmatch(line); m != nil {
			name, value := parseDirective(utils.StripInlineComment(m[1]))
			j.opts[name] = value
			continue
		}
		if strings.TrimSpace(line) == "" || line == SafetyLine {
			continue
		}
		j.body = append(j.body, line)
	}
	return j, nil
}

// readFileLines opens a file and returns all its lines.
func readFileLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrScriptNotFound, path)
		}
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading script: %w", err)
	}
	return lines, nil
}

// parseDirective splits a raw directive into its option name and value.
// Bare flags become boolean true; integer values are typed as int.
func parseDirective(directive string) (string, any) {
	flag, raw, found := strings.Cut(directive, "=")
	if !found {
		// Short flags use "-o value" form
		if f, v, ok := strings.Cut(directive, " "); ok && strings.HasPrefix(f, "-") && !strings.HasPrefix(f, "--") {
			return OptionName(f), strings.TrimSpace(v)
		}
		return OptionName(directive), true
	}

	name := OptionName(strings.TrimSpace(flag))
	if n, err := strconv.Atoi(raw); err == nil {
		return name, n
	}
	return name, raw
}
