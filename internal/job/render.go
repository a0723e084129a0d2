package job

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DirectiveLines formats the option mapping into #SBATCH lines, one per
// non-nil option, sorted lexicographically by option name (not by flag) so
// output is deterministic regardless of insertion order.
func (j *Job) DirectiveLines() []string {
	names := make([]string, 0, len(j.opts))
	for name := range j.opts {
		if j.hasOpt(name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)

	lines := make([]string, 0, len(names))
	for _, name := range names {
		if line, ok := formatDirective(name, j.opts[name]); ok {
			lines = append(lines, line)
		}
	}
	return lines
}

// formatDirective renders a single option into its directive line.
// ok is false when the option produces no output (boolean false).
func formatDirective(name string, value any) (line string, ok bool) {
	flag := Flag(name)

	switch v := value.(type) {
	case bool:
		// true is a bare flag, false is omitted entirely
		if !v {
			return "", false
		}
		return DirectivePrefix + flag, true
	case []int:
		// An empty list renders nothing, same as a nil value
		if len(v) == 0 {
			return "", false
		}
		if name == "array" {
			// Collapse to min-max; gaps in the set are intentionally lost.
			return fmt.Sprintf("%s%s=%d-%d", DirectivePrefix, flag, slices.Min(v), slices.Max(v)), true
		}
		parts := make([]string, len(v))
		for i, n := range v {
			parts[i] = strconv.Itoa(n)
		}
		return DirectivePrefix + flag + "=" + strings.Join(parts, ","), true
	case []string:
		if len(v) == 0 {
			return "", false
		}
		return DirectivePrefix + flag + "=" + strings.Join(v, ","), true
	default:
		return fmt.Sprintf("%s%s=%v", DirectivePrefix, flag, v), true
	}
}

// Render validates the Job and assembles the final script line sequence:
// preamble, sorted directives, blank, safety line, blank, body verbatim.
func (j *Job) Render() ([]string, error) {
	if err := j.Validate(); err != nil {
		return nil, err
	}

	directives := j.DirectiveLines()
	lines := make([]string, 0, len(directives)+len(j.body)+4)
	lines = append(lines, j.Preamble)
	lines = append(lines, directives...)
	lines = append(lines, "", SafetyLine, "")
	lines = append(lines, j.body...)
	return lines, nil
}

// Script renders the Job as a single newline-terminated string.
func (j *Job) Script() (string, error) {
	lines, err := j.Render()
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}
