package job

import "strings"

// flagTable maps well-known option names to their sbatch flag spelling.
// Everything else falls through to the mechanical rule in Flag.
var flagTable = map[string]string{
	"job_name":        "--job-name",
	"partition":       "--partition",
	"time":            "--time",
	"mem":             "--mem",
	"mem_per_cpu":     "--mem-per-cpu",
	"cpus":            "--cpus-per-task",
	"nodes":           "--nodes",
	"ntasks":          "--ntasks",
	"ntasks_per_node": "--ntasks-per-node",
	"output":          "--output",
	"error":           "--error",
	"o":               "-o",
	"e":               "-e",
	"array":           "--array",
}

// Flag returns the sbatch flag spelling for an option name. Names outside
// the fixed table are derived mechanically: underscores become dashes and
// the long-flag marker is prefixed, so arbitrary directives pass through
// without a table entry (foo_bar → --foo-bar).
func Flag(name string) string {
	if flag, ok := flagTable[name]; ok {
		return flag
	}
	return "--" + strings.ReplaceAll(name, "_", "-")
}

// optionTable is the reverse of flagTable, for re-parsing scripts.
var optionTable = func() map[string]string {
	m := make(map[string]string, len(flagTable))
	for name, flag := range flagTable {
		m[flag] = name
	}
	return m
}()

// OptionName returns the option name for an sbatch flag, inverting Flag.
func OptionName(flag string) string {
	if name, ok := optionTable[flag]; ok {
		return name
	}
	name := strings.TrimPrefix(flag, "--")
	name = strings.TrimPrefix(name, "-")
	return strings.ReplaceAll(name, "-", "_")
}
