// Package job implements the SLURM batch job model: a preamble, an option
// bag mapped to #SBATCH directives, and an ordered list of body commands.
package job

import (
	"fmt"
	"maps"
	"slices"
)

// Script layout constants. Preamble and log patterns are per-Job defaults
// and can be overridden; the directive prefix and safety line are fixed.
const (
	DefaultPreamble = "#!/bin/bash"
	DefaultOutput   = "%x-%j.out"
	DefaultError    = "%x-%j.err"

	DirectivePrefix = "#SBATCH "
	SafetyLine      = "set -euo pipefail"
)

// Range is a bounded numeric option value, rendered as "min-max"
// (e.g. an array task span).
type Range struct {
	Min int
	Max int
}

func (r Range) String() string {
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Job is the in-memory specification of a batch script. Option values are
// one of: string, int/int64/float64, bool, Range, []int, []string, or nil
// (stored but never rendered). Setters are copy-on-write: they return a new
// Job and never modify the receiver, so chained calls cannot alias.
type Job struct {
	// Preamble is the first line of the rendered script.
	Preamble string

	opts map[string]any
	body []string
}

// New creates a Job from an initial body and optional named options.
//
// body may be nil, a string (one command line), a []string, or a
// func() []string evaluated once at the call site. Any other type fails
// with ErrInvalidInput. opts are merged over the defaults (output/error
// log patterns); a nil value suppresses the corresponding default.
func New(body any, opts map[string]any) (*Job, error) {
	lines, err := normalizeBody(body)
	if err != nil {
		return nil, err
	}

	j := &Job{
		Preamble: DefaultPreamble,
		opts: map[string]any{
			"output": DefaultOutput,
			"error":  DefaultError,
		},
		body: lines,
	}
	for name, value := range opts {
		j.opts[name] = value
	}
	return j, nil
}

// NewStrict is New with validate-on-construct: option conflicts surface
// immediately instead of at render/submit time.
func NewStrict(body any, opts map[string]any) (*Job, error) {
	j, err := New(body, opts)
	if err != nil {
		return nil, err
	}
	if err := j.Validate(); err != nil {
		return nil, err
	}
	return j, nil
}

// normalizeBody converts the accepted body shapes into a flat line slice.
// A nil or empty input is an empty body, not an error.
func normalizeBody(content any) ([]string, error) {
	switch v := content.(type) {
	case nil:
		return nil, nil
	case string:
		if v == "" {
			return nil, nil
		}
		return []string{v}, nil
	case []string:
		return slices.Clone(v), nil
	case func() []string:
		return slices.Clone(v()), nil
	default:
		return nil, fmt.Errorf("%w: body must be a string, []string, or func() []string, got %T", ErrInvalidInput, content)
	}
}

// clone returns a deep copy of the Job (options map and body slice).
func (j *Job) clone() *Job {
	return &Job{
		Preamble: j.Preamble,
		opts:     maps.Clone(j.opts),
		body:     slices.Clone(j.body),
	}
}

// Body returns a copy of the body command lines in order.
func (j *Job) Body() []string {
	if j == nil {
		return nil
	}
	return slices.Clone(j.body)
}

// Options returns a copy of the option mapping, including nil-valued entries.
func (j *Job) Options() map[string]any {
	if j == nil {
		return nil
	}
	return maps.Clone(j.opts)
}

// Opt returns the value stored for an option name.
func (j *Job) Opt(name string) (any, bool) {
	if j == nil {
		return nil, false
	}
	v, ok := j.opts[name]
	return v, ok
}

// hasOpt reports whether an option is present with a non-nil value.
// Nil values are transient placeholders and never count.
func (j *Job) hasOpt(name string) bool {
	v, ok := j.opts[name]
	return ok && v != nil
}

// conflictPairs are the mutually exclusive directive pairs: total memory vs
// memory per task, and total task count vs tasks per node.
var conflictPairs = [2][2]string{
	{"mem", "mem_per_cpu"},
	{"ntasks", "ntasks_per_node"},
}

// Validate checks the option mapping for mutually exclusive pairs.
// It is idempotent and side-effect free; Render, Write, and Submit
// re-run it automatically.
func (j *Job) Validate() error {
	if j == nil {
		return ErrNilJob
	}
	for _, pair := range conflictPairs {
		if j.hasOpt(pair[0]) && j.hasOpt(pair[1]) {
			return NewConflictError(pair[0], pair[1])
		}
	}
	return nil
}
