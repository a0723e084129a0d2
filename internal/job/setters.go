package job

import (
	"fmt"
	"slices"
)

// Named body positions accepted by AddBody alongside 1-based integer indices.
const (
	PosStart = "start"
	PosEnd   = "end"
)

// Set stores one option value, overwriting any previous value for the same
// name. This is the escape hatch for directives with no dedicated setter;
// unknown names map to flags mechanically (see Flag). No validation happens
// here, so a temporarily conflicting Job can still be built incrementally.
func (j *Job) Set(name string, value any) *Job {
	out := j.clone()
	out.opts[name] = value
	return out
}

// SetAll merges a bundle of name/value pairs into the option mapping.
// Last write wins on repeated names.
func (j *Job) SetAll(opts map[string]any) *Job {
	out := j.clone()
	for name, value := range opts {
		out.opts[name] = value
	}
	return out
}

// WithName sets the job name (--job-name).
func (j *Job) WithName(name string) *Job {
	return j.Set("job_name", name)
}

// WithPartition sets the target partition (--partition).
func (j *Job) WithPartition(partition string) *Job {
	return j.Set("partition", partition)
}

// WithMem sets the total memory request (--mem), e.g. "4G" or "8000".
func (j *Job) WithMem(mem string) *Job {
	return j.Set("mem", mem)
}

// WithTime sets the walltime limit (--time), e.g. "02:00:00".
func (j *Job) WithTime(walltime string) *Job {
	return j.Set("time", walltime)
}

// WithCpus sets the CPU count per task (--cpus-per-task).
func (j *Job) WithCpus(n int) *Job {
	return j.Set("cpus", n)
}

// AddBody splices new command lines into the body and returns the updated Job.
//
// content takes the same shapes as New's body argument; empty content is a
// no-op. pos is PosStart, PosEnd, or a 1-based insertion index in
// [1, len(body)+1]; an out-of-bounds index fails with ErrIndexOutOfRange and
// any other position type with ErrInvalidInput. The receiver is untouched
// on failure.
func (j *Job) AddBody(content any, pos any) (*Job, error) {
	if j == nil {
		return nil, ErrNilJob
	}
	lines, err := normalizeBody(content)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return j, nil
	}

	at, err := resolvePosition(pos, len(j.body))
	if err != nil {
		return nil, err
	}

	out := j.clone()
	out.body = slices.Insert(out.body, at, lines...)
	return out, nil
}

// AppendBody adds command lines at the end of the body.
func (j *Job) AppendBody(lines ...string) *Job {
	out := j.clone()
	out.body = append(out.body, lines...)
	return out
}

// resolvePosition maps a position specifier to a 0-based splice index.
func resolvePosition(pos any, bodyLen int) (int, error) {
	switch p := pos.(type) {
	case nil:
		return bodyLen, nil
	case string:
		switch p {
		case PosStart:
			return 0, nil
		case PosEnd:
			return bodyLen, nil
		}
		return 0, fmt.Errorf("%w: position must be %q, %q, or a 1-based index, got %q", ErrInvalidInput, PosStart, PosEnd, p)
	case int:
		if p < 1 || p > bodyLen+1 {
			return 0, fmt.Errorf("%w: position %d not in [1, %d]", ErrIndexOutOfRange, p, bodyLen+1)
		}
		return p - 1, nil
	default:
		return 0, fmt.Errorf("%w: unsupported position type %T", ErrInvalidInput, pos)
	}
}
