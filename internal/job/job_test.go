package job

import (
	"errors"
	"testing"
)

func TestNewBodyNormalization(t *testing.T) {
	tests := []struct {
		name     string
		body     any
		wantBody []string
		wantErr  error
	}{
		{
			name:     "nil body",
			body:     nil,
			wantBody: nil,
		},
		{
			name:     "single string",
			body:     "echo hello",
			wantBody: []string{"echo hello"},
		},
		{
			name:     "empty string",
			body:     "",
			wantBody: nil,
		},
		{
			name:     "string slice",
			body:     []string{"module load gcc", "make -j4"},
			wantBody: []string{"module load gcc", "make -j4"},
		},
		{
			name:     "generator function",
			body:     func() []string { return []string{"a", "b"} },
			wantBody: []string{"a", "b"},
		},
		{
			name:    "unsupported type",
			body:    42,
			wantErr: ErrInvalidInput,
		},
		{
			name:    "slice of ints",
			body:    []int{1, 2},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := New(tt.body, nil)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("New() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}
			got := j.Body()
			if len(got) != len(tt.wantBody) {
				t.Fatalf("Body() = %v; want %v", got, tt.wantBody)
			}
			for i := range got {
				if got[i] != tt.wantBody[i] {
					t.Errorf("Body()[%d] = %q; want %q", i, got[i], tt.wantBody[i])
				}
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	j, err := New(nil, nil)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if j.Preamble != DefaultPreamble {
		t.Errorf("Preamble = %q; want %q", j.Preamble, DefaultPreamble)
	}
	if v, ok := j.Opt("output"); !ok || v != DefaultOutput {
		t.Errorf("output = %v; want %q", v, DefaultOutput)
	}
	if v, ok := j.Opt("error"); !ok || v != DefaultError {
		t.Errorf("error = %v; want %q", v, DefaultError)
	}
}

func TestNewDefaultsOverridable(t *testing.T) {
	j, err := New(nil, map[string]any{"output": "custom.log", "error": nil})
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if v, _ := j.Opt("output"); v != "custom.log" {
		t.Errorf("output = %v; want custom.log", v)
	}
	// nil suppresses the default and must not render
	for _, line := range j.DirectiveLines() {
		if line == DirectivePrefix+"--error="+DefaultError {
			t.Errorf("nil-valued error option was rendered: %q", line)
		}
	}
}

func TestValidateConflicts(t *testing.T) {
	tests := []struct {
		name     string
		opts     map[string]any
		wantErr  bool
		wantBoth []string // names the error message must mention
	}{
		{
			name: "no conflicts",
			opts: map[string]any{"mem": "4G", "cpus": 2},
		},
		{
			name:     "mem vs mem_per_cpu",
			opts:     map[string]any{"mem": "4G", "mem_per_cpu": "2G"},
			wantErr:  true,
			wantBoth: []string{"mem", "mem_per_cpu"},
		},
		{
			name:     "ntasks vs ntasks_per_node",
			opts:     map[string]any{"ntasks": 8, "ntasks_per_node": 2},
			wantErr:  true,
			wantBoth: []string{"ntasks", "ntasks_per_node"},
		},
		{
			name: "nil member does not conflict",
			opts: map[string]any{"mem": "4G", "mem_per_cpu": nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j, err := New(nil, tt.opts)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			err = j.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v; want nil", err)
				}
				return
			}

			if !errors.Is(err, ErrConflictingOptions) {
				t.Fatalf("Validate() = %v; want ErrConflictingOptions", err)
			}
			var ce *ConflictError
			if !errors.As(err, &ce) {
				t.Fatalf("Validate() error is not a *ConflictError: %v", err)
			}
			for _, name := range tt.wantBoth {
				if ce.First != name && ce.Second != name {
					t.Errorf("ConflictError %v does not mention %q", ce, name)
				}
			}
		})
	}
}

func TestValidateIdempotent(t *testing.T) {
	j, _ := New(nil, map[string]any{"mem": "4G"})
	for i := 0; i < 3; i++ {
		if err := j.Validate(); err != nil {
			t.Fatalf("Validate() call %d failed: %v", i+1, err)
		}
	}
}

func TestNewStrict(t *testing.T) {
	if _, err := NewStrict(nil, map[string]any{"ntasks": 4, "ntasks_per_node": 2}); !errors.Is(err, ErrConflictingOptions) {
		t.Errorf("NewStrict() = %v; want ErrConflictingOptions", err)
	}
	if _, err := NewStrict("echo ok", map[string]any{"cpus": 2}); err != nil {
		t.Errorf("NewStrict() with valid options failed: %v", err)
	}
}

func TestNilJob(t *testing.T) {
	var j *Job
	if err := j.Validate(); !errors.Is(err, ErrNilJob) {
		t.Errorf("Validate() on nil = %v; want ErrNilJob", err)
	}
	if _, err := j.AddBody("echo", PosEnd); !errors.Is(err, ErrNilJob) {
		t.Errorf("AddBody() on nil = %v; want ErrNilJob", err)
	}
}
