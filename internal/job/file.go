package job

import (
	"fmt"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// LoadFile reads a declarative job definition (YAML/TOML/JSON, decided by
// extension) into a Job. Recognized keys:
//
//	name:     job name (shorthand for options.job_name)
//	preamble: shebang override
//	options:  open-ended option mapping
//	body:     list of command lines
func LoadFile(path string) (*Job, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	opts := make(map[string]any)
	for name, value := range v.GetStringMap("options") {
		opts[name] = normalizeOptValue(value)
	}

	j, err := New(v.GetStringSlice("body"), opts)
	if err != nil {
		return nil, err
	}

	if name := v.GetString("name"); name != "" {
		j = j.WithName(name)
	}
	if v.IsSet("preamble") {
		j.Preamble = v.GetString("preamble")
	}
	return j, nil
}

// normalizeOptValue narrows decoded config values to the tagged kinds the
// renderer understands. Lists of whole numbers become []int (so array specs
// collapse correctly); other lists become []string.
func normalizeOptValue(value any) any {
	switch value.(type) {
	case []any:
		if ints, err := cast.ToIntSliceE(value); err == nil {
			return ints
		}
		if strs, err := cast.ToStringSliceE(value); err == nil {
			return strs
		}
	}
	return value
}
