// Package variables builds the substitution mapping from an environment.
//
// The environment is passed in explicitly as KEY=VALUE pairs, the same shape
// os.Environ returns, so nothing here reads process state.
package variables

import (
	"sort"
	"strings"

	"github.com/arthur-debert/envfill/pkg/errors"
)

// DefaultPrefix is the variable name prefix used when none is configured
const DefaultPrefix = "APP_"

// Mapping is an immutable set of name -> value pairs
type Mapping struct {
	values map[string]string
}

// FromEnviron filters environ down to the variables whose name starts with
// prefix. A mapping with no variables is a configuration error.
func FromEnviron(environ []string, prefix string) (Mapping, error) {
	values := make(map[string]string)
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		if strings.HasPrefix(name, prefix) {
			values[name] = value
		}
	}

	if len(values) == 0 {
		return Mapping{}, errors.Newf(errors.ErrNoVariables,
			"could not find any env vars starting with %q", prefix).
			WithDetail("prefix", prefix)
	}

	return Mapping{values: values}, nil
}

// FromMap copies m into a Mapping. Used by callers that already hold
// resolved values.
func FromMap(m map[string]string) Mapping {
	values := make(map[string]string, len(m))
	for k, v := range m {
		values[k] = v
	}
	return Mapping{values: values}
}

// Lookup returns the value for name
func (m Mapping) Lookup(name string) (string, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Has reports whether name is in the mapping
func (m Mapping) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Len returns the number of variables
func (m Mapping) Len() int {
	return len(m.values)
}

// Names returns the variable names in sorted order
func (m Mapping) Names() []string {
	names := make([]string, 0, len(m.values))
	for name := range m.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
