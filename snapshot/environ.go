package snapshot

import (
	"os"
	"strings"
)

// Environ is the live environment a snapshot is captured from and restored
// into.
type Environ interface {
	// Environ returns every variable currently set.
	Environ() map[string]string
	// Setenv sets key to value, overwriting any existing value.
	Setenv(key, value string) error
}

// ProcessEnviron is the current process's environment.
type ProcessEnviron struct{}

// NewProcessEnviron returns the Environ of the running process.
func NewProcessEnviron() ProcessEnviron {
	return ProcessEnviron{}
}

func (ProcessEnviron) Environ() map[string]string {
	return parseEnviron(os.Environ())
}

func (ProcessEnviron) Setenv(key, value string) error {
	return os.Setenv(key, value)
}

// parseEnviron converts KEY=VALUE pairs into a map. Entries without '=' are
// ignored; later duplicates win.
func parseEnviron(pairs []string) map[string]string {
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		vars[key] = value
	}
	return vars
}

// MapEnviron is an in-memory Environ.
type MapEnviron map[string]string

func (m MapEnviron) Environ() map[string]string {
	vars := make(map[string]string, len(m))
	for k, v := range m {
		vars[k] = v
	}
	return vars
}

func (m MapEnviron) Setenv(key, value string) error {
	m[key] = value
	return nil
}
