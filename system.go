package envseek

import (
	"os"
	"unicode/utf8"
)

// SystemResolver reads values from the process environment.
type SystemResolver struct {
	// LookupEnv replaces os.LookupEnv when set
	LookupEnv func(key string) (string, bool)
}

// Name returns the source name.
func (SystemResolver) Name() string {
	return "environment"
}

// Resolve returns the environment variable named key.
// Unset and empty variables are reported as ErrNotFound.
func (r SystemResolver) Resolve(key string) (string, error) {
	if key == "" {
		return "", newError(r.Name(), key, ErrEmptyKey, "", nil)
	}

	lookup := r.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}

	val, found := lookup(key)
	if !found {
		return "", newError(r.Name(), key, ErrNotFound, "variable is not set", nil)
	}
	if val == "" {
		return "", newError(r.Name(), key, ErrNotFound, "variable is empty", nil)
	}
	if !utf8.ValidString(val) {
		return "", newError(r.Name(), key, ErrEncoding, "", nil)
	}
	return val, nil
}
