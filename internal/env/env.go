// Package env is a thin typed lookup over process environment variables.
package env

import (
	"fmt"
	"os"
	"strconv"
)

// Value is the set of types Lookup can parse.
type Value interface {
	string | int
}

// Lookup reads the named environment variable and parses it as T.
// An unset or empty variable yields the fallback value.
func Lookup[T Value](key string, fallback T) (T, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return fallback, nil
	}

	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = raw
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fallback, fmt.Errorf("env %s: %w", key, err)
		}
		*ptr = n
	}
	return out, nil
}
