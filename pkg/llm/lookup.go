package llm

import (
	"os"

	"github.com/samber/lo"
)

// LookupFunc reports the value of a configuration key and whether it was set.
type LookupFunc func(key string) (string, bool)

// OSLookup reads from the process environment.
func OSLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapLookup serves values from a fixed map.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}
}

// Resolve returns the first non-empty value of explicit, lookup(key) and def.
func Resolve(explicit string, lookup LookupFunc, key, def string) string {
	v, _ := lo.Coalesce(explicit, lookupValue(lookup, key), def)
	return v
}

// Require is Resolve without a default. It fails with a *ConfigError naming
// the environment variable when neither source has a value.
func Require(explicit string, lookup LookupFunc, key, what string) (string, error) {
	v, ok := lo.Coalesce(explicit, lookupValue(lookup, key))
	if !ok {
		return "", missingValue(what, key)
	}

	return v, nil
}

func lookupValue(lookup LookupFunc, key string) string {
	if lookup == nil || key == "" {
		return ""
	}

	v, _ := lookup(key)
	return v
}
