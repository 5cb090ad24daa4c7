package llm

import (
	"errors"
	"fmt"
)

// ConfigError is returned when a client cannot be configured, either because a
// required value is missing or because the requested variant is unknown.
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// IsConfigError reports whether err wraps a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

func configErrorf(format string, args ...any) *ConfigError {
	return &ConfigError{Message: fmt.Sprintf(format, args...)}
}

func missingValue(what, key string) *ConfigError {
	return configErrorf("%s must be provided either as a parameter or set in the environment variable '%s'", what, key)
}
