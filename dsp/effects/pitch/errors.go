package pitch

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the sentinel wrapped by every ConfigurationError.
var ErrConfiguration = errors.New("invalid octave shifter configuration")

// ConfigurationError reports a construction parameter the shifter cannot
// work with. A shifter is never returned alongside one.
type ConfigurationError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("octave shifter %s %s: %f", e.Field, e.Reason, e.Value)
}

// Unwrap returns ErrConfiguration.
func (e *ConfigurationError) Unwrap() error { return ErrConfiguration }

func configError(field string, value float64, reason string) error {
	return &ConfigurationError{Field: field, Value: value, Reason: reason}
}
