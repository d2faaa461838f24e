package gridpath

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("gridpath: invalid configuration")
	// ErrNoPathFound is returned when the frontier empties before the target is reached.
	ErrNoPathFound = errors.New("gridpath: no path found")
	// ErrPathCorruption means the parent links do not lead from the target back to the source.
	ErrPathCorruption = errors.New("gridpath: corrupted parent links")
	// ErrBudgetExceeded is returned when WithMaxExpansions stops a search.
	ErrBudgetExceeded = errors.New("gridpath: expansion budget exceeded")
)

// ConfigurationError describes input rejected before a search starts.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("gridpath: invalid %s: %s", e.Field, e.Reason)
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func configErrorf(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
