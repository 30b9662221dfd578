package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrModelNotFound  = errors.New("car model not found")
	ErrOptionNotFound = errors.New("catalog option not found")
)

// ValidationError lists the request fields that are missing or malformed.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Fields, ", "))
}

// UpstreamError wraps a failure of the optimization backend.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("optimization failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// requireFields returns a ValidationError naming every blank value, or nil.
func requireFields(fields ...[2]string) error {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f[1]) == "" {
			missing = append(missing, f[0])
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Fields: missing}
	}
	return nil
}
