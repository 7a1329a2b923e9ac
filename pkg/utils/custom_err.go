package utils

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrRouteNotFound       = errors.New("route not found")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrInvalidToken        = errors.New("invalid or expired token")
	ErrTokenRevoked        = errors.New("session has ended")
	ErrPermissionDenied    = errors.New("location permission was denied")
	ErrPositionUnavailable = errors.New("no position reported")
)

// ValidationError reports one message per invalid form field. It blocks the
// transition the form was guarding; nothing is partially applied.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
