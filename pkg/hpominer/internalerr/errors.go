// Package internalerr collects the sentinel errors shared across hpominer's
// packages, so callers can use errors.Is instead of matching strings.
package internalerr

import "errors"

// Sentinel errors for common cases
var (
	// ErrNotFound is returned when a term id has no entry in the ontology.
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput is returned for malformed candidate windows or configuration.
	ErrInvalidInput = errors.New("invalid input")
	// ErrTokenCountExceeded signals a surface form longer than dictionary.MaxTokenCount.
	ErrTokenCountExceeded = errors.New("surface form exceeds max token count")
	// ErrOntologyUnavailable is returned when the ontology file cannot be loaded.
	ErrOntologyUnavailable = errors.New("ontology unavailable")
	// ErrInvalidConfig is returned for malformed run configuration.
	ErrInvalidConfig = errors.New("invalid configuration")
)
