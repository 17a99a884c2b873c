// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"errors"
	"fmt"
)

// ErrMissingAPIKey indicates a gateway was constructed without a key. The
// check happens before the first network attempt so the failure is immediate.
var ErrMissingAPIKey = errors.New("API key is not set")

// ErrEmptyEmbedding indicates the embedding backend returned no vector.
var ErrEmptyEmbedding = errors.New("embedding is empty")

// GenerationError reports a structured response that could not be produced or
// decoded against its schema.
type GenerationError struct {
	Op  string
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation %s: %v", e.Op, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ExternalServiceError reports a failure talking to a remote AI backend.
type ExternalServiceError struct {
	Service string
	Err     error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Service, e.Err)
}

func (e *ExternalServiceError) Unwrap() error { return e.Err }
