package huddle

import "github.com/kailas-cloud/huddle/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound      = domain.ErrNotFound
	ErrInvalidKind   = domain.ErrInvalidKind
	ErrInvalidEntity = domain.ErrInvalidEntity
)
