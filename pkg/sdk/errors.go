package multisearch

import "github.com/kailas-cloud/multisearch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrInvalidRequest = domain.ErrInvalidRequest
	ErrUnknownType    = domain.ErrUnknownType
	ErrEngine         = domain.ErrEngine
	ErrStore          = domain.ErrStore
)
