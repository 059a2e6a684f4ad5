package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest signals a malformed or out-of-range request field.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrUnknownType signals a search type missing from the catalog.
	ErrUnknownType = errors.New("unknown search type")
	// ErrEngine signals a failed search engine query.
	ErrEngine = errors.New("search engine error")
	// ErrStore signals a failed record store lookup.
	ErrStore = errors.New("record store error")
)

// CollectionError wraps a collaborator failure with the collection it happened on.
type CollectionError struct {
	Collection string
	Err        error
}

func (e *CollectionError) Error() string {
	return fmt.Sprintf("collection %s: %s", e.Collection, e.Err.Error())
}

func (e *CollectionError) Unwrap() error { return e.Err }

// NewEngineError wraps err as an engine failure on collection.
func NewEngineError(collection string, err error) error {
	return &CollectionError{Collection: collection, Err: fmt.Errorf("%w: %w", ErrEngine, err)}
}

// NewStoreError wraps err as a store failure on location.
func NewStoreError(location string, err error) error {
	return &CollectionError{Collection: location, Err: fmt.Errorf("%w: %w", ErrStore, err)}
}

// InvalidRequestf builds an ErrInvalidRequest with a formatted reason.
func InvalidRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}
