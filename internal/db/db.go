package db

import (
	"context"
	"time"
)

// Pinger checks backend connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Engine runs collection queries against the search engine.
type Engine interface {
	Pinger
	Search(ctx context.Context, q *Query) (*SearchResult, error)
}

// RecordStore is the authoritative store of full records.
type RecordStore interface {
	Pinger
	RecordFetcher
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// RecordFetcher looks records up by primary key.
type RecordFetcher interface {
	// FetchByIDs returns the JSON documents of location whose id is in ids.
	// Missing ids are skipped. The result has no ordering guarantee.
	FetchByIDs(ctx context.Context, location string, ids []string) ([][]byte, error)
}

// WaitForReady polls p until it answers or timeout expires.
func WaitForReady(ctx context.Context, p Pinger, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return &Error{Op: OpPing, Err: ctx.Err()}
		case <-ticker.C:
			if err := p.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}
