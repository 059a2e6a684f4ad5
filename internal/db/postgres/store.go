package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/kailas-cloud/multisearch/internal/db"
)

// Compile-time check: Store implements db.RecordStore.
var _ db.RecordStore = (*Store)(nil)

// Store implements db.RecordStore on PostgreSQL. Each location is a table
// (optionally schema-qualified) with an id column; rows are returned as JSON.
type Store struct {
	DB *sql.DB
}

// NewStore opens a connection pool for dsn. Connectivity is checked lazily
// via Ping or WaitForReady.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}
	conn, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	return &Store{DB: conn}, nil
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.DB.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close releases the pool.
func (s *Store) Close() {
	_ = s.DB.Close()
}

// WaitForReady polls Ping until the database responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	return db.WaitForReady(ctx, s, timeout)
}

// FetchByIDs selects the rows of location whose id is in ids, one query per call.
func (s *Store) FetchByIDs(ctx context.Context, location string, ids []string) ([][]byte, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	table, err := quoteTable(location)
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}

	query := fmt.Sprintf(`SELECT row_to_json(t)::text FROM %s t WHERE t.id::text = ANY($1)`, table)
	rows, err := s.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	defer func() { _ = rows.Close() }()

	out := make([][]byte, 0, len(ids))
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, &db.Error{Op: db.OpSelect, Err: err}
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, &db.Error{Op: db.OpSelect, Err: err}
	}
	return out, nil
}

// quoteTable quotes a table or schema.table identifier.
func quoteTable(location string) (string, error) {
	parts := strings.Split(location, ".")
	if len(parts) > 2 {
		return "", fmt.Errorf("invalid location %q", location)
	}
	for i, p := range parts {
		if p == "" {
			return "", fmt.Errorf("invalid location %q", location)
		}
		parts[i] = pq.QuoteIdentifier(p)
	}
	return strings.Join(parts, "."), nil
}
