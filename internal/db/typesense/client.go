package typesense

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	ts "github.com/typesense/typesense-go/v3/typesense"
	"github.com/typesense/typesense-go/v3/typesense/api"
	"github.com/typesense/typesense-go/v3/typesense/api/pointer"

	"github.com/kailas-cloud/multisearch/internal/db"
)

var _ db.Engine = (*Client)(nil)

const (
	defaultTimeout = 5 * time.Second
	matchAll       = "*"
)

// Config holds engine connection settings.
type Config struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

// Client talks to a Typesense-compatible engine through the official SDK.
type Client struct {
	api     *ts.Client
	timeout time.Duration
}

// New creates an engine client. The connection is lazy; call Ping to verify it.
func New(cfg Config) (*Client, error) {
	if cfg.URL == "" {
		return nil, errors.New("typesense: url is required")
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		api: ts.NewClient(
			ts.WithServer(strings.TrimRight(cfg.URL, "/")),
			ts.WithAPIKey(cfg.APIKey),
			ts.WithConnectionTimeout(timeout),
		),
		timeout: timeout,
	}, nil
}

// Search runs one query against one collection.
func (c *Client) Search(ctx context.Context, q *db.Query) (*db.SearchResult, error) {
	if q.Collection == "" {
		return nil, &db.Error{Op: db.OpSearch, Err: errors.New("collection is required")}
	}

	res, err := c.api.Collection(q.Collection).Documents().Search(ctx, searchParams(q))
	if err != nil {
		return nil, &db.Error{Op: db.OpSearch, Err: fmt.Errorf("%s: %w", q.Collection, err)}
	}

	return parseResult(res), nil
}

// Ping checks engine liveness via the health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	ok, err := c.api.Health(ctx, c.timeout)
	if err != nil {
		return &db.Error{Op: db.OpHealth, Err: err}
	}
	if !ok {
		return &db.Error{Op: db.OpHealth, Err: errors.New("engine reports not ok")}
	}
	return nil
}

func searchParams(q *db.Query) *api.SearchCollectionParams {
	text := q.Text
	if strings.TrimSpace(text) == "" {
		text = matchAll
	}

	params := &api.SearchCollectionParams{
		Q:       pointer.String(text),
		QueryBy: pointer.String(q.QueryBy),
	}
	if q.FilterBy != "" {
		params.FilterBy = pointer.String(q.FilterBy)
	}
	if q.SortBy != "" {
		params.SortBy = pointer.String(q.SortBy)
	}
	if len(q.IncludeFields) > 0 {
		params.IncludeFields = pointer.String(strings.Join(q.IncludeFields, ","))
	}
	if q.Page > 0 {
		params.Page = pointer.Int(q.Page)
	}
	if q.PerPage > 0 {
		params.PerPage = pointer.Int(q.PerPage)
	}
	return params
}

func parseResult(res *api.SearchResult) *db.SearchResult {
	out := &db.SearchResult{}
	if res == nil {
		return out
	}
	if res.Found != nil {
		out.Found = *res.Found
	}
	if res.Hits == nil {
		return out
	}

	out.Entries = make([]db.SearchEntry, 0, len(*res.Hits))
	for _, h := range *res.Hits {
		if h.Document == nil {
			continue
		}
		doc := *h.Document
		id := documentID(doc["id"])
		if id == "" {
			continue
		}
		entry := db.SearchEntry{ID: id, Fields: numericFields(doc)}
		if h.TextMatch != nil {
			entry.Score = float64(*h.TextMatch)
		}
		out.Entries = append(out.Entries, entry)
	}
	return out
}

// numericFields keeps only numeric document fields; the rest of the record
// comes from the record store.
func numericFields(doc map[string]interface{}) map[string]float64 {
	fields := make(map[string]float64, len(doc))
	for k, v := range doc {
		if f, ok := v.(float64); ok {
			fields[k] = f
		}
	}
	return fields
}

func documentID(v interface{}) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}
