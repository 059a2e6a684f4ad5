package db

// Query is the input for one per-collection engine search.
type Query struct {
	Collection    string
	Text          string
	QueryBy       string
	FilterBy      string
	SortBy        string
	IncludeFields []string
	Page          int // 1-based
	PerPage       int
}

// SearchResult is the output of a search operation.
type SearchResult struct {
	Found   int
	Entries []SearchEntry
}

// SearchEntry is a single document hit from a search.
type SearchEntry struct {
	ID     string
	Score  float64
	Fields map[string]float64
}
