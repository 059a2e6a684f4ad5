package query

// Spec is one per-collection engine query, ready to execute.
type Spec struct {
	Collection    string
	Text          string
	QueryBy       string
	FilterBy      string
	SortBy        string
	IncludeFields []string
	Page          int // 1-based
	PerPage       int
}
