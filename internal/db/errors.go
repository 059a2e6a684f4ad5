package db

// Op constants name backend operations for error context.
const (
	OpSearch = "SEARCH"
	OpHealth = "HEALTH"
	OpPing   = "PING"
	OpMGet   = "MGET"
	OpSelect = "SELECT"
)

// Error wraps an underlying error with the operation name for diagnostics.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *Error) Unwrap() error { return e.Err }
