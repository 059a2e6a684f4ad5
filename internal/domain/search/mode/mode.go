package mode

// Mode is the multi-collection search flavour.
type Mode string

// Multi-collection mode constants.
const (
	// BestResults is the short cross-type preview used for instant search.
	BestResults Mode = "best-results"
	// All is the wider first-page listing of every type.
	All Mode = "all"
)

// IsValid checks if the mode is one of the supported values.
func (m Mode) IsValid() bool {
	return m == BestResults || m == All
}
