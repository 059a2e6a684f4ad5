package kind

// Kind is the type tag of a searchable collection.
type Kind string

// Searchable kinds, declared in tie-break precedence order.
const (
	Movie    Kind = "movie"
	TVSeries Kind = "tv_series"
	Person   Kind = "person"
	User     Kind = "user"
	Playlist Kind = "playlist"
)

var precedence = []Kind{Movie, TVSeries, Person, User, Playlist}

// All returns every kind in precedence order. The slice is a copy.
func All() []Kind {
	out := make([]Kind, len(precedence))
	copy(out, precedence)
	return out
}

// IsValid checks if the kind is one of the supported values.
func (k Kind) IsValid() bool {
	return k.Rank() >= 0
}

// Rank returns the precedence position of k (lower wins ties), or -1 if unknown.
func (k Kind) Rank() int {
	for i, p := range precedence {
		if p == k {
			return i
		}
	}
	return -1
}

// Sort orders kinds by precedence in place and drops duplicates and unknown values.
func Sort(kinds []Kind) []Kind {
	seen := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		seen[k] = struct{}{}
	}
	out := kinds[:0]
	for _, p := range precedence {
		if _, ok := seen[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
