package search

import (
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
)

// Fusion weights of the best-result score.
const (
	textWeight       = 0.9
	popularityWeight = 0.1
)

// candidate is the rank-1 hit of one queried type.
type candidate struct {
	kind       kind.Kind
	id         string
	text       float64
	popularity float64
}

// scored is a candidate's hybrid score in [0, 1].
type scored struct {
	candidate
	hybrid float64
}

// normalize computes hybrid scores against the maxima of this candidate set.
// Maxima are floored at 1 so a set of zero scores stays at zero.
func normalize(cands []candidate) []scored {
	maxText, maxPop := 1.0, 1.0
	for _, c := range cands {
		maxText = max(maxText, c.text)
		maxPop = max(maxPop, c.popularity)
	}

	out := make([]scored, len(cands))
	for i, c := range cands {
		out[i] = scored{
			candidate: c,
			hybrid:    textWeight*c.text/maxText + popularityWeight*c.popularity/maxPop,
		}
	}
	return out
}

// selectBest returns the candidate with the strictly greatest hybrid score.
// Ties go to the type earlier in precedence order.
func selectBest(cands []candidate) (scored, bool) {
	if len(cands) == 0 {
		return scored{}, false
	}
	all := normalize(cands)
	best := all[0]
	for _, c := range all[1:] {
		if c.hybrid > best.hybrid || (c.hybrid == best.hybrid && c.kind.Rank() < best.kind.Rank()) {
			best = c
		}
	}
	return best, true
}
