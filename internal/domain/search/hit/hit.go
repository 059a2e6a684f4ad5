package hit

// Hit is a single engine match: id, relevance and the raw fields used for fusion.
type Hit struct {
	id        string
	relevance float64
	fields    map[string]float64
}

// New creates a Hit. A nil fields map is allowed.
func New(id string, relevance float64, fields map[string]float64) Hit {
	return Hit{id: id, relevance: relevance, fields: fields}
}

// ID returns the engine id.
func (h Hit) ID() string { return h.id }

// Relevance returns the engine text-match score (0 when the engine omitted it).
func (h Hit) Relevance() float64 { return h.relevance }

// Fields returns the numeric raw fields returned with the hit.
func (h Hit) Fields() map[string]float64 { return h.fields }

// Popularity returns the first field of fallback present on the hit, or 0.
func (h Hit) Popularity(fallback []string) float64 {
	for _, f := range fallback {
		if v, ok := h.fields[f]; ok {
			return v
		}
	}
	return 0
}

// Page is one engine result page for a collection.
type Page struct {
	Hits  []Hit
	Found int
}

// IDs returns hit ids in rank order with duplicates removed.
func (p Page) IDs() []string {
	if len(p.Hits) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(p.Hits))
	ids := make([]string, 0, len(p.Hits))
	for _, h := range p.Hits {
		if _, ok := seen[h.ID()]; ok {
			continue
		}
		seen[h.ID()] = struct{}{}
		ids = append(ids, h.ID())
	}
	return ids
}

// Top returns the rank-1 hit, if any.
func (p Page) Top() (Hit, bool) {
	if len(p.Hits) == 0 {
		return Hit{}, false
	}
	return p.Hits[0], true
}
