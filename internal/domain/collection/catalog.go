package collection

import (
	"fmt"

	"github.com/kailas-cloud/multisearch/internal/domain"
	"github.com/kailas-cloud/multisearch/internal/domain/collection/field"
	"github.com/kailas-cloud/multisearch/internal/domain/search/filter"
	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
)

// popularityFallback is shared by every type: first present field wins.
var popularityFallback = []string{"popularity", "followers_count", "likes_count"}

// Catalog holds one Descriptor per searchable kind.
type Catalog struct {
	byKind map[kind.Kind]Descriptor
}

// NewCatalog creates a Catalog. Kinds must be unique.
func NewCatalog(descs ...Descriptor) (*Catalog, error) {
	byKind := make(map[kind.Kind]Descriptor, len(descs))
	for _, d := range descs {
		if _, dup := byKind[d.Kind()]; dup {
			return nil, fmt.Errorf("duplicate descriptor for %s", d.Kind())
		}
		byKind[d.Kind()] = d
	}
	return &Catalog{byKind: byKind}, nil
}

// Get returns the descriptor for k or ErrUnknownType.
func (c *Catalog) Get(k kind.Kind) (Descriptor, error) {
	d, ok := c.byKind[k]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %s", domain.ErrUnknownType, k)
	}
	return d, nil
}

// Kinds returns the cataloged kinds in precedence order.
func (c *Catalog) Kinds() []kind.Kind {
	out := make([]kind.Kind, 0, len(c.byKind))
	for _, k := range kind.All() {
		if _, ok := c.byKind[k]; ok {
			out = append(out, k)
		}
	}
	return out
}

// WithLocations returns a copy of c with store locations overridden per kind.
func (c *Catalog) WithLocations(locations map[kind.Kind]string) (*Catalog, error) {
	byKind := make(map[kind.Kind]Descriptor, len(c.byKind))
	for k, d := range c.byKind {
		byKind[k] = d
	}
	for k, loc := range locations {
		d, ok := byKind[k]
		if !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownType, k)
		}
		nd, err := d.WithLocation(loc)
		if err != nil {
			return nil, err
		}
		byKind[k] = nd
	}
	return &Catalog{byKind: byKind}, nil
}

// PlaylistVisibility admits public playlists, plus private ones the actor owns
// or is a guest of. Anonymous callers only see public playlists.
func PlaylistVisibility(actor string) string {
	public := filter.Equal("is_private", "false")
	if actor == "" {
		return public
	}
	return filter.Or(
		public,
		filter.ExactEqual("owner_id", actor),
		filter.ExactIn("guest_ids", []string{actor}),
	)
}

// DefaultCatalog returns the five built-in searchable types.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		MustNew(Spec{
			Kind:          kind.Movie,
			Key:           "movies",
			Name:          "movies",
			QueryFields:   []string{"title", "original_title", "overview"},
			SortFields:    []string{"popularity", "release_year", "vote_average", "vote_count"},
			SecondarySort: "popularity",
			Location:      "movies",
			Popularity:    popularityFallback,
			Fields: []field.Field{
				field.MustNew("year", "release_year", field.Range),
				field.MustNew("rating", "vote_average", field.Range),
				field.MustNew("runtime", "runtime", field.Range),
				field.MustNew("genre_ids", "genre_ids", field.Set),
			},
		}),
		MustNew(Spec{
			Kind:          kind.TVSeries,
			Key:           "tv_series",
			Name:          "tv_series",
			QueryFields:   []string{"name", "original_name", "overview"},
			SortFields:    []string{"popularity", "first_air_year", "vote_average", "vote_count"},
			SecondarySort: "popularity",
			Location:      "tv_series",
			Popularity:    popularityFallback,
			Fields: []field.Field{
				field.MustNew("year", "first_air_year", field.Range),
				field.MustNew("rating", "vote_average", field.Range),
				field.MustNew("genre_ids", "genre_ids", field.Set),
			},
		}),
		MustNew(Spec{
			Kind:          kind.Person,
			Key:           "persons",
			Name:          "persons",
			QueryFields:   []string{"name", "also_known_as"},
			SortFields:    []string{"popularity"},
			SecondarySort: "popularity",
			Location:      "persons",
			Popularity:    popularityFallback,
			Fields: []field.Field{
				field.MustNew("popularity", "popularity", field.Range),
				field.MustNew("departments", "known_for_department", field.Set),
			},
		}),
		MustNew(Spec{
			Kind:          kind.User,
			Key:           "users",
			Name:          "users",
			QueryFields:   []string{"username", "full_name"},
			SortFields:    []string{"followers_count", "created_at"},
			SecondarySort: "followers_count",
			Location:      "users",
			Popularity:    popularityFallback,
			Fields: []field.Field{
				field.MustNew("followers", "followers_count", field.Range),
				field.MustNew("user_ids", "id", field.Exclusion),
			},
		}),
		MustNew(Spec{
			Kind:          kind.Playlist,
			Key:           "playlists",
			Name:          "playlists",
			QueryFields:   []string{"title", "description"},
			SortFields:    []string{"likes_count", "items_count", "created_at"},
			SecondarySort: "likes_count",
			Location:      "playlists",
			Popularity:    popularityFallback,
			Fields: []field.Field{
				field.MustNew("likes", "likes_count", field.Range),
				field.MustNew("items", "items_count", field.Range),
			},
			Permission: PlaylistVisibility,
		}),
	)
	if err != nil {
		panic(err)
	}
	return c
}
