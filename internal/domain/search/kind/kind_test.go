package kind

import (
	"slices"
	"testing"
)

func TestIsValid(t *testing.T) {
	for _, k := range All() {
		if !k.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", k)
		}
	}

	invalid := []Kind{"", "movies", "MOVIE", "episode"}
	for _, k := range invalid {
		if k.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", k)
		}
	}
}

func TestAll_PrecedenceOrder(t *testing.T) {
	want := []Kind{Movie, TVSeries, Person, User, Playlist}
	if got := All(); !slices.Equal(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	a := All()
	a[0] = "mutated"
	if All()[0] != Movie {
		t.Error("All() must not expose the internal slice")
	}
}

func TestRank(t *testing.T) {
	if Movie.Rank() >= Playlist.Rank() {
		t.Errorf("movie rank %d should be below playlist rank %d", Movie.Rank(), Playlist.Rank())
	}
	if Kind("unknown").Rank() != -1 {
		t.Error("unknown kind should rank -1")
	}
}

func TestSort(t *testing.T) {
	got := Sort([]Kind{Playlist, "bogus", Movie, User, Movie})
	want := []Kind{Movie, User, Playlist}
	if !slices.Equal(got, want) {
		t.Errorf("Sort() = %v, want %v", got, want)
	}
}
