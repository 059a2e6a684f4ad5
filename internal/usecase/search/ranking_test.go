package search

import (
	"math"
	"testing"

	"github.com/kailas-cloud/multisearch/internal/domain/search/kind"
)

func TestNormalize_WorkedExample(t *testing.T) {
	got := normalize([]candidate{
		{kind: kind.Movie, id: "a", text: 8, popularity: 100},
		{kind: kind.Person, id: "b", text: 4, popularity: 500},
	})
	if math.Abs(got[0].hybrid-0.92) > 1e-9 {
		t.Errorf("hybrid A = %v, want 0.92", got[0].hybrid)
	}
	if math.Abs(got[1].hybrid-0.55) > 1e-9 {
		t.Errorf("hybrid B = %v, want 0.55", got[1].hybrid)
	}
}

func TestNormalize_MaximaFlooredAtOne(t *testing.T) {
	got := normalize([]candidate{{kind: kind.User, text: 0.5, popularity: 0}})
	if math.Abs(got[0].hybrid-0.45) > 1e-9 {
		t.Errorf("hybrid = %v, want 0.45", got[0].hybrid)
	}
}

func TestSelectBest(t *testing.T) {
	tests := []struct {
		name  string
		cands []candidate
		want  kind.Kind
		ok    bool
	}{
		{"none", nil, "", false},
		{
			"higher hybrid wins",
			[]candidate{
				{kind: kind.Person, text: 4, popularity: 500},
				{kind: kind.Movie, text: 8, popularity: 100},
			},
			kind.Movie, true,
		},
		{
			"single candidate always wins",
			[]candidate{{kind: kind.Playlist, text: 0, popularity: 0}},
			kind.Playlist, true,
		},
		{
			"tie goes to precedence",
			[]candidate{
				{kind: kind.Playlist, text: 5, popularity: 10},
				{kind: kind.User, text: 5, popularity: 10},
				{kind: kind.TVSeries, text: 5, popularity: 10},
			},
			kind.TVSeries, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := selectBest(tt.cands)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && got.kind != tt.want {
				t.Errorf("winner = %s, want %s", got.kind, tt.want)
			}
		})
	}
}
