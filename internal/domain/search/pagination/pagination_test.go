package pagination

import "testing"

func TestCalculate(t *testing.T) {
	tests := []struct {
		name                 string
		total, page, perPage int
		wantPages            int
	}{
		{"zero results", 0, 1, 20, 0},
		{"zero results later page", 0, 4, 20, 0},
		{"exact multiple", 40, 1, 20, 2},
		{"remainder", 41, 2, 20, 3},
		{"fewer than a page", 3, 1, 20, 1},
		{"per page one", 7, 3, 1, 7},
		{"single result", 1, 1, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(tt.total, tt.page, tt.perPage)
			if b.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", b.TotalPages, tt.wantPages)
			}
			if b.TotalResults != tt.total {
				t.Errorf("TotalResults = %d, want %d", b.TotalResults, tt.total)
			}
			if b.CurrentPage != tt.page || b.PerPage != tt.perPage {
				t.Errorf("echo mismatch: %+v", b)
			}
		})
	}
}

func TestCalculate_CeilProperty(t *testing.T) {
	for perPage := 1; perPage <= 25; perPage++ {
		for total := 0; total <= 200; total++ {
			b := Calculate(total, 1, perPage)
			if (b.TotalPages == 0) != (total == 0) {
				t.Fatalf("total=%d perPage=%d: TotalPages=%d", total, perPage, b.TotalPages)
			}
			if total == 0 {
				continue
			}
			if b.TotalPages*perPage < total || (b.TotalPages-1)*perPage >= total {
				t.Fatalf("total=%d perPage=%d: TotalPages=%d is not the ceiling", total, perPage, b.TotalPages)
			}
		}
	}
}

func TestCalculate_NegativeTotalClamped(t *testing.T) {
	b := Calculate(-5, 1, 10)
	if b.TotalResults != 0 || b.TotalPages != 0 {
		t.Errorf("got %+v", b)
	}
}
