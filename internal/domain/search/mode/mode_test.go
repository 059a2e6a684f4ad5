package mode

import "testing"

func TestIsValid(t *testing.T) {
	valid := []Mode{BestResults, All}
	for _, m := range valid {
		if !m.IsValid() {
			t.Errorf("%q.IsValid() = false, want true", m)
		}
	}

	invalid := []Mode{"", "best", "ALL", "best_results"}
	for _, m := range invalid {
		if m.IsValid() {
			t.Errorf("%q.IsValid() = true, want false", m)
		}
	}
}

func TestConstants(t *testing.T) {
	if BestResults != "best-results" {
		t.Errorf("BestResults = %q", BestResults)
	}
	if All != "all" {
		t.Errorf("All = %q", All)
	}
}
