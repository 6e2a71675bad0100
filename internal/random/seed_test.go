package random

import "testing"

// TestNewSeedVaries ensures consecutive seeds are not constant.
func TestNewSeedVaries(t *testing.T) {
	seen := make(map[int64]bool)
	for i := 0; i < 8; i++ {
		seed, err := NewSeed()
		if err != nil {
			t.Fatalf("NewSeed returned error: %v", err)
		}
		seen[seed] = true
	}
	if len(seen) < 2 {
		t.Fatalf("expected varying seeds, got %d distinct value(s)", len(seen))
	}
}
