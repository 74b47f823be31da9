package random

import "testing"

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	b, err := NewSeed()
	if err != nil {
		t.Fatalf("NewSeed: %v", err)
	}
	if a == b {
		t.Errorf("Expected two seeds to differ, both were %d", a)
	}
}

func TestSeedNonZero(t *testing.T) {
	for range 16 {
		if Seed() == 0 {
			t.Fatal("Seed() returned 0")
		}
	}
}
