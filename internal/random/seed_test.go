package random

import "testing"

func TestNewReturnsUsableSource(t *testing.T) {
	rng, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if n := rng.Intn(10); n < 0 || n >= 10 {
		t.Fatalf("Intn(10)=%d", n)
	}
}
