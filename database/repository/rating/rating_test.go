package ratingRepo

import (
	"math"
	"testing"
)

func TestNextAverage(t *testing.T) {
	// A resource at 4.0 over 10 reviews receiving a 5 moves to ~4.0909 over 11.
	got := NextAverage(4.0, 10, 5)
	want := 45.0 / 11.0
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %.6f, got %.6f", want, got)
	}
}

func TestNextAverage_FirstReview(t *testing.T) {
	if got := NextAverage(0, 0, 3); got != 3.0 {
		t.Fatalf("expected 3.0, got %f", got)
	}
}
