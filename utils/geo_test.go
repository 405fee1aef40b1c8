package utils

import (
	"math"
	"testing"
)

func TestDistanceKm(t *testing.T) {
	// Jakarta to Bandung is roughly 120 km great-circle.
	got := DistanceKm(-6.2088, 106.8456, -6.9175, 107.6191)
	if got < 110 || got > 130 {
		t.Fatalf("Jakarta-Bandung distance = %.1f km, want ~120", got)
	}

	if d := DistanceKm(-6.2088, 106.8456, -6.2088, 106.8456); math.Abs(d) > 1e-9 {
		t.Fatalf("zero distance = %v, want 0", d)
	}

	// Symmetry.
	ab := DistanceKm(-6.2088, 106.8456, -7.2575, 112.7521)
	ba := DistanceKm(-7.2575, 112.7521, -6.2088, 106.8456)
	if math.Abs(ab-ba) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}
