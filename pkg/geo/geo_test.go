package geo

import (
	"math"
	"testing"
)

func TestDistanceKM_SamePoint(t *testing.T) {
	t.Parallel()

	if d := DistanceKM(23.87, 90.39, 23.87, 90.39); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistanceKM_Symmetric(t *testing.T) {
	t.Parallel()

	cases := [][4]float64{
		{23.8103, 90.4125, 22.3569, 91.7832}, // Dhaka <-> Chattogram
		{-33.8688, 151.2093, 51.5074, -0.1278},
		{0, 0, 0, 180},
	}
	for _, c := range cases {
		ab := DistanceKM(c[0], c[1], c[2], c[3])
		ba := DistanceKM(c[2], c[3], c[0], c[1])
		if math.Abs(ab-ba) > 1e-9 {
			t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
		}
	}
}

func TestDistanceKM_KnownDistance(t *testing.T) {
	t.Parallel()

	// Dhaka to Chattogram, roughly 215 km great-circle.
	d := DistanceKM(23.8103, 90.4125, 22.3569, 91.7832)
	if d < 205 || d > 225 {
		t.Fatalf("unexpected distance: %v", d)
	}
}

func TestDistanceKM_OneDegreeLatitude(t *testing.T) {
	t.Parallel()

	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	d := DistanceKM(0, 0, 1, 0)
	if math.Abs(d-111.19) > 0.1 {
		t.Fatalf("expected ~111.19, got %v", d)
	}
}
