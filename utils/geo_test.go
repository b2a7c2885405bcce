package utils

import (
	"math"
	"testing"
)

func TestHaversineDistanceZero(t *testing.T) {
	if d := HaversineDistance(41.0082, 28.9784, 41.0082, 28.9784); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestHaversineDistanceSymmetric(t *testing.T) {
	a := HaversineDistance(40.7128, -74.0060, 51.5074, -0.1278)
	b := HaversineDistance(51.5074, -0.1278, 40.7128, -74.0060)
	if math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %f vs %f", a, b)
	}
}

func TestHaversineDistanceOneDegreeAtEquator(t *testing.T) {
	// One degree of longitude at the equator is about 111.19 km.
	d := HaversineDistance(0, 0, 0, 1)
	if math.Abs(d-111.19) > 0.5 {
		t.Fatalf("expected roughly 111.19 km, got %f", d)
	}
}

func TestValidateCoordinates(t *testing.T) {
	cases := []struct {
		lat, lng float64
		wantErr  bool
	}{
		{0, 0, false},
		{90, 180, false},
		{-90, -180, false},
		{91, 0, true},
		{-91, 0, true},
		{0, 181, true},
		{0, -181, true},
		{math.NaN(), 0, true},
		{0, math.Inf(1), true},
	}

	for _, tc := range cases {
		err := ValidateCoordinates(tc.lat, tc.lng)
		if tc.wantErr && err == nil {
			t.Errorf("expected error for (%f, %f)", tc.lat, tc.lng)
		}
		if !tc.wantErr && err != nil {
			t.Errorf("unexpected error for (%f, %f): %v", tc.lat, tc.lng, err)
		}
	}
}
