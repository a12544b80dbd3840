package matches_test

import (
	"math"
	"testing"

	"github.com/ombaa/ombaa/internal/matches"
)

func fptr(v float64) *float64 { return &v }

func listing(hectares float64, lat, lng *float64) matches.Listing {
	return matches.Listing{
		Hectares:  hectares,
		Latitude:  lat,
		Longitude: lng,
	}
}

func candidate(flock, years int, lat, lng *float64) matches.Candidate {
	return matches.Candidate{
		FlockSize:       flock,
		ExperienceYears: years,
		Latitude:        lat,
		Longitude:       lng,
	}
}

func TestScore(t *testing.T) {
	scorer := matches.NewScorer(50, false)

	tests := []struct {
		name      string
		listing   matches.Listing
		candidate matches.Candidate
		want      float64
		tolerance float64
	}{
		{
			// colocated, flock fills capacity exactly, tenure at cap:
			// every factor saturates.
			name:      "perfect match",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(100, 10, fptr(52.0), fptr(5.0)),
			want:      1.0,
			tolerance: 1e-9,
		},
		{
			// beyond the radius: proximity 0, everything else full.
			name:      "out of range",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(100, 10, fptr(40.0), fptr(5.0)),
			want:      0.6,
			tolerance: 1e-9,
		},
		{
			// half the capacity halves flock fit: 0.40 + 0.15 + 0.20 + 0.10.
			name:      "undersized flock",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(50, 10, fptr(52.0), fptr(5.0)),
			want:      0.85,
			tolerance: 1e-9,
		},
		{
			// double the capacity also halves flock fit.
			name:      "oversized flock",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(200, 10, fptr(52.0), fptr(5.0)),
			want:      0.85,
			tolerance: 1e-9,
		},
		{
			// 5 of 10 years: experience factor 0.5.
			name:      "partial experience",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(100, 5, fptr(52.0), fptr(5.0)),
			want:      0.9,
			tolerance: 1e-9,
		},
		{
			// tenure beyond the cap saturates, not exceeds.
			name:      "experience capped",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(100, 40, fptr(52.0), fptr(5.0)),
			want:      1.0,
			tolerance: 1e-9,
		},
		{
			// no flock and no tenure: only availability contributes.
			name:      "empty profile",
			listing:   listing(10, fptr(52.0), fptr(5.0)),
			candidate: candidate(0, 0, fptr(52.0), fptr(5.0)),
			want:      0.5,
			tolerance: 1e-9,
		},
		{
			// missing coordinates without fallback: proximity scores 0.
			name:      "no coordinates",
			listing:   listing(10, nil, nil),
			candidate: candidate(100, 10, fptr(52.0), fptr(5.0)),
			want:      0.6,
			tolerance: 1e-9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scorer.Score(tt.listing, tt.candidate)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Score() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestScoreProximityLinear(t *testing.T) {
	scorer := matches.NewScorer(50, false)

	// 25km of a 50km radius: proximity 0.5, other factors saturated.
	l := listing(10, fptr(52.0), fptr(5.0))
	c := candidate(100, 10, fptr(52.0+25.0/111.0), fptr(5.0))

	got := scorer.Score(l, c)
	want := 0.40*0.5 + 0.30 + 0.20 + 0.10
	if math.Abs(got-want) > 0.01 {
		t.Errorf("Score() = %v, want %v ± 0.01", got, want)
	}
}

func TestScoreRandomFallback(t *testing.T) {
	scorer := matches.NewScorer(50, true)

	l := listing(10, nil, nil)
	c := candidate(100, 10, fptr(52.0), fptr(5.0))

	for range 100 {
		got := scorer.Score(l, c)
		if got < 0.5 || got >= 1.0 {
			t.Fatalf("fallback score %v outside [0.5, 1.0)", got)
		}
	}
}

func TestScoreRandomFallbackIgnoredWithCoordinates(t *testing.T) {
	scorer := matches.NewScorer(50, true)

	l := listing(10, fptr(52.0), fptr(5.0))
	c := candidate(100, 10, fptr(52.0), fptr(5.0))

	// Deterministic when both sides carry coordinates.
	first := scorer.Score(l, c)
	for range 10 {
		if got := scorer.Score(l, c); got != first {
			t.Fatalf("score not deterministic with coordinates: %v != %v", got, first)
		}
	}
}

func TestNewScorerDefaultsRadius(t *testing.T) {
	scorer := matches.NewScorer(0, false)
	if scorer.MaxDistanceKm != 50 {
		t.Errorf("MaxDistanceKm = %v, want 50", scorer.MaxDistanceKm)
	}
}

func TestPersistGate(t *testing.T) {
	if matches.PersistGate != 0.5 {
		t.Errorf("PersistGate = %v, want 0.5", matches.PersistGate)
	}
}
