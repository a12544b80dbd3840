package geomatch_test

import (
	"math"
	"testing"

	"github.com/ombaa/ombaa/internal/etl/geomatch"
	"github.com/ombaa/ombaa/internal/etl/normalize"
)

func fptr(v float64) *float64 { return &v }

func coords(lat, lon float64) normalize.Coordinates {
	return normalize.Coordinates{Latitude: fptr(lat), Longitude: fptr(lon)}
}

func TestHaversine(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{"identical points", 52.37, 4.89, 52.37, 4.89, 0, 1e-9},
		{"amsterdam to rotterdam", 52.3676, 4.9041, 51.9244, 4.4777, 57.8, 0.5},
		{"london to edinburgh", 51.5074, -0.1278, 55.9533, -3.1883, 534, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := geomatch.Haversine(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Haversine() = %v, want %v ± %v", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestHaversineSymmetry(t *testing.T) {
	a := geomatch.Haversine(52.37, 4.89, 51.92, 4.48)
	b := geomatch.Haversine(51.92, 4.48, 52.37, 4.89)
	if math.Abs(a-b) > 1e-9 {
		t.Errorf("Haversine not symmetric: %v != %v", a, b)
	}
}

func TestFindPotentialMatches(t *testing.T) {
	parks := []normalize.Site{
		{
			ID:          "park-1",
			Name:        "Zonnepark Almere",
			Country:     "Netherlands",
			Region:      "Flevoland",
			Coordinates: coords(52.37, 5.22),
		},
		{
			ID:          "park-2",
			Name:        "Remote Park",
			Country:     "Netherlands",
			Region:      "Groningen",
			Coordinates: coords(58.0, 10.0),
		},
		{
			ID:   "park-3",
			Name: "No Coordinates Park",
		},
	}

	farms := []normalize.Farm{
		{ID: "farm-near", Name: "Near Farm", Coordinates: coords(52.40, 5.25)},
		{ID: "farm-far", Name: "Far Farm", Coordinates: coords(52.70, 5.60)},
		{ID: "farm-out", Name: "Out of Range Farm", Coordinates: coords(48.0, 2.0)},
		{ID: "farm-nil", Name: "No Coordinates Farm"},
	}

	matches := geomatch.FindPotentialMatches(parks, farms, 50)

	if len(matches) != 1 {
		t.Fatalf("FindPotentialMatches() returned %d parks, want 1", len(matches))
	}

	m := matches[0]
	if m.ParkID != "park-1" {
		t.Errorf("ParkID = %q, want %q", m.ParkID, "park-1")
	}
	if m.Region != "Flevoland" {
		t.Errorf("Region = %q, want %q", m.Region, "Flevoland")
	}
	if len(m.Matches) != 2 {
		t.Fatalf("Matches length = %d, want 2", len(m.Matches))
	}
	if m.Matches[0].FarmID != "farm-near" || m.Matches[1].FarmID != "farm-far" {
		t.Errorf("matches not sorted by distance: %+v", m.Matches)
	}
	for _, fm := range m.Matches {
		if fm.DistanceKm > 50 {
			t.Errorf("match %s beyond 50km: %v", fm.FarmID, fm.DistanceKm)
		}
		if got := math.Round(fm.DistanceKm*10) / 10; got != fm.DistanceKm {
			t.Errorf("DistanceKm %v not rounded to one decimal", fm.DistanceKm)
		}
	}
}

func TestFindPotentialMatchesSortedAscending(t *testing.T) {
	parks := []normalize.Site{
		{ID: "p", Name: "P", Coordinates: coords(50.0, 4.0)},
	}
	farms := []normalize.Farm{
		{ID: "f1", Coordinates: coords(50.30, 4.0)},
		{ID: "f2", Coordinates: coords(50.05, 4.0)},
		{ID: "f3", Coordinates: coords(50.20, 4.0)},
	}

	matches := geomatch.FindPotentialMatches(parks, farms, 50)
	if len(matches) != 1 {
		t.Fatalf("got %d parks, want 1", len(matches))
	}

	prev := -1.0
	for i, fm := range matches[0].Matches {
		if fm.DistanceKm < prev {
			t.Fatalf("Matches[%d] = %v km, out of order", i, fm.DistanceKm)
		}
		prev = fm.DistanceKm
	}
	if matches[0].Matches[0].FarmID != "f2" {
		t.Errorf("closest farm = %q, want %q", matches[0].Matches[0].FarmID, "f2")
	}
}
