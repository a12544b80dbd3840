// Package geomatch pairs solar parks with sheep farms by great-circle
// proximity. Matching is pure computation over combined datasets; results
// reference records by their stable dataset ids.
package geomatch

import (
	"math"
	"sort"

	"github.com/ombaa/ombaa/internal/etl/normalize"
)

// DefaultMaxDistanceKm is the matching radius used when none is configured.
const DefaultMaxDistanceKm = 50.0

const earthRadiusKm = 6371.0

// FarmMatch is one farm within a park's match list. DistanceKm is rounded
// to one decimal place.
type FarmMatch struct {
	FarmID     string  `json:"sheep_farm_id"`
	FarmName   string  `json:"sheep_farm_name"`
	DistanceKm float64 `json:"distance_km"`
}

// ParkMatches holds a park's candidate farms sorted by ascending distance.
// Parks with no farm in range are never emitted.
type ParkMatches struct {
	ParkID   string      `json:"solar_park_id"`
	ParkName string      `json:"solar_park_name"`
	Country  string      `json:"country"`
	Region   string      `json:"region"`
	Matches  []FarmMatch `json:"potential_matches"`
}

// Haversine returns the great-circle distance in kilometers between two
// points given in degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

type candidate struct {
	farm     normalize.Farm
	distance float64
}

// FindPotentialMatches computes the match list for every park with known
// coordinates against every farm with known coordinates. Farms beyond
// maxDistanceKm are dropped; comparison uses the unrounded distance and ties
// preserve the farms' input order.
func FindPotentialMatches(parks []normalize.Site, farms []normalize.Farm, maxDistanceKm float64) []ParkMatches {
	matches := make([]ParkMatches, 0)

	for _, park := range parks {
		if park.Coordinates.Latitude == nil || park.Coordinates.Longitude == nil {
			continue
		}

		var kept []candidate
		for _, farm := range farms {
			if farm.Coordinates.Latitude == nil || farm.Coordinates.Longitude == nil {
				continue
			}

			d := Haversine(
				*park.Coordinates.Latitude, *park.Coordinates.Longitude,
				*farm.Coordinates.Latitude, *farm.Coordinates.Longitude,
			)
			if d <= maxDistanceKm {
				kept = append(kept, candidate{farm: farm, distance: d})
			}
		}

		if len(kept) == 0 {
			continue
		}

		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].distance < kept[j].distance
		})

		farmMatches := make([]FarmMatch, len(kept))
		for i, c := range kept {
			farmMatches[i] = FarmMatch{
				FarmID:     c.farm.ID,
				FarmName:   c.farm.Name,
				DistanceKm: math.Round(c.distance*10) / 10,
			}
		}

		matches = append(matches, ParkMatches{
			ParkID:   park.ID,
			ParkName: park.Name,
			Country:  park.Country,
			Region:   park.Region,
			Matches:  farmMatches,
		})
	}

	return matches
}
