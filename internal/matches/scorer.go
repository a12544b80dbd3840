package matches

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/etl/geomatch"
)

// PersistGate is the minimum score at which a match row is persisted.
const PersistGate = 0.5

// Factor weights. Availability keeps its weight even though calendars do not
// exist yet, so adding them later does not reshuffle existing scores.
const (
	weightProximity    = 0.40
	weightFlockFit     = 0.30
	weightExperience   = 0.20
	weightAvailability = 0.10
)

// stockingRate is the assumed grazing capacity in sheep per hectare of
// listed ground.
const stockingRate = 10.0

// experienceCapYears is the tenure beyond which the experience factor
// saturates.
const experienceCapYears = 10

// Listing is the scorer's view of a grazing listing. Coordinates come from
// the listing's site and may be absent.
type Listing struct {
	ID        uuid.UUID
	Hectares  float64
	StartDate time.Time
	EndDate   time.Time
	Latitude  *float64
	Longitude *float64
}

// Candidate is the scorer's view of a verified shepherd profile.
type Candidate struct {
	ShepherdID      uuid.UUID
	ExperienceYears int
	FlockSize       int
	Latitude        *float64
	Longitude       *float64
}

// Scorer computes listing-shepherd compatibility as a weighted sum of
// proximity, flock fit, experience, and availability, each in [0,1].
type Scorer struct {
	// MaxDistanceKm bounds the proximity factor: distance 0 scores 1,
	// MaxDistanceKm or beyond scores 0, linear in between.
	MaxDistanceKm float64

	// RandomFallback replaces the whole score with a uniform value in
	// [0.5, 1.0) when either side lacks coordinates.
	RandomFallback bool
}

// NewScorer creates a Scorer with the given matching radius.
func NewScorer(maxDistanceKm float64, randomFallback bool) Scorer {
	if maxDistanceKm <= 0 {
		maxDistanceKm = geomatch.DefaultMaxDistanceKm
	}
	return Scorer{
		MaxDistanceKm:  maxDistanceKm,
		RandomFallback: randomFallback,
	}
}

// Score returns the compatibility score for a candidate against a listing.
func (s Scorer) Score(l Listing, c Candidate) float64 {
	if !hasCoordinates(l.Latitude, l.Longitude) || !hasCoordinates(c.Latitude, c.Longitude) {
		if s.RandomFallback {
			return 0.5 + rand.Float64()*0.5
		}
		return s.weighted(0, flockFit(l.Hectares, c.FlockSize), experience(c.ExperienceYears))
	}

	d := geomatch.Haversine(*l.Latitude, *l.Longitude, *c.Latitude, *c.Longitude)
	return s.weighted(s.proximity(d), flockFit(l.Hectares, c.FlockSize), experience(c.ExperienceYears))
}

func (s Scorer) weighted(proximity, fit, exp float64) float64 {
	const availability = 1.0 // no calendars yet; every candidate is available
	return weightProximity*proximity +
		weightFlockFit*fit +
		weightExperience*exp +
		weightAvailability*availability
}

func (s Scorer) proximity(distanceKm float64) float64 {
	if distanceKm >= s.MaxDistanceKm {
		return 0
	}
	return 1 - distanceKm/s.MaxDistanceKm
}

// flockFit compares flock size against the listing's grazing capacity at
// the stocking-rate heuristic. A flock matching capacity exactly scores 1;
// over- and under-sized flocks degrade proportionally.
func flockFit(hectares float64, flockSize int) float64 {
	capacity := hectares * stockingRate
	if capacity <= 0 || flockSize <= 0 {
		return 0
	}

	flock := float64(flockSize)
	if flock <= capacity {
		return flock / capacity
	}
	return capacity / flock
}

func experience(years int) float64 {
	if years <= 0 {
		return 0
	}
	if years >= experienceCapYears {
		return 1
	}
	return float64(years) / experienceCapYears
}

func hasCoordinates(lat, lng *float64) bool {
	return lat != nil && lng != nil
}
