// Package sites implements the solar site domain: site registration for
// solar farm operators and NDVI observation records per site.
package sites

import (
	"time"

	"github.com/google/uuid"
)

// SolarSite is a plot of panel-covered land owned by a solar farm profile.
// Latitude/Longitude are optional; when present they feed proximity scoring.
type SolarSite struct {
	ID             uuid.UUID `json:"id"`
	ProfileID      uuid.UUID `json:"profile_id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	TotalHectares  float64   `json:"total_hectares"`
	VegetationType string    `json:"vegetation_type"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateCommand carries the data for registering a new site.
type CreateCommand struct {
	Name           string   `json:"name"`
	Location       string   `json:"location"`
	TotalHectares  float64  `json:"total_hectares"`
	VegetationType string   `json:"vegetation_type"`
	Latitude       *float64 `json:"latitude"`
	Longitude      *float64 `json:"longitude"`
}

// Analytics traffic-light statuses.
const (
	StatusGreen  = "green"
	StatusYellow = "yellow"
	StatusRed    = "red"
)

// SiteAnalytics is one recorded vegetation observation for a site. NDVI is
// recorded, not computed; Status is the traffic-light reading.
type SiteAnalytics struct {
	ID        uuid.UUID `json:"id"`
	SiteID    uuid.UUID `json:"site_id"`
	Date      time.Time `json:"date"`
	NDVIScore *float64  `json:"ndvi_score"`
	Status    string    `json:"status"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
}

// AnalyticsCommand carries one observation. An empty Status is derived from
// NDVIScore when present.
type AnalyticsCommand struct {
	Date      string   `json:"date"`
	NDVIScore *float64 `json:"ndvi_score"`
	Status    string   `json:"status"`
	Notes     string   `json:"notes"`
}

func validStatus(status string) bool {
	return status == StatusGreen || status == StatusYellow || status == StatusRed
}

// deriveStatus maps an NDVI score onto the traffic-light scale.
func deriveStatus(ndvi float64) string {
	switch {
	case ndvi >= 0.6:
		return StatusGreen
	case ndvi >= 0.3:
		return StatusYellow
	default:
		return StatusRed
	}
}
