// Package directory implements the public marketplace directory: browseable
// verified shepherds and solar sites, region lookups, and the waitlist for
// parties not yet on the platform.
package directory

import (
	"time"

	"github.com/google/uuid"
)

// ShepherdEntry is the public view of a verified shepherd. Coordinates are
// withheld; the directory exposes only the address text.
type ShepherdEntry struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Address         string    `json:"address"`
	ExperienceYears int       `json:"experience_years"`
	TotalFlockSize  int       `json:"total_flock_size"`
}

// SiteEntry is the public view of a solar site.
type SiteEntry struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	TotalHectares  float64   `json:"total_hectares"`
	VegetationType string    `json:"vegetation_type"`
}

// Filter narrows directory listings by substring match on the entry's
// address or location text.
type Filter struct {
	Country string
	Region  string
}

// Waitlist sources.
const (
	SourceEnquiry  = "enquiry"
	SourceWaitlist = "waitlist"
)

// WaitlistEntry is a stored signup or enquiry. Email is unique across both
// sources.
type WaitlistEntry struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Message   string    `json:"message"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// EnquiryCommand carries a directory enquiry from an unauthenticated
// visitor.
type EnquiryCommand struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// WaitlistCommand carries a waitlist signup.
type WaitlistCommand struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}
