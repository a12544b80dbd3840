// Package users implements the account domain for Ombaa: registration,
// credential verification, JWT issuance, and role-specific profile
// management for solar farm operators and shepherds.
package users

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleSolarFarm = "solar_farm"
	RoleShepherd  = "shepherd"
	RoleAdmin     = "admin"
)

// User is an authenticated account. The password hash never leaves the
// domain package.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	passwordHash string
}

// SolarFarmProfile is the operator-side profile owned by a solar_farm user.
type SolarFarmProfile struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"user_id"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Phone         string    `json:"phone"`
	Address       string    `json:"address"`
	CreatedAt     time.Time `json:"created_at"`
}

// ShepherdProfile is the grazier-side profile owned by a shepherd user.
// Latitude/Longitude are optional; when present they feed proximity scoring.
type ShepherdProfile struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Address         string    `json:"address"`
	ExperienceYears int       `json:"experience_years"`
	IsVerified      bool      `json:"is_verified"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Flock is a shepherd's herd registration.
type Flock struct {
	ID          uuid.UUID `json:"id"`
	ShepherdID  uuid.UUID `json:"shepherd_id"`
	Size        int       `json:"size"`
	Breed       string    `json:"breed"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// RegisterCommand carries a registration request. Role selects which profile
// fields apply; the profile row is created in the same transaction as the
// user row.
type RegisterCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`

	// solar_farm profile fields
	CompanyName   string `json:"company_name"`
	ContactPerson string `json:"contact_person"`

	// shepherd profile fields
	Name            string   `json:"name"`
	ExperienceYears int      `json:"experience_years"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	FlockSize       *int     `json:"flock_size"`
	FlockBreed      string   `json:"flock_breed"`

	// shared profile fields
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// LoginCommand carries a credential check request.
type LoginCommand struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the successful login response.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Profile is the role-dispatched profile view for the authenticated user.
// Exactly one of SolarFarm and Shepherd is set.
type Profile struct {
	SolarFarm *SolarFarmProfile
	Shepherd  *ShepherdProfile
}

// Payload returns the populated profile for response encoding.
func (p Profile) Payload() any {
	if p.SolarFarm != nil {
		return p.SolarFarm
	}
	return p.Shepherd
}

// UpdateProfileCommand is a partial profile update. Nil fields keep their
// stored value. Fields outside the user's role are ignored.
type UpdateProfileCommand struct {
	CompanyName     *string  `json:"company_name"`
	ContactPerson   *string  `json:"contact_person"`
	Name            *string  `json:"name"`
	Phone           *string  `json:"phone"`
	Address         *string  `json:"address"`
	ExperienceYears *int     `json:"experience_years"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
}

func validRole(role string) bool {
	return role == RoleSolarFarm || role == RoleShepherd
}
