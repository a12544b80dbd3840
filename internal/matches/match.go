// Package matches implements listing-to-shepherd match generation, scoring,
// and status transitions.
package matches

import (
	"time"

	"github.com/google/uuid"
)

// Match statuses.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// ShepherdMatch is a scored pairing between a grazing listing and a shepherd
// profile. Score is in [0,1]; only matches above the persistence gate are
// stored.
type ShepherdMatch struct {
	ID         uuid.UUID `json:"id"`
	ListingID  uuid.UUID `json:"listing_id"`
	ShepherdID uuid.UUID `json:"shepherd_id"`
	Status     string    `json:"status"`
	MatchScore float64   `json:"match_score"`
	CreatedAt  time.Time `json:"created_at"`
}

// UpdateCommand carries a match status transition.
type UpdateCommand struct {
	Status string `json:"status"`
}

func validStatus(status string) bool {
	return status == StatusPending || status == StatusAccepted || status == StatusRejected
}
