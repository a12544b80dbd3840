// Package listings implements the grazing listing domain: open offers of
// hectares at a site for a date range, and the contracts drawn against them.
// Listing writes trigger match generation as a synchronous, post-commit step.
package listings

import (
	"time"

	"github.com/google/uuid"
)

// Listing statuses.
const (
	StatusOpen       = "open"
	StatusMatched    = "matched"
	StatusContracted = "contracted"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// GrazingListing is an open offer of grazeable hectares at a site.
type GrazingListing struct {
	ID                uuid.UUID `json:"id"`
	SiteID            uuid.UUID `json:"site_id"`
	HectaresAvailable float64   `json:"hectares_available"`
	StartDate         time.Time `json:"start_date"`
	EndDate           time.Time `json:"end_date"`
	PricePerHectare   float64   `json:"price_per_hectare"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// CreateCommand carries the data for a new listing. Dates are YYYY-MM-DD.
type CreateCommand struct {
	SiteID            uuid.UUID `json:"site_id"`
	HectaresAvailable float64   `json:"hectares_available"`
	StartDate         string    `json:"start_date"`
	EndDate           string    `json:"end_date"`
	PricePerHectare   float64   `json:"price_per_hectare"`
}

// UpdateCommand is a partial listing update. Nil fields keep their stored
// value. Changing hectares or dates regenerates the listing's pending
// matches.
type UpdateCommand struct {
	HectaresAvailable *float64 `json:"hectares_available"`
	StartDate         *string  `json:"start_date"`
	EndDate           *string  `json:"end_date"`
	PricePerHectare   *float64 `json:"price_per_hectare"`
	Status            *string  `json:"status"`
}

// Regenerates reports whether the update touches a field that invalidates
// existing pending matches.
func (c UpdateCommand) Regenerates() bool {
	return c.HectaresAvailable != nil || c.StartDate != nil || c.EndDate != nil
}

// Contract payment statuses. Settlement is a placeholder; rows never move
// past pending without operator intervention.
const (
	PaymentPending  = "pending"
	PaymentPaid     = "paid"
	PaymentRefunded = "refunded"
)

// GrazingContract is the agreement drawn against a listing. At most one
// contract exists per listing. PDFPath points at the signed document in
// blob storage when one has been uploaded.
type GrazingContract struct {
	ID              uuid.UUID `json:"id"`
	ListingID       uuid.UUID `json:"listing_id"`
	ShepherdID      uuid.UUID `json:"shepherd_id"`
	TotalAmount     float64   `json:"total_amount"`
	PlatformFee     float64   `json:"platform_fee"`
	ShepherdPayout  float64   `json:"shepherd_payout"`
	PDFPath         *string   `json:"pdf_path,omitempty"`
	SolarFarmSigned bool      `json:"solar_farm_signed"`
	ShepherdSigned  bool      `json:"shepherd_signed"`
	PaymentStatus   string    `json:"payment_status"`
	StripePaymentID *string   `json:"stripe_payment_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ContractCommand carries the data for drawing a contract. Document holds
// the signed PDF bytes when the request includes one.
type ContractCommand struct {
	ShepherdID     uuid.UUID
	TotalAmount    float64
	PlatformFee    float64
	ShepherdPayout float64
	Document       []byte
	Filename       string
}

func validListingStatus(status string) bool {
	switch status {
	case StatusOpen, StatusMatched, StatusContracted, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
