package listings

import "github.com/ombaa/ombaa/pkg/repository"

const listingColumns = "id, site_id, hectares_available, start_date, end_date, price_per_hectare, status, created_at"

const contractColumns = "id, listing_id, shepherd_id, total_amount, platform_fee, shepherd_payout, pdf_path, solar_farm_signed, shepherd_signed, payment_status, stripe_payment_id, created_at"

func scanListing(s repository.Scanner) (GrazingListing, error) {
	var l GrazingListing
	err := s.Scan(
		&l.ID,
		&l.SiteID,
		&l.HectaresAvailable,
		&l.StartDate,
		&l.EndDate,
		&l.PricePerHectare,
		&l.Status,
		&l.CreatedAt,
	)
	return l, err
}

func scanContract(s repository.Scanner) (GrazingContract, error) {
	var c GrazingContract
	err := s.Scan(
		&c.ID,
		&c.ListingID,
		&c.ShepherdID,
		&c.TotalAmount,
		&c.PlatformFee,
		&c.ShepherdPayout,
		&c.PDFPath,
		&c.SolarFarmSigned,
		&c.ShepherdSigned,
		&c.PaymentStatus,
		&c.StripePaymentID,
		&c.CreatedAt,
	)
	return c, err
}
