package listings

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/ombaa/ombaa/internal/matches"
	"github.com/ombaa/ombaa/internal/sites"
	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/pagination"
	"github.com/ombaa/ombaa/pkg/query"
	"github.com/ombaa/ombaa/pkg/repository"
	"github.com/ombaa/ombaa/pkg/storage"
)

// platformFeeRate applies when a contract command leaves the fee split
// unset: the platform takes 10% and the shepherd receives the remainder.
const platformFeeRate = 0.10

var listingProjection = query.NewProjectionMap("public", "grazing_listings", "l").
	Project("id", "ID").
	Project("site_id", "SiteID").
	Project("hectares_available", "HectaresAvailable").
	Project("start_date", "StartDate").
	Project("end_date", "EndDate").
	Project("price_per_hectare", "PricePerHectare").
	Project("status", "Status").
	Project("created_at", "CreatedAt")

type repo struct {
	db         *sql.DB
	accounts   users.System
	sites      sites.System
	matches    matches.System
	store      storage.System
	pagination pagination.Config
	logger     *slog.Logger
}

// New creates a listing repository implementing the System interface.
func New(
	db *sql.DB,
	accounts users.System,
	siteSys sites.System,
	matchSys matches.System,
	store storage.System,
	pageCfg pagination.Config,
	logger *slog.Logger,
) System {
	return &repo{
		db:         db,
		accounts:   accounts,
		sites:      siteSys,
		matches:    matchSys,
		store:      store,
		pagination: pageCfg,
		logger:     logger.With("system", "listings"),
	}
}

func (r *repo) Handler(maxUploadSize int64) *Handler {
	return NewHandler(r, r.accounts.Auth(), r.pagination, r.logger, maxUploadSize)
}

func (r *repo) List(ctx context.Context, status string, page pagination.PageRequest) (*pagination.PageResult[GrazingListing], error) {
	if status == "" {
		status = StatusOpen
	}
	if !validListingStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(listingProjection, query.SortField{Field: "CreatedAt", Descending: true}).
		WhereEquals("Status", status)

	countQ, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count listings: %w", err)
	}

	pageQ, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	listings, err := repository.QueryMany(ctx, r.db, pageQ, pageArgs, scanListing)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}

	result := pagination.NewPageResult(listings, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*GrazingListing, error) {
	listing, err := repository.QueryOne(
		ctx, r.db,
		`SELECT `+listingColumns+` FROM grazing_listings WHERE id = $1`,
		[]any{id},
		scanListing,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &listing, nil
}

func (r *repo) Create(ctx context.Context, ident users.Identity, cmd CreateCommand) (*GrazingListing, error) {
	if cmd.HectaresAvailable <= 0 {
		return nil, fmt.Errorf("%w: hectares_available must be positive", ErrInvalidInput)
	}

	start, end, err := parseDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, err
	}

	if err := r.checkSiteOwner(ctx, ident, cmd.SiteID); err != nil {
		return nil, err
	}

	listing, err := repository.QueryOne(
		ctx, r.db,
		`INSERT INTO grazing_listings(id, site_id, hectares_available, start_date, end_date, price_per_hectare, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING `+listingColumns,
		[]any{
			uuid.New(), cmd.SiteID, cmd.HectaresAvailable,
			start, end, cmd.PricePerHectare, StatusOpen,
		},
		scanListing,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	written, err := r.matches.Generate(ctx, listing.ID)
	if err != nil {
		r.logger.Warn("match generation failed", "listing", listing.ID, "error", err)
	}

	r.logger.Info("listing created", "id", listing.ID, "site", listing.SiteID, "matches", written)
	return &listing, nil
}

func (r *repo) Update(ctx context.Context, ident users.Identity, id uuid.UUID, cmd UpdateCommand) (*GrazingListing, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.checkSiteOwner(ctx, ident, current.SiteID); err != nil {
		return nil, err
	}

	next := *current
	if cmd.HectaresAvailable != nil {
		if *cmd.HectaresAvailable <= 0 {
			return nil, fmt.Errorf("%w: hectares_available must be positive", ErrInvalidInput)
		}
		next.HectaresAvailable = *cmd.HectaresAvailable
	}
	if cmd.StartDate != nil {
		start, err := parseDate(*cmd.StartDate)
		if err != nil {
			return nil, err
		}
		next.StartDate = start
	}
	if cmd.EndDate != nil {
		end, err := parseDate(*cmd.EndDate)
		if err != nil {
			return nil, err
		}
		next.EndDate = end
	}
	if !next.EndDate.After(next.StartDate) {
		return nil, fmt.Errorf("%w: end_date must follow start_date", ErrInvalidInput)
	}
	if cmd.PricePerHectare != nil {
		next.PricePerHectare = *cmd.PricePerHectare
	}
	if cmd.Status != nil {
		if !validListingStatus(*cmd.Status) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *cmd.Status)
		}
		next.Status = *cmd.Status
	}

	updated, err := repository.QueryOne(
		ctx, r.db,
		`UPDATE grazing_listings
		 SET hectares_available = $1, start_date = $2, end_date = $3, price_per_hectare = $4, status = $5
		 WHERE id = $6
		 RETURNING `+listingColumns,
		[]any{
			next.HectaresAvailable, next.StartDate, next.EndDate,
			next.PricePerHectare, next.Status, id,
		},
		scanListing,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if cmd.Regenerates() {
		written, err := r.matches.Regenerate(ctx, id)
		if err != nil {
			r.logger.Warn("match regeneration failed", "listing", id, "error", err)
		} else {
			r.logger.Info("matches regenerated", "listing", id, "written", written)
		}
	}

	return &updated, nil
}

func (r *repo) CreateContract(ctx context.Context, ident users.Identity, listingID uuid.UUID, cmd ContractCommand) (*GrazingContract, error) {
	listing, err := r.Find(ctx, listingID)
	if err != nil {
		return nil, err
	}

	if err := r.checkSiteOwner(ctx, ident, listing.SiteID); err != nil {
		return nil, err
	}

	if cmd.ShepherdID == uuid.Nil {
		return nil, fmt.Errorf("%w: shepherd_id required", ErrInvalidInput)
	}
	if cmd.TotalAmount <= 0 {
		return nil, fmt.Errorf("%w: total_amount must be positive", ErrInvalidInput)
	}
	if cmd.PlatformFee == 0 && cmd.ShepherdPayout == 0 {
		cmd.PlatformFee = cmd.TotalAmount * platformFeeRate
		cmd.ShepherdPayout = cmd.TotalAmount - cmd.PlatformFee
	}

	var pdfPath *string
	if len(cmd.Document) > 0 {
		key, err := r.storeDocument(ctx, listingID, cmd)
		if err != nil {
			return nil, err
		}
		pdfPath = &key
	}

	contract, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (GrazingContract, error) {
		c, err := repository.QueryOne(
			ctx, tx,
			`INSERT INTO grazing_contracts(id, listing_id, shepherd_id, total_amount, platform_fee, shepherd_payout, pdf_path, payment_status)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			 RETURNING `+contractColumns,
			[]any{
				uuid.New(), listingID, cmd.ShepherdID,
				cmd.TotalAmount, cmd.PlatformFee, cmd.ShepherdPayout,
				pdfPath, PaymentPending,
			},
			scanContract,
		)
		if err != nil {
			return GrazingContract{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		err = repository.ExecExpectOne(
			ctx, tx,
			`UPDATE grazing_listings SET status = $1 WHERE id = $2`,
			StatusContracted, listingID,
		)
		if err != nil {
			return GrazingContract{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
		}

		return c, nil
	})
	if err != nil {
		// The document is already in blob storage; drop it so a retried
		// request does not leave orphans behind.
		if pdfPath != nil {
			if derr := r.store.Delete(ctx, *pdfPath); derr != nil {
				r.logger.Warn("orphaned contract document", "key", *pdfPath, "error", derr)
			}
		}
		return nil, err
	}

	r.logger.Info("contract created", "id", contract.ID, "listing", listingID, "shepherd", cmd.ShepherdID)
	return &contract, nil
}

func (r *repo) storeDocument(ctx context.Context, listingID uuid.UUID, cmd ContractCommand) (string, error) {
	if _, err := api.PageCount(bytes.NewReader(cmd.Document), nil); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPDF, err)
	}

	name := cmd.Filename
	if name == "" {
		name = "contract.pdf"
	}
	key := path.Join("contracts", listingID.String(), name)

	if err := r.store.Upload(ctx, key, bytes.NewReader(cmd.Document), "application/pdf"); err != nil {
		return "", fmt.Errorf("upload contract document: %w", err)
	}
	return key, nil
}

func (r *repo) checkSiteOwner(ctx context.Context, ident users.Identity, siteID uuid.UUID) error {
	owner, err := r.sites.OwnerUserID(ctx, siteID)
	if err != nil {
		return fmt.Errorf("%w: site not found", ErrInvalidInput)
	}
	if owner != ident.UserID {
		return ErrForbidden
	}
	return nil
}

func parseDateRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseDate(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseDate(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: end_date must follow start_date", ErrInvalidInput)
	}
	return start, end, nil
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: dates must be YYYY-MM-DD", ErrInvalidInput)
	}
	return t, nil
}
