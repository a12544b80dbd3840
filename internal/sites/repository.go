package sites

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/repository"
)

type repo struct {
	db       *sql.DB
	accounts users.System
	logger   *slog.Logger
}

// New creates a site repository implementing the System interface.
func New(db *sql.DB, accounts users.System, logger *slog.Logger) System {
	return &repo{
		db:       db,
		accounts: accounts,
		logger:   logger.With("system", "sites"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.accounts.Auth(), r.logger)
}

func (r *repo) ListForUser(ctx context.Context, userID uuid.UUID) ([]SolarSite, error) {
	profile, err := r.accounts.FindSolarFarmProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	sites, err := repository.QueryMany(
		ctx, r.db,
		`SELECT `+siteColumns+` FROM solar_sites WHERE profile_id = $1 ORDER BY created_at DESC`,
		[]any{profile.ID},
		scanSite,
	)
	if err != nil {
		return nil, fmt.Errorf("query sites: %w", err)
	}
	return sites, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*SolarSite, error) {
	site, err := repository.QueryOne(
		ctx, r.db,
		`SELECT `+siteColumns+` FROM solar_sites WHERE id = $1`,
		[]any{id},
		scanSite,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &site, nil
}

func (r *repo) Create(ctx context.Context, userID uuid.UUID, cmd CreateCommand) (*SolarSite, error) {
	if cmd.Name == "" || cmd.Location == "" {
		return nil, fmt.Errorf("%w: name and location required", ErrInvalidInput)
	}
	if cmd.TotalHectares <= 0 {
		return nil, fmt.Errorf("%w: total_hectares must be positive", ErrInvalidInput)
	}

	profile, err := r.accounts.FindSolarFarmProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	site, err := repository.QueryOne(
		ctx, r.db,
		`INSERT INTO solar_sites(id, profile_id, name, location, total_hectares, vegetation_type, latitude, longitude)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING `+siteColumns,
		[]any{
			uuid.New(), profile.ID, cmd.Name, cmd.Location,
			cmd.TotalHectares, cmd.VegetationType, cmd.Latitude, cmd.Longitude,
		},
		scanSite,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("site created", "id", site.ID, "profile", profile.ID)
	return &site, nil
}

func (r *repo) OwnerUserID(ctx context.Context, siteID uuid.UUID) (uuid.UUID, error) {
	var owner uuid.UUID
	err := r.db.QueryRowContext(
		ctx,
		`SELECT p.user_id
		 FROM solar_sites s
		 JOIN solar_farm_profiles p ON p.id = s.profile_id
		 WHERE s.id = $1`,
		siteID,
	).Scan(&owner)
	if err != nil {
		return uuid.Nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return owner, nil
}

func (r *repo) RecordAnalytics(ctx context.Context, userID, siteID uuid.UUID, cmd AnalyticsCommand) (*SiteAnalytics, error) {
	if err := r.checkOwner(ctx, userID, siteID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", cmd.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidInput)
	}

	status := cmd.Status
	if status == "" && cmd.NDVIScore != nil {
		status = deriveStatus(*cmd.NDVIScore)
	}
	if status != "" && !validStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, cmd.Status)
	}

	a, err := repository.QueryOne(
		ctx, r.db,
		`INSERT INTO site_analytics(id, site_id, date, ndvi_score, status, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+analyticsColumns,
		[]any{uuid.New(), siteID, date, cmd.NDVIScore, status, cmd.Notes},
		scanAnalytics,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("analytics recorded", "site", siteID, "status", a.Status)
	return &a, nil
}

func (r *repo) ListAnalytics(ctx context.Context, userID, siteID uuid.UUID) ([]SiteAnalytics, error) {
	if err := r.checkOwner(ctx, userID, siteID); err != nil {
		return nil, err
	}

	records, err := repository.QueryMany(
		ctx, r.db,
		`SELECT `+analyticsColumns+` FROM site_analytics WHERE site_id = $1 ORDER BY date DESC`,
		[]any{siteID},
		scanAnalytics,
	)
	if err != nil {
		return nil, fmt.Errorf("query analytics: %w", err)
	}
	return records, nil
}

func (r *repo) checkOwner(ctx context.Context, userID, siteID uuid.UUID) error {
	owner, err := r.OwnerUserID(ctx, siteID)
	if err != nil {
		return err
	}
	if owner != userID {
		return ErrForbidden
	}
	return nil
}
