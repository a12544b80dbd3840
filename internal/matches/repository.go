package matches

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/repository"
)

const matchColumns = "id, listing_id, shepherd_id, status, match_score, created_at"

type repo struct {
	db       *sql.DB
	accounts users.System
	scorer   Scorer
	logger   *slog.Logger
}

// New creates a match repository implementing the System interface.
func New(db *sql.DB, accounts users.System, scorer Scorer, logger *slog.Logger) System {
	return &repo{
		db:       db,
		accounts: accounts,
		scorer:   scorer,
		logger:   logger.With("system", "matches"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.accounts.Auth(), r.logger)
}

func scanMatch(s repository.Scanner) (ShepherdMatch, error) {
	var m ShepherdMatch
	err := s.Scan(
		&m.ID,
		&m.ListingID,
		&m.ShepherdID,
		&m.Status,
		&m.MatchScore,
		&m.CreatedAt,
	)
	return m, err
}

func (r *repo) ListForUser(ctx context.Context, ident users.Identity) ([]ShepherdMatch, error) {
	switch ident.Role {
	case users.RoleShepherd:
		profile, err := r.accounts.FindShepherdProfile(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		return r.query(
			ctx,
			`SELECT `+matchColumns+` FROM shepherd_matches
			 WHERE shepherd_id = $1
			 ORDER BY created_at DESC`,
			profile.ID,
		)

	case users.RoleSolarFarm:
		return r.query(
			ctx,
			`SELECT m.id, m.listing_id, m.shepherd_id, m.status, m.match_score, m.created_at
			 FROM shepherd_matches m
			 JOIN grazing_listings l ON l.id = m.listing_id
			 JOIN solar_sites s ON s.id = l.site_id
			 JOIN solar_farm_profiles p ON p.id = s.profile_id
			 WHERE p.user_id = $1
			 ORDER BY m.created_at DESC`,
			ident.UserID,
		)
	}

	return nil, ErrForbidden
}

func (r *repo) query(ctx context.Context, q string, args ...any) ([]ShepherdMatch, error) {
	result, err := repository.QueryMany(ctx, r.db, q, args, scanMatch)
	if err != nil {
		return nil, fmt.Errorf("query matches: %w", err)
	}
	return result, nil
}

func (r *repo) UpdateStatus(ctx context.Context, ident users.Identity, id uuid.UUID, cmd UpdateCommand) (*ShepherdMatch, error) {
	if !validStatus(cmd.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, cmd.Status)
	}

	if err := r.checkOwnership(ctx, ident, id); err != nil {
		return nil, err
	}

	m, err := repository.QueryOne(
		ctx, r.db,
		`UPDATE shepherd_matches SET status = $1 WHERE id = $2
		 RETURNING `+matchColumns,
		[]any{cmd.Status, id},
		scanMatch,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("match updated", "id", id, "status", m.Status)
	return &m, nil
}

// checkOwnership verifies the caller sits on one side of the match: the
// matched shepherd, or the operator owning the listing's site.
func (r *repo) checkOwnership(ctx context.Context, ident users.Identity, id uuid.UUID) error {
	switch ident.Role {
	case users.RoleShepherd:
		profile, err := r.accounts.FindShepherdProfile(ctx, ident.UserID)
		if err != nil {
			return err
		}

		var shepherdID uuid.UUID
		err = r.db.QueryRowContext(
			ctx,
			`SELECT shepherd_id FROM shepherd_matches WHERE id = $1`,
			id,
		).Scan(&shepherdID)
		if err != nil {
			return repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		if shepherdID != profile.ID {
			return ErrForbidden
		}
		return nil

	case users.RoleSolarFarm:
		var owner uuid.UUID
		err := r.db.QueryRowContext(
			ctx,
			`SELECT p.user_id
			 FROM shepherd_matches m
			 JOIN grazing_listings l ON l.id = m.listing_id
			 JOIN solar_sites s ON s.id = l.site_id
			 JOIN solar_farm_profiles p ON p.id = s.profile_id
			 WHERE m.id = $1`,
			id,
		).Scan(&owner)
		if err != nil {
			return repository.MapError(err, ErrNotFound, ErrDuplicate)
		}
		if owner != ident.UserID {
			return ErrForbidden
		}
		return nil
	}

	return ErrForbidden
}

func (r *repo) Generate(ctx context.Context, listingID uuid.UUID) (int, error) {
	written, candidates, err := generate(ctx, r, r.scorer, listingID)
	if err != nil {
		return written, err
	}

	r.logger.Info(
		"matches generated",
		"listing", listingID,
		"candidates", candidates,
		"written", written,
	)
	return written, nil
}

func (r *repo) Regenerate(ctx context.Context, listingID uuid.UUID) (int, error) {
	written, candidates, err := regenerate(ctx, r, r.scorer, listingID)
	if err != nil {
		return written, err
	}

	r.logger.Info(
		"matches regenerated",
		"listing", listingID,
		"candidates", candidates,
		"written", written,
	)
	return written, nil
}

// insertPending writes a pending match. A shepherd already holding an
// accepted or rejected match for this listing keeps it; the conflict
// target skips the insert.
func (r *repo) insertPending(ctx context.Context, listingID, shepherdID uuid.UUID, score float64) (bool, error) {
	result, err := r.db.ExecContext(
		ctx,
		`INSERT INTO shepherd_matches(id, listing_id, shepherd_id, status, match_score)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (listing_id, shepherd_id) DO NOTHING`,
		uuid.New(), listingID, shepherdID, StatusPending, score,
	)
	if err != nil {
		return false, err
	}
	n, _ := result.RowsAffected()
	return n > 0, nil
}

func (r *repo) deletePending(ctx context.Context, listingID uuid.UUID) error {
	_, err := r.db.ExecContext(
		ctx,
		`DELETE FROM shepherd_matches WHERE listing_id = $1 AND status = $2`,
		listingID, StatusPending,
	)
	if err != nil {
		return fmt.Errorf("delete pending matches: %w", err)
	}
	return nil
}

func (r *repo) listingContext(ctx context.Context, listingID uuid.UUID) (Listing, error) {
	l := Listing{ID: listingID}
	err := r.db.QueryRowContext(
		ctx,
		`SELECT l.hectares_available, l.start_date, l.end_date, s.latitude, s.longitude
		 FROM grazing_listings l
		 JOIN solar_sites s ON s.id = l.site_id
		 WHERE l.id = $1`,
		listingID,
	).Scan(&l.Hectares, &l.StartDate, &l.EndDate, &l.Latitude, &l.Longitude)
	if err != nil {
		return Listing{}, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return l, nil
}

func (r *repo) candidates(ctx context.Context) ([]Candidate, error) {
	scan := func(s repository.Scanner) (Candidate, error) {
		var c Candidate
		err := s.Scan(
			&c.ShepherdID,
			&c.ExperienceYears,
			&c.FlockSize,
			&c.Latitude,
			&c.Longitude,
		)
		return c, err
	}

	candidates, err := repository.QueryMany(
		ctx, r.db,
		`SELECT p.id, p.experience_years, COALESCE(SUM(f.size), 0)::int, p.latitude, p.longitude
		 FROM shepherd_profiles p
		 LEFT JOIN flocks f ON f.shepherd_id = p.id
		 WHERE p.is_verified
		 GROUP BY p.id, p.experience_years, p.latitude, p.longitude`,
		nil,
		scan,
	)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	return candidates, nil
}
