package directory

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/etl/regions"
	"github.com/ombaa/ombaa/pkg/pagination"
	"github.com/ombaa/ombaa/pkg/query"
	"github.com/ombaa/ombaa/pkg/repository"
)

const waitlistColumns = "id, email, name, role, message, source, created_at"

var siteProjection = query.NewProjectionMap("public", "solar_sites", "s").
	Project("id", "ID").
	Project("name", "Name").
	Project("location", "Location").
	Project("total_hectares", "TotalHectares").
	Project("vegetation_type", "VegetationType")

type repo struct {
	db         *sql.DB
	resolver   *regions.Resolver
	pagination pagination.Config
	logger     *slog.Logger
}

// New creates a directory repository implementing the System interface.
// The resolver supplies the region names served by the regions endpoint.
func New(db *sql.DB, resolver *regions.Resolver, pageCfg pagination.Config, logger *slog.Logger) System {
	return &repo{
		db:         db,
		resolver:   resolver,
		pagination: pageCfg,
		logger:     logger.With("system", "directory"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.pagination, r.logger)
}

func (r *repo) Shepherds(ctx context.Context, filter Filter, page pagination.PageRequest) (*pagination.PageResult[ShepherdEntry], error) {
	page.Normalize(r.pagination)

	countQ, countArgs := appendFilter(
		`SELECT COUNT(*) FROM shepherd_profiles p WHERE p.is_verified`,
		filter, "p.address", nil,
	)
	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count shepherd directory: %w", err)
	}

	q := `SELECT p.id, p.name, p.address, p.experience_years, COALESCE(SUM(f.size), 0)::int
	 FROM shepherd_profiles p
	 LEFT JOIN flocks f ON f.shepherd_id = p.id
	 WHERE p.is_verified`
	q, args := appendFilter(q, filter, "p.address", nil)
	q += ` GROUP BY p.id, p.name, p.address, p.experience_years
	 ORDER BY p.name`
	q += fmt.Sprintf(" LIMIT %d OFFSET %d", page.PageSize, page.Offset())

	scan := func(s repository.Scanner) (ShepherdEntry, error) {
		var e ShepherdEntry
		err := s.Scan(&e.ID, &e.Name, &e.Address, &e.ExperienceYears, &e.TotalFlockSize)
		return e, err
	}

	entries, err := repository.QueryMany(ctx, r.db, q, args, scan)
	if err != nil {
		return nil, fmt.Errorf("query shepherd directory: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Sites(ctx context.Context, filter Filter, page pagination.PageRequest) (*pagination.PageResult[SiteEntry], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(siteProjection, query.SortField{Field: "Name"}).
		WhereLike("Location", &filter.Country).
		WhereLike("Location", &filter.Region)

	countQ, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countQ, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count site directory: %w", err)
	}

	scan := func(s repository.Scanner) (SiteEntry, error) {
		var e SiteEntry
		err := s.Scan(&e.ID, &e.Name, &e.Location, &e.TotalHectares, &e.VegetationType)
		return e, err
	}

	pageQ, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, r.db, pageQ, pageArgs, scan)
	if err != nil {
		return nil, fmt.Errorf("query site directory: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

// appendFilter adds case-sensitive LIKE substring conditions on the given
// text column for the country and region filter values. The shepherd query
// joins flocks, so it cannot go through the projection builder.
func appendFilter(q string, filter Filter, column string, args []any) (string, []any) {
	for _, value := range []string{filter.Country, filter.Region} {
		if value == "" {
			continue
		}
		args = append(args, "%"+value+"%")
		q += fmt.Sprintf(" AND %s LIKE $%d", column, len(args))
	}
	return q, args
}

func (r *repo) Enquire(ctx context.Context, cmd EnquiryCommand) (*WaitlistEntry, error) {
	if !validEmail(cmd.Email) {
		return nil, fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	return r.insert(ctx, WaitlistEntry{
		Email:   cmd.Email,
		Name:    cmd.Name,
		Message: cmd.Message,
		Source:  SourceEnquiry,
	})
}

func (r *repo) JoinWaitlist(ctx context.Context, cmd WaitlistCommand) (*WaitlistEntry, error) {
	if !validEmail(cmd.Email) {
		return nil, fmt.Errorf("%w: email required", ErrInvalidInput)
	}
	return r.insert(ctx, WaitlistEntry{
		Email:  cmd.Email,
		Name:   cmd.Name,
		Role:   cmd.Role,
		Source: SourceWaitlist,
	})
}

func (r *repo) insert(ctx context.Context, entry WaitlistEntry) (*WaitlistEntry, error) {
	scan := func(s repository.Scanner) (WaitlistEntry, error) {
		var e WaitlistEntry
		err := s.Scan(&e.ID, &e.Email, &e.Name, &e.Role, &e.Message, &e.Source, &e.CreatedAt)
		return e, err
	}

	stored, err := repository.QueryOne(
		ctx, r.db,
		`INSERT INTO waitlist(id, email, name, role, message, source)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+waitlistColumns,
		[]any{uuid.New(), entry.Email, entry.Name, entry.Role, entry.Message, entry.Source},
		scan,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("waitlist entry stored", "source", stored.Source)
	return &stored, nil
}

func (r *repo) Regions() map[string][]string {
	return r.resolver.Regions()
}

func validEmail(email string) bool {
	return strings.Contains(email, "@")
}
