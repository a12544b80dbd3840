package users

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ombaa/ombaa/pkg/repository"
)

const userColumns = "id, email, password_hash, role, created_at"

const solarFarmProfileColumns = "id, user_id, company_name, contact_person, phone, address, created_at"

const shepherdProfileColumns = "id, user_id, name, phone, address, experience_years, is_verified, latitude, longitude, created_at"

type repo struct {
	db     *sql.DB
	auth   *Authenticator
	logger *slog.Logger
}

// New creates an account repository implementing the System interface.
func New(db *sql.DB, auth *Authenticator, logger *slog.Logger) System {
	return &repo{
		db:     db,
		auth:   auth,
		logger: logger.With("system", "users"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.auth, r.logger)
}

func (r *repo) Auth() *Authenticator {
	return r.auth
}

func (r *repo) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, fmt.Errorf("%w: email and password required", ErrInvalidInput)
	}
	if !validRole(cmd.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalidInput, cmd.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (User, error) {
		u, err := repository.QueryOne(
			ctx, tx,
			`INSERT INTO users(id, email, password_hash, role)
			 VALUES ($1, $2, $3, $4)
			 RETURNING `+userColumns,
			[]any{uuid.New(), cmd.Email, string(hash), cmd.Role},
			scanUser,
		)
		if err != nil {
			return User{}, err
		}

		if err := createProfile(ctx, tx, u, cmd); err != nil {
			return User{}, err
		}
		return u, nil
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("user registered", "id", user.ID, "role", user.Role)
	return &user, nil
}

func createProfile(ctx context.Context, tx *sql.Tx, u User, cmd RegisterCommand) error {
	switch u.Role {
	case RoleSolarFarm:
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO solar_farm_profiles(id, user_id, company_name, contact_person, phone, address)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			uuid.New(), u.ID, cmd.CompanyName, cmd.ContactPerson, cmd.Phone, cmd.Address,
		)
		return err

	case RoleShepherd:
		profileID := uuid.New()
		_, err := tx.ExecContext(
			ctx,
			`INSERT INTO shepherd_profiles(id, user_id, name, phone, address, experience_years, latitude, longitude)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			profileID, u.ID, cmd.Name, cmd.Phone, cmd.Address, cmd.ExperienceYears,
			cmd.Latitude, cmd.Longitude,
		)
		if err != nil {
			return err
		}

		if cmd.FlockSize != nil {
			_, err = tx.ExecContext(
				ctx,
				`INSERT INTO flocks(id, shepherd_id, size, breed)
				 VALUES ($1, $2, $3, $4)`,
				uuid.New(), profileID, *cmd.FlockSize, cmd.FlockBreed,
			)
		}
		return err
	}

	return nil
}

func (r *repo) Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	user, err := repository.QueryOne(
		ctx, r.db,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		[]any{cmd.Email},
		scanUser,
	)
	if err != nil {
		if repository.MapError(err, ErrNotFound, ErrDuplicate) == ErrNotFound {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("query user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.passwordHash), []byte(cmd.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := r.auth.Token(&user)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{Token: token, User: &user}, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := repository.QueryOne(
		ctx, r.db,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		[]any{id},
		scanUser,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &user, nil
}

func (r *repo) Profile(ctx context.Context, ident Identity) (*Profile, error) {
	switch ident.Role {
	case RoleSolarFarm:
		p, err := r.FindSolarFarmProfile(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		return &Profile{SolarFarm: p}, nil

	case RoleShepherd:
		p, err := r.FindShepherdProfile(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		return &Profile{Shepherd: p}, nil
	}

	return nil, ErrProfileNotFound
}

func (r *repo) UpdateProfile(ctx context.Context, ident Identity, cmd UpdateProfileCommand) (*Profile, error) {
	switch ident.Role {
	case RoleSolarFarm:
		p, err := r.FindSolarFarmProfile(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		applyString(&p.CompanyName, cmd.CompanyName)
		applyString(&p.ContactPerson, cmd.ContactPerson)
		applyString(&p.Phone, cmd.Phone)
		applyString(&p.Address, cmd.Address)

		err = repository.ExecExpectOne(
			ctx, r.db,
			`UPDATE solar_farm_profiles
			 SET company_name = $1, contact_person = $2, phone = $3, address = $4
			 WHERE id = $5`,
			p.CompanyName, p.ContactPerson, p.Phone, p.Address, p.ID,
		)
		if err != nil {
			return nil, repository.MapError(err, ErrProfileNotFound, ErrDuplicate)
		}
		return &Profile{SolarFarm: p}, nil

	case RoleShepherd:
		p, err := r.FindShepherdProfile(ctx, ident.UserID)
		if err != nil {
			return nil, err
		}
		applyString(&p.Name, cmd.Name)
		applyString(&p.Phone, cmd.Phone)
		applyString(&p.Address, cmd.Address)
		if cmd.ExperienceYears != nil {
			p.ExperienceYears = *cmd.ExperienceYears
		}
		if cmd.Latitude != nil {
			p.Latitude = cmd.Latitude
		}
		if cmd.Longitude != nil {
			p.Longitude = cmd.Longitude
		}

		err = repository.ExecExpectOne(
			ctx, r.db,
			`UPDATE shepherd_profiles
			 SET name = $1, phone = $2, address = $3, experience_years = $4, latitude = $5, longitude = $6
			 WHERE id = $7`,
			p.Name, p.Phone, p.Address, p.ExperienceYears, p.Latitude, p.Longitude, p.ID,
		)
		if err != nil {
			return nil, repository.MapError(err, ErrProfileNotFound, ErrDuplicate)
		}
		return &Profile{Shepherd: p}, nil
	}

	return nil, ErrProfileNotFound
}

func (r *repo) FindSolarFarmProfile(ctx context.Context, userID uuid.UUID) (*SolarFarmProfile, error) {
	p, err := repository.QueryOne(
		ctx, r.db,
		`SELECT `+solarFarmProfileColumns+` FROM solar_farm_profiles WHERE user_id = $1`,
		[]any{userID},
		scanSolarFarmProfile,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrProfileNotFound, ErrDuplicate)
	}
	return &p, nil
}

func (r *repo) FindShepherdProfile(ctx context.Context, userID uuid.UUID) (*ShepherdProfile, error) {
	p, err := repository.QueryOne(
		ctx, r.db,
		`SELECT `+shepherdProfileColumns+` FROM shepherd_profiles WHERE user_id = $1`,
		[]any{userID},
		scanShepherdProfile,
	)
	if err != nil {
		return nil, repository.MapError(err, ErrProfileNotFound, ErrDuplicate)
	}
	return &p, nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
