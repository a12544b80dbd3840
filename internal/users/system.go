package users

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for account domain operations.
type System interface {
	Handler() *Handler
	Auth() *Authenticator

	Register(ctx context.Context, cmd RegisterCommand) (*User, error)
	Login(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
	Find(ctx context.Context, id uuid.UUID) (*User, error)

	Profile(ctx context.Context, ident Identity) (*Profile, error)
	UpdateProfile(ctx context.Context, ident Identity, cmd UpdateProfileCommand) (*Profile, error)

	FindSolarFarmProfile(ctx context.Context, userID uuid.UUID) (*SolarFarmProfile, error)
	FindShepherdProfile(ctx context.Context, userID uuid.UUID) (*ShepherdProfile, error)
}
