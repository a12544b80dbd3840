package listings

import (
	"context"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
	"github.com/ombaa/ombaa/pkg/pagination"
)

// System is the grazing listing domain surface.
type System interface {
	Handler(maxUploadSize int64) *Handler

	List(ctx context.Context, status string, page pagination.PageRequest) (*pagination.PageResult[GrazingListing], error)
	Find(ctx context.Context, id uuid.UUID) (*GrazingListing, error)
	Create(ctx context.Context, ident users.Identity, cmd CreateCommand) (*GrazingListing, error)
	Update(ctx context.Context, ident users.Identity, id uuid.UUID, cmd UpdateCommand) (*GrazingListing, error)
	CreateContract(ctx context.Context, ident users.Identity, listingID uuid.UUID, cmd ContractCommand) (*GrazingContract, error)
}
