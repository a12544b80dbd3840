package matches

import (
	"context"

	"github.com/google/uuid"

	"github.com/ombaa/ombaa/internal/users"
)

// System defines the public contract for match domain operations.
type System interface {
	Handler() *Handler

	// ListForUser returns matches visible to the caller: a shepherd sees
	// matches against their profile; a solar farm sees matches across all
	// of their listings.
	ListForUser(ctx context.Context, ident users.Identity) ([]ShepherdMatch, error)

	// UpdateStatus transitions a match, checking ownership on whichever
	// side the caller belongs to.
	UpdateStatus(ctx context.Context, ident users.Identity, id uuid.UUID, cmd UpdateCommand) (*ShepherdMatch, error)

	// Generate scores every verified shepherd against the listing and
	// persists matches above the gate. Returns the number of rows written.
	Generate(ctx context.Context, listingID uuid.UUID) (int, error)

	// Regenerate deletes the listing's pending matches and re-runs
	// Generate. Accepted and rejected matches survive.
	Regenerate(ctx context.Context, listingID uuid.UUID) (int, error)
}
