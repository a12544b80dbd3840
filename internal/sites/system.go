package sites

import (
	"context"

	"github.com/google/uuid"
)

// System defines the public contract for site domain operations.
type System interface {
	Handler() *Handler

	ListForUser(ctx context.Context, userID uuid.UUID) ([]SolarSite, error)
	Find(ctx context.Context, id uuid.UUID) (*SolarSite, error)
	Create(ctx context.Context, userID uuid.UUID, cmd CreateCommand) (*SolarSite, error)

	// OwnerUserID resolves the user owning the site's profile, for
	// request-time ownership checks by other domains.
	OwnerUserID(ctx context.Context, siteID uuid.UUID) (uuid.UUID, error)

	RecordAnalytics(ctx context.Context, userID, siteID uuid.UUID, cmd AnalyticsCommand) (*SiteAnalytics, error)
	ListAnalytics(ctx context.Context, userID, siteID uuid.UUID) ([]SiteAnalytics, error)
}
