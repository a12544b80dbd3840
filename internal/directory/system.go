package directory

import (
	"context"

	"github.com/ombaa/ombaa/pkg/pagination"
)

// System is the public directory surface.
type System interface {
	Handler() *Handler

	Shepherds(ctx context.Context, filter Filter, page pagination.PageRequest) (*pagination.PageResult[ShepherdEntry], error)
	Sites(ctx context.Context, filter Filter, page pagination.PageRequest) (*pagination.PageResult[SiteEntry], error)
	Enquire(ctx context.Context, cmd EnquiryCommand) (*WaitlistEntry, error)
	JoinWaitlist(ctx context.Context, cmd WaitlistCommand) (*WaitlistEntry, error)
	Regions() map[string][]string
}
