package api

import (
	"github.com/ombaa/ombaa/internal/directory"
	"github.com/ombaa/ombaa/internal/etl/regions"
	"github.com/ombaa/ombaa/internal/listings"
	"github.com/ombaa/ombaa/internal/matches"
	"github.com/ombaa/ombaa/internal/sites"
	"github.com/ombaa/ombaa/internal/users"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Users     users.System
	Sites     sites.System
	Listings  listings.System
	Matches   matches.System
	Directory directory.System
}

// NewDomain creates all domain systems from the API runtime. Listings sit
// at the top of the dependency chain: they verify site ownership through
// the site system and trigger match generation on writes.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	accounts := users.New(db, runtime.Auth, runtime.Logger)
	siteSystem := sites.New(db, accounts, runtime.Logger)

	scorer := matches.NewScorer(
		runtime.Matching.MaxDistanceKm,
		runtime.Matching.RandomFallback,
	)
	matchSystem := matches.New(db, accounts, scorer, runtime.Logger)

	listingSystem := listings.New(
		db,
		accounts,
		siteSystem,
		matchSystem,
		runtime.Storage,
		runtime.Pagination,
		runtime.Logger,
	)

	directorySystem := directory.New(
		db,
		regions.NewResolver(regions.DefaultTables()),
		runtime.Pagination,
		runtime.Logger,
	)

	return &Domain{
		Users:     accounts,
		Sites:     siteSystem,
		Listings:  listingSystem,
		Matches:   matchSystem,
		Directory: directorySystem,
	}
}
