package matches

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// matchStore is the persistence surface match generation runs against.
// insertPending reports whether a row was written; it must leave existing
// rows for the same listing and shepherd untouched, whatever their status.
type matchStore interface {
	listingContext(ctx context.Context, listingID uuid.UUID) (Listing, error)
	candidates(ctx context.Context) ([]Candidate, error)
	insertPending(ctx context.Context, listingID, shepherdID uuid.UUID, score float64) (bool, error)
	deletePending(ctx context.Context, listingID uuid.UUID) error
}

// generate scores every verified candidate against the listing and persists
// a pending match for each score above the gate. Returns the number of rows
// written and the number of candidates considered.
func generate(ctx context.Context, store matchStore, scorer Scorer, listingID uuid.UUID) (int, int, error) {
	listing, err := store.listingContext(ctx, listingID)
	if err != nil {
		return 0, 0, err
	}

	candidates, err := store.candidates(ctx)
	if err != nil {
		return 0, 0, err
	}

	written := 0
	for _, c := range candidates {
		score := scorer.Score(listing, c)
		if score <= PersistGate {
			continue
		}

		wrote, err := store.insertPending(ctx, listingID, c.ShepherdID, score)
		if err != nil {
			return written, len(candidates), fmt.Errorf("insert match: %w", err)
		}
		if wrote {
			written++
		}
	}

	return written, len(candidates), nil
}

// regenerate drops the listing's pending matches and generates a fresh set.
// Accepted and rejected matches survive: they are never deleted, and the
// store skips inserts for shepherds already holding a row on the listing.
func regenerate(ctx context.Context, store matchStore, scorer Scorer, listingID uuid.UUID) (int, int, error) {
	if err := store.deletePending(ctx, listingID); err != nil {
		return 0, 0, err
	}
	return generate(ctx, store, scorer, listingID)
}
