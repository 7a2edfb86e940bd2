package storage

import (
	"context"

	"github.com/poiesic/finepress/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// FindSimilar finds listings similar to the given vector, restricted to
	// listings matching every condition (conjunctive semantics). Returns
	// listings with similarity >= minSimilarity, up to limit results,
	// ordered by similarity score (highest first).
	FindSimilar(ctx context.Context, vector []float32, conditions []core.FilterCondition, minSimilarity float32, limit int) ([]*core.SearchResult, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// ListingRepository provides operations for managing book listings.
type ListingRepository interface {
	Repository
	// AddListings adds one or more listings to storage.
	// For listings with ID=0, derives a content ID from the listing URL,
	// falling back to the sequence when the URL is empty.
	// Sets InsertedAt timestamp if not already set.
	// Returns the listings with IDs and timestamps populated.
	AddListings(ctx context.Context, listings ...*core.Listing) ([]*core.Listing, error)

	// UpdateListings updates existing listings.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any listing doesn't exist.
	UpdateListings(ctx context.Context, listings ...*core.Listing) ([]*core.Listing, error)

	// DeleteListings removes listings by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any listing doesn't exist.
	DeleteListings(ctx context.Context, ids ...core.ID) error

	// GetListing retrieves a single listing by ID.
	// Returns ErrNotFound if the listing doesn't exist.
	GetListing(ctx context.Context, id core.ID) (*core.Listing, error)

	// GetListings retrieves multiple listings by their IDs.
	// Returns only the listings that exist (no error for missing listings).
	GetListings(ctx context.Context, ids ...core.ID) ([]*core.Listing, error)

	// GetListingsByPublisher retrieves listings for a canonical publisher name.
	GetListingsByPublisher(ctx context.Context, publisher string) ([]*core.Listing, error)

	// GetRecentListings retrieves the N most recently inserted listings,
	// most recent first.
	GetRecentListings(ctx context.Context, limit int) ([]*core.Listing, error)

	// GetAllListings retrieves every listing, ordered by insertion time.
	// Used by batch operations such as reembedding.
	GetAllListings(ctx context.Context) ([]*core.Listing, error)
}
