package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/storage"
)

// ListingRepository implements storage.ListingRepository for BadgerDB.
type ListingRepository struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.ListingRepository = (*ListingRepository)(nil)

// NewListingRepository creates a new ListingRepository.
func NewListingRepository(backend *Backend) (*ListingRepository, error) {
	idSeq, err := backend.GetSequence(listingIDSeq)
	if err != nil {
		return nil, err
	}

	return &ListingRepository{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (r *ListingRepository) Close() error {
	return r.idSeq.Release()
}

// FindSimilar delegates to the backend.
func (r *ListingRepository) FindSimilar(ctx context.Context, vector []float32, conditions []core.FilterCondition, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, conditions, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *ListingRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddListings adds one or more listings to storage.
// Listings with ID=0 get a content ID derived from their URL so a
// re-scraped listing lands on the same key; listings without a URL fall
// back to the sequence. Re-adding an existing ID replaces the stored
// listing and refreshes its indices.
func (r *ListingRepository) AddListings(ctx context.Context, listings ...*core.Listing) ([]*core.Listing, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, listing := range listings {
			if listing.Id == 0 {
				if listing.URL != "" {
					listing.Id = core.IDFromContent(listing.URL)
				} else {
					nextID, err := r.idSeq.Next()
					if err != nil {
						return err
					}
					// BadgerDB sequences can return 0 on first call, so we skip it
					if nextID == 0 {
						nextID, err = r.idSeq.Next()
						if err != nil {
							return err
						}
					}
					listing.Id = core.ID(nextID)
				}
			}

			key := makeListingKey(listing.Id)

			// Drop stale index entries when replacing a re-scraped listing
			old, err := r.readListing(tx, key)
			if err != nil {
				return err
			}
			if old != nil {
				if err := r.deleteIndexes(tx, old); err != nil {
					return err
				}
				listing.InsertedAt = old.InsertedAt
			} else {
				listing.InsertedAt = time.Now().UTC()
			}
			listing.UpdatedAt = time.Now().UTC()

			value := storage.MarshalListing(listing)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			if err := r.writeIndexes(tx, listing); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return listings, err
}

// UpdateListings updates existing listings.
func (r *ListingRepository) UpdateListings(ctx context.Context, listings ...*core.Listing) ([]*core.Listing, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, listing := range listings {
			key := makeListingKey(listing.Id)

			old, err := r.readListing(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			listing.InsertedAt = old.InsertedAt
			listing.UpdatedAt = time.Now().UTC()

			value := storage.MarshalListing(listing)
			if err := tx.Set(key, value); err != nil {
				return err
			}

			if old.Publisher != listing.Publisher {
				if err := tx.Delete(makeListingPublisherKey(old.Publisher, old.Id)); err != nil {
					return err
				}
				if listing.Publisher != "" {
					if err := tx.Set(makeListingPublisherKey(listing.Publisher, listing.Id), storage.MarshalID(listing.Id)); err != nil {
						return err
					}
				}
			}
		}
		return tx.Commit()
	}, true)

	return listings, err
}

// DeleteListings removes listings by their IDs.
func (r *ListingRepository) DeleteListings(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeListingKey(id)

			listing, err := r.readListing(tx, key)
			if err != nil {
				return err
			}
			if listing == nil {
				return storage.ErrNotFound
			}

			if err := r.deleteIndexes(tx, listing); err != nil {
				return err
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetListing retrieves a single listing by ID.
func (r *ListingRepository) GetListing(ctx context.Context, id core.ID) (*core.Listing, error) {
	var result *core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeListingKey(id)
		var err error
		result, err = r.readListing(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetListings retrieves multiple listings by their IDs.
func (r *ListingRepository) GetListings(ctx context.Context, ids ...core.ID) ([]*core.Listing, error) {
	var result []*core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeListingKey(id)
			listing, err := r.readListing(tx, key)
			if err != nil {
				return err
			}
			if listing != nil {
				result = append(result, listing)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetListingsByPublisher retrieves listings for a canonical publisher name.
func (r *ListingRepository) GetListingsByPublisher(ctx context.Context, publisher string) ([]*core.Listing, error) {
	var results []*core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		startKey := makePartialListingPublisherKey(publisher)
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(startKey); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(startKey) || slices.Compare(key[:len(startKey)], startKey) != 0 {
				break
			}

			var listingID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				listingID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			listing, err := r.readListing(tx, makeListingKey(listingID))
			if err != nil {
				return err
			}
			if listing != nil {
				results = append(results, listing)
			}
		}
		return nil
	}, false)

	return results, err
}

// GetRecentListings retrieves the N most recently inserted listings, most recent first.
func (r *ListingRepository) GetRecentListings(ctx context.Context, limit int) ([]*core.Listing, error) {
	var results []*core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Seek to the last possible key in the date index
		startKey := makePartialListingDateKey(time.Date(9999, 12, 31, 23, 59, 59, 999999999, time.UTC))
		prefix := []byte(listingDatePrefix + ":")

		count := 0
		for iter.Seek(startKey); iter.Valid() && count < limit; iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var listingID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				listingID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			listing, err := r.readListing(tx, makeListingKey(listingID))
			if err != nil {
				return err
			}
			if listing != nil {
				results = append(results, listing)
				count++
			}
		}
		return nil
	}, false)

	return results, err
}

// GetAllListings retrieves every listing, ordered by insertion time.
func (r *ListingRepository) GetAllListings(ctx context.Context) ([]*core.Listing, error) {
	var results []*core.Listing
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := []byte(listingDatePrefix + ":")
		iter := tx.NewIterator(badger.DefaultIteratorOptions)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			var listingID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				listingID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			listing, err := r.readListing(tx, makeListingKey(listingID))
			if err != nil {
				return err
			}
			if listing != nil {
				results = append(results, listing)
			}
		}
		return nil
	}, false)

	return results, err
}

// Helper methods

// readListing reads a listing from the transaction.
func (r *ListingRepository) readListing(tx *badger.Txn, key []byte) (*core.Listing, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var listing *core.Listing
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		listing, unmarshalErr = storage.UnmarshalListing(val)
		return unmarshalErr
	})
	return listing, err
}

// writeIndexes adds date and publisher index entries for a listing.
func (r *ListingRepository) writeIndexes(tx *badger.Txn, listing *core.Listing) error {
	dateKey := makeListingDateKey(listing.InsertedAt, listing.Id)
	if err := tx.Set(dateKey, storage.MarshalID(listing.Id)); err != nil {
		return err
	}
	if listing.Publisher != "" {
		pubKey := makeListingPublisherKey(listing.Publisher, listing.Id)
		if err := tx.Set(pubKey, storage.MarshalID(listing.Id)); err != nil {
			return err
		}
	}
	return nil
}

// deleteIndexes removes date and publisher index entries for a listing.
func (r *ListingRepository) deleteIndexes(tx *badger.Txn, listing *core.Listing) error {
	if err := tx.Delete(makeListingDateKey(listing.InsertedAt, listing.Id)); err != nil {
		return err
	}
	if listing.Publisher != "" {
		if err := tx.Delete(makeListingPublisherKey(listing.Publisher, listing.Id)); err != nil {
			return err
		}
	}
	return nil
}
