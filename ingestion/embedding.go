package ingestion

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/poiesic/finepress/ai"
	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/storage"
)

// embeddingProcessor generates embeddings for book listings.
type embeddingProcessor struct {
	listingRepository storage.ListingRepository
	embedder          ai.Embedder
	logger            *slog.Logger
}

var _ processor = (*embeddingProcessor)(nil)

// newEmbeddingProcessor creates a new embedding processor.
func newEmbeddingProcessor(listingRepository storage.ListingRepository, embedder ai.Embedder, logger *slog.Logger) (processor, error) {
	if listingRepository == nil {
		return nil, fmt.Errorf("listing repository required")
	}
	if embedder == nil {
		return nil, fmt.Errorf("embedder required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &embeddingProcessor{
		listingRepository: listingRepository,
		embedder:          embedder,
		logger:            logger.With("processor", "embeddings"),
	}, nil
}

// process generates embeddings for the specified listings.
func (ep *embeddingProcessor) process(ctx context.Context, ids ...core.ID) error {
	ep.logger.Info("processing listings for embeddings", "listings", len(ids))

	slices.Sort(ids)

	listings, err := ep.listingRepository.GetListings(ctx, ids...)
	if err != nil {
		ep.logger.Error("error retrieving listings", "err", err)
		return err
	}

	texts := make([]string, len(listings))
	for i, listing := range listings {
		texts[i] = EmbeddingText(listing)
	}

	ep.logger.Debug("generating embeddings for listings", "listings", len(texts))
	embeddings, err := ep.embedder.EmbedTexts(ctx, texts)
	if err != nil {
		ep.logger.Error("error generating embeddings", "err", err)
		return err
	}

	if len(embeddings) != len(listings) {
		return fmt.Errorf("embedding result mismatch. expected %d, received %d", len(listings), len(embeddings))
	}

	for i := range embeddings {
		listings[i].Vector = embeddings[i]
	}

	_, err = ep.listingRepository.UpdateListings(ctx, listings...)
	return err
}

// EmbeddingText composes the text a listing is embedded from. Structured
// fields are folded in alongside the description so that semantic search
// can match on publisher, author, and edition language even when the
// description omits them.
func EmbeddingText(listing *core.Listing) string {
	parts := make([]string, 0, 6)
	parts = append(parts, listing.Title)
	if listing.Author != "" {
		parts = append(parts, "by "+listing.Author)
	}
	if listing.Publisher != "" {
		parts = append(parts, listing.Publisher)
	}
	if listing.EditionType != "" {
		parts = append(parts, string(listing.EditionType)+" edition")
	}
	if len(listing.GenreTags) > 0 {
		parts = append(parts, strings.Join(listing.GenreTags, " "))
	}
	if listing.Description != "" {
		parts = append(parts, listing.Description)
	}
	return strings.Join(parts, ". ")
}
