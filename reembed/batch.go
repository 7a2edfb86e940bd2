package reembed

import (
	"context"
	"fmt"
	"time"

	"github.com/poiesic/finepress/ai"
	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/ingestion"
	"github.com/poiesic/finepress/storage"
)

// BatchProcessor handles embedding generation for batches of listings.
type BatchProcessor struct {
	repo           storage.ListingRepository
	embedder       ai.Embedder
	maxRetries     int
	retryBaseDelay time.Duration
}

// NewBatchProcessor creates a new batch processor.
// maxRetries: maximum number of retry attempts for embedding API calls
// retryBaseDelay: base delay for exponential backoff
func NewBatchProcessor(repo storage.ListingRepository, embedder ai.Embedder, maxRetries int, retryBaseDelay time.Duration) *BatchProcessor {
	return &BatchProcessor{
		repo:           repo,
		embedder:       embedder,
		maxRetries:     maxRetries,
		retryBaseDelay: retryBaseDelay,
	}
}

// Process generates embeddings for a batch of listings and updates them in the database.
// Vectors are normalized after embedding to ensure compatibility with cosine similarity.
func (bp *BatchProcessor) Process(ctx context.Context, listings []*core.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	// Embed the same text composition ingestion uses
	texts := make([]string, len(listings))
	for i, listing := range listings {
		texts[i] = ingestion.EmbeddingText(listing)
	}

	// Generate embeddings with retry
	var embeddings [][]float32
	err := RetryWithBackoff(ctx, func() error {
		var err error
		embeddings, err = bp.embedder.EmbedTexts(ctx, texts)
		return err
	}, bp.maxRetries, bp.retryBaseDelay)

	if err != nil {
		return fmt.Errorf("failed to generate embeddings after %d attempts: %w", bp.maxRetries, err)
	}

	if len(embeddings) != len(listings) {
		return fmt.Errorf("embedding count mismatch: expected %d, got %d", len(listings), len(embeddings))
	}

	// Normalize vectors and assign to listings
	for i := range listings {
		listings[i].Vector = NormalizeVector(embeddings[i])
	}

	// Update listings in database
	_, err = bp.repo.UpdateListings(ctx, listings...)
	if err != nil {
		return fmt.Errorf("failed to update listings: %w", err)
	}

	return nil
}
