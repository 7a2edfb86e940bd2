package ingestion

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/finepress/ai"
	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/storage"
)

// Pipeline orchestrates the ingestion and processing of book listings.
// It manages concurrent embedding generation for newly scraped listings.
type Pipeline struct {
	listingRepository storage.ListingRepository
	embeddingPool     *ants.Pool
	embeddingProc     processor
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.embeddingPool != nil {
			p.embeddingPool.Release()
		}

		embeddingPool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.embeddingPool = embeddingPool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	listingRepository storage.ListingRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Pipeline, error) {
	if listingRepository == nil {
		return nil, ErrListingRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	// Default logger
	logger := slog.Default()

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	embeddingPool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	// Create pipeline with defaults
	p := &Pipeline{
		listingRepository: listingRepository,
		embeddingPool:     embeddingPool,
		logger:            logger,
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	// Create the processor after options are applied (so it gets final config)
	embeddingProc, err := newEmbeddingProcessor(listingRepository, embedder, p.logger)
	if err != nil {
		p.Release()
		return nil, err
	}

	p.embeddingProc = embeddingProc

	return p, nil
}

// Ingest validates and stores listings, then processes them asynchronously.
// Processing generates an embedding for each listing from its descriptive
// fields. Errors during async processing are logged but do not fail the
// ingestion.
func (p *Pipeline) Ingest(ctx context.Context, listings ...*core.Listing) error {
	for _, listing := range listings {
		if err := core.ValidateListing(listing); err != nil {
			return err
		}
	}

	added, err := p.listingRepository.AddListings(ctx, listings...)
	if err != nil {
		return err
	}

	if len(added) == 0 {
		return nil
	}

	// Extract IDs
	ids := make([]core.ID, len(added))
	for i, listing := range added {
		ids[i] = listing.Id
	}

	// Submit for async processing
	p.embeddingPool.Submit(func() {
		if err := p.embeddingProc.process(context.Background(), ids...); err != nil {
			p.logger.Error("error processing embeddings", "err", err)
		}
	})

	return nil
}

// Release releases resources including the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.embeddingPool != nil {
		p.embeddingPool.Release()
	}
}
