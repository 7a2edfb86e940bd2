package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/storage"
	"github.com/poiesic/finepress/storage/badger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEmbedder implements ai.Embedder for testing
type testEmbedder struct {
	embeddings  [][]float32
	shouldError bool
}

func (m *testEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	if m.shouldError {
		return nil, errors.New("embedder error")
	}
	if len(m.embeddings) > 0 {
		return m.embeddings[0], nil
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

func (m *testEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	if m.shouldError {
		return nil, errors.New("embedder error")
	}
	if len(m.embeddings) > 0 {
		return m.embeddings, nil
	}
	// Generate dynamic embeddings
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = []float32{float32(i) * 0.1, float32(i) * 0.2, float32(i) * 0.3}
	}
	return result, nil
}

func setupTestRepository(t *testing.T) storage.ListingRepository {
	t.Helper()
	repo, backend, err := badger.NewMemoryRepository()
	require.NoError(t, err)
	t.Cleanup(func() {
		repo.Close()
		backend.Close()
	})
	return repo
}

func TestEmbeddingProcessor_Process(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	embedder := &testEmbedder{
		embeddings: [][]float32{{0.1, 0.2, 0.3}, {0.4, 0.5, 0.6}},
	}

	ep, err := newEmbeddingProcessor(repo, embedder, nil)
	require.NoError(t, err)

	listings := []*core.Listing{
		{Title: "The Croning", URL: "https://example.com/croning"},
		{Title: "Occultation", URL: "https://example.com/occultation"},
	}

	added, err := repo.AddListings(ctx, listings...)
	require.NoError(t, err)
	require.Len(t, added, 2)

	ids := []core.ID{added[0].Id, added[1].Id}
	err = ep.process(ctx, ids...)
	require.NoError(t, err)

	// Content IDs don't preserve insertion order, so just verify every
	// listing ended up with a vector
	processed, err := repo.GetListings(ctx, ids...)
	require.NoError(t, err)
	require.Len(t, processed, 2)
	for _, listing := range processed {
		assert.Len(t, listing.Vector, 3)
	}
}

func TestEmbeddingProcessor_Process_EmbedderError(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	embedder := &testEmbedder{shouldError: true}

	ep, err := newEmbeddingProcessor(repo, embedder, nil)
	require.NoError(t, err)

	added, err := repo.AddListings(ctx, &core.Listing{Title: "Test", URL: "https://example.com/t"})
	require.NoError(t, err)
	require.Len(t, added, 1)

	err = ep.process(ctx, added[0].Id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "embedder error")
}

func TestEmbeddingText(t *testing.T) {
	t.Run("bare title", func(t *testing.T) {
		text := EmbeddingText(&core.Listing{Title: "The Croning"})
		assert.Equal(t, "The Croning", text)
	})

	t.Run("structured fields folded in", func(t *testing.T) {
		listing := &core.Listing{
			Title:       "The Croning",
			Author:      "Laird Barron",
			Publisher:   "Centipede Press",
			EditionType: core.EditionLettered,
			GenreTags:   []string{"cosmic horror", "weird fiction"},
			Description: "Signed by the author.",
		}
		text := EmbeddingText(listing)
		assert.Contains(t, text, "The Croning")
		assert.Contains(t, text, "by Laird Barron")
		assert.Contains(t, text, "Centipede Press")
		assert.Contains(t, text, "lettered edition")
		assert.Contains(t, text, "cosmic horror weird fiction")
		assert.Contains(t, text, "Signed by the author.")
	})
}

func TestNewPipeline(t *testing.T) {
	repo := setupTestRepository(t)
	embedder := &testEmbedder{}

	t.Run("valid pipeline", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, embedder)
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		defer pipeline.Release()

		assert.NotNil(t, pipeline.listingRepository)
		assert.NotNil(t, pipeline.embeddingPool)
	})

	t.Run("nil listing repository", func(t *testing.T) {
		_, err := NewPipeline(nil, embedder)
		assert.Equal(t, ErrListingRepositoryRequired, err)
	})

	t.Run("nil embedder", func(t *testing.T) {
		_, err := NewPipeline(repo, nil)
		assert.Equal(t, ErrEmbedderRequired, err)
	})
}

func TestPipeline_WithOptions(t *testing.T) {
	repo := setupTestRepository(t)
	embedder := &testEmbedder{}

	t.Run("with pool size", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, embedder, WithPoolSize(4))
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		defer pipeline.Release()

		assert.NotNil(t, pipeline.embeddingPool)
	})

	t.Run("with pool size zero defaults to 1", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, embedder, WithPoolSize(0))
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		defer pipeline.Release()
	})

	t.Run("with custom logger", func(t *testing.T) {
		logger := slog.Default()
		pipeline, err := NewPipeline(repo, embedder, WithLogger(logger))
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		defer pipeline.Release()

		assert.Equal(t, logger, pipeline.logger)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		pipeline, err := NewPipeline(repo, embedder, WithLogger(nil))
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		defer pipeline.Release()

		assert.NotNil(t, pipeline.logger)
	})
}

func TestPipeline_Ingest(t *testing.T) {
	repo := setupTestRepository(t)

	embedder := &testEmbedder{
		embeddings: [][]float32{{0.1, 0.2, 0.3}},
	}

	pipeline, err := NewPipeline(repo, embedder, WithPoolSize(1))
	require.NoError(t, err)
	defer pipeline.Release()

	ctx := context.Background()

	t.Run("ingest single listing", func(t *testing.T) {
		err := pipeline.Ingest(ctx, &core.Listing{
			Title:        "The Croning",
			Publisher:    "Centipede Press",
			Availability: core.AvailabilityInStock,
			URL:          "https://example.com/croning",
		})
		require.NoError(t, err)

		// Give the async processor time to complete
		time.Sleep(100 * time.Millisecond)

		stored, err := repo.GetListing(ctx, core.IDFromContent("https://example.com/croning"))
		require.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2, 0.3}, stored.Vector)
	})

	t.Run("ingest multiple listings", func(t *testing.T) {
		err := pipeline.Ingest(ctx,
			&core.Listing{Title: "One", URL: "https://example.com/1"},
			&core.Listing{Title: "Two", URL: "https://example.com/2"},
			&core.Listing{Title: "Three", URL: "https://example.com/3"},
		)
		require.NoError(t, err)

		time.Sleep(100 * time.Millisecond)
	})

	t.Run("ingest with no listings", func(t *testing.T) {
		err := pipeline.Ingest(ctx)
		require.NoError(t, err)
	})

	t.Run("invalid listing fails before storage", func(t *testing.T) {
		err := pipeline.Ingest(ctx, &core.Listing{Title: "", URL: "https://example.com/untitled"})
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrInvalidListing)

		_, err = repo.GetListing(ctx, core.IDFromContent("https://example.com/untitled"))
		assert.ErrorIs(t, err, storage.ErrNotFound)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		err := pipeline.Ingest(ctx, &core.Listing{Title: "Bad Price", Price: -5, URL: "https://example.com/bad"})
		assert.ErrorIs(t, err, core.ErrNegativePrice)
	})
}

func TestPipeline_Release(t *testing.T) {
	repo := setupTestRepository(t)

	pipeline, err := NewPipeline(repo, &testEmbedder{})
	require.NoError(t, err)

	// Release should not panic
	pipeline.Release()

	// Multiple releases should not panic
	pipeline.Release()
}
