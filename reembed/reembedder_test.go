package reembed

import (
	"bytes"
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEmbedder implements ai.Embedder for testing
type stubEmbedder struct {
	vector    []float32
	failures  int // fail this many calls before succeeding
	callCount int
}

func (s *stubEmbedder) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return s.vector, nil
}

func (s *stubEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	s.callCount++
	if s.callCount <= s.failures {
		return nil, errors.New("embedding service unavailable")
	}
	result := make([][]float32, len(texts))
	for i := range texts {
		result[i] = s.vector
	}
	return result, nil
}

func TestBatchProcessor_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo := setupTestRepository(t)
		bp := NewBatchProcessor(repo, &stubEmbedder{vector: []float32{3, 4}}, 3, time.Millisecond)
		require.NoError(t, bp.Process(ctx, nil))
	})

	t.Run("assigns normalized vectors", func(t *testing.T) {
		repo := setupTestRepository(t)
		addTestListings(t, repo, 2)

		listings, err := repo.GetAllListings(ctx)
		require.NoError(t, err)
		require.Len(t, listings, 2)

		bp := NewBatchProcessor(repo, &stubEmbedder{vector: []float32{3, 4}}, 3, time.Millisecond)
		require.NoError(t, bp.Process(ctx, listings))

		stored, err := repo.GetAllListings(ctx)
		require.NoError(t, err)
		for _, listing := range stored {
			require.Len(t, listing.Vector, 2)
			var magnitude float64
			for _, v := range listing.Vector {
				magnitude += float64(v) * float64(v)
			}
			assert.InDelta(t, 1.0, math.Sqrt(magnitude), 1e-6)
		}
	})

	t.Run("retries transient failures", func(t *testing.T) {
		repo := setupTestRepository(t)
		addTestListings(t, repo, 1)

		listings, err := repo.GetAllListings(ctx)
		require.NoError(t, err)

		embedder := &stubEmbedder{vector: []float32{1, 0}, failures: 2}
		bp := NewBatchProcessor(repo, embedder, 3, time.Millisecond)
		require.NoError(t, bp.Process(ctx, listings))
		assert.Equal(t, 3, embedder.callCount)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		repo := setupTestRepository(t)
		addTestListings(t, repo, 1)

		listings, err := repo.GetAllListings(ctx)
		require.NoError(t, err)

		embedder := &stubEmbedder{vector: []float32{1, 0}, failures: 10}
		bp := NewBatchProcessor(repo, embedder, 2, time.Millisecond)
		err = bp.Process(ctx, listings)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 attempts")
	})
}

func TestReembedder_Run(t *testing.T) {
	ctx := context.Background()

	t.Run("empty database", func(t *testing.T) {
		repo := setupTestRepository(t)
		var out bytes.Buffer

		r := NewReembedder(repo, &stubEmbedder{vector: []float32{1, 0}}, nil, &out)
		require.NoError(t, r.Run(ctx))
		assert.Contains(t, out.String(), "No listings found")
	})

	t.Run("reembeds every listing", func(t *testing.T) {
		repo := setupTestRepository(t)
		addTestListings(t, repo, 12)

		var out bytes.Buffer
		config := &Config{
			BatchSize:      5,
			ReportInterval: 5,
			MaxRetries:     3,
			RetryDelay:     time.Millisecond,
		}

		r := NewReembedder(repo, &stubEmbedder{vector: []float32{3, 4}}, config, &out)
		require.NoError(t, r.Run(ctx))

		stored, err := repo.GetAllListings(ctx)
		require.NoError(t, err)
		require.Len(t, stored, 12)
		for _, listing := range stored {
			assert.NotEmpty(t, listing.Vector)
		}
		assert.Contains(t, out.String(), "Reembedding complete")
	})
}
