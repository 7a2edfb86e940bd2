package search

import (
	"context"
	"log/slog"
	"sort"

	"github.com/poiesic/finepress/ai"
	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/query"
	"github.com/poiesic/finepress/storage"
)

// minSimilarity is the cosine similarity floor for semantic matches.
const minSimilarity = 0.60

// Searcher provides filtered semantic search over book listings.
// Queries are resolved into structured filter conditions before the
// vector scan, so the backend only ranks listings that satisfy what the
// query actually asked for.
type Searcher struct {
	listingRepository storage.ListingRepository
	embedder          ai.Embedder
	logger            *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	listingRepository storage.ListingRepository,
	embedder ai.Embedder,
	opts ...Option,
) (*Searcher, error) {
	if listingRepository == nil {
		return nil, ErrListingRepositoryRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Searcher{
		listingRepository: listingRepository,
		embedder:          embedder,
		logger:            slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search resolves the query through natural-language extraction and returns
// up to maxHits results, ranked by relevance score. The returned analysis
// reports what was understood from the query.
func (s *Searcher) Search(ctx context.Context, searchQuery string, maxHits int) ([]*core.SearchResult, *core.QueryAnalysis, error) {
	return s.SearchWithMonitor(ctx, searchQuery, maxHits, nil)
}

// SearchWithMonitor is Search with monitoring. The monitor receives
// callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, searchQuery string, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, *core.QueryAnalysis, error) {
	res := query.ResolveQuery(searchQuery)

	results, err := s.run(ctx, searchQuery, res, maxHits, monitor)
	if err != nil {
		return nil, nil, err
	}
	return results, res.Analysis, nil
}

// SearchWithParams resolves the query with explicitly supplied parameters,
// bypassing natural-language extraction. A nil budget means no price
// ceiling; an empty keyword means no edition constraint. Returns up to
// maxHits results, ranked by relevance score.
func (s *Searcher) SearchWithParams(ctx context.Context, searchQuery string, budget *float64, keyword string, maxHits int) ([]*core.SearchResult, error) {
	res := query.ResolveExplicit(searchQuery, budget, keyword)
	return s.run(ctx, searchQuery, res, maxHits, nil)
}

// run executes a resolved search: embed, scan with conditions, boost, rank.
func (s *Searcher) run(ctx context.Context, searchQuery string, res query.Resolution, maxHits int, monitor SearchMonitor) ([]*core.SearchResult, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(searchQuery)
	monitor.AfterResolution(res)

	embedding, err := s.embedder.EmbedText(ctx, res.EmbedText)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", searchQuery, "err", err)
		return nil, err
	}

	matches, err := s.listingRepository.FindSimilar(ctx, embedding, res.Conditions, minSimilarity, maxHits)
	if err != nil {
		s.logger.Error("error querying for similar listings", "err", err)
		return nil, err
	}

	ids := make([]uint64, 0, len(matches))
	for _, match := range matches {
		ids = append(ids, uint64(match.Listing.Id))
	}
	monitor.AfterSemanticSearch(ids)

	// Apply verbatim match boost
	for _, match := range matches {
		if containsAllQueryWords(match.Listing.Title+" "+match.Listing.Description, searchQuery) {
			match.Score += 0.3
			monitor.VerbatimHit(match.Listing)
		}
	}

	// Re-sort; the boost can reorder the backend's similarity ranking
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > maxHits {
		matches = matches[:maxHits]
	}
	monitor.Finish(matches)

	return matches, nil
}
