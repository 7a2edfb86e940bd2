package search

import (
	"github.com/poiesic/finepress/core"
	"github.com/poiesic/finepress/query"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterResolution(res query.Resolution)
	AfterSemanticSearch(ids []uint64)
	VerbatimHit(listing *core.Listing)
	Finish(results []*core.SearchResult)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                  {}
func (n *noopMonitor) AfterResolution(_ query.Resolution) {}
func (n *noopMonitor) AfterSemanticSearch(_ []uint64)  {}
func (n *noopMonitor) VerbatimHit(_ *core.Listing)     {}
func (n *noopMonitor) Finish(_ []*core.SearchResult)   {}
