package feed

import (
	"context"
	"sync"
)

// Hub hands out one Aggregator per branch and drives bulk refreshes for the
// background poll. Aggregators are created lazily on first use.
type Hub struct {
	remote Remote
	seen   SeenStore
	alert  AlertFunc

	mu          sync.Mutex
	aggregators map[int64]*Aggregator
}

func NewHub(remote Remote, seen SeenStore, alert AlertFunc) *Hub {
	return &Hub{
		remote:      remote,
		seen:        seen,
		alert:       alert,
		aggregators: make(map[int64]*Aggregator),
	}
}

// Branch returns the aggregator owning the feed of the given branch.
func (h *Hub) Branch(branchID int64) *Aggregator {
	h.mu.Lock()
	defer h.mu.Unlock()

	aggregator, ok := h.aggregators[branchID]
	if !ok {
		aggregator = NewAggregator(branchID, h.remote, h.seen, h.alert)
		h.aggregators[branchID] = aggregator
	}
	return aggregator
}

// RefreshAll re-runs the pipeline for every branch seen so far. Fetches are
// idempotent reads, so overlapping ticks are harmless.
func (h *Hub) RefreshAll(ctx context.Context) {
	h.mu.Lock()
	aggregators := make([]*Aggregator, 0, len(h.aggregators))
	for _, aggregator := range h.aggregators {
		aggregators = append(aggregators, aggregator)
	}
	h.mu.Unlock()

	for _, aggregator := range aggregators {
		_ = aggregator.Refresh(ctx)
	}
}
