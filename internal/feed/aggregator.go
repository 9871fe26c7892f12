package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// AlertFunc is invoked once per previously-unseen low-stock alert.
type AlertFunc func(branchID int64, alert Candidate)

// Aggregator owns the merged notification feed for one branch. All fetched
// lists are held immutably; read-state and action overlays are applied when a
// snapshot is taken, never in place, so a failed remote call can revert
// without stale-reference bugs.
type Aggregator struct {
	branchID int64
	remote   Remote
	seen     SeenStore
	alert    AlertFunc

	mu      sync.Mutex
	entries []Candidate
	actions map[int64]RequestStatus
	allRead bool
	readFSM actionFSM
}

func NewAggregator(branchID int64, remote Remote, seen SeenStore, alert AlertFunc) *Aggregator {
	return &Aggregator{
		branchID: branchID,
		remote:   remote,
		seen:     seen,
		alert:    alert,
		actions:  make(map[int64]RequestStatus),
	}
}

// Refresh re-runs the full fetch-and-remerge pipeline. Each read source
// degrades independently to an empty list on failure; a refresh never fails
// outright because of one unreachable source.
func (a *Aggregator) Refresh(ctx context.Context) error {
	notifications := a.fetchSource(ctx, "notifications", a.remote.Notifications)
	pending := a.fetchSource(ctx, "pending_requests", a.remote.PendingRequests)
	history := a.fetchSource(ctx, "request_history", a.remote.RequestHistory)

	merged := Merge(notifications, pending, history)

	a.mu.Lock()
	a.entries = merged
	// Once a mark-read has committed the server persists the read flags, so
	// the fresh list carries them authoritatively and the overlay retires.
	// Without this, entries arriving on later polls would render as read.
	if a.readFSM.State() == ActionCommitted {
		a.allRead = false
		a.readFSM.Reset()
	}
	// Authoritative definitive entries supersede their optimistic overlays.
	for _, entry := range merged {
		if entry.RequestID > 0 && entry.Definitive() {
			delete(a.actions, entry.RequestID)
		}
	}
	a.mu.Unlock()

	a.raiseLowStockAlerts(ctx)

	return nil
}

func (a *Aggregator) fetchSource(ctx context.Context, name string, fetch func(context.Context, int64) ([]Candidate, error)) []Candidate {
	candidates, err := fetch(ctx, a.branchID)
	if err != nil {
		log.Warn().Err(err).Int64("branch_id", a.branchID).Str("source", name).Msg("feed source fetch failed, degrading to empty list")
		return nil
	}
	return candidates
}

// raiseLowStockAlerts fires the alert callback once per low-stock reference
// id that has not been shown before. Suppression state lives in the injected
// seen store; it affects only the one-time alerts, never the feed itself.
func (a *Aggregator) raiseLowStockAlerts(ctx context.Context) {
	if a.alert == nil || a.seen == nil {
		return
	}

	alerts := a.fetchSource(ctx, "low_stock", a.remote.LowStock)
	for _, alert := range alerts {
		if alert.ReferenceID == 0 {
			continue
		}

		key := fmt.Sprintf("lowstock:%d:%d", a.branchID, alert.ReferenceID)
		shown, err := a.seen.Has(ctx, key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("seen store lookup failed, skipping alert")
			continue
		}
		if shown {
			continue
		}

		a.alert(a.branchID, alert)
		if err = a.seen.Set(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to record shown alert")
		}
	}
}

// Snapshot returns a copy of the merged feed with the read-state and
// optimistic action overlays applied.
func (a *Aggregator) Snapshot() []Candidate {
	a.mu.Lock()
	defer a.mu.Unlock()

	snapshot := make([]Candidate, len(a.entries))
	for i, entry := range a.entries {
		if a.allRead {
			entry.IsRead = true
		}
		if status, ok := a.actions[entry.RequestID]; ok && entry.RequestID > 0 && !entry.Definitive() {
			entry.Status = status
		}
		snapshot[i] = entry
	}

	return snapshot
}

// UnreadCount reports how many entries are unread after overlays.
func (a *Aggregator) UnreadCount() int {
	count := 0
	for _, entry := range a.Snapshot() {
		if !entry.IsRead {
			count++
		}
	}
	return count
}

// ReadState exposes the mark-read machine state, mainly for tests and the
// feed endpoint payload.
func (a *Aggregator) ReadState() ActionState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.readFSM.State()
}

// Open handles the closed-to-open transition of the notification panel: if
// the feed is non-empty, all loaded entries are marked read locally before
// the remote call is issued. On remote failure the local flag reverts and the
// authoritative list is re-fetched.
func (a *Aggregator) Open(ctx context.Context) error {
	a.mu.Lock()
	if len(a.entries) == 0 {
		a.mu.Unlock()
		return nil
	}
	if err := a.readFSM.Begin(); err != nil {
		// A second toggle while one is in flight; let both fire, the remote
		// operation is idempotent.
		a.mu.Unlock()
		return a.remote.MarkRead(ctx, a.branchID)
	}
	a.allRead = true
	a.mu.Unlock()

	err := a.remote.MarkRead(ctx, a.branchID)

	a.mu.Lock()
	if err != nil {
		a.allRead = false
		_ = a.readFSM.Rollback()
	} else {
		_ = a.readFSM.Commit()
	}
	a.mu.Unlock()

	if err != nil {
		// Resynchronize with the authoritative list.
		if refreshErr := a.Refresh(ctx); refreshErr != nil {
			log.Warn().Err(refreshErr).Int64("branch_id", a.branchID).Msg("failed to resync after mark-read failure")
		}
		return fmt.Errorf("failed to mark notifications read: %w", err)
	}

	return nil
}

// Approve optimistically marks the request approved and confirms remotely.
func (a *Aggregator) Approve(ctx context.Context, requestID int64, actedBy string) error {
	return a.resolve(ctx, requestID, actedBy, StatusApproved)
}

// Reject optimistically marks the request rejected and confirms remotely.
func (a *Aggregator) Reject(ctx context.Context, requestID int64, actedBy string) error {
	return a.resolve(ctx, requestID, actedBy, StatusRejected)
}

func (a *Aggregator) resolve(ctx context.Context, requestID int64, actedBy string, status RequestStatus) error {
	if requestID <= 0 {
		return fmt.Errorf("invalid request id %d", requestID)
	}
	if actedBy == "" {
		return fmt.Errorf("acting user id is required")
	}

	// Optimistic overlay happens-before the remote call.
	a.mu.Lock()
	a.actions[requestID] = status
	a.mu.Unlock()

	if err := a.remote.ResolveRequest(ctx, requestID, actedBy, status); err != nil {
		// Network failure, logical rejection, and malformed response all take
		// the same path: drop the overlay and surface the message.
		a.mu.Lock()
		delete(a.actions, requestID)
		a.mu.Unlock()
		return err
	}

	// Reconcile; the authoritative definitive entry wins in the merge.
	if err := a.Refresh(ctx); err != nil {
		log.Warn().Err(err).Int64("branch_id", a.branchID).Msg("failed to refresh after request resolution")
	}

	return nil
}

// PendingAction reports the optimistic status overlay for a request, if any.
func (a *Aggregator) PendingAction(requestID int64) (RequestStatus, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	status, ok := a.actions[requestID]
	return status, ok
}
