package feed

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRemote implements Remote with canned responses and call counters.
type fakeRemote struct {
	mu sync.Mutex

	notifications []Candidate
	pending       []Candidate
	history       []Candidate
	lowStock      []Candidate

	notificationsErr error
	markReadErr      error
	resolveErr       error

	markReadCalls int
	resolveCalls  int
	refreshCalls  int
}

func (f *fakeRemote) Notifications(_ context.Context, _ int64) ([]Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshCalls++
	if f.notificationsErr != nil {
		return nil, f.notificationsErr
	}
	return f.notifications, nil
}

func (f *fakeRemote) LowStock(_ context.Context, _ int64) ([]Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lowStock, nil
}

func (f *fakeRemote) PendingRequests(_ context.Context, _ int64) ([]Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pending, nil
}

func (f *fakeRemote) RequestHistory(_ context.Context, _ int64) ([]Candidate, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.history, nil
}

func (f *fakeRemote) MarkRead(_ context.Context, _ int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markReadCalls++
	return f.markReadErr
}

func (f *fakeRemote) ResolveRequest(_ context.Context, _ int64, _ string, _ RequestStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resolveCalls++
	return f.resolveErr
}

func TestRefreshMergesAllSources(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		notifications: []Candidate{{Message: "A", RequestID: 1, CreatedAt: now}},
		pending:       []Candidate{candidateAt(1, StatusPending, now)},
		history:       []Candidate{candidateAt(1, StatusApproved, now)},
	}
	aggregator := NewAggregator(1, remote, nil, nil)

	require.NoError(t, aggregator.Refresh(context.Background()))

	snapshot := aggregator.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, StatusApproved, snapshot[0].Status)
}

func TestRefreshDegradesFailedSource(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		notificationsErr: errors.New("connection refused"),
		pending:          []Candidate{candidateAt(2, StatusPending, now)},
	}
	aggregator := NewAggregator(1, remote, nil, nil)

	// One unreachable source never fails the whole refresh.
	require.NoError(t, aggregator.Refresh(context.Background()))

	snapshot := aggregator.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, int64(2), snapshot[0].RequestID)
}

func TestOpenMarksAllReadOptimistically(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		notifications: []Candidate{
			{Message: "one", CreatedAt: now},
			{Message: "two", CreatedAt: now.Add(-time.Minute)},
		},
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))
	require.Equal(t, 2, aggregator.UnreadCount())

	require.NoError(t, aggregator.Open(context.Background()))

	assert.Equal(t, 0, aggregator.UnreadCount())
	assert.Equal(t, 1, remote.markReadCalls)
	assert.Equal(t, ActionCommitted, aggregator.ReadState())
}

func TestOpenRollbackOnRemoteFailure(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		notifications: []Candidate{{Message: "one", CreatedAt: now}},
		markReadErr:   errors.New("network down"),
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))

	err := aggregator.Open(context.Background())

	require.Error(t, err)
	// The badge reappears and the authoritative list was re-fetched.
	assert.Equal(t, 1, aggregator.UnreadCount())
	assert.Equal(t, ActionRolledBack, aggregator.ReadState())
	assert.GreaterOrEqual(t, remote.refreshCalls, 2)
}

func TestRefreshRestoresUnreadBadgeAfterOpen(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		notifications: []Candidate{{Message: "one", CreatedAt: now}},
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))
	require.NoError(t, aggregator.Open(context.Background()))
	require.Equal(t, 0, aggregator.UnreadCount())

	// A new notification arrives after the panel was opened; the server has
	// already persisted the earlier mark-read.
	remote.mu.Lock()
	remote.notifications = []Candidate{
		{Message: "one", IsRead: true, CreatedAt: now},
		{Message: "two", CreatedAt: now.Add(time.Minute)},
	}
	remote.mu.Unlock()

	require.NoError(t, aggregator.Refresh(context.Background()))

	assert.Equal(t, 1, aggregator.UnreadCount())
	assert.Equal(t, ActionIdle, aggregator.ReadState())
}

func TestOpenNoopOnEmptyFeed(t *testing.T) {
	remote := &fakeRemote{}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))

	require.NoError(t, aggregator.Open(context.Background()))
	assert.Equal(t, 0, remote.markReadCalls)
}

func TestApproveOptimisticOverlay(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		pending: []Candidate{candidateAt(9, StatusPending, now)},
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))

	require.NoError(t, aggregator.Approve(context.Background(), 9, "user-1"))

	assert.Equal(t, 1, remote.resolveCalls)
	// After reconciliation the overlay may be dropped in favor of the
	// authoritative entry; the visible status is approved either way until
	// the server catches up.
	snapshot := aggregator.Snapshot()
	require.Len(t, snapshot, 1)
}

func TestApproveRollbackOnFailure(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		pending:    []Candidate{candidateAt(9, StatusPending, now)},
		resolveErr: errors.New("request already resolved by someone else"),
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))

	err := aggregator.Approve(context.Background(), 9, "user-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already resolved")
	// Overlay entry is gone after the call settles.
	_, pending := aggregator.PendingAction(9)
	assert.False(t, pending)
	assert.Equal(t, 1, remote.resolveCalls)
}

func TestResolveRejectsInvalidInput(t *testing.T) {
	aggregator := NewAggregator(1, &fakeRemote{}, nil, nil)

	require.Error(t, aggregator.Approve(context.Background(), 0, "user-1"))
	require.Error(t, aggregator.Reject(context.Background(), -5, "user-1"))
	require.Error(t, aggregator.Approve(context.Background(), 3, ""))
}

func TestAuthoritativeStatusClearsOverlay(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		pending: []Candidate{candidateAt(4, StatusPending, now)},
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))
	require.NoError(t, aggregator.Reject(context.Background(), 4, "user-2"))

	// Server reconciles: the history list now carries the definitive entry.
	remote.mu.Lock()
	remote.pending = nil
	remote.history = []Candidate{candidateAt(4, StatusRejected, now)}
	remote.mu.Unlock()

	require.NoError(t, aggregator.Refresh(context.Background()))

	_, pending := aggregator.PendingAction(4)
	assert.False(t, pending)
	snapshot := aggregator.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, StatusRejected, snapshot[0].Status)
}

func TestLowStockAlertFiredOncePerReference(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		lowStock: []Candidate{
			{Type: TypeLowStock, Message: "Paracetamol low", ReferenceID: 11, CreatedAt: now},
			{Type: TypeLowStock, Message: "No reference id", CreatedAt: now},
		},
	}

	var alerts []Candidate
	aggregator := NewAggregator(1, remote, NewMemorySeenStore(), func(_ int64, alert Candidate) {
		alerts = append(alerts, alert)
	})

	require.NoError(t, aggregator.Refresh(context.Background()))
	require.NoError(t, aggregator.Refresh(context.Background()))

	// Only the candidate with a reference id alerts, and only once.
	require.Len(t, alerts, 1)
	assert.Equal(t, int64(11), alerts[0].ReferenceID)
}

func TestSnapshotDoesNotMutateSource(t *testing.T) {
	now := time.Now()
	remote := &fakeRemote{
		notifications: []Candidate{{Message: "one", CreatedAt: now}},
	}
	aggregator := NewAggregator(1, remote, nil, nil)
	require.NoError(t, aggregator.Refresh(context.Background()))
	require.NoError(t, aggregator.Open(context.Background()))

	first := aggregator.Snapshot()
	first[0].Message = "mutated"

	second := aggregator.Snapshot()
	assert.Equal(t, "one", second[0].Message)
}
