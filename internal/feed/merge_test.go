package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateAt(requestID int64, status RequestStatus, createdAt time.Time) Candidate {
	return Candidate{
		Type:      TypeRequest,
		Message:   "stock request",
		RequestID: requestID,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestMergeDedupIdempotence(t *testing.T) {
	now := time.Now()
	notifications := []Candidate{
		candidateAt(1, StatusNone, now),
		{Message: "Clinic closed Friday", CreatedAt: now.Add(-time.Hour)},
	}

	once := Merge(notifications, nil, nil)
	twice := Merge(append(append([]Candidate{}, notifications...), notifications...), nil, nil)

	assert.Equal(t, once, twice)
}

func TestMergeStatusPrecedence(t *testing.T) {
	now := time.Now()
	plain := candidateAt(5, StatusNone, now)
	resolved := candidateAt(5, StatusApproved, now)

	// The definitive candidate wins regardless of input order.
	merged := Merge([]Candidate{plain}, nil, []Candidate{resolved})
	require.Len(t, merged, 1)
	assert.Equal(t, StatusApproved, merged[0].Status)

	merged = Merge([]Candidate{resolved}, []Candidate{plain}, nil)
	require.Len(t, merged, 1)
	assert.Equal(t, StatusApproved, merged[0].Status)
}

func TestMergeFirstDefinitiveStatusWins(t *testing.T) {
	now := time.Now()
	approved := candidateAt(5, StatusApproved, now)
	rejected := candidateAt(5, StatusRejected, now)

	// Conflicting definitive statuses: first encountered in source priority
	// order is kept.
	merged := Merge([]Candidate{approved}, nil, []Candidate{rejected})
	require.Len(t, merged, 1)
	assert.Equal(t, StatusApproved, merged[0].Status)
}

func TestMergePendingKeptWhenNoDefinitive(t *testing.T) {
	now := time.Now()
	merged := Merge(
		[]Candidate{candidateAt(3, StatusNone, now)},
		[]Candidate{candidateAt(3, StatusPending, now)},
		nil,
	)

	require.Len(t, merged, 1)
	// Pending is not definitive, so the first-seen entry stays.
	assert.Equal(t, StatusNone, merged[0].Status)
}

func TestMergeThreeSourceScenario(t *testing.T) {
	now := time.Now()
	notifications := []Candidate{{Message: "A", RequestID: 1, CreatedAt: now}}
	pending := []Candidate{candidateAt(1, StatusPending, now)}
	history := []Candidate{candidateAt(1, StatusApproved, now)}

	merged := Merge(notifications, pending, history)

	require.Len(t, merged, 1)
	assert.Equal(t, "req:1", NormalizeKey(merged[0]))
	assert.Equal(t, StatusApproved, merged[0].Status)
}

func TestMergeSortsNewestFirst(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	t3 := t2.Add(time.Hour)

	merged := Merge([]Candidate{
		{Message: "first", CreatedAt: t1},
		{Message: "third", CreatedAt: t3},
		{Message: "second", CreatedAt: t2},
	}, nil, nil)

	require.Len(t, merged, 3)
	assert.Equal(t, "third", merged[0].Message)
	assert.Equal(t, "second", merged[1].Message)
	assert.Equal(t, "first", merged[2].Message)
}

func TestMergeFallsBackToLocaleTimestamp(t *testing.T) {
	iso := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	merged := Merge([]Candidate{
		{Message: "older locale", RawCreatedAt: "7/1/2026, 9:00:00 AM"},
		{Message: "newer iso", CreatedAt: iso},
	}, nil, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "newer iso", merged[0].Message)
	assert.Equal(t, "older locale", merged[1].Message)
}

func TestMergeStableOnEqualTimestamps(t *testing.T) {
	now := time.Now()
	merged := Merge([]Candidate{
		{Message: "alpha", CreatedAt: now},
		{Message: "beta", CreatedAt: now},
	}, nil, nil)

	require.Len(t, merged, 2)
	assert.Equal(t, "alpha", merged[0].Message)
	assert.Equal(t, "beta", merged[1].Message)
}
