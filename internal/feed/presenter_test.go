package feed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPreviewBounded(t *testing.T) {
	now := time.Now()
	entries := make([]Candidate, 5)
	for i := range entries {
		entries[i] = Candidate{Message: "entry", CreatedAt: now.Add(-time.Duration(i) * time.Minute)}
	}

	preview := BuildPreview(entries, PreviewLimit)

	assert.Len(t, preview.Entries, 2)
	assert.Equal(t, 3, preview.Remaining)
	assert.Equal(t, 5, preview.Total)
}

func TestBuildPreviewNoRemainder(t *testing.T) {
	preview := BuildPreview([]Candidate{{Message: "only"}}, PreviewLimit)

	assert.Len(t, preview.Entries, 1)
	assert.Equal(t, 0, preview.Remaining)
}

func TestBuildPreviewCountsUnreadAcrossWholeList(t *testing.T) {
	now := time.Now()
	preview := BuildPreview([]Candidate{
		{Message: "a", IsRead: true, CreatedAt: now},
		{Message: "b", CreatedAt: now},
		{Message: "c", CreatedAt: now},
	}, 1)

	assert.Len(t, preview.Entries, 1)
	assert.Equal(t, 2, preview.Unread)
}

func TestDisplayEntryStripsRequestToken(t *testing.T) {
	preview := BuildPreview([]Candidate{
		{Type: TypeRequest, Message: "Branch 2 requested 5 units [req: 12]", RequestID: 12},
	}, PreviewLimit)

	require.Len(t, preview.Entries, 1)
	assert.Equal(t, "Branch 2 requested 5 units", preview.Entries[0].Message)
}

func TestDisplayEntrySplitsLowStockSegments(t *testing.T) {
	preview := BuildPreview([]Candidate{
		{Type: TypeLowStock, Message: "Low stock alert\nParacetamol: 4 left\n8/29/2026"},
	}, PreviewLimit)

	require.Len(t, preview.Entries, 1)
	entry := preview.Entries[0]
	require.Len(t, entry.Lines, 3)
	assert.Equal(t, "Low stock alert", entry.Lines[0])
	assert.Equal(t, "Paracetamol: 4 left", entry.Lines[1])
	assert.Equal(t, "8/29/2026", entry.Lines[2])
}

func TestDisplayEntryTimeAgo(t *testing.T) {
	preview := BuildPreview([]Candidate{
		{Message: "recent", CreatedAt: time.Now().Add(-2 * time.Minute)},
	}, PreviewLimit)

	require.Len(t, preview.Entries, 1)
	assert.NotEmpty(t, preview.Entries[0].TimeAgo)
}
