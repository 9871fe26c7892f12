package feed

import (
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// PreviewLimit is how many entries the notification panel shows inline.
const PreviewLimit = 2

// DisplayEntry is a feed entry prepared for rendering. Low-stock messages are
// split into their embedded segments; all other types get a single message
// line with any trailing request token stripped.
type DisplayEntry struct {
	Key       string        `json:"key"`
	Type      EntryType     `json:"type"`
	Title     string        `json:"title,omitempty"`
	Message   string        `json:"message"`
	Lines     []string      `json:"lines,omitempty"`
	IsRead    bool          `json:"is_read"`
	RequestID int64         `json:"request_id,omitempty"`
	Status    RequestStatus `json:"request_status,omitempty"`
	CreatedAt time.Time     `json:"created_at"`
	TimeAgo   string        `json:"time_ago,omitempty"`
}

// Preview is the bounded feed view: the first PreviewLimit entries plus a
// count of the remainder.
type Preview struct {
	Entries   []DisplayEntry `json:"entries"`
	Remaining int            `json:"remaining"`
	Total     int            `json:"total"`
	Unread    int            `json:"unread"`
}

func toDisplayEntry(c Candidate) DisplayEntry {
	entry := DisplayEntry{
		Key:       NormalizeKey(c),
		Type:      c.Type,
		Title:     c.Title,
		IsRead:    c.IsRead,
		RequestID: c.RequestID,
		Status:    c.Status,
		CreatedAt: effectiveTime(c),
	}

	if c.Type == TypeLowStock && strings.Contains(c.Message, "\n") {
		for _, segment := range strings.Split(c.Message, "\n") {
			if segment = strings.TrimSpace(segment); segment != "" {
				entry.Lines = append(entry.Lines, segment)
			}
		}
		if len(entry.Lines) > 0 {
			entry.Message = entry.Lines[0]
		}
	} else {
		entry.Message = strings.TrimSpace(StripRequestToken(c.Message))
	}

	if !entry.CreatedAt.IsZero() {
		entry.TimeAgo = humanize.Time(entry.CreatedAt)
	}

	return entry
}

// BuildPreview renders the first limit entries of a deduped feed. A limit of
// zero or less falls back to PreviewLimit.
func BuildPreview(entries []Candidate, limit int) Preview {
	if limit <= 0 {
		limit = PreviewLimit
	}

	preview := Preview{
		Entries: []DisplayEntry{},
		Total:   len(entries),
	}

	for i, c := range entries {
		if !c.IsRead {
			preview.Unread++
		}
		if i < limit {
			preview.Entries = append(preview.Entries, toDisplayEntry(c))
		}
	}

	if len(entries) > limit {
		preview.Remaining = len(entries) - limit
	}

	return preview
}
