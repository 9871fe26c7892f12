package feed

import (
	"sort"
	"time"
)

// Layouts tried, in order, when a candidate has no ISO timestamp and only a
// locale-formatted date string.
var fallbackTimeLayouts = []string{
	time.RFC3339,
	"1/2/2006, 3:04:05 PM",
	"01/02/2006, 15:04:05",
	"Jan 2, 2006 3:04 PM",
}

// effectiveTime resolves the timestamp used for ordering. The ISO field wins;
// a locale-formatted string is parsed as a fallback; otherwise zero.
func effectiveTime(c Candidate) time.Time {
	if !c.CreatedAt.IsZero() {
		return c.CreatedAt
	}

	for _, layout := range fallbackTimeLayouts {
		if t, err := time.Parse(layout, c.RawCreatedAt); err == nil {
			return t
		}
	}

	return time.Time{}
}

// Merge combines the three feed sources into one deduped list, newest first.
// Sources are processed in fixed priority order: live notifications, then
// pending requests, then request history. Within a key, a later candidate
// replaces the held one only when it carries a definitive status and the held
// one does not; the first definitive status encountered wins thereafter.
func Merge(notifications, pending, history []Candidate) []Candidate {
	keys := make([]string, 0, len(notifications)+len(pending)+len(history))
	byKey := make(map[string]Candidate)

	insert := func(c Candidate) {
		key := NormalizeKey(c)
		existing, ok := byKey[key]
		if !ok {
			keys = append(keys, key)
			byKey[key] = c
			return
		}
		if c.Definitive() && !existing.Definitive() {
			byKey[key] = c
		}
	}

	for _, c := range notifications {
		insert(c)
	}
	for _, c := range pending {
		insert(c)
	}
	for _, c := range history {
		insert(c)
	}

	merged := make([]Candidate, 0, len(keys))
	for _, key := range keys {
		merged = append(merged, byKey[key])
	}

	// Stable so that equal timestamps keep their insertion order.
	sort.SliceStable(merged, func(i, j int) bool {
		return effectiveTime(merged[i]).After(effectiveTime(merged[j]))
	})

	return merged
}
