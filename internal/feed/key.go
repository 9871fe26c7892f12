package feed

import (
	"regexp"
	"strconv"
	"strings"
)

// Request-type messages carry a trailing token like "[req: 12]" so the client
// can recover the request id. The token is never part of a message-based
// identity key and is stripped before display.
var requestTokenPattern = regexp.MustCompile(`(?i)\s*\[req:\s*(\d+)\]\s*$`)

// StripRequestToken removes a trailing "[req: <digits>]" token from a message.
func StripRequestToken(message string) string {
	return requestTokenPattern.ReplaceAllString(message, "")
}

// RequestTokenID extracts the request id from a trailing "[req: <digits>]"
// token, or 0 if the message carries none.
func RequestTokenID(message string) int64 {
	matches := requestTokenPattern.FindStringSubmatch(message)
	if matches == nil {
		return 0
	}

	id, err := strconv.ParseInt(matches[1], 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// NormalizeKey derives the stable identity key for a candidate. The request
// id wins over the reference id, which wins over the normalized message text.
// The function is pure and deterministic; it is the sole dedup mechanism.
func NormalizeKey(c Candidate) string {
	if c.RequestID > 0 {
		return "req:" + strconv.FormatInt(c.RequestID, 10)
	}
	if c.ReferenceID > 0 {
		return "ref:" + strconv.FormatInt(c.ReferenceID, 10)
	}

	return "msg:" + strings.ToLower(strings.TrimSpace(StripRequestToken(c.Message)))
}
