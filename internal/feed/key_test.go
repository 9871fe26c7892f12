package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKeyRequestIDWins(t *testing.T) {
	// Message is ignored when a request id is present.
	a := NormalizeKey(Candidate{RequestID: 7, Message: "X"})
	b := NormalizeKey(Candidate{RequestID: 7, Message: "Y"})

	assert.Equal(t, "req:7", a)
	assert.Equal(t, a, b)
}

func TestNormalizeKeyReferenceIDFallback(t *testing.T) {
	key := NormalizeKey(Candidate{ReferenceID: 42, Message: "anything"})
	assert.Equal(t, "ref:42", key)
}

func TestNormalizeKeyMessageFallbackStripsToken(t *testing.T) {
	withToken := NormalizeKey(Candidate{Message: "Branch 2 requested 5 units [req: 12]"})
	withoutToken := NormalizeKey(Candidate{Message: "Branch 2 requested 5 units"})

	assert.Equal(t, withoutToken, withToken)
	assert.Equal(t, "msg:branch 2 requested 5 units", withToken)
}

func TestNormalizeKeyMessageNormalization(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"lowercased", "Fever Medicine Restocked", "msg:fever medicine restocked"},
		{"trimmed", "  spaced out  ", "msg:spaced out"},
		{"token case insensitive", "transfer done [REQ: 9]", "msg:transfer done"},
		{"empty message", "", "msg:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeKey(Candidate{Message: tc.message}))
		})
	}
}

func TestNormalizeKeyDeterministic(t *testing.T) {
	c := Candidate{Message: "Branch 3 requested 10 units [req: 55]"}
	assert.Equal(t, NormalizeKey(c), NormalizeKey(c))
}

func TestStripRequestTokenOnlyTrailing(t *testing.T) {
	// A token in the middle of the message is not a trailing token.
	assert.Equal(t, "before [req: 1] after", StripRequestToken("before [req: 1] after"))
	assert.Equal(t, "before", StripRequestToken("before [req: 1]"))
	assert.Equal(t, "before", StripRequestToken("before  [req:  123]  "))
}

func TestRequestTokenID(t *testing.T) {
	assert.Equal(t, int64(12), RequestTokenID("Branch 2 requested 5 units [req: 12]"))
	assert.Equal(t, int64(0), RequestTokenID("no token here"))
}
