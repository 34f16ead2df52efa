package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTryParseGenericRDataHandlesHashMarker(t *testing.T) {
	toks := newTokenCursor([]string{`\#`, "3", "ab", "cd", "ef"})
	data, handled, err := tryParseGenericRData(toks)
	require.NoError(t, err)
	require.True(t, handled)
	require.Equal(t, []byte{0xab, 0xcd, 0xef}, data)
}

func TestTryParseGenericRDataNotHandledWhenNoMarker(t *testing.T) {
	toks := newTokenCursor([]string{"93.184.216.34"})
	data, handled, err := tryParseGenericRData(toks)
	require.NoError(t, err)
	require.False(t, handled)
	require.Nil(t, data)

	// Cursor must be rewound so the caller's own parser still sees the token.
	tok, ok := toks.next()
	require.True(t, ok)
	require.Equal(t, "93.184.216.34", tok)
}

func TestTryParseGenericRDataLengthMismatchRejected(t *testing.T) {
	toks := newTokenCursor([]string{`\#`, "4", "ab", "cd"})
	_, handled, err := tryParseGenericRData(toks)
	require.True(t, handled)
	require.Error(t, err)
}

func TestPresentGenericRDataRoundTrip(t *testing.T) {
	raw := []byte{0xde, 0xad, 0xbe, 0xef}
	s := presentGenericRData(raw)
	require.Equal(t, `\# 4 deadbeef`, s)
}

// Every registered RR type's parseRData must try the generic \# form
// before its own textual grammar, per RFC 3597 §5 (§4.4 integration).
func TestGenericRDataFallbackAppliesAcrossTypes(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, `host.example.com. 3600 IN A \# 4 5db8d822`, origin)
	a, ok := rr.(*A)
	require.True(t, ok)
	require.Equal(t, "93.184.216.34", a.A.String())
}
