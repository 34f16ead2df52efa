package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharacterStringPackUnpackRoundTrip(t *testing.T) {
	cs := CharacterString("hello world")
	w := NewWriterBuffer(0)
	require.NoError(t, cs.Pack(w))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	got, err := UnpackCharacterString(r)
	require.NoError(t, err)
	require.Equal(t, cs, got)
}

func TestCharacterStringTooLongRejected(t *testing.T) {
	cs := CharacterString(make([]byte, 256))
	w := NewWriterBuffer(0)
	require.Error(t, cs.Pack(w))
}

func TestCharacterStringPresentEveryByteRoundTrips(t *testing.T) {
	for mode := QuoteDynamic; mode <= QuoteNever; mode++ {
		for b := 0; b < 256; b++ {
			cs := CharacterString([]byte{byte(b)})
			presented := cs.Present(mode)
			unquoted := presented
			if len(presented) >= 2 && presented[0] == '"' && presented[len(presented)-1] == '"' {
				unquoted = presented[1 : len(presented)-1]
			}
			parsed := unescapePresentedBytes(t, unquoted)
			require.Equal(t, []byte(cs), parsed, "mode=%d byte=%d presented=%q", mode, b, presented)
		}
	}
}

// unescapePresentedBytes reverses CharacterString.Present's escaping
// ('\\X' and '\\DDD') for the round-trip test above.
func unescapePresentedBytes(t *testing.T, s string) []byte {
	t.Helper()
	var out []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' {
			out = append(out, s[i])
			continue
		}
		require.Less(t, i+1, len(s))
		next := s[i+1]
		if next >= '0' && next <= '9' {
			require.LessOrEqual(t, i+4, len(s))
			v := (int(s[i+1]-'0'))*100 + (int(s[i+2]-'0'))*10 + int(s[i+3]-'0')
			out = append(out, byte(v))
			i += 3
			continue
		}
		out = append(out, next)
		i++
	}
	return out
}
