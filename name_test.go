package dns

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseNamePresentationRoundTrip(t *testing.T) {
	n, err := ParseName("www.example.com.", Root())
	require.NoError(t, err)
	require.Equal(t, "www.example.com.", n.String())
	require.Equal(t, 3, n.NumLabels())
}

func TestParseNameRelativeToOrigin(t *testing.T) {
	origin, err := ParseName("example.com.", Root())
	require.NoError(t, err)

	n, err := ParseName("www", origin)
	require.NoError(t, err)
	require.Equal(t, "www.example.com.", n.String())
}

func TestParseNameAtSignIsOrigin(t *testing.T) {
	origin, err := ParseName("example.com.", Root())
	require.NoError(t, err)

	n, err := ParseName("@", origin)
	require.NoError(t, err)
	require.True(t, n.Equal(origin))
}

func TestParseNameEscapes(t *testing.T) {
	n, err := ParseName(`a\.b.example.com.`, Root())
	require.NoError(t, err)
	require.Equal(t, "a.b", n.Label(0))
	require.Equal(t, `a\.b.example.com.`, n.String())
}

func TestParseNameDDDEscape(t *testing.T) {
	n, err := ParseName(`\000foo.example.com.`, Root())
	require.NoError(t, err)
	require.Equal(t, "\x00foo", n.Label(0))
}

func TestParseNameLabelTooLong(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err := ParseName(string(long)+".example.com.", Root())
	require.ErrorIs(t, err, errLabelTooLong)
}

func TestNameRoot(t *testing.T) {
	require.True(t, Root().IsRoot())
	require.Equal(t, ".", Root().String())
}

func TestNameTopLevelAllDigitsRejected(t *testing.T) {
	_, err := NewName("www", "123")
	require.Error(t, err)
}

func TestNameTopLevelNotAllDigitsAccepted(t *testing.T) {
	n, err := NewName("www", "example", "com")
	require.NoError(t, err)
	require.Equal(t, "www.example.com.", n.String())
}

func TestNameIsSubdomainOf(t *testing.T) {
	parent, err := ParseName("example.com.", Root())
	require.NoError(t, err)
	child, err := ParseName("www.example.com.", Root())
	require.NoError(t, err)

	require.True(t, child.IsSubdomainOf(parent))
	require.True(t, parent.IsSubdomainOf(parent))
	require.False(t, parent.IsSubdomainOf(child))
}

func TestNameWireRoundTripMatchesOriginal(t *testing.T) {
	want, err := ParseName("www.example.com.", Root())
	require.NoError(t, err)

	w := NewWriterBuffer(0)
	require.NoError(t, NewCompressor().Emit(w, want))
	wire, err := w.Freeze(w.Len())
	require.NoError(t, err)

	got, err := NewReader(wire).ReadName()
	require.NoError(t, err)

	// Name wraps an unexported label slice; cmp.Diff uses Name.Equal as its
	// equality method rather than panicking on the unexported field.
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("name did not survive the wire round trip (-want +got):\n%s", diff)
	}
}

func TestNameCanonicalKeyCaseInsensitive(t *testing.T) {
	a, err := ParseName("WWW.Example.COM.", Root())
	require.NoError(t, err)
	b, err := ParseName("www.example.com.", Root())
	require.NoError(t, err)

	require.Equal(t, a.canonicalKey(), b.canonicalKey())
	require.False(t, a.Equal(b))
}
