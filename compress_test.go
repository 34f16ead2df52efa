package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressorSharesSuffixOffset(t *testing.T) {
	a, err := ParseName("www.example.com.", Root())
	require.NoError(t, err)
	b, err := ParseName("mail.example.com.", Root())
	require.NoError(t, err)

	w := NewWriterBuffer(0)
	c := NewCompressor()
	require.NoError(t, c.Emit(w, a))
	offsetAfterA := w.Len()
	require.NoError(t, c.Emit(w, b))

	// b's label is new (4 bytes + length octet) but "example.com." should be
	// a 2-byte pointer back into a's encoding instead of being re-emitted.
	uncompressedSuffixLen := 1 + len("example") + 1 + len("com") + 1
	require.Less(t, w.Len()-offsetAfterA, 1+len("mail")+uncompressedSuffixLen)

	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	got, err := r.ReadName()
	require.NoError(t, err)
	require.True(t, got.Equal(a))

	got2, err := r.ReadName()
	require.NoError(t, err)
	require.True(t, got2.Equal(b))
}

func TestCompressorDisabledWhenNil(t *testing.T) {
	a, err := ParseName("www.example.com.", Root())
	require.NoError(t, err)

	w := NewWriterBuffer(0)
	var c *Compressor
	require.NoError(t, c.Emit(w, a))
	require.NoError(t, c.Emit(w, a))

	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	_, err = r.ReadName()
	require.NoError(t, err)
	_, err = r.ReadName()
	require.NoError(t, err)
	// No pointer byte anywhere: every label of the second occurrence is
	// written out in full since compression is disabled.
	require.Equal(t, len(out), 2*(1+len("www")+1+len("example")+1+len("com")+1))
}

func TestReadNameNoCompressionRejectsPointer(t *testing.T) {
	w := NewWriterBuffer(0)
	require.NoError(t, w.WriteU16(0xC00C))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	_, err = r.ReadNameNoCompression()
	require.Error(t, err)
}

func TestRootNameIsSingleZeroByte(t *testing.T) {
	w := NewWriterBuffer(0)
	c := NewCompressor()
	require.NoError(t, c.Emit(w, Root()))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)
	require.Equal(t, []byte{0}, out)
}
