package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTypeBitmapRoundTrip(t *testing.T) {
	types := []Type{TypeA, TypeMX, TypeRRSIG, TypeNSEC, Type(1234)}

	w := NewWriterBuffer(0)
	require.NoError(t, PackTypeBitmap(w, types))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	got, err := UnpackTypeBitmap(r)
	require.NoError(t, err)
	require.ElementsMatch(t, types, got)
}

func TestTypeBitmapMultipleWindows(t *testing.T) {
	types := []Type{TypeA, Type(256 + 5), Type(512 + 1)}

	w := NewWriterBuffer(0)
	require.NoError(t, PackTypeBitmap(w, types))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	got, err := UnpackTypeBitmap(r)
	require.NoError(t, err)
	require.ElementsMatch(t, types, got)
}

func TestTypeBitmapWindowsOutOfOrderRejected(t *testing.T) {
	w := NewWriterBuffer(0)
	require.NoError(t, w.WriteU8(1))
	require.NoError(t, w.WriteU8(1))
	require.NoError(t, w.WriteBytes([]byte{0x80}))
	require.NoError(t, w.WriteU8(0))
	require.NoError(t, w.WriteU8(1))
	require.NoError(t, w.WriteBytes([]byte{0x80}))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	_, err = UnpackTypeBitmap(r)
	require.Error(t, err)
}

func TestTypeBitmapInvalidWindowLength(t *testing.T) {
	w := NewWriterBuffer(0)
	require.NoError(t, w.WriteU8(0))
	require.NoError(t, w.WriteU8(33))
	out, err := w.Freeze(w.Len())
	require.NoError(t, err)

	r := NewReader(out)
	_, err = UnpackTypeBitmap(r)
	require.Error(t, err)
}
