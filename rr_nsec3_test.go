package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNSEC3RoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t,
		"0p9mhaveqvm6t7vbl5lop2u3t2rp3tom.example.com. 3600 IN NSEC3 1 1 12 aabbccdd 2t7b4g4vsa5smi47k61mv5bv1a22bojr A RRSIG",
		origin)
	nsec3, ok := rr.(*NSEC3)
	require.True(t, ok)
	require.Equal(t, uint8(1), nsec3.HashAlgo)
	require.Equal(t, uint8(1), nsec3.Flags)
	require.Equal(t, uint16(12), nsec3.Iterations)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, nsec3.Salt)
	require.Equal(t, []Type{TypeA, TypeRRSIG}, nsec3.TypeBitmap)

	got := packUnpackRR(t, rr).(*NSEC3)
	require.Equal(t, nsec3.HashAlgo, got.HashAlgo)
	require.Equal(t, nsec3.Flags, got.Flags)
	require.Equal(t, nsec3.Iterations, got.Iterations)
	require.Equal(t, nsec3.Salt, got.Salt)
	require.Equal(t, nsec3.NextHashed, got.NextHashed)
	require.Equal(t, nsec3.TypeBitmap, got.TypeBitmap)
	require.Equal(t, nsec3.presentRData(), got.presentRData())
}

func TestNSEC3EmptySaltPresentsAsHyphen(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t,
		"0p9mhaveqvm6t7vbl5lop2u3t2rp3tom.example.com. 3600 IN NSEC3 1 0 0 - 2t7b4g4vsa5smi47k61mv5bv1a22bojr",
		origin)
	nsec3 := rr.(*NSEC3)
	require.Empty(t, nsec3.Salt)
	require.Contains(t, nsec3.presentRData(), " - ")
}

func TestNSEC3ParamRoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "example.com. 3600 IN NSEC3PARAM 1 0 12 aabbccdd", origin)
	np, ok := rr.(*NSEC3PARAM)
	require.True(t, ok)
	require.Equal(t, uint8(1), np.HashAlgo)
	require.Equal(t, uint16(12), np.Iterations)
	require.Equal(t, []byte{0xaa, 0xbb, 0xcc, 0xdd}, np.Salt)

	got := packUnpackRR(t, rr).(*NSEC3PARAM)
	require.Equal(t, np.HashAlgo, got.HashAlgo)
	require.Equal(t, np.Flags, got.Flags)
	require.Equal(t, np.Iterations, got.Iterations)
	require.Equal(t, np.Salt, got.Salt)
}

func TestNSEC3HashedOwnerUsesExtendedHexAlphabet(t *testing.T) {
	// NewBase32ExtendedHex's alphabet runs 0-9A-V, unlike the standard
	// base32 alphabet's A-Z2-7, so a NSEC3 hash like "2t7b..." round-trips
	// only under the extended-hex decoder.
	raw := []byte{0xd3, 0x9b, 0x45, 0x0a}
	encoded := NewBase32ExtendedHex().WithPadding(0).EncodeToString(raw)

	origin := Root()
	line := "alfa.example.com. 3600 IN NSEC3 1 0 0 - " + encoded
	rr := parseRRLine(t, line, origin)
	nsec3 := rr.(*NSEC3)
	require.Equal(t, raw, nsec3.NextHashed)
}
