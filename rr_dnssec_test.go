package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDSRoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "example.com. 3600 IN DS 12345 8 2 49FD46E6C4B45C55D4AC69CBD3CD34AC1AFE51DE", origin)
	ds, ok := rr.(*DS)
	require.True(t, ok)
	require.Equal(t, uint16(12345), ds.KeyTag)
	require.Equal(t, uint8(8), ds.Algorithm)
	require.Equal(t, uint8(2), ds.DigestType)

	got := packUnpackRR(t, rr).(*DS)
	require.Equal(t, ds.KeyTag, got.KeyTag)
	require.Equal(t, ds.Algorithm, got.Algorithm)
	require.Equal(t, ds.DigestType, got.DigestType)
	require.Equal(t, ds.Digest, got.Digest)
	require.Equal(t, ds.presentRData(), got.presentRData())
}

func TestDNSKEYRoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "example.com. 3600 IN DNSKEY 257 3 8 AQPSKmynfzW4kyBv015MUG2DeIQ3Cbl+BBZH4b/0PY1kxkmvHjcZc8nokfzj31GajIQKY+5CptLr3buXA10hWqTkF7H6RfoRqXQeogmMHfpftf6zMv1LyBUgia7za6ZEzOJBOztyvhjL742iU/TpPSEDhm2SNKLijfUppn1UaNvv4w==", origin)
	dnskey, ok := rr.(*DNSKEY)
	require.True(t, ok)
	require.Equal(t, uint16(257), dnskey.Flags)
	require.Equal(t, uint8(3), dnskey.Protocol)
	require.Equal(t, uint8(8), dnskey.Algorithm)

	got := packUnpackRR(t, rr).(*DNSKEY)
	require.Equal(t, dnskey.Flags, got.Flags)
	require.Equal(t, dnskey.Protocol, got.Protocol)
	require.Equal(t, dnskey.Algorithm, got.Algorithm)
	require.Equal(t, dnskey.PublicKey, got.PublicKey)
}

func TestKEYSharesDNSKEYWireShape(t *testing.T) {
	key := &KEY{Flags: 256, Protocol: 3, Algorithm: 5, PublicKey: []byte{0x01, 0x02, 0x03}}
	dnskey := &DNSKEY{Flags: 256, Protocol: 3, Algorithm: 5, PublicKey: []byte{0x01, 0x02, 0x03}}

	keyBuf := NewWriterBuffer(0)
	require.NoError(t, key.packRData(keyBuf, nil))
	dnskeyBuf := NewWriterBuffer(0)
	require.NoError(t, dnskey.packRData(dnskeyBuf, nil))
	require.Equal(t, dnskeyBuf.Bytes(), keyBuf.Bytes())
}

func TestRRSIGRoundTripWithTimestamps(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t,
		"example.com. 3600 IN RRSIG A 8 2 3600 20210101000000 20201201000000 12345 example.com. AQPSKmynfzW4kyA=",
		origin)
	rrsig, ok := rr.(*RRSIG)
	require.True(t, ok)
	require.Equal(t, TypeA, rrsig.TypeCovered)
	require.Equal(t, uint8(8), rrsig.Algorithm)
	require.Equal(t, uint8(2), rrsig.Labels)
	require.Equal(t, uint32(3600), rrsig.OrigTtl)
	require.Equal(t, uint16(12345), rrsig.KeyTag)
	require.Equal(t, "example.com.", rrsig.SignerName.String())

	got := packUnpackRR(t, rr).(*RRSIG)
	require.Equal(t, rrsig.Expiration, got.Expiration)
	require.Equal(t, rrsig.Inception, got.Inception)
	require.Equal(t, rrsig.Signature, got.Signature)
	require.True(t, got.SignerName.Equal(rrsig.SignerName))
}

func TestRRSIGSignerNameNotCompressed(t *testing.T) {
	origin, err := ParseName("example.com.", Root())
	require.NoError(t, err)
	rr := parseRRLine(t,
		"example.com. 3600 IN RRSIG A 8 2 3600 20210101000000 20201201000000 12345 example.com. AA==",
		origin)
	rrsig := rr.(*RRSIG)

	buf := NewWriterBuffer(0)
	c := NewCompressor()
	require.NoError(t, c.Emit(buf, origin))

	rdataBuf := NewWriterBuffer(0)
	require.NoError(t, rrsig.packRData(rdataBuf, c))

	fixed := 2 + 1 + 1 + 4 + 4 + 4 + 2 // type covered, algo, labels, origttl, exp, inc, keytag
	nameLen := 13                     // uncompressed "example.com."
	sigLen := 1                       // "AA==" decodes to a single zero byte
	require.Equal(t, fixed+nameLen+sigLen, rdataBuf.Len())
}

func TestRRSIGAcceptsRawEpochTimestamp(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t,
		"example.com. 3600 IN RRSIG A 8 2 3600 1609459200 1606780800 12345 example.com. AA==",
		origin)
	rrsig := rr.(*RRSIG)
	require.Equal(t, uint32(1609459200), rrsig.Expiration)
	require.Equal(t, uint32(1606780800), rrsig.Inception)
}

func TestSIGIsWireIdenticalToRRSIG(t *testing.T) {
	sig := &SIG{
		TypeCovered: TypeA, Algorithm: 8, Labels: 2, OrigTtl: 3600,
		Expiration: 100, Inception: 50, KeyTag: 1,
		SignerName: mustNameRoot(t, "example.com."), Signature: []byte{0xAB},
	}
	rrsig := sig.asRRSIG()

	sigBuf := NewWriterBuffer(0)
	require.NoError(t, sig.packRData(sigBuf, nil))
	rrsigBuf := NewWriterBuffer(0)
	require.NoError(t, rrsig.packRData(rrsigBuf, nil))
	require.Equal(t, rrsigBuf.Bytes(), sigBuf.Bytes())
}

func mustNameRoot(t *testing.T, s string) Name {
	t.Helper()
	n, err := ParseName(s, Root())
	require.NoError(t, err)
	return n
}

func TestNSECRoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "alfa.example.com. 3600 IN NSEC host.example.com. A MX RRSIG NSEC TYPE1234", origin)
	nsec, ok := rr.(*NSEC)
	require.True(t, ok)
	require.Equal(t, "host.example.com.", nsec.NextDomain.String())
	require.Equal(t, []Type{TypeA, TypeMX, TypeRRSIG, TypeNSEC, Type(1234)}, nsec.TypeBitmap)

	got := packUnpackRR(t, rr).(*NSEC)
	require.True(t, got.NextDomain.Equal(nsec.NextDomain))
	require.Equal(t, nsec.TypeBitmap, got.TypeBitmap)
}

func TestNSECNextDomainNotCompressed(t *testing.T) {
	origin, err := ParseName("example.com.", Root())
	require.NoError(t, err)
	rr := parseRRLine(t, "alfa.example.com. 3600 IN NSEC example.com. A", origin)
	nsec := rr.(*NSEC)

	buf := NewWriterBuffer(0)
	c := NewCompressor()
	require.NoError(t, c.Emit(buf, origin))

	rdataBuf := NewWriterBuffer(0)
	require.NoError(t, nsec.packRData(rdataBuf, c))
	require.Greater(t, rdataBuf.Len(), 2+13) // well above a 2-byte pointer form
}

func TestNXTDelegatesToNSECWireShape(t *testing.T) {
	nxt := &NXT{NextDomain: mustNameRoot(t, "host.example.com."), TypeBitmap: []Type{TypeA}}
	nsec := nxt.asNSEC()

	nxtBuf := NewWriterBuffer(0)
	require.NoError(t, nxt.packRData(nxtBuf, nil))
	nsecBuf := NewWriterBuffer(0)
	require.NoError(t, nsec.packRData(nsecBuf, nil))
	require.Equal(t, nsecBuf.Bytes(), nxtBuf.Bytes())
}
