package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func parseRRLine(t *testing.T, line string, origin Name) RR {
	t.Helper()
	sc := NewScanner([]byte(line + "\n"))
	state := &ScanState{}
	scanned, err := sc.ScanRR(state, origin)
	require.NoError(t, err)
	rr, err := ParseRR(scanned, origin)
	require.NoError(t, err)
	return rr
}

func packUnpackRR(t *testing.T, rr RR) RR {
	t.Helper()
	buf := NewWriterBuffer(0)
	c := NewCompressor()
	require.NoError(t, PackRR(rr, buf, c))
	out, err := buf.Freeze(buf.Len())
	require.NoError(t, err)
	got, err := UnpackRR(NewReader(out))
	require.NoError(t, err)
	return got
}

func TestNSRoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "example.com. 3600 IN NS ns1.example.com.", origin)
	ns, ok := rr.(*NS)
	require.True(t, ok)
	require.Equal(t, "ns1.example.com.", ns.Ns.String())

	got := packUnpackRR(t, rr)
	gns, ok := got.(*NS)
	require.True(t, ok)
	require.True(t, gns.Ns.Equal(ns.Ns))
}

func TestCNAMERoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "www.example.com. 3600 IN CNAME example.com.", origin)
	got := packUnpackRR(t, rr)
	require.Equal(t, rr.presentRData(), got.presentRData())
}

func TestPTRRoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "4.3.2.1.in-addr.arpa. 3600 IN PTR example.com.", origin)
	got := packUnpackRR(t, rr)
	require.Equal(t, rr.presentRData(), got.presentRData())
}

func TestMBMGMRRoundTrip(t *testing.T) {
	origin := Root()
	mb := parseRRLine(t, "example.com. 3600 IN MB mb.example.com.", origin)
	require.Equal(t, "mb.example.com.", mb.(*MB).Mb.String())
	require.Equal(t, mb.presentRData(), packUnpackRR(t, mb).presentRData())

	mg := parseRRLine(t, "example.com. 3600 IN MG mg.example.com.", origin)
	require.Equal(t, mg.presentRData(), packUnpackRR(t, mg).presentRData())

	mr := parseRRLine(t, "example.com. 3600 IN MR mr.example.com.", origin)
	require.Equal(t, mr.presentRData(), packUnpackRR(t, mr).presentRData())
}

func TestMINFORoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "example.com. 3600 IN MINFO admin.example.com. errors.example.com.", origin)
	minfo, ok := rr.(*MINFO)
	require.True(t, ok)
	require.Equal(t, "admin.example.com.", minfo.Rmailbx.String())
	require.Equal(t, "errors.example.com.", minfo.Emailbx.String())

	got := packUnpackRR(t, rr)
	require.Equal(t, rr.presentRData(), got.presentRData())
}

// DNAME's target must never be compressed (RFC 6672), unlike NS/CNAME/PTR,
// whose targets share suffixes with the owner name under compression.
func TestDNAMETargetNotCompressed(t *testing.T) {
	origin, err := ParseName("example.com.", Root())
	require.NoError(t, err)

	dname := parseRRLine(t, "sub.example.com. 3600 IN DNAME example.com.", origin)

	buf := NewWriterBuffer(0)
	c := NewCompressor()
	// Prime the compressor with example.com. so a compressible record would
	// point back into it.
	require.NoError(t, c.Emit(buf, origin))

	rdataBuf := NewWriterBuffer(0)
	require.NoError(t, dname.packRData(rdataBuf, c))

	// A fully spelled-out "example.com." wire name is 13 bytes (7 "example"
	// + 3 "com" + 2 length bytes + 1 root byte); a compressed pointer
	// would be 2 bytes. DNAME must use the full uncompressed form even
	// though the compressor already knows this suffix.
	require.Equal(t, 13, rdataBuf.Len())

	got := packUnpackRR(t, dname)
	require.Equal(t, dname.presentRData(), got.presentRData())
}

func TestNameRDataHandlesGenericFallback(t *testing.T) {
	origin := Root()
	// RFC 3597 generic RDATA form encoding the wire name "example.com."
	// (7 "example" + 3 "com" + 2 length bytes + 1 root byte = 13).
	rr := parseRRLine(t, `other.example.com. 3600 IN NS \# 13 076578616d706c6503636f6d00`, origin)
	ns, ok := rr.(*NS)
	require.True(t, ok)
	require.Equal(t, "example.com.", ns.Ns.String())
}
