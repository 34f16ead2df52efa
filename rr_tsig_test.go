package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTSIGHasNoPresentationForm(t *testing.T) {
	sc := NewScanner([]byte("example.com. 0 ANY TSIG hmac-sha256.\n"))
	state := &ScanState{}
	origin := Root()
	scanned, err := sc.ScanRR(state, origin)
	require.NoError(t, err)

	_, err = ParseRR(scanned, origin)
	require.Error(t, err)
	var semErr *SemanticError
	require.ErrorAs(t, err, &semErr)
}

func TestTSIGWireRoundTrip(t *testing.T) {
	algo, err := ParseName("hmac-sha256.", Root())
	require.NoError(t, err)

	tsig := &TSIG{
		Algorithm:  algo,
		TimeSigned: 1700000000,
		Fudge:      300,
		MAC:        []byte{0x01, 0x02, 0x03, 0x04},
		OrigID:     42,
		Error:      RcodeSuccess,
		OtherData:  nil,
	}
	tsig.Hdr = RRHeader{Name: algo, Rrtype: TypeTSIG, Class: ClassANY, Ttl: 0}

	buf := NewWriterBuffer(0)
	c := NewCompressor()
	require.NoError(t, PackRR(tsig, buf, c))
	out, err := buf.Freeze(buf.Len())
	require.NoError(t, err)

	got, err := UnpackRR(NewReader(out))
	require.NoError(t, err)
	gtsig, ok := got.(*TSIG)
	require.True(t, ok)
	require.True(t, gtsig.Algorithm.Equal(algo))
	require.Equal(t, tsig.TimeSigned, gtsig.TimeSigned)
	require.Equal(t, tsig.Fudge, gtsig.Fudge)
	require.Equal(t, tsig.MAC, gtsig.MAC)
	require.Equal(t, tsig.OrigID, gtsig.OrigID)
	require.Equal(t, tsig.Error, gtsig.Error)
}

func TestTSIGAlgorithmNameNotCompressed(t *testing.T) {
	algo, err := ParseName("hmac-sha256.", Root())
	require.NoError(t, err)
	owner, err := ParseName("host.hmac-sha256.", Root())
	require.NoError(t, err)

	tsig := &TSIG{Algorithm: algo, TimeSigned: 1, Fudge: 1, MAC: nil, OrigID: 1, Error: RcodeSuccess}

	buf := NewWriterBuffer(0)
	c := NewCompressor()
	// Prime the compressor with a name sharing "hmac-sha256." as a suffix.
	require.NoError(t, c.Emit(buf, owner))

	rdataBuf := NewWriterBuffer(0)
	require.NoError(t, tsig.packRData(rdataBuf, c))

	// The fully spelled out "hmac-sha256." wire name (11 "hmac-sha256" +
	// 1 length byte + 1 root byte = 13) plus the remaining fixed fields
	// (6 time + 2 fudge + 2 MAC length + 2 orig id + 2 error + 2 other
	// length = 16), never a 2-byte compression pointer (which would give 18).
	require.Equal(t, 29, rdataBuf.Len())
}
