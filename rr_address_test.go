package dns

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestARoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "host.example.com. 3600 IN A 93.184.216.34", origin)
	a, ok := rr.(*A)
	require.True(t, ok)
	require.Equal(t, "93.184.216.34", a.A.String())

	got := packUnpackRR(t, rr).(*A)
	require.Equal(t, a.A.String(), got.A.String())
}

func TestAAAARoundTrip(t *testing.T) {
	origin := Root()
	rr := parseRRLine(t, "host.example.com. 3600 IN AAAA 2001:db8::1", origin)
	aaaa, ok := rr.(*AAAA)
	require.True(t, ok)
	require.Equal(t, "2001:db8::1", aaaa.AAAA.String())

	got := packUnpackRR(t, rr).(*AAAA)
	require.Equal(t, aaaa.AAAA.String(), got.AAAA.String())
}

func TestAInvalidAddressRejected(t *testing.T) {
	origin := Root()
	sc := NewScanner([]byte("host.example.com. 3600 IN A not-an-ip\n"))
	state := &ScanState{}
	scanned, err := sc.ScanRR(state, origin)
	require.NoError(t, err)
	_, err = ParseRR(scanned, origin)
	require.Error(t, err)
}

func TestAAAAKeepsIPv4MappedNotation(t *testing.T) {
	// ParseAddress6 keeps an IPv4-mapped literal in its IPv6 form; it must
	// not silently collapse into an IPv4 address.
	origin := Root()
	rr := parseRRLine(t, "host.example.com. 3600 IN AAAA ::ffff:93.184.216.34", origin)
	aaaa := rr.(*AAAA)
	require.False(t, aaaa.AAAA.IsIPv4())
	require.Equal(t, "::ffff:93.184.216.34", aaaa.AAAA.String())
}
