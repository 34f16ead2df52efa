package dns

import (
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func mustHexDecode(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestUnpackQueryExample(t *testing.T) {
	wire := mustHexDecode(t, "000201000001000000000000076578616d706c6503636f6d0000010001")

	var m Message
	require.NoError(t, m.Unpack(wire))

	require.Equal(t, uint16(2), m.Id)
	require.True(t, m.RecursionDesired)
	require.False(t, m.Response)
	require.Len(t, m.Question, 1)
	require.Equal(t, "example.com.", m.Question[0].Name.String())
	require.Equal(t, TypeA, m.Question[0].Qtype)
	require.Equal(t, ClassINET, m.Question[0].Qclass)
	require.Empty(t, m.Answer)
	require.Empty(t, m.Authority)
	require.Empty(t, m.Additional)

	packed, err := m.Pack()
	require.NoError(t, err)
	require.Equal(t, wire, packed)
}

func TestUnpackResponseExampleWithOPT(t *testing.T) {
	wire := mustHexDecode(t,
		"c58781a00001000100000001076578616d706c6503636f6d0000010001"+
			"c00c00010001000145c200045db8d8220000"+
			"2904d0000000000000")

	var m Message
	require.NoError(t, m.Unpack(wire))

	require.Equal(t, uint16(0xc587), m.Id)
	require.True(t, m.Response)
	require.True(t, m.RecursionDesired)
	require.True(t, m.RecursionAvailable)
	require.True(t, m.AuthenticatedData)
	require.False(t, m.Truncated)
	require.Equal(t, RcodeSuccess, m.Rcode)

	require.Len(t, m.Answer, 1)
	a, ok := m.Answer[0].(*A)
	require.True(t, ok)
	require.Equal(t, "example.com.", a.Header().Name.String())
	require.Equal(t, uint32(83394), a.Header().Ttl)
	require.Equal(t, "93.184.216.34", a.A.String())

	require.Len(t, m.Additional, 1)
	opt := m.FindOPT()
	require.NotNil(t, opt)
	require.Equal(t, uint16(1232), opt.UDPSize())
	require.Equal(t, uint8(0), opt.Flags().Version)
	require.False(t, opt.Flags().DO)
	require.Empty(t, opt.Options)
}

func TestMessagePackUncompressedThenCompressedDecodeSame(t *testing.T) {
	origin, err := ParseName("example.com.", Root())
	require.NoError(t, err)

	buildMsg := func(compress bool) *Message {
		m := NewMessage()
		m.Id = 1
		m.Response = true
		m.Question = []Question{{Name: origin, Qtype: TypeTXT, Qclass: ClassINET}}

		txt1 := &TXT{Txt: []CharacterString{CharacterString("v=first record of two")}}
		txt1.Hdr = RRHeader{Name: origin, Rrtype: TypeTXT, Class: ClassINET, Ttl: 300}
		txt2 := &TXT{Txt: []CharacterString{CharacterString("v=second record of two")}}
		txt2.Hdr = RRHeader{Name: origin, Rrtype: TypeTXT, Class: ClassINET, Ttl: 300}
		m.Answer = []RR{txt1, txt2}
		m.SetEDNS0(1232, false)
		m.Compress = compress
		return m
	}

	uncompressed, err := buildMsg(false).Pack()
	require.NoError(t, err)
	compressed, err := buildMsg(true).Pack()
	require.NoError(t, err)

	// Both answers repeat the question's owner name (the OPT record's owner
	// is the root); compression must make the compressed encoding strictly
	// smaller (RFC 1035 §4.1.4), per the wire round-trip/compression-safety
	// testable properties.
	require.Less(t, len(compressed), len(uncompressed))

	var mu, mc Message
	require.NoError(t, mu.Unpack(uncompressed))
	require.NoError(t, mc.Unpack(compressed))

	if diff := cmp.Diff(mu.Question, mc.Question); diff != "" {
		t.Errorf("question section differs between compressed/uncompressed decode (-uncompressed +compressed):\n%s", diff)
	}
	require.Len(t, mc.Answer, 2)
	if diff := cmp.Diff(mu.Answer[0].(*TXT).Txt, mc.Answer[0].(*TXT).Txt); diff != "" {
		t.Errorf("answer[0] TXT differs between compressed/uncompressed decode (-uncompressed +compressed):\n%s", diff)
	}
	if diff := cmp.Diff(mu.Answer[1].(*TXT).Txt, mc.Answer[1].(*TXT).Txt); diff != "" {
		t.Errorf("answer[1] TXT differs between compressed/uncompressed decode (-uncompressed +compressed):\n%s", diff)
	}
}

func TestMessageUnpackFailsWholeParseOnBadRecord(t *testing.T) {
	// Truncate the response example mid-RDATA: rdlength claims 4 bytes but
	// only 2 remain, which must fail the entire Unpack rather than return a
	// partially-populated message.
	wire := mustHexDecode(t,
		"c58781a00001000100000001076578616d706c6503636f6d0000010001"+
			"c00c00010001000145c200045db8")

	var m Message
	require.Error(t, m.Unpack(wire))
}
