package dns

import (
	"strconv"
	"strings"
)

// tryParseGenericRData implements the RFC 3597 §5 "\# length hex" generic
// RDATA presentation syntax. It must be tried before any record type's own
// textual parser (§4.4): when the first token is literally "\#", the
// second token is the decimal byte count and the rest are hex pairs
// summing to that count.
func tryParseGenericRData(c *tokenCursor) (data []byte, handled bool, err error) {
	save := c.i
	tok, ok := c.next()
	if !ok || tok != `\#` {
		c.i = save
		return nil, false, nil
	}
	countTok, err := c.requireNext("generic RDATA length")
	if err != nil {
		return nil, true, err
	}
	n, err := strconv.Atoi(countTok)
	if err != nil || n < 0 {
		return nil, true, newParseError("rdata", "invalid \\# length", -1)
	}
	var hexBuf strings.Builder
	for {
		t, ok := c.next()
		if !ok {
			break
		}
		hexBuf.WriteString(t)
	}
	raw, err := HexDecode(hexBuf.String())
	if err != nil {
		return nil, true, err
	}
	if len(raw) != n {
		return nil, true, newParseError("rdata", "\\# length does not match hex payload", -1)
	}
	return raw, true, nil
}

// presentGenericRData renders raw RDATA in the RFC 3597 "\# len hex" form.
func presentGenericRData(raw []byte) string {
	return `\# ` + strconv.Itoa(len(raw)) + " " + HexEncode(raw)
}
