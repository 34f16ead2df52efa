package dns

import (
	"strconv"
	"strings"
)

// NSAP publishes an OSI Network Service Access Point address (RFC 1706),
// presented as a "0x"-prefixed hex string.
type NSAP struct {
	Hdr     RRHeader
	Address []byte
}

func (rr *NSAP) Header() *RRHeader { return &rr.Hdr }
func (rr *NSAP) packRData(w *Buffer, c *Compressor) error { return w.WriteBytes(rr.Address) }
func (rr *NSAP) unpackRData(r *Reader, rdlength int) error {
	b, err := r.ReadBytes(rdlength)
	if err != nil {
		return err
	}
	rr.Address = append([]byte(nil), b...)
	return nil
}
func (rr *NSAP) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		rr.Address = data
		return nil
	}
	tok, err := toks.requireNext("NSAP address")
	if err != nil {
		return err
	}
	b, err := hexDecodeLoose(tok)
	if err != nil {
		return err
	}
	rr.Address = b
	return nil
}
func (rr *NSAP) presentRData() string { return "0x" + HexEncode(rr.Address) }

// NSAPPTR is the reverse-mapping pointer to an NSAP address (RFC 1706 §5).
type NSAPPTR struct {
	Hdr RRHeader
	Ptr Name
}

func (rr *NSAPPTR) Header() *RRHeader { return &rr.Hdr }
func (rr *NSAPPTR) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Ptr, compressible: true}).pack(w, c)
}
func (rr *NSAPPTR) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Ptr = d.Target
	return nil
}
func (rr *NSAPPTR) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: true}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Ptr = d.Target
	return nil
}
func (rr *NSAPPTR) presentRData() string { return rr.Ptr.String() }

// APLItem is one address-prefix entry within an APL record's list
// (RFC 3123 §4).
type APLItem struct {
	AddressFamily uint16 // 1 = IPv4, 2 = IPv6
	Prefix        uint8
	Negate        bool
	Data          []byte // the (possibly truncated) address octets
}

// APL is an address prefix list record (RFC 3123).
type APL struct {
	Hdr   RRHeader
	Items []APLItem
}

func (rr *APL) Header() *RRHeader { return &rr.Hdr }

func (rr *APL) packRData(w *Buffer, c *Compressor) error {
	for _, it := range rr.Items {
		if err := w.WriteU16(it.AddressFamily); err != nil {
			return err
		}
		if err := w.WriteU8(it.Prefix); err != nil {
			return err
		}
		nBit := uint8(len(it.Data))
		if it.Negate {
			nBit |= 0x80
		}
		if err := w.WriteU8(nBit); err != nil {
			return err
		}
		if err := w.WriteBytes(it.Data); err != nil {
			return err
		}
	}
	return nil
}

func (rr *APL) unpackRData(r *Reader, rdlength int) error {
	sub, err := r.ReadSlice(rdlength)
	if err != nil {
		return err
	}
	var items []APLItem
	for sub.Remaining() > 0 {
		family, err := sub.ReadU16()
		if err != nil {
			return err
		}
		prefix, err := sub.ReadU8()
		if err != nil {
			return err
		}
		nBit, err := sub.ReadU8()
		if err != nil {
			return err
		}
		negate := nBit&0x80 != 0
		afdLen := int(nBit &^ 0x80)
		data, err := sub.ReadBytes(afdLen)
		if err != nil {
			return err
		}
		items = append(items, APLItem{
			AddressFamily: family,
			Prefix:        prefix,
			Negate:        negate,
			Data:          append([]byte(nil), data...),
		})
	}
	rr.Items = items
	return nil
}

func (rr *APL) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	var items []APLItem
	for {
		tok, ok := toks.next()
		if !ok {
			break
		}
		it, err := parseAPLItem(tok)
		if err != nil {
			return err
		}
		items = append(items, it)
	}
	rr.Items = items
	return nil
}

// parseAPLItem parses one "[!]afi:address/prefix" token.
func parseAPLItem(tok string) (APLItem, error) {
	negate := false
	if strings.HasPrefix(tok, "!") {
		negate = true
		tok = tok[1:]
	}
	afiStr, rest, ok := strings.Cut(tok, ":")
	if !ok {
		return APLItem{}, newParseError("rdata", "invalid APL item "+tok, -1)
	}
	afi, err := strconv.ParseUint(afiStr, 10, 16)
	if err != nil {
		return APLItem{}, newParseError("rdata", "invalid APL address family", -1)
	}
	p, err := ParsePrefix(rest)
	if err != nil {
		return APLItem{}, err
	}
	var full []byte
	switch afi {
	case 1:
		b := [4]byte(p.IP().As4())
		full = b[:]
	case 2:
		b := [16]byte(p.IP().As16())
		full = b[:]
	default:
		return APLItem{}, newSemanticError("rdata", "unsupported APL address family")
	}
	trimmed := trimTrailingZeros(full)
	return APLItem{AddressFamily: uint16(afi), Prefix: uint8(p.Length()), Negate: negate, Data: trimmed}, nil
}

// trimTrailingZeros drops trailing zero octets, matching RFC 3123 §4's
// minimal-length AFDPART encoding.
func trimTrailingZeros(b []byte) []byte {
	n := len(b)
	for n > 0 && b[n-1] == 0 {
		n--
	}
	return append([]byte(nil), b[:n]...)
}

func (rr *APL) presentRData() string {
	var sb strings.Builder
	for i, it := range rr.Items {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if it.Negate {
			sb.WriteByte('!')
		}
		sb.WriteString(strconv.FormatUint(uint64(it.AddressFamily), 10))
		sb.WriteByte(':')
		sb.WriteString(formatAPLAddress(it))
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatUint(uint64(it.Prefix), 10))
	}
	return sb.String()
}

func formatAPLAddress(it APLItem) string {
	switch it.AddressFamily {
	case 1:
		var b [4]byte
		copy(b[:], it.Data)
		return Address4FromBytes(b).String()
	case 2:
		var b [16]byte
		copy(b[:], it.Data)
		return Address6FromBytes(b).String()
	default:
		return HexEncode(it.Data)
	}
}
