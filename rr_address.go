package dns

// A is the IPv4 host address record (RFC 1035 §3.4.1): 4 network-order
// bytes, presented as the canonical dotted-decimal literal.
type A struct {
	Hdr RRHeader
	A   Address4
}

func (rr *A) Header() *RRHeader { return &rr.Hdr }

func (rr *A) packRData(w *Buffer, c *Compressor) error {
	b := rr.A.Bytes()
	return w.WriteBytes(b[:])
}

func (rr *A) unpackRData(r *Reader, rdlength int) error {
	b, err := r.ReadBytes(4)
	if err != nil {
		return err
	}
	rr.A = Address4FromBytes([4]byte(b))
	return nil
}

func (rr *A) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	tok, err := toks.requireNext("address")
	if err != nil {
		return err
	}
	addr, err := ParseAddress4(tok)
	if err != nil {
		return err
	}
	rr.A = addr
	return nil
}

func (rr *A) presentRData() string { return rr.A.String() }

// AAAA is the IPv6 host address record (RFC 3596): 16 network-order bytes.
type AAAA struct {
	Hdr  RRHeader
	AAAA Address6
}

func (rr *AAAA) Header() *RRHeader { return &rr.Hdr }

func (rr *AAAA) packRData(w *Buffer, c *Compressor) error {
	b := rr.AAAA.Bytes()
	return w.WriteBytes(b[:])
}

func (rr *AAAA) unpackRData(r *Reader, rdlength int) error {
	b, err := r.ReadBytes(16)
	if err != nil {
		return err
	}
	rr.AAAA = Address6FromBytes([16]byte(b))
	return nil
}

func (rr *AAAA) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	tok, err := toks.requireNext("address")
	if err != nil {
		return err
	}
	addr, err := ParseAddress6(tok)
	if err != nil {
		return err
	}
	rr.AAAA = addr
	return nil
}

func (rr *AAAA) presentRData() string { return rr.AAAA.String() }
