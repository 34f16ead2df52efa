package dns

// Unknown is the catch-all variant for any RR type this package has no
// registered variant for (§3, §4.5, §7). It preserves the raw RDATA bytes
// so the record still encodes and presents correctly via the RFC 3597
// generic form, even though its semantics are opaque to us.
type Unknown struct {
	Hdr  RRHeader
	Data []byte
}

func (rr *Unknown) Header() *RRHeader { return &rr.Hdr }

func (rr *Unknown) packRData(w *Buffer, c *Compressor) error {
	return w.WriteBytes(rr.Data)
}

func (rr *Unknown) unpackRData(r *Reader, rdlength int) error {
	b, err := r.ReadBytes(rdlength)
	if err != nil {
		return err
	}
	rr.Data = append([]byte(nil), b...)
	return nil
}

func (rr *Unknown) parseRData(toks *tokenCursor, origin Name) error {
	data, handled, err := tryParseGenericRData(toks)
	if err != nil {
		return err
	}
	if !handled {
		return newParseError("rdata", "unknown record type requires \\# generic RDATA syntax", -1)
	}
	rr.Data = data
	return nil
}

func (rr *Unknown) presentRData() string { return presentGenericRData(rr.Data) }
