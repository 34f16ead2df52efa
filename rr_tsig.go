package dns

import "strconv"

// TSIG carries a transaction signature (RFC 8945). It is never part of a
// zonefile; Pack/Unpack are exercised when a TSIG record rides along in a
// message's additional section.
type TSIG struct {
	Hdr         RRHeader
	Algorithm   Name
	TimeSigned  uint64 // 48-bit
	Fudge       uint16
	MAC         []byte
	OrigID      uint16
	Error       Rcode
	OtherData   []byte
}

func (rr *TSIG) Header() *RRHeader { return &rr.Hdr }

func (rr *TSIG) packRData(w *Buffer, c *Compressor) error {
	// The algorithm name is never compressed (RFC 8945 §4.2).
	if err := (*Compressor)(nil).Emit(w, rr.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU48(rr.TimeSigned); err != nil {
		return err
	}
	if err := w.WriteU16(rr.Fudge); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(len(rr.MAC))); err != nil {
		return err
	}
	if err := w.WriteBytes(rr.MAC); err != nil {
		return err
	}
	if err := w.WriteU16(rr.OrigID); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(rr.Error)); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(len(rr.OtherData))); err != nil {
		return err
	}
	return w.WriteBytes(rr.OtherData)
}

func (rr *TSIG) unpackRData(r *Reader, rdlength int) error {
	algo, err := r.ReadNameNoCompression()
	if err != nil {
		return err
	}
	timeSigned, err := r.ReadU48()
	if err != nil {
		return err
	}
	fudge, err := r.ReadU16()
	if err != nil {
		return err
	}
	macLen, err := r.ReadU16()
	if err != nil {
		return err
	}
	mac, err := r.ReadBytes(int(macLen))
	if err != nil {
		return err
	}
	origID, err := r.ReadU16()
	if err != nil {
		return err
	}
	errcode, err := r.ReadU16()
	if err != nil {
		return err
	}
	otherLen, err := r.ReadU16()
	if err != nil {
		return err
	}
	other, err := r.ReadBytes(int(otherLen))
	if err != nil {
		return err
	}
	rr.Algorithm = algo
	rr.TimeSigned, rr.Fudge = timeSigned, fudge
	rr.MAC = append([]byte(nil), mac...)
	rr.OrigID = origID
	rr.Error = Rcode(errcode)
	rr.OtherData = append([]byte(nil), other...)
	return nil
}

func (rr *TSIG) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	return newSemanticError("rdata", "TSIG has no zonefile presentation form")
}

func (rr *TSIG) presentRData() string {
	return rr.Algorithm.String() + " " +
		strconv.FormatUint(rr.TimeSigned, 10) + " " +
		strconv.FormatUint(uint64(rr.Fudge), 10) + " " +
		Base64Encode(rr.MAC) + " " +
		strconv.FormatUint(uint64(rr.OrigID), 10) + " " +
		rr.Error.String() + " " + HexEncode(rr.OtherData)
}
