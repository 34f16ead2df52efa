package dns

import "strconv"

// SOA marks the start of authority of a zone (RFC 1035 §3.3.13). Serial is
// kept as the dedicated Serial type so zone-transfer logic can use
// SerialCompare/SerialAdd instead of raw uint32 comparisons.
type SOA struct {
	Hdr     RRHeader
	Ns      Name
	Mbox    Name
	Serial  Serial
	Refresh uint32
	Retry   uint32
	Expire  uint32
	Minttl  uint32
}

func (rr *SOA) Header() *RRHeader { return &rr.Hdr }

func (rr *SOA) packRData(w *Buffer, c *Compressor) error {
	if err := c.Emit(w, rr.Ns); err != nil {
		return err
	}
	if err := c.Emit(w, rr.Mbox); err != nil {
		return err
	}
	if err := w.WriteU32(uint32(rr.Serial)); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Refresh); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Retry); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Expire); err != nil {
		return err
	}
	return w.WriteU32(rr.Minttl)
}

func (rr *SOA) unpackRData(r *Reader, rdlength int) error {
	ns, err := r.ReadName()
	if err != nil {
		return err
	}
	mb, err := r.ReadName()
	if err != nil {
		return err
	}
	serial, err := r.ReadU32()
	if err != nil {
		return err
	}
	refresh, err := r.ReadU32()
	if err != nil {
		return err
	}
	retry, err := r.ReadU32()
	if err != nil {
		return err
	}
	expire, err := r.ReadU32()
	if err != nil {
		return err
	}
	minttl, err := r.ReadU32()
	if err != nil {
		return err
	}
	rr.Ns, rr.Mbox = ns, mb
	rr.Serial = Serial(serial)
	rr.Refresh, rr.Retry, rr.Expire, rr.Minttl = refresh, retry, expire, minttl
	return nil
}

func (rr *SOA) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	nsTok, err := toks.requireNext("primary nameserver")
	if err != nil {
		return err
	}
	mbTok, err := toks.requireNext("responsible mailbox")
	if err != nil {
		return err
	}
	ns, err := ParseName(nsTok, origin)
	if err != nil {
		return err
	}
	mb, err := ParseName(mbTok, origin)
	if err != nil {
		return err
	}
	vals := make([]uint32, 5)
	names := [5]string{"serial", "refresh", "retry", "expire", "minimum"}
	for i := range vals {
		tok, err := toks.requireNext(names[i])
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(tok, 10, 32)
		if err != nil {
			return newParseError("rdata", "invalid SOA "+names[i]+" value", -1)
		}
		vals[i] = uint32(n)
	}
	rr.Ns, rr.Mbox = ns, mb
	rr.Serial = Serial(vals[0])
	rr.Refresh, rr.Retry, rr.Expire, rr.Minttl = vals[1], vals[2], vals[3], vals[4]
	return nil
}

func (rr *SOA) presentRData() string {
	return rr.Ns.String() + " " + rr.Mbox.String() + " " +
		strconv.FormatUint(uint64(rr.Serial), 10) + " " +
		strconv.FormatUint(uint64(rr.Refresh), 10) + " " +
		strconv.FormatUint(uint64(rr.Retry), 10) + " " +
		strconv.FormatUint(uint64(rr.Expire), 10) + " " +
		strconv.FormatUint(uint64(rr.Minttl), 10)
}
