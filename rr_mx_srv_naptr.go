package dns

import "strconv"

// MX is a mail exchange record (RFC 1035 §3.3.9).
type MX struct {
	Hdr        RRHeader
	Preference uint16
	Mx         Name
}

func (rr *MX) Header() *RRHeader { return &rr.Hdr }

func (rr *MX) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU16(rr.Preference); err != nil {
		return err
	}
	return c.Emit(w, rr.Mx)
}

func (rr *MX) unpackRData(r *Reader, rdlength int) error {
	pref, err := r.ReadU16()
	if err != nil {
		return err
	}
	mx, err := r.ReadName()
	if err != nil {
		return err
	}
	rr.Preference, rr.Mx = pref, mx
	return nil
}

func (rr *MX) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	prefTok, err := toks.requireNext("preference")
	if err != nil {
		return err
	}
	mxTok, err := toks.requireNext("exchange")
	if err != nil {
		return err
	}
	pref, err := strconv.ParseUint(prefTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid MX preference", -1)
	}
	mx, err := ParseName(mxTok, origin)
	if err != nil {
		return err
	}
	rr.Preference, rr.Mx = uint16(pref), mx
	return nil
}

func (rr *MX) presentRData() string {
	return strconv.FormatUint(uint64(rr.Preference), 10) + " " + rr.Mx.String()
}

// SRV is a service location record (RFC 2782). The wire and textual field
// order agrees: priority, weight, port, target — there's no reordering
// inconsistency to resolve here despite being raised as an open question.
type SRV struct {
	Hdr      RRHeader
	Priority uint16
	Weight   uint16
	Port     uint16
	Target   Name
}

func (rr *SRV) Header() *RRHeader { return &rr.Hdr }

func (rr *SRV) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU16(rr.Priority); err != nil {
		return err
	}
	if err := w.WriteU16(rr.Weight); err != nil {
		return err
	}
	if err := w.WriteU16(rr.Port); err != nil {
		return err
	}
	// SRV target is never compressed (RFC 2782).
	return (*Compressor)(nil).Emit(w, rr.Target)
}

func (rr *SRV) unpackRData(r *Reader, rdlength int) error {
	pri, err := r.ReadU16()
	if err != nil {
		return err
	}
	weight, err := r.ReadU16()
	if err != nil {
		return err
	}
	port, err := r.ReadU16()
	if err != nil {
		return err
	}
	target, err := r.ReadNameNoCompression()
	if err != nil {
		return err
	}
	rr.Priority, rr.Weight, rr.Port, rr.Target = pri, weight, port, target
	return nil
}

func (rr *SRV) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	fields := [3]string{"priority", "weight", "port"}
	vals := make([]uint16, 3)
	for i, name := range fields {
		tok, err := toks.requireNext(name)
		if err != nil {
			return err
		}
		n, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return newParseError("rdata", "invalid SRV "+name, -1)
		}
		vals[i] = uint16(n)
	}
	targetTok, err := toks.requireNext("target")
	if err != nil {
		return err
	}
	target, err := ParseName(targetTok, origin)
	if err != nil {
		return err
	}
	rr.Priority, rr.Weight, rr.Port, rr.Target = vals[0], vals[1], vals[2], target
	return nil
}

func (rr *SRV) presentRData() string {
	return strconv.FormatUint(uint64(rr.Priority), 10) + " " +
		strconv.FormatUint(uint64(rr.Weight), 10) + " " +
		strconv.FormatUint(uint64(rr.Port), 10) + " " + rr.Target.String()
}

// NAPTR is a naming authority pointer record (RFC 3403).
type NAPTR struct {
	Hdr         RRHeader
	Order       uint16
	Preference  uint16
	Flags       CharacterString
	Services    CharacterString
	Regexp      CharacterString
	Replacement Name
}

func (rr *NAPTR) Header() *RRHeader { return &rr.Hdr }

func (rr *NAPTR) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU16(rr.Order); err != nil {
		return err
	}
	if err := w.WriteU16(rr.Preference); err != nil {
		return err
	}
	if err := rr.Flags.Pack(w); err != nil {
		return err
	}
	if err := rr.Services.Pack(w); err != nil {
		return err
	}
	if err := rr.Regexp.Pack(w); err != nil {
		return err
	}
	// NAPTR replacement is never compressed (RFC 3403 §4).
	return (*Compressor)(nil).Emit(w, rr.Replacement)
}

func (rr *NAPTR) unpackRData(r *Reader, rdlength int) error {
	order, err := r.ReadU16()
	if err != nil {
		return err
	}
	pref, err := r.ReadU16()
	if err != nil {
		return err
	}
	flags, err := UnpackCharacterString(r)
	if err != nil {
		return err
	}
	services, err := UnpackCharacterString(r)
	if err != nil {
		return err
	}
	regexp, err := UnpackCharacterString(r)
	if err != nil {
		return err
	}
	repl, err := r.ReadNameNoCompression()
	if err != nil {
		return err
	}
	rr.Order, rr.Preference = order, pref
	rr.Flags, rr.Services, rr.Regexp = flags, services, regexp
	rr.Replacement = repl
	return nil
}

func (rr *NAPTR) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	orderTok, err := toks.requireNext("order")
	if err != nil {
		return err
	}
	prefTok, err := toks.requireNext("preference")
	if err != nil {
		return err
	}
	flagsTok, err := toks.requireNext("flags")
	if err != nil {
		return err
	}
	servicesTok, err := toks.requireNext("services")
	if err != nil {
		return err
	}
	regexpTok, err := toks.requireNext("regexp")
	if err != nil {
		return err
	}
	replTok, err := toks.requireNext("replacement")
	if err != nil {
		return err
	}
	order, err := strconv.ParseUint(orderTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid NAPTR order", -1)
	}
	pref, err := strconv.ParseUint(prefTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid NAPTR preference", -1)
	}
	repl, err := ParseName(replTok, origin)
	if err != nil {
		return err
	}
	rr.Order, rr.Preference = uint16(order), uint16(pref)
	rr.Flags = ParseCharacterString(flagsTok)
	rr.Services = ParseCharacterString(servicesTok)
	rr.Regexp = ParseCharacterString(regexpTok)
	rr.Replacement = repl
	return nil
}

func (rr *NAPTR) presentRData() string {
	return strconv.FormatUint(uint64(rr.Order), 10) + " " +
		strconv.FormatUint(uint64(rr.Preference), 10) + " " +
		rr.Flags.Present(QuoteAlways) + " " +
		rr.Services.Present(QuoteAlways) + " " +
		rr.Regexp.Present(QuoteAlways) + " " + rr.Replacement.String()
}
