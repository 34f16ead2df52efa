package dns

// TXT carries one or more free-text character-strings (RFC 1035 §3.3.14).
// Unlike most RR types its RDATA is a sequence of <character-string>
// chunks filling the whole rdlength, not a fixed field layout.
type TXT struct {
	Hdr RRHeader
	Txt []CharacterString
}

func (rr *TXT) Header() *RRHeader { return &rr.Hdr }

func (rr *TXT) packRData(w *Buffer, c *Compressor) error {
	for _, cs := range rr.Txt {
		if err := cs.Pack(w); err != nil {
			return err
		}
	}
	return nil
}

func (rr *TXT) unpackRData(r *Reader, rdlength int) error {
	sub, err := r.ReadSlice(rdlength)
	if err != nil {
		return err
	}
	var chunks []CharacterString
	for sub.Remaining() > 0 {
		cs, err := UnpackCharacterString(sub)
		if err != nil {
			return err
		}
		chunks = append(chunks, cs)
	}
	rr.Txt = chunks
	return nil
}

func (rr *TXT) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	var chunks []CharacterString
	for {
		tok, ok := toks.next()
		if !ok {
			break
		}
		chunks = append(chunks, ParseCharacterString(tok))
	}
	if len(chunks) == 0 {
		return newParseError("rdata", "TXT requires at least one character-string", -1)
	}
	rr.Txt = chunks
	return nil
}

func (rr *TXT) presentRData() string {
	s := ""
	for i, cs := range rr.Txt {
		if i > 0 {
			s += " "
		}
		s += cs.Present(QuoteAlways)
	}
	return s
}

// HINFO describes host CPU and OS (RFC 1035 §3.3.2).
type HINFO struct {
	Hdr RRHeader
	Cpu CharacterString
	Os  CharacterString
}

func (rr *HINFO) Header() *RRHeader { return &rr.Hdr }

func (rr *HINFO) packRData(w *Buffer, c *Compressor) error {
	if err := rr.Cpu.Pack(w); err != nil {
		return err
	}
	return rr.Os.Pack(w)
}

func (rr *HINFO) unpackRData(r *Reader, rdlength int) error {
	cpu, err := UnpackCharacterString(r)
	if err != nil {
		return err
	}
	os, err := UnpackCharacterString(r)
	if err != nil {
		return err
	}
	rr.Cpu, rr.Os = cpu, os
	return nil
}

func (rr *HINFO) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	cpuTok, err := toks.requireNext("cpu")
	if err != nil {
		return err
	}
	osTok, err := toks.requireNext("os")
	if err != nil {
		return err
	}
	rr.Cpu = ParseCharacterString(cpuTok)
	rr.Os = ParseCharacterString(osTok)
	return nil
}

func (rr *HINFO) presentRData() string {
	return rr.Cpu.Present(QuoteAlways) + " " + rr.Os.Present(QuoteAlways)
}
