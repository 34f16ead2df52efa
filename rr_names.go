package dns

// nameRData is the shared shape of every RR whose RDATA is a single
// domain name, compressible or not (NS, CNAME, DNAME, PTR, MB, MG, MR).
type nameRData struct {
	Target       Name
	compressible bool
}

func (d *nameRData) pack(w *Buffer, c *Compressor) error {
	cc := c
	if !d.compressible {
		cc = nil
	}
	return cc.Emit(w, d.Target)
}

func (d *nameRData) unpack(r *Reader) error {
	var n Name
	var err error
	if d.compressible {
		n, err = r.ReadName()
	} else {
		n, err = r.ReadNameNoCompression()
	}
	if err != nil {
		return err
	}
	d.Target = n
	return nil
}

func (d *nameRData) parse(toks *tokenCursor, origin Name) error {
	tok, err := toks.requireNext("target name")
	if err != nil {
		return err
	}
	n, err := ParseName(tok, origin)
	if err != nil {
		return err
	}
	d.Target = n
	return nil
}

func (d *nameRData) present() string { return d.Target.String() }

// NS is a name-server delegation record (RFC 1035 §3.3.11).
type NS struct {
	Hdr RRHeader
	Ns  Name
}

func (rr *NS) Header() *RRHeader { return &rr.Hdr }
func (rr *NS) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Ns, compressible: true}).pack(w, c)
}
func (rr *NS) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Ns = d.Target
	return nil
}
func (rr *NS) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: true}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Ns = d.Target
	return nil
}
func (rr *NS) presentRData() string { return rr.Ns.String() }

// CNAME is a canonical-name alias record (RFC 1035 §3.3.1).
type CNAME struct {
	Hdr    RRHeader
	Target Name
}

func (rr *CNAME) Header() *RRHeader { return &rr.Hdr }
func (rr *CNAME) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Target, compressible: true}).pack(w, c)
}
func (rr *CNAME) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Target = d.Target
	return nil
}
func (rr *CNAME) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: true}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Target = d.Target
	return nil
}
func (rr *CNAME) presentRData() string { return rr.Target.String() }

// DNAME is a non-terminal name redirection record (RFC 6672). Its target
// is not compressed, matching modern resolvers' conservative treatment of
// DNAME's substitution semantics.
type DNAME struct {
	Hdr    RRHeader
	Target Name
}

func (rr *DNAME) Header() *RRHeader { return &rr.Hdr }
func (rr *DNAME) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Target, compressible: false}).pack(w, c)
}
func (rr *DNAME) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: false}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Target = d.Target
	return nil
}
func (rr *DNAME) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: false}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Target = d.Target
	return nil
}
func (rr *DNAME) presentRData() string { return rr.Target.String() }

// PTR is a domain-name pointer record (RFC 1035 §3.3.12).
type PTR struct {
	Hdr RRHeader
	Ptr Name
}

func (rr *PTR) Header() *RRHeader { return &rr.Hdr }
func (rr *PTR) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Ptr, compressible: true}).pack(w, c)
}
func (rr *PTR) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Ptr = d.Target
	return nil
}
func (rr *PTR) parseRData(toks *tokenCursor, origin Name) error {
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
func (rr *PTR) presentRData() string { return rr.Ptr.String() }

// MB is a mailbox domain name record (RFC 1035 §3.3.3).
type MB struct {
	Hdr RRHeader
	Mb  Name
}

func (rr *MB) Header() *RRHeader { return &rr.Hdr }
func (rr *MB) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Mb, compressible: true}).pack(w, c)
}
func (rr *MB) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Mb = d.Target
	return nil
}
func (rr *MB) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: true}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Mb = d.Target
	return nil
}
func (rr *MB) presentRData() string { return rr.Mb.String() }

// MG is a mail group member record (RFC 1035 §3.3.6).
type MG struct {
	Hdr RRHeader
	Mg  Name
}

func (rr *MG) Header() *RRHeader { return &rr.Hdr }
func (rr *MG) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Mg, compressible: true}).pack(w, c)
}
func (rr *MG) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Mg = d.Target
	return nil
}
func (rr *MG) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: true}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Mg = d.Target
	return nil
}
func (rr *MG) presentRData() string { return rr.Mg.String() }

// MR is a mail rename domain name record (RFC 1035 §3.3.8).
type MR struct {
	Hdr RRHeader
	Mr  Name
}

func (rr *MR) Header() *RRHeader { return &rr.Hdr }
func (rr *MR) packRData(w *Buffer, c *Compressor) error {
	return (&nameRData{Target: rr.Mr, compressible: true}).pack(w, c)
}
func (rr *MR) unpackRData(r *Reader, rdlength int) error {
	d := &nameRData{compressible: true}
	if err := d.unpack(r); err != nil {
		return err
	}
	rr.Mr = d.Target
	return nil
}
func (rr *MR) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	d := &nameRData{compressible: true}
	if err := d.parse(toks, origin); err != nil {
		return err
	}
	rr.Mr = d.Target
	return nil
}
func (rr *MR) presentRData() string { return rr.Mr.String() }

// MINFO carries mailbox responsible-person/error-mailbox names
// (RFC 1035 §3.3.7).
type MINFO struct {
	Hdr   RRHeader
	Rmailbx Name
	Emailbx Name
}

func (rr *MINFO) Header() *RRHeader { return &rr.Hdr }

func (rr *MINFO) packRData(w *Buffer, c *Compressor) error {
	if err := c.Emit(w, rr.Rmailbx); err != nil {
		return err
	}
	return c.Emit(w, rr.Emailbx)
}

func (rr *MINFO) unpackRData(r *Reader, rdlength int) error {
	rm, err := r.ReadName()
	if err != nil {
		return err
	}
	em, err := r.ReadName()
	if err != nil {
		return err
	}
	rr.Rmailbx, rr.Emailbx = rm, em
	return nil
}

func (rr *MINFO) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	rmTok, err := toks.requireNext("responsible mailbox")
	if err != nil {
		return err
	}
	emTok, err := toks.requireNext("error mailbox")
	if err != nil {
		return err
	}
	rm, err := ParseName(rmTok, origin)
	if err != nil {
		return err
	}
	em, err := ParseName(emTok, origin)
	if err != nil {
		return err
	}
	rr.Rmailbx, rr.Emailbx = rm, em
	return nil
}

func (rr *MINFO) presentRData() string {
	return rr.Rmailbx.String() + " " + rr.Emailbx.String()
}
