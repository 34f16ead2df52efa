package dns

import "strconv"

// RRHeader is the (name, type, class, ttl, rdlength) tuple common to every
// resource record. Rdlength is mutable: it is set by Pack after the
// variant's RDATA has been written, and read back in by Unpack.
//
// OPT records repurpose Class as the requestor's UDP payload size and Ttl
// as extended-rcode(8)|version(8)|DO(1)|Z(15) (§4.7); the OPT variant
// exposes typed accessors over those reused fields rather than the raw
// numbers.
type RRHeader struct {
	Name     Name
	Rrtype   Type
	Class    Class
	Ttl      uint32
	Rdlength uint16
}

// present renders "name\tttl\tclass\ttype" the way dig does, skipped for OPT
// which presents as a pseudo-section instead (§4.6).
func (h *RRHeader) present() string {
	return h.Name.String() + "\t" + strconv.Itoa(int(h.Ttl)) + "\t" + h.Class.String() + "\t" + h.Rrtype.String()
}

// RR is the polymorphic resource-record interface. Concrete variants are a
// tagged sum, not a class hierarchy (§9 "Polymorphism"): the dispatcher in
// newRRForType (used by UnpackRR and ParseRR) pattern-matches on the numeric type to pick a concrete
// Go type, mirroring the real github.com/miekg/dns design that
// XTLS-Xray-core's own go.mod depends on for its DNS transport.
type RR interface {
	// Header returns the shared header fields for read/write access.
	Header() *RRHeader
	// packRData writes the type-specific payload (not the header) to w.
	packRData(w *Buffer, c *Compressor) error
	// unpackRData reads the type-specific payload from a reader bounded to
	// exactly rdlength bytes.
	unpackRData(r *Reader, rdlength int) error
	// parseRData consumes presentation-format RDATA tokens.
	parseRData(toks *tokenCursor, origin Name) error
	// presentRData renders the type-specific payload as zonefile text.
	presentRData() string
}

// String renders rr as "<header>\t<rdata>", per §4.5, except OPT which
// overrides this with its own pseudo-section rendering.
func rrString(rr RR) string {
	if opt, ok := rr.(*OPT); ok {
		return opt.PresentPseudoSection()
	}
	return rr.Header().present() + "\t" + rr.presentRData()
}

// rrConstructors maps a numeric RRType to a zero-value constructor for its
// variant. Unknown types fall back to the Unknown variant, which preserves
// raw RDATA for faithful re-emission (§4.5, §7).
var rrConstructors = map[Type]func() RR{
	TypeA:          func() RR { return new(A) },
	TypeAAAA:       func() RR { return new(AAAA) },
	TypeNS:         func() RR { return new(NS) },
	TypeCNAME:      func() RR { return new(CNAME) },
	TypeDNAME:      func() RR { return new(DNAME) },
	TypePTR:        func() RR { return new(PTR) },
	TypeMB:         func() RR { return new(MB) },
	TypeMG:         func() RR { return new(MG) },
	TypeMR:         func() RR { return new(MR) },
	TypeMINFO:      func() RR { return new(MINFO) },
	TypeSOA:        func() RR { return new(SOA) },
	TypeMX:         func() RR { return new(MX) },
	TypeSRV:        func() RR { return new(SRV) },
	TypeTXT:        func() RR { return new(TXT) },
	TypeHINFO:      func() RR { return new(HINFO) },
	TypeLOC:        func() RR { return new(LOC) },
	TypeNAPTR:      func() RR { return new(NAPTR) },
	TypeNSAP:       func() RR { return new(NSAP) },
	TypeNSAPPTR:    func() RR { return new(NSAPPTR) },
	TypeAPL:        func() RR { return new(APL) },
	TypeDS:         func() RR { return new(DS) },
	TypeDNSKEY:     func() RR { return new(DNSKEY) },
	TypeRRSIG:      func() RR { return new(RRSIG) },
	TypeNSEC:       func() RR { return new(NSEC) },
	TypeNSEC3:      func() RR { return new(NSEC3) },
	TypeNSEC3PARAM: func() RR { return new(NSEC3PARAM) },
	TypeKEY:        func() RR { return new(KEY) },
	TypeSIG:        func() RR { return new(SIG) },
	TypeNXT:        func() RR { return new(NXT) },
	TypeTSIG:       func() RR { return new(TSIG) },
	TypeSSHFP:      func() RR { return new(SSHFP) },
	TypeZONEMD:     func() RR { return new(ZONEMD) },
	TypeIPSECKEY:   func() RR { return new(IPSECKEY) },
	TypeDHCID:      func() RR { return new(DHCID) },
	TypeOPT:        func() RR { return new(OPT) },
}

// newRRForType instantiates the registered variant for t, or an Unknown
// variant carrying t if no variant is registered.
func newRRForType(t Type) RR {
	if mk, ok := rrConstructors[t]; ok {
		rr := mk()
		rr.Header().Rrtype = t
		return rr
	}
	rr := new(Unknown)
	rr.Hdr.Rrtype = t
	return rr
}

// PackRR writes rr (header + RDATA) to w, back-patching Rdlength.
func PackRR(rr RR, w *Buffer, c *Compressor) error {
	h := rr.Header()
	if err := c.Emit(w, h.Name); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(h.Rrtype)); err != nil {
		return err
	}
	if err := w.WriteU16(uint16(h.Class)); err != nil {
		return err
	}
	if err := w.WriteU32(h.Ttl); err != nil {
		return err
	}
	rdlenOff := w.Len()
	if err := w.WriteU16(0); err != nil {
		return err
	}
	start := w.Len()
	if err := rr.packRData(w, c); err != nil {
		return err
	}
	n := w.Len() - start
	h.Rdlength = uint16(n)
	return w.PatchU16At(rdlenOff, uint16(n))
}

// UnpackRR reads one resource record (header + RDATA) from r, dispatching
// on the numeric type to the registered variant (§4.5).
func UnpackRR(r *Reader) (RR, error) {
	name, err := r.ReadName()
	if err != nil {
		return nil, err
	}
	rrtype, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	class, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	ttl, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	rdlength, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	rr := newRRForType(Type(rrtype))
	h := rr.Header()
	h.Name = name
	h.Rrtype = Type(rrtype)
	h.Class = Class(class)
	h.Ttl = ttl
	h.Rdlength = rdlength

	sub, err := r.ReadSlice(int(rdlength))
	if err != nil {
		return nil, err
	}
	if err := rr.unpackRData(sub, int(rdlength)); err != nil {
		return nil, err
	}
	return rr, nil
}
