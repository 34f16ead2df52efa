package dns

import (
	"net/netip"
	"strconv"
	"strings"
)

// EDNS option codes (RFC 6891 plus the extensions this package decodes).
const (
	OptCodeNSID         uint16 = 3
	OptCodeClientSubnet uint16 = 8
	OptCodeCookie       uint16 = 10
	OptCodePadding      uint16 = 12
	OptCodeEDE          uint16 = 15
)

// EDNSOption is one TLV entry in an OPT record's RDATA (§4.7).
type EDNSOption interface {
	Code() uint16
	packData(w *Buffer) error
	unpackData(r *Reader, length int) error
	present() string
}

// ednsOptionConstructors maps an option code to a zero-value constructor,
// mirroring rrConstructors' type-code dispatch (§9 "EDNS option dispatch").
var ednsOptionConstructors = map[uint16]func() EDNSOption{
	OptCodeNSID:         func() EDNSOption { return new(NSIDOption) },
	OptCodeClientSubnet: func() EDNSOption { return new(ClientSubnetOption) },
	OptCodeCookie:       func() EDNSOption { return new(CookieOption) },
	OptCodePadding:      func() EDNSOption { return new(PaddingOption) },
	OptCodeEDE:          func() EDNSOption { return new(EDEOption) },
}

func newEDNSOptionForCode(code uint16) EDNSOption {
	if mk, ok := ednsOptionConstructors[code]; ok {
		return mk()
	}
	return &UnknownOption{code: code}
}

// packEDNSOption writes code(16)|length(16)|payload, patching the length
// placeholder after the variant writes its payload (§4.7).
func packEDNSOption(w *Buffer, o EDNSOption) error {
	if err := w.WriteU16(o.Code()); err != nil {
		return err
	}
	lenOff := w.Len()
	if err := w.WriteU16(0); err != nil {
		return err
	}
	start := w.Len()
	if err := o.packData(w); err != nil {
		return err
	}
	n := w.Len() - start
	return w.PatchU16At(lenOff, uint16(n))
}

// unpackEDNSOption reads one option TLV from r, dispatching on code.
func unpackEDNSOption(r *Reader) (EDNSOption, error) {
	code, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	length, err := r.ReadU16()
	if err != nil {
		return nil, err
	}
	sub, err := r.ReadSlice(int(length))
	if err != nil {
		return nil, err
	}
	opt := newEDNSOptionForCode(code)
	if err := opt.unpackData(sub, int(length)); err != nil {
		return nil, err
	}
	return opt, nil
}

// NSIDOption is the Name Server Identifier option (RFC 5001): opaque bytes,
// conventionally an operator-chosen server identity string.
type NSIDOption struct {
	Data []byte
}

func (o *NSIDOption) Code() uint16 { return OptCodeNSID }
func (o *NSIDOption) packData(w *Buffer) error { return w.WriteBytes(o.Data) }
func (o *NSIDOption) unpackData(r *Reader, length int) error {
	b, err := r.ReadBytes(length)
	if err != nil {
		return err
	}
	o.Data = append([]byte(nil), b...)
	return nil
}
func (o *NSIDOption) present() string { return "; NSID: " + HexEncode(o.Data) }

// ClientSubnetOption is EDNS Client Subnet (RFC 7871 §6): family, the
// querier's source prefix length, the responder's scope prefix length, and
// the address truncated to ceil(sourcePrefix/8) bytes.
type ClientSubnetOption struct {
	Family        uint16
	SourcePrefix  uint8
	ScopePrefix   uint8
	AddressBytes  []byte
}

func (o *ClientSubnetOption) Code() uint16 { return OptCodeClientSubnet }

func (o *ClientSubnetOption) packData(w *Buffer) error {
	if err := w.WriteU16(o.Family); err != nil {
		return err
	}
	if err := w.WriteU8(o.SourcePrefix); err != nil {
		return err
	}
	if err := w.WriteU8(o.ScopePrefix); err != nil {
		return err
	}
	return w.WriteBytes(o.AddressBytes)
}

func (o *ClientSubnetOption) unpackData(r *Reader, length int) error {
	family, err := r.ReadU16()
	if err != nil {
		return err
	}
	srcPfx, err := r.ReadU8()
	if err != nil {
		return err
	}
	scopePfx, err := r.ReadU8()
	if err != nil {
		return err
	}
	addrLen := length - 4
	if err := validateClientSubnetPrefix(family, srcPfx); err != nil {
		return err
	}
	addr, err := r.ReadBytes(addrLen)
	if err != nil {
		return err
	}
	o.Family, o.SourcePrefix, o.ScopePrefix = family, srcPfx, scopePfx
	o.AddressBytes = append([]byte(nil), addr...)
	return nil
}

// validateClientSubnetPrefix checks the source prefix length against the
// address family's bit width. A prefix exactly equal to the address width
// (a full host address) is accepted, per this package's Open Question
// resolution favoring interoperability with deployed ECS implementations.
func validateClientSubnetPrefix(family uint16, prefix uint8) error {
	var bits int
	switch family {
	case 1:
		bits = 32
	case 2:
		bits = 128
	default:
		return newParseError("edns", "invalid CLIENT-SUBNET address family "+strconv.Itoa(int(family)), -1)
	}
	if int(prefix) > bits {
		return newParseError("edns", "invalid source prefix length "+strconv.Itoa(int(prefix))+" for address family "+strconv.Itoa(int(family)), -1)
	}
	return nil
}

// ClientSubnetFromBytes builds a ClientSubnetOption from an 8-byte wire
// payload of the form [family_hi, family_lo, source, scope, addr...],
// mirroring dig's raw-option debugging representation.
func ClientSubnetFromBytes(b []byte) (*ClientSubnetOption, error) {
	o := &ClientSubnetOption{}
	if err := o.unpackData(NewReader(b), len(b)); err != nil {
		return nil, err
	}
	return o, nil
}

func (o *ClientSubnetOption) present() string {
	addr := presentTruncatedAddress(o.Family, o.AddressBytes)
	s := "; CLIENT-SUBNET: " + addr + "/" + strconv.Itoa(int(o.SourcePrefix)) + "/" + strconv.Itoa(int(o.ScopePrefix))
	if p, err := o.NetworkRange(); err == nil {
		s += " (last " + p.LastAddr().String() + ")"
	}
	return s
}

// NetworkRange builds the address/prefix-length pair the option describes,
// zero-padding the wire-truncated address out to its family's full width.
// The resulting Prefix.LastAddr is the top of the advertised subnet, which
// RFC 7871 §11's debugging guidance calls out as useful alongside the
// truncated address when rendering the option for display.
func (o *ClientSubnetOption) NetworkRange() (Prefix, error) {
	var addr netip.Addr
	switch o.Family {
	case 1:
		var full [4]byte
		copy(full[:], o.AddressBytes)
		addr = netip.AddrFrom4(full)
	case 2:
		var full [16]byte
		copy(full[:], o.AddressBytes)
		addr = netip.AddrFrom16(full)
	default:
		return Prefix{}, newSemanticError("edns", "unknown CLIENT-SUBNET address family")
	}
	return NewPrefix(addr, int(o.SourcePrefix))
}

func presentTruncatedAddress(family uint16, b []byte) string {
	switch family {
	case 1:
		var full [4]byte
		copy(full[:], b)
		return Address4FromBytes(full).String()
	case 2:
		var full [16]byte
		copy(full[:], b)
		return Address6FromBytes(full).String()
	default:
		return HexEncode(b)
	}
}

// CookieOption is the DNS Cookie option (RFC 7873 §4): an 8-byte client
// cookie and an optional 8..32-byte server cookie.
type CookieOption struct {
	Client []byte // exactly 8 bytes
	Server []byte // 0, or 8..32 bytes
}

func (o *CookieOption) Code() uint16 { return OptCodeCookie }

func (o *CookieOption) packData(w *Buffer) error {
	if err := w.WriteBytes(o.Client); err != nil {
		return err
	}
	return w.WriteBytes(o.Server)
}

func (o *CookieOption) unpackData(r *Reader, length int) error {
	if length != 8 && (length < 16 || length > 40) {
		return newParseError("edns", "invalid COOKIE length", -1)
	}
	client, err := r.ReadBytes(8)
	if err != nil {
		return err
	}
	o.Client = append([]byte(nil), client...)
	if length > 8 {
		server, err := r.ReadBytes(length - 8)
		if err != nil {
			return err
		}
		o.Server = append([]byte(nil), server...)
	} else {
		o.Server = nil
	}
	return nil
}

func (o *CookieOption) present() string {
	s := "; COOKIE: " + HexEncode(o.Client)
	if len(o.Server) > 0 {
		s += HexEncode(o.Server)
	}
	return s
}

// PaddingOption is a zero-filled padding option (RFC 7830), used to round
// query/response sizes to a fixed boundary against traffic analysis.
type PaddingOption struct {
	Length int
}

func (o *PaddingOption) Code() uint16 { return OptCodePadding }

func (o *PaddingOption) packData(w *Buffer) error {
	return w.WriteBytes(make([]byte, o.Length))
}

func (o *PaddingOption) unpackData(r *Reader, length int) error {
	if _, err := r.ReadBytes(length); err != nil {
		return err
	}
	o.Length = length
	return nil
}

func (o *PaddingOption) present() string { return "; PADDING: " + strconv.Itoa(o.Length) + " bytes" }

// EDEOption is Extended DNS Error (RFC 8914): a 16-bit info code plus
// optional UTF-8 extra text.
type EDEOption struct {
	InfoCode  uint16
	ExtraText string
}

func (o *EDEOption) Code() uint16 { return OptCodeEDE }

func (o *EDEOption) packData(w *Buffer) error {
	if err := w.WriteU16(o.InfoCode); err != nil {
		return err
	}
	return w.WriteBytes([]byte(o.ExtraText))
}

func (o *EDEOption) unpackData(r *Reader, length int) error {
	code, err := r.ReadU16()
	if err != nil {
		return err
	}
	text, err := r.ReadBytes(length - 2)
	if err != nil {
		return err
	}
	o.InfoCode = code
	o.ExtraText = string(text)
	return nil
}

func (o *EDEOption) present() string {
	s := "; EDE: " + strconv.Itoa(int(o.InfoCode))
	if o.ExtraText != "" {
		s += " (" + o.ExtraText + ")"
	}
	return s
}

// UnknownOption preserves the raw payload of any option code this package
// has no registered variant for, for faithful re-emission (§9).
type UnknownOption struct {
	code uint16
	Data []byte
}

func (o *UnknownOption) Code() uint16 { return o.code }
func (o *UnknownOption) packData(w *Buffer) error { return w.WriteBytes(o.Data) }
func (o *UnknownOption) unpackData(r *Reader, length int) error {
	b, err := r.ReadBytes(length)
	if err != nil {
		return err
	}
	o.Data = append([]byte(nil), b...)
	return nil
}
func (o *UnknownOption) present() string {
	return "; OPT=" + strconv.Itoa(int(o.code)) + ": " + HexEncode(o.Data)
}

// EDNSFlags is the (extended-rcode, version, DO, Z) tuple packed into an
// OPT record's reused TTL field (RFC 6891 §6.1.3). The raw uint32 is never
// exposed to callers directly, per this package's design: OPT.Flags /
// OPT.SetFlags (and the OPT.WithDO / OPT.WithVersion helpers) expose this
// struct through accessors.
type EDNSFlags struct {
	ExtRcode uint8
	Version  uint8
	DO       bool
	Z        uint16 // 15 bits
}

func packEDNSFlags(f EDNSFlags) uint32 {
	var v uint32
	v |= uint32(f.ExtRcode) << 24
	v |= uint32(f.Version) << 16
	if f.DO {
		v |= 1 << 15
	}
	v |= uint32(f.Z) & 0x7fff
	return v
}

func unpackEDNSFlags(ttl uint32) EDNSFlags {
	return EDNSFlags{
		ExtRcode: uint8(ttl >> 24),
		Version:  uint8(ttl >> 16),
		DO:       ttl&(1<<15) != 0,
		Z:        uint16(ttl & 0x7fff),
	}
}

// OPT is the EDNS(0) pseudo-RR (RFC 6891 §6.1). Its header's Class field
// carries the requestor's UDP payload size and its Ttl field carries the
// packed EDNSFlags; both are exposed here through typed accessors instead
// of the raw header numbers.
type OPT struct {
	Hdr     RRHeader
	Options []EDNSOption
}

func (rr *OPT) Header() *RRHeader { return &rr.Hdr }

// UDPSize returns the requestor's advertised UDP payload size.
func (rr *OPT) UDPSize() uint16 { return uint16(rr.Hdr.Class) }

// SetUDPSize sets the requestor's advertised UDP payload size.
func (rr *OPT) SetUDPSize(size uint16) { rr.Hdr.Class = Class(size) }

// Flags decodes the EDNS flags packed into the TTL field.
func (rr *OPT) Flags() EDNSFlags { return unpackEDNSFlags(rr.Hdr.Ttl) }

// SetFlags encodes f into the TTL field.
func (rr *OPT) SetFlags(f EDNSFlags) { rr.Hdr.Ttl = packEDNSFlags(f) }

func (rr *OPT) packRData(w *Buffer, c *Compressor) error {
	for _, o := range rr.Options {
		if err := packEDNSOption(w, o); err != nil {
			return err
		}
	}
	return nil
}

func (rr *OPT) unpackRData(r *Reader, rdlength int) error {
	sub, err := r.ReadSlice(rdlength)
	if err != nil {
		return err
	}
	var opts []EDNSOption
	for sub.Remaining() > 0 {
		o, err := unpackEDNSOption(sub)
		if err != nil {
			return err
		}
		opts = append(opts, o)
	}
	rr.Options = opts
	return nil
}

// parseRData is unsupported: OPT never appears in zonefile presentation
// format (it is a purely on-the-wire construct), matching dig's own
// refusal to accept OPT records in zone data.
func (rr *OPT) parseRData(toks *tokenCursor, origin Name) error {
	return newSemanticError("rdata", "OPT has no zonefile presentation form")
}

// presentRData is unused: OPT overrides the whole-record String via
// PresentPseudoSection instead of the header+rdata convention (§4.6).
func (rr *OPT) presentRData() string { return "" }

// PresentPseudoSection renders rr the way dig prints the "OPT PSEUDOSECTION"
// block, instead of the generic "<header>\t<rdata>" form every other
// record type uses.
func (rr *OPT) PresentPseudoSection() string {
	f := rr.Flags()
	var sb strings.Builder
	sb.WriteString("; EDNS: version: ")
	sb.WriteString(strconv.Itoa(int(f.Version)))
	sb.WriteString(", flags:")
	if f.DO {
		sb.WriteString(" do")
	}
	sb.WriteString("; udp: ")
	sb.WriteString(strconv.Itoa(int(rr.UDPSize())))
	for _, o := range rr.Options {
		sb.WriteByte('\n')
		sb.WriteString(o.present())
	}
	return sb.String()
}

// NewOPT builds a bare OPT record with the given UDP payload size and
// default (non-DNSSEC-aware) flags.
func NewOPT(udpSize uint16) *OPT {
	rr := &OPT{}
	rr.Hdr.Rrtype = TypeOPT
	rr.Hdr.Name = Root()
	rr.SetUDPSize(udpSize)
	return rr
}

// WithDO sets the DNSSEC OK bit and returns rr for chaining.
func (rr *OPT) WithDO(do bool) *OPT {
	f := rr.Flags()
	f.DO = do
	rr.SetFlags(f)
	return rr
}

// WithVersion sets the EDNS version, rejecting values above 255 even
// though the field itself is a single byte — the validation exists so a
// caller handing in an int elsewhere in the API surface gets a semantic
// error rather than silent truncation.
func (rr *OPT) WithVersion(version int) (*OPT, error) {
	if version < 0 || version > 255 {
		return nil, newSemanticError("edns", "OPT version out of range")
	}
	f := rr.Flags()
	f.Version = uint8(version)
	rr.SetFlags(f)
	return rr, nil
}

// AddOption appends an option and returns rr for chaining.
func (rr *OPT) AddOption(o EDNSOption) *OPT {
	rr.Options = append(rr.Options, o)
	return rr
}
