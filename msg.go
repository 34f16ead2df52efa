package dns

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Id returns a pseudo-random 16-bit message ID. Grounded on the teacher's
// Id() in msg.go, which XORs rand.Int() with the current nanosecond to
// avoid a single predictable PRNG source.
func Id() uint16 {
	return uint16(rand.Int()) ^ uint16(time.Now().Nanosecond())
}

// Header is the manually-unpacked form of a message's 12-byte fixed header
// (RFC 1035 §4.1.1), kept as its own struct so it prints and copies
// independently of the rest of Message.
type Header struct {
	Id                 uint16
	Response           bool
	Opcode             Opcode
	Authoritative      bool
	Truncated          bool
	RecursionDesired   bool
	RecursionAvailable bool
	Zero               bool
	AuthenticatedData  bool
	CheckingDisabled   bool
	Rcode              Rcode
}

func packHeaderFlags(h Header) uint16 {
	var bits uint16
	if h.Response {
		bits |= 1 << 15
	}
	bits |= uint16(h.Opcode&0xf) << 11
	if h.Authoritative {
		bits |= 1 << 10
	}
	if h.Truncated {
		bits |= 1 << 9
	}
	if h.RecursionDesired {
		bits |= 1 << 8
	}
	if h.RecursionAvailable {
		bits |= 1 << 7
	}
	if h.Zero {
		bits |= 1 << 6
	}
	if h.AuthenticatedData {
		bits |= 1 << 5
	}
	if h.CheckingDisabled {
		bits |= 1 << 4
	}
	bits |= uint16(h.Rcode & 0xf)
	return bits
}

func unpackHeaderFlags(bits uint16) (resp bool, opcode Opcode, aa, tc, rd, ra, z, ad, cd bool, rcode Rcode) {
	resp = bits&(1<<15) != 0
	opcode = Opcode((bits >> 11) & 0xf)
	aa = bits&(1<<10) != 0
	tc = bits&(1<<9) != 0
	rd = bits&(1<<8) != 0
	ra = bits&(1<<7) != 0
	z = bits&(1<<6) != 0
	ad = bits&(1<<5) != 0
	cd = bits&(1<<4) != 0
	rcode = Rcode(bits & 0xf)
	return
}

// Question is one entry in a message's question section (RFC 1035 §4.1.2).
type Question struct {
	Name  Name
	Qtype Type
	Qclass Class
}

func (q Question) String() string {
	return q.Name.String() + "\t" + q.Qclass.String() + "\t" + q.Qtype.String()
}

// Message is a full DNS message: a mutable Header plus the four sections
// (RFC 1035 §4). Compress controls whether Pack name-compresses; it
// defaults to false (the zero value) and is opt-in per §4.3.
type Message struct {
	Header
	Compress   bool
	Question   []Question
	Answer     []RR
	Authority  []RR
	Additional []RR
}

// NewMessage returns an empty query message with a fresh random ID.
func NewMessage() *Message {
	m := &Message{}
	m.Id = Id()
	m.RecursionDesired = true
	return m
}

// FindOPT returns the OPT pseudo-RR riding in Additional, or nil if the
// message carries no EDNS(0) extension.
func (m *Message) FindOPT() *OPT {
	for _, rr := range m.Additional {
		if opt, ok := rr.(*OPT); ok {
			return opt
		}
	}
	return nil
}

// SetEDNS0 ensures an OPT record with the given UDP size and DO bit is
// present in Additional, replacing any existing one.
func (m *Message) SetEDNS0(udpSize uint16, do bool) *OPT {
	for i, rr := range m.Additional {
		if _, ok := rr.(*OPT); ok {
			m.Additional = append(m.Additional[:i], m.Additional[i+1:]...)
			break
		}
	}
	opt := NewOPT(udpSize).WithDO(do)
	m.Additional = append(m.Additional, opt)
	return opt
}

// Pack serializes m to wire format, returning the encoded bytes.
// Compression is used when m.Compress is true (§4.3).
func (m *Message) Pack() ([]byte, error) {
	w := NewWriterBuffer(512)
	var c *Compressor
	if m.Compress {
		c = NewCompressor()
	}

	hdr := m.Header
	if err := w.WriteU16(hdr.Id); err != nil {
		return nil, err
	}
	if err := w.WriteU16(packHeaderFlags(hdr)); err != nil {
		return nil, err
	}
	if err := w.WriteU16(uint16(len(m.Question))); err != nil {
		return nil, err
	}
	if err := w.WriteU16(uint16(len(m.Answer))); err != nil {
		return nil, err
	}
	if err := w.WriteU16(uint16(len(m.Authority))); err != nil {
		return nil, err
	}
	if err := w.WriteU16(uint16(len(m.Additional))); err != nil {
		return nil, err
	}

	for _, q := range m.Question {
		if err := c.Emit(w, q.Name); err != nil {
			return nil, err
		}
		if err := w.WriteU16(uint16(q.Qtype)); err != nil {
			return nil, err
		}
		if err := w.WriteU16(uint16(q.Qclass)); err != nil {
			return nil, err
		}
	}
	for _, section := range [][]RR{m.Answer, m.Authority, m.Additional} {
		for _, rr := range section {
			if err := PackRR(rr, w, c); err != nil {
				return nil, err
			}
		}
	}
	return w.Freeze(w.Len())
}

// Unpack decodes msg into m, replacing its contents. A failure to decode
// any single record fails the whole parse (§4.6).
func (m *Message) Unpack(msg []byte) error {
	r := NewReader(msg)
	id, err := r.ReadU16()
	if err != nil {
		return err
	}
	flagBits, err := r.ReadU16()
	if err != nil {
		return err
	}
	qdcount, err := r.ReadU16()
	if err != nil {
		return err
	}
	ancount, err := r.ReadU16()
	if err != nil {
		return err
	}
	nscount, err := r.ReadU16()
	if err != nil {
		return err
	}
	arcount, err := r.ReadU16()
	if err != nil {
		return err
	}

	resp, opcode, aa, tc, rd, ra, z, ad, cd, rcode := unpackHeaderFlags(flagBits)
	m.Header = Header{
		Id: id, Response: resp, Opcode: opcode, Authoritative: aa, Truncated: tc,
		RecursionDesired: rd, RecursionAvailable: ra, Zero: z,
		AuthenticatedData: ad, CheckingDisabled: cd, Rcode: rcode,
	}

	m.Question = make([]Question, 0, qdcount)
	for i := 0; i < int(qdcount); i++ {
		name, err := r.ReadName()
		if err != nil {
			return err
		}
		qtype, err := r.ReadU16()
		if err != nil {
			return err
		}
		qclass, err := r.ReadU16()
		if err != nil {
			return err
		}
		m.Question = append(m.Question, Question{Name: name, Qtype: Type(qtype), Qclass: Class(qclass)})
	}

	sections := []struct {
		count int
		dst   *[]RR
	}{
		{int(ancount), &m.Answer},
		{int(nscount), &m.Authority},
		{int(arcount), &m.Additional},
	}
	for _, s := range sections {
		rrs := make([]RR, 0, s.count)
		for i := 0; i < s.count; i++ {
			rr, err := UnpackRR(r)
			if err != nil {
				return err
			}
			rrs = append(rrs, rr)
		}
		*s.dst = rrs
	}
	return nil
}

// String renders m the way dig does: the ->>HEADER<<- line, the flags
// list, a pseudo-OPT section when present, the question section, then
// each non-empty record section (§4.6).
func (m *Message) String() string {
	var sb strings.Builder
	sb.WriteString(";; ->>HEADER<<- opcode: ")
	sb.WriteString(m.Opcode.String())
	sb.WriteString(", status: ")
	sb.WriteString(m.Rcode.String())
	sb.WriteString(", id: ")
	sb.WriteString(strconv.Itoa(int(m.Id)))
	sb.WriteString("\n;; flags:")
	for _, f := range m.flagMnemonics() {
		sb.WriteString(" ")
		sb.WriteString(f)
	}
	sb.WriteString("; QUERY: ")
	sb.WriteString(strconv.Itoa(len(m.Question)))
	sb.WriteString(", ANSWER: ")
	sb.WriteString(strconv.Itoa(len(m.Answer)))
	sb.WriteString(", AUTHORITY: ")
	sb.WriteString(strconv.Itoa(len(m.Authority)))
	sb.WriteString(", ADDITIONAL: ")
	sb.WriteString(strconv.Itoa(len(m.Additional)))
	sb.WriteString("\n")

	if opt := m.FindOPT(); opt != nil {
		sb.WriteString("\n")
		sb.WriteString(opt.PresentPseudoSection())
		sb.WriteString("\n")
	}

	if len(m.Question) > 0 {
		sb.WriteString("\n;; QUESTION SECTION:\n")
		for _, q := range m.Question {
			sb.WriteString(";")
			sb.WriteString(q.String())
			sb.WriteString("\n")
		}
	}
	writeRRSection(&sb, "ANSWER", m.Answer)
	writeRRSection(&sb, "AUTHORITY", m.Authority)
	writeRRSection(&sb, "ADDITIONAL", filterNonOPT(m.Additional))
	return sb.String()
}

func (m *Message) flagMnemonics() []string {
	var flags []string
	if m.Response {
		flags = append(flags, "qr")
	}
	if m.Authoritative {
		flags = append(flags, "aa")
	}
	if m.Truncated {
		flags = append(flags, "tc")
	}
	if m.RecursionDesired {
		flags = append(flags, "rd")
	}
	if m.RecursionAvailable {
		flags = append(flags, "ra")
	}
	if m.AuthenticatedData {
		flags = append(flags, "ad")
	}
	if m.CheckingDisabled {
		flags = append(flags, "cd")
	}
	return flags
}

func filterNonOPT(rrs []RR) []RR {
	out := make([]RR, 0, len(rrs))
	for _, rr := range rrs {
		if _, ok := rr.(*OPT); ok {
			continue
		}
		out = append(out, rr)
	}
	return out
}

func writeRRSection(sb *strings.Builder, name string, rrs []RR) {
	if len(rrs) == 0 {
		return
	}
	sb.WriteString("\n;; ")
	sb.WriteString(name)
	sb.WriteString(" SECTION:\n")
	for _, rr := range rrs {
		sb.WriteString(rrString(rr))
		sb.WriteString("\n")
	}
}
