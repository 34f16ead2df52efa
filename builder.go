package dns

// Builder provides fluent construction of a Message (§4.6): chain Header,
// Question, Answer, Authority, Additional and OPT calls, then call Build
// to get the assembled *Message. Each method returns the Builder so calls
// compose; a construction error is recorded and returned from Build rather
// than panicking mid-chain, the same contract msg_util.go's helpers follow
// in the teacher.
type Builder struct {
	msg *Message
	err error
}

// NewBuilder starts a builder around a fresh query message.
func NewBuilder() *Builder {
	return &Builder{msg: NewMessage()}
}

// Id sets the message ID, overriding the random default from NewMessage.
func (b *Builder) Id(id uint16) *Builder {
	b.msg.Id = id
	return b
}

// Response marks the message as a response (QR=1) when v is true.
func (b *Builder) Response(v bool) *Builder {
	b.msg.Response = v
	return b
}

// Opcode sets the message opcode.
func (b *Builder) Opcode(op Opcode) *Builder {
	b.msg.Opcode = op
	return b
}

// Rcode sets the response code.
func (b *Builder) Rcode(rc Rcode) *Builder {
	b.msg.Rcode = rc
	return b
}

// Flags sets the boolean header bits in one call.
func (b *Builder) Flags(aa, tc, rd, ra, ad, cd bool) *Builder {
	b.msg.Authoritative = aa
	b.msg.Truncated = tc
	b.msg.RecursionDesired = rd
	b.msg.RecursionAvailable = ra
	b.msg.AuthenticatedData = ad
	b.msg.CheckingDisabled = cd
	return b
}

// Compress enables name compression on Build/Pack.
func (b *Builder) Compress(v bool) *Builder {
	b.msg.Compress = v
	return b
}

// Question adds a question-section entry, parsing name against the root
// origin (questions are always fully-qualified).
func (b *Builder) Question(name string, qtype Type, qclass Class) *Builder {
	if b.err != nil {
		return b
	}
	n, err := ParseName(name, Root())
	if err != nil {
		b.err = err
		return b
	}
	b.msg.Question = append(b.msg.Question, Question{Name: n, Qtype: qtype, Qclass: qclass})
	return b
}

// Answer appends rr to the answer section.
func (b *Builder) Answer(rr RR) *Builder {
	b.msg.Answer = append(b.msg.Answer, rr)
	return b
}

// Authority appends rr to the authority section.
func (b *Builder) Authority(rr RR) *Builder {
	b.msg.Authority = append(b.msg.Authority, rr)
	return b
}

// Additional appends rr to the additional section.
func (b *Builder) Additional(rr RR) *Builder {
	b.msg.Additional = append(b.msg.Additional, rr)
	return b
}

// OPT configures (or replaces) the EDNS(0) pseudo-RR and returns an
// OPTBuilder scoped to it, so option chaining reads
// builder.OPT(1232).WithDO(true).NSID(...).Done().
type OPTBuilder struct {
	parent *Builder
	opt    *OPT
}

// OPT starts (or replaces) the message's EDNS(0) OPT record.
func (b *Builder) OPT(udpSize uint16) *OPTBuilder {
	opt := b.msg.SetEDNS0(udpSize, false)
	return &OPTBuilder{parent: b, opt: opt}
}

// WithDO sets the DNSSEC OK bit.
func (ob *OPTBuilder) WithDO(do bool) *OPTBuilder {
	ob.opt.WithDO(do)
	return ob
}

// NSID attaches an NSID option carrying data.
func (ob *OPTBuilder) NSID(data []byte) *OPTBuilder {
	ob.opt.AddOption(&NSIDOption{Data: data})
	return ob
}

// ClientSubnet attaches an EDNS Client Subnet option.
func (ob *OPTBuilder) ClientSubnet(o *ClientSubnetOption) *OPTBuilder {
	ob.opt.AddOption(o)
	return ob
}

// Cookie attaches a DNS Cookie option.
func (ob *OPTBuilder) Cookie(client, server []byte) *OPTBuilder {
	ob.opt.AddOption(&CookieOption{Client: client, Server: server})
	return ob
}

// Done returns to the parent Builder.
func (ob *OPTBuilder) Done() *Builder { return ob.parent }

// Build returns the assembled message, or the first construction error
// encountered.
func (b *Builder) Build() (*Message, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.msg, nil
}
