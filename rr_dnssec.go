package dns

import (
	"strconv"
	"strings"
	"time"
)

// DS is a delegation signer record (RFC 4034 §5).
type DS struct {
	Hdr        RRHeader
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (rr *DS) Header() *RRHeader { return &rr.Hdr }

func (rr *DS) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU16(rr.KeyTag); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU8(rr.DigestType); err != nil {
		return err
	}
	return w.WriteBytes(rr.Digest)
}

func (rr *DS) unpackRData(r *Reader, rdlength int) error {
	tag, err := r.ReadU16()
	if err != nil {
		return err
	}
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	dtype, err := r.ReadU8()
	if err != nil {
		return err
	}
	digest, err := r.ReadBytes(rdlength - 4)
	if err != nil {
		return err
	}
	rr.KeyTag, rr.Algorithm, rr.DigestType = tag, algo, dtype
	rr.Digest = append([]byte(nil), digest...)
	return nil
}

func (rr *DS) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	tag, algo, dtype, err := parseDSHeader(toks)
	if err != nil {
		return err
	}
	digest, err := parseHexRemainder(toks)
	if err != nil {
		return err
	}
	rr.KeyTag, rr.Algorithm, rr.DigestType, rr.Digest = tag, algo, dtype, digest
	return nil
}

func (rr *DS) presentRData() string {
	return strconv.FormatUint(uint64(rr.KeyTag), 10) + " " +
		strconv.FormatUint(uint64(rr.Algorithm), 10) + " " +
		strconv.FormatUint(uint64(rr.DigestType), 10) + " " + HexEncode(rr.Digest)
}

func parseDSHeader(toks *tokenCursor) (tag uint16, algo, dtype uint8, err error) {
	tagTok, err := toks.requireNext("key tag")
	if err != nil {
		return
	}
	algoTok, err := toks.requireNext("algorithm")
	if err != nil {
		return
	}
	dtypeTok, err := toks.requireNext("digest type")
	if err != nil {
		return
	}
	t, err := strconv.ParseUint(tagTok, 10, 16)
	if err != nil {
		return 0, 0, 0, newParseError("rdata", "invalid key tag", -1)
	}
	a, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return 0, 0, 0, newParseError("rdata", "invalid algorithm", -1)
	}
	d, err := strconv.ParseUint(dtypeTok, 10, 8)
	if err != nil {
		return 0, 0, 0, newParseError("rdata", "invalid digest type", -1)
	}
	return uint16(t), uint8(a), uint8(d), nil
}

func parseHexRemainder(toks *tokenCursor) ([]byte, error) {
	var sb []byte
	for {
		tok, ok := toks.next()
		if !ok {
			break
		}
		sb = append(sb, tok...)
	}
	return HexDecode(string(sb))
}

// DNSKEY is a zone signing key record (RFC 4034 §2).
type DNSKEY struct {
	Hdr       RRHeader
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (rr *DNSKEY) Header() *RRHeader { return &rr.Hdr }

func (rr *DNSKEY) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU16(rr.Flags); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Protocol); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Algorithm); err != nil {
		return err
	}
	return w.WriteBytes(rr.PublicKey)
}

func (rr *DNSKEY) unpackRData(r *Reader, rdlength int) error {
	flags, err := r.ReadU16()
	if err != nil {
		return err
	}
	proto, err := r.ReadU8()
	if err != nil {
		return err
	}
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	key, err := r.ReadBytes(rdlength - 4)
	if err != nil {
		return err
	}
	rr.Flags, rr.Protocol, rr.Algorithm = flags, proto, algo
	rr.PublicKey = append([]byte(nil), key...)
	return nil
}

func (rr *DNSKEY) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	flagsTok, err := toks.requireNext("flags")
	if err != nil {
		return err
	}
	protoTok, err := toks.requireNext("protocol")
	if err != nil {
		return err
	}
	algoTok, err := toks.requireNext("algorithm")
	if err != nil {
		return err
	}
	keyTok, err := toks.requireNext("public key")
	if err != nil {
		return err
	}
	flags, err := strconv.ParseUint(flagsTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid DNSKEY flags", -1)
	}
	proto, err := strconv.ParseUint(protoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid DNSKEY protocol", -1)
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid DNSKEY algorithm", -1)
	}
	key, err := Base64Decode(keyTok + strings.Join(toks.rest(), ""))
	if err != nil {
		return err
	}
	rr.Flags, rr.Protocol, rr.Algorithm = uint16(flags), uint8(proto), uint8(algo)
	rr.PublicKey = key
	return nil
}

func (rr *DNSKEY) presentRData() string {
	return strconv.FormatUint(uint64(rr.Flags), 10) + " " +
		strconv.FormatUint(uint64(rr.Protocol), 10) + " " +
		strconv.FormatUint(uint64(rr.Algorithm), 10) + " " + Base64Encode(rr.PublicKey)
}

// KEY shares DNSKEY's wire shape (RFC 2535, obsoleted for zone signing but
// still used for SIG(0) and legacy deployments).
type KEY struct {
	Hdr       RRHeader
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (rr *KEY) Header() *RRHeader { return &rr.Hdr }
func (rr *KEY) packRData(w *Buffer, c *Compressor) error {
	return (&DNSKEY{Flags: rr.Flags, Protocol: rr.Protocol, Algorithm: rr.Algorithm, PublicKey: rr.PublicKey}).packRData(w, c)
}
func (rr *KEY) unpackRData(r *Reader, rdlength int) error {
	d := &DNSKEY{}
	if err := d.unpackRData(r, rdlength); err != nil {
		return err
	}
	rr.Flags, rr.Protocol, rr.Algorithm, rr.PublicKey = d.Flags, d.Protocol, d.Algorithm, d.PublicKey
	return nil
}
func (rr *KEY) parseRData(toks *tokenCursor, origin Name) error {
	d := &DNSKEY{}
	if err := d.parseRData(toks, origin); err != nil {
		return err
	}
	rr.Flags, rr.Protocol, rr.Algorithm, rr.PublicKey = d.Flags, d.Protocol, d.Algorithm, d.PublicKey
	return nil
}
func (rr *KEY) presentRData() string {
	return (&DNSKEY{Flags: rr.Flags, Protocol: rr.Protocol, Algorithm: rr.Algorithm, PublicKey: rr.PublicKey}).presentRData()
}

// RRSIG is a resource record signature (RFC 4034 §3).
type RRSIG struct {
	Hdr         RRHeader
	TypeCovered Type
	Algorithm   uint8
	Labels      uint8
	OrigTtl     uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  Name
	Signature   []byte
}

func (rr *RRSIG) Header() *RRHeader { return &rr.Hdr }

func (rr *RRSIG) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU16(uint16(rr.TypeCovered)); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Labels); err != nil {
		return err
	}
	if err := w.WriteU32(rr.OrigTtl); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Expiration); err != nil {
		return err
	}
	if err := w.WriteU32(rr.Inception); err != nil {
		return err
	}
	if err := w.WriteU16(rr.KeyTag); err != nil {
		return err
	}
	// RRSIG's signer name is never compressed (RFC 4034 §3.1.7).
	if err := (*Compressor)(nil).Emit(w, rr.SignerName); err != nil {
		return err
	}
	return w.WriteBytes(rr.Signature)
}

func (rr *RRSIG) unpackRData(r *Reader, rdlength int) error {
	start := r.Pos()
	typeCovered, err := r.ReadU16()
	if err != nil {
		return err
	}
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	labels, err := r.ReadU8()
	if err != nil {
		return err
	}
	origTtl, err := r.ReadU32()
	if err != nil {
		return err
	}
	exp, err := r.ReadU32()
	if err != nil {
		return err
	}
	inc, err := r.ReadU32()
	if err != nil {
		return err
	}
	keyTag, err := r.ReadU16()
	if err != nil {
		return err
	}
	signer, err := r.ReadNameNoCompression()
	if err != nil {
		return err
	}
	consumed := r.Pos() - start
	sig, err := r.ReadBytes(rdlength - consumed)
	if err != nil {
		return err
	}
	rr.TypeCovered = Type(typeCovered)
	rr.Algorithm, rr.Labels = algo, labels
	rr.OrigTtl, rr.Expiration, rr.Inception, rr.KeyTag = origTtl, exp, inc, keyTag
	rr.SignerName = signer
	rr.Signature = append([]byte(nil), sig...)
	return nil
}

func (rr *RRSIG) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	typeTok, err := toks.requireNext("type covered")
	if err != nil {
		return err
	}
	algoTok, err := toks.requireNext("algorithm")
	if err != nil {
		return err
	}
	labelsTok, err := toks.requireNext("labels")
	if err != nil {
		return err
	}
	origTtlTok, err := toks.requireNext("original TTL")
	if err != nil {
		return err
	}
	expTok, err := toks.requireNext("expiration")
	if err != nil {
		return err
	}
	incTok, err := toks.requireNext("inception")
	if err != nil {
		return err
	}
	keyTagTok, err := toks.requireNext("key tag")
	if err != nil {
		return err
	}
	signerTok, err := toks.requireNext("signer name")
	if err != nil {
		return err
	}
	typeCovered, err := ParseType(typeTok)
	if err != nil {
		return err
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid RRSIG algorithm", -1)
	}
	labels, err := strconv.ParseUint(labelsTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid RRSIG labels", -1)
	}
	origTtl, err := strconv.ParseUint(origTtlTok, 10, 32)
	if err != nil {
		return newParseError("rdata", "invalid RRSIG original TTL", -1)
	}
	exp, err := parseRRSIGTime(expTok)
	if err != nil {
		return err
	}
	inc, err := parseRRSIGTime(incTok)
	if err != nil {
		return err
	}
	keyTag, err := strconv.ParseUint(keyTagTok, 10, 16)
	if err != nil {
		return newParseError("rdata", "invalid RRSIG key tag", -1)
	}
	signer, err := ParseName(signerTok, origin)
	if err != nil {
		return err
	}
	sig, err := Base64Decode(strings.Join(toks.rest(), ""))
	if err != nil {
		return err
	}
	rr.TypeCovered = typeCovered
	rr.Algorithm, rr.Labels = uint8(algo), uint8(labels)
	rr.OrigTtl, rr.Expiration, rr.Inception, rr.KeyTag = uint32(origTtl), exp, inc, uint16(keyTag)
	rr.SignerName = signer
	rr.Signature = sig
	return nil
}

// parseRRSIGTime parses either a raw uint32 seconds-since-epoch or the
// YYYYMMDDHHmmSS textual form from RFC 4034 §3.2.
func parseRRSIGTime(tok string) (uint32, error) {
	if len(tok) == 14 {
		return parseYYYYMMDDHHmmSS(tok)
	}
	n, err := strconv.ParseUint(tok, 10, 32)
	if err != nil {
		return 0, newParseError("rdata", "invalid RRSIG timestamp "+tok, -1)
	}
	return uint32(n), nil
}

const rrsigTimeLayout = "20060102150405"

func parseYYYYMMDDHHmmSS(tok string) (uint32, error) {
	t, err := time.Parse(rrsigTimeLayout, tok)
	if err != nil {
		return 0, newParseError("rdata", "invalid RRSIG timestamp "+tok, -1)
	}
	return uint32(t.Unix()), nil
}

func formatRRSIGTime(v uint32) string {
	return time.Unix(int64(v), 0).UTC().Format(rrsigTimeLayout)
}

func (rr *RRSIG) presentRData() string {
	return rr.TypeCovered.String() + " " +
		strconv.FormatUint(uint64(rr.Algorithm), 10) + " " +
		strconv.FormatUint(uint64(rr.Labels), 10) + " " +
		strconv.FormatUint(uint64(rr.OrigTtl), 10) + " " +
		formatRRSIGTime(rr.Expiration) + " " +
		formatRRSIGTime(rr.Inception) + " " +
		strconv.FormatUint(uint64(rr.KeyTag), 10) + " " +
		rr.SignerName.String() + " " + Base64Encode(rr.Signature)
}

// SIG is RRSIG's RFC 2535 predecessor, identical on the wire.
type SIG struct {
	Hdr         RRHeader
	TypeCovered Type
	Algorithm   uint8
	Labels      uint8
	OrigTtl     uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  Name
	Signature   []byte
}

func (rr *SIG) Header() *RRHeader { return &rr.Hdr }
func (rr *SIG) asRRSIG() *RRSIG {
	return &RRSIG{Hdr: rr.Hdr, TypeCovered: rr.TypeCovered, Algorithm: rr.Algorithm, Labels: rr.Labels,
		OrigTtl: rr.OrigTtl, Expiration: rr.Expiration, Inception: rr.Inception, KeyTag: rr.KeyTag,
		SignerName: rr.SignerName, Signature: rr.Signature}
}
func (rr *SIG) packRData(w *Buffer, c *Compressor) error { return rr.asRRSIG().packRData(w, c) }
func (rr *SIG) unpackRData(r *Reader, rdlength int) error {
	d := &RRSIG{}
	if err := d.unpackRData(r, rdlength); err != nil {
		return err
	}
	*rr = SIG{Hdr: rr.Hdr, TypeCovered: d.TypeCovered, Algorithm: d.Algorithm, Labels: d.Labels,
		OrigTtl: d.OrigTtl, Expiration: d.Expiration, Inception: d.Inception, KeyTag: d.KeyTag,
		SignerName: d.SignerName, Signature: d.Signature}
	return nil
}
func (rr *SIG) parseRData(toks *tokenCursor, origin Name) error {
	d := &RRSIG{}
	if err := d.parseRData(toks, origin); err != nil {
		return err
	}
	*rr = SIG{Hdr: rr.Hdr, TypeCovered: d.TypeCovered, Algorithm: d.Algorithm, Labels: d.Labels,
		OrigTtl: d.OrigTtl, Expiration: d.Expiration, Inception: d.Inception, KeyTag: d.KeyTag,
		SignerName: d.SignerName, Signature: d.Signature}
	return nil
}
func (rr *SIG) presentRData() string { return rr.asRRSIG().presentRData() }

// NSEC proves denial of existence between two owner names (RFC 4034 §4).
type NSEC struct {
	Hdr        RRHeader
	NextDomain Name
	TypeBitmap []Type
}

func (rr *NSEC) Header() *RRHeader { return &rr.Hdr }

func (rr *NSEC) packRData(w *Buffer, c *Compressor) error {
	// The next-domain name is never compressed (RFC 4034 §4.1.3 via 6840 §5.3).
	if err := (*Compressor)(nil).Emit(w, rr.NextDomain); err != nil {
		return err
	}
	return PackTypeBitmap(w, rr.TypeBitmap)
}

func (rr *NSEC) unpackRData(r *Reader, rdlength int) error {
	next, err := r.ReadNameNoCompression()
	if err != nil {
		return err
	}
	types, err := UnpackTypeBitmap(r)
	if err != nil {
		return err
	}
	rr.NextDomain, rr.TypeBitmap = next, types
	return nil
}

func (rr *NSEC) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	nextTok, err := toks.requireNext("next domain")
	if err != nil {
		return err
	}
	next, err := ParseName(nextTok, origin)
	if err != nil {
		return err
	}
	var types []Type
	for {
		tok, ok := toks.next()
		if !ok {
			break
		}
		t, err := ParseType(tok)
		if err != nil {
			return err
		}
		types = append(types, t)
	}
	rr.NextDomain, rr.TypeBitmap = next, types
	return nil
}

func (rr *NSEC) presentRData() string {
	s := rr.NextDomain.String()
	for _, t := range rr.TypeBitmap {
		s += " " + t.String()
	}
	return s
}

// NXT is NSEC's RFC 2535 predecessor (obsoleted by RFC 3755), kept for
// completeness when decoding legacy zone data.
type NXT struct {
	Hdr        RRHeader
	NextDomain Name
	TypeBitmap []Type
}

func (rr *NXT) Header() *RRHeader { return &rr.Hdr }
func (rr *NXT) asNSEC() *NSEC     { return &NSEC{Hdr: rr.Hdr, NextDomain: rr.NextDomain, TypeBitmap: rr.TypeBitmap} }
func (rr *NXT) packRData(w *Buffer, c *Compressor) error { return rr.asNSEC().packRData(w, c) }
func (rr *NXT) unpackRData(r *Reader, rdlength int) error {
	d := &NSEC{}
	if err := d.unpackRData(r, rdlength); err != nil {
		return err
	}
	rr.NextDomain, rr.TypeBitmap = d.NextDomain, d.TypeBitmap
	return nil
}
func (rr *NXT) parseRData(toks *tokenCursor, origin Name) error {
	d := &NSEC{}
	if err := d.parseRData(toks, origin); err != nil {
		return err
	}
	rr.NextDomain, rr.TypeBitmap = d.NextDomain, d.TypeBitmap
	return nil
}
func (rr *NXT) presentRData() string { return rr.asNSEC().presentRData() }
