package dns

import (
	"strconv"
	"strings"
)

// SSHFP publishes an SSH public key fingerprint (RFC 4255).
type SSHFP struct {
	Hdr         RRHeader
	Algorithm   uint8
	FPType      uint8
	Fingerprint []byte
}

func (rr *SSHFP) Header() *RRHeader { return &rr.Hdr }

func (rr *SSHFP) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU8(rr.Algorithm); err != nil {
		return err
	}
	if err := w.WriteU8(rr.FPType); err != nil {
		return err
	}
	return w.WriteBytes(rr.Fingerprint)
}

func (rr *SSHFP) unpackRData(r *Reader, rdlength int) error {
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	fptype, err := r.ReadU8()
	if err != nil {
		return err
	}
	fp, err := r.ReadBytes(rdlength - 2)
	if err != nil {
		return err
	}
	rr.Algorithm, rr.FPType = algo, fptype
	rr.Fingerprint = append([]byte(nil), fp...)
	return nil
}

func (rr *SSHFP) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	algoTok, err := toks.requireNext("algorithm")
	if err != nil {
		return err
	}
	fptypeTok, err := toks.requireNext("fingerprint type")
	if err != nil {
		return err
	}
	fpTok, err := parseHexRemainder(toks)
	if err != nil {
		return err
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid SSHFP algorithm", -1)
	}
	fptype, err := strconv.ParseUint(fptypeTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid SSHFP fingerprint type", -1)
	}
	rr.Algorithm, rr.FPType, rr.Fingerprint = uint8(algo), uint8(fptype), fpTok
	return nil
}

func (rr *SSHFP) presentRData() string {
	return strconv.FormatUint(uint64(rr.Algorithm), 10) + " " +
		strconv.FormatUint(uint64(rr.FPType), 10) + " " + HexEncode(rr.Fingerprint)
}

// DHCID carries a DHCP client identity association (RFC 4701).
type DHCID struct {
	Hdr  RRHeader
	Data []byte
}

func (rr *DHCID) Header() *RRHeader { return &rr.Hdr }
func (rr *DHCID) packRData(w *Buffer, c *Compressor) error { return w.WriteBytes(rr.Data) }
func (rr *DHCID) unpackRData(r *Reader, rdlength int) error {
	b, err := r.ReadBytes(rdlength)
	if err != nil {
		return err
	}
	rr.Data = append([]byte(nil), b...)
	return nil
}
func (rr *DHCID) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		rr.Data = data
		return nil
	}
	tok, err := toks.requireNext("base64 data")
	if err != nil {
		return err
	}
	b, err := Base64Decode(tok + strings.Join(toks.rest(), ""))
	if err != nil {
		return err
	}
	rr.Data = b
	return nil
}
func (rr *DHCID) presentRData() string { return Base64Encode(rr.Data) }

// ZONEMD carries a whole-zone message digest (RFC 8976).
type ZONEMD struct {
	Hdr        RRHeader
	Serial     uint32
	Scheme     uint8
	HashAlgo   uint8
	Digest     []byte
}

func (rr *ZONEMD) Header() *RRHeader { return &rr.Hdr }

func (rr *ZONEMD) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU32(rr.Serial); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Scheme); err != nil {
		return err
	}
	if err := w.WriteU8(rr.HashAlgo); err != nil {
		return err
	}
	return w.WriteBytes(rr.Digest)
}

func (rr *ZONEMD) unpackRData(r *Reader, rdlength int) error {
	serial, err := r.ReadU32()
	if err != nil {
		return err
	}
	scheme, err := r.ReadU8()
	if err != nil {
		return err
	}
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	digest, err := r.ReadBytes(rdlength - 6)
	if err != nil {
		return err
	}
	rr.Serial, rr.Scheme, rr.HashAlgo = serial, scheme, algo
	rr.Digest = append([]byte(nil), digest...)
	return nil
}

func (rr *ZONEMD) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	serialTok, err := toks.requireNext("serial")
	if err != nil {
		return err
	}
	schemeTok, err := toks.requireNext("scheme")
	if err != nil {
		return err
	}
	algoTok, err := toks.requireNext("hash algorithm")
	if err != nil {
		return err
	}
	digest, err := parseHexRemainder(toks)
	if err != nil {
		return err
	}
	serial, err := strconv.ParseUint(serialTok, 10, 32)
	if err != nil {
		return newParseError("rdata", "invalid ZONEMD serial", -1)
	}
	scheme, err := strconv.ParseUint(schemeTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid ZONEMD scheme", -1)
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid ZONEMD hash algorithm", -1)
	}
	rr.Serial, rr.Scheme, rr.HashAlgo = uint32(serial), uint8(scheme), uint8(algo)
	rr.Digest = digest
	return nil
}

func (rr *ZONEMD) presentRData() string {
	return strconv.FormatUint(uint64(rr.Serial), 10) + " " +
		strconv.FormatUint(uint64(rr.Scheme), 10) + " " +
		strconv.FormatUint(uint64(rr.HashAlgo), 10) + " " + HexEncode(rr.Digest)
}

// IPSECKEY publishes IPsec keying material, with a gateway that may be
// none/an IPv4 address/an IPv6 address/a domain name depending on
// GatewayType (RFC 4025 §2.3-2.5).
type IPSECKEY struct {
	Hdr         RRHeader
	Precedence  uint8
	GatewayType uint8
	Algorithm   uint8
	GatewayIP4  Address4
	GatewayIP6  Address6
	GatewayName Name
	PublicKey   []byte
}

const (
	ipsecGatewayNone   = 0
	ipsecGatewayIP4    = 1
	ipsecGatewayIP6    = 2
	ipsecGatewayDomain = 3
)

func (rr *IPSECKEY) Header() *RRHeader { return &rr.Hdr }

func (rr *IPSECKEY) packRData(w *Buffer, c *Compressor) error {
	if err := w.WriteU8(rr.Precedence); err != nil {
		return err
	}
	if err := w.WriteU8(rr.GatewayType); err != nil {
		return err
	}
	if err := w.WriteU8(rr.Algorithm); err != nil {
		return err
	}
	switch rr.GatewayType {
	case ipsecGatewayIP4:
		b := rr.GatewayIP4.Bytes()
		if err := w.WriteBytes(b[:]); err != nil {
			return err
		}
	case ipsecGatewayIP6:
		b := rr.GatewayIP6.Bytes()
		if err := w.WriteBytes(b[:]); err != nil {
			return err
		}
	case ipsecGatewayDomain:
		// The gateway name is never compressed (RFC 4025 §2.4).
		if err := (*Compressor)(nil).Emit(w, rr.GatewayName); err != nil {
			return err
		}
	}
	return w.WriteBytes(rr.PublicKey)
}

func (rr *IPSECKEY) unpackRData(r *Reader, rdlength int) error {
	start := r.Pos()
	prec, err := r.ReadU8()
	if err != nil {
		return err
	}
	gwtype, err := r.ReadU8()
	if err != nil {
		return err
	}
	algo, err := r.ReadU8()
	if err != nil {
		return err
	}
	rr.Precedence, rr.GatewayType, rr.Algorithm = prec, gwtype, algo
	switch gwtype {
	case ipsecGatewayIP4:
		b, err := r.ReadBytes(4)
		if err != nil {
			return err
		}
		rr.GatewayIP4 = Address4FromBytes([4]byte(b))
	case ipsecGatewayIP6:
		b, err := r.ReadBytes(16)
		if err != nil {
			return err
		}
		rr.GatewayIP6 = Address6FromBytes([16]byte(b))
	case ipsecGatewayDomain:
		name, err := r.ReadNameNoCompression()
		if err != nil {
			return err
		}
		rr.GatewayName = name
	}
	consumed := r.Pos() - start
	key, err := r.ReadBytes(rdlength - consumed)
	if err != nil {
		return err
	}
	rr.PublicKey = append([]byte(nil), key...)
	return nil
}

func (rr *IPSECKEY) parseRData(toks *tokenCursor, origin Name) error {
	if data, handled, err := tryParseGenericRData(toks); err != nil {
		return err
	} else if handled {
		return rr.unpackRData(NewReader(data), len(data))
	}
	precTok, err := toks.requireNext("precedence")
	if err != nil {
		return err
	}
	gwtypeTok, err := toks.requireNext("gateway type")
	if err != nil {
		return err
	}
	algoTok, err := toks.requireNext("algorithm")
	if err != nil {
		return err
	}
	gwTok, err := toks.requireNext("gateway")
	if err != nil {
		return err
	}
	keyTok, err := toks.requireNext("public key")
	if err != nil {
		return err
	}
	prec, err := strconv.ParseUint(precTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid IPSECKEY precedence", -1)
	}
	gwtype, err := strconv.ParseUint(gwtypeTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid IPSECKEY gateway type", -1)
	}
	algo, err := strconv.ParseUint(algoTok, 10, 8)
	if err != nil {
		return newParseError("rdata", "invalid IPSECKEY algorithm", -1)
	}
	rr.Precedence, rr.GatewayType, rr.Algorithm = uint8(prec), uint8(gwtype), uint8(algo)
	switch rr.GatewayType {
	case ipsecGatewayIP4:
		addr, err := ParseAddress4(gwTok)
		if err != nil {
			return err
		}
		rr.GatewayIP4 = addr
	case ipsecGatewayIP6:
		addr, err := ParseAddress6(gwTok)
		if err != nil {
			return err
		}
		rr.GatewayIP6 = addr
	case ipsecGatewayDomain:
		name, err := ParseName(gwTok, origin)
		if err != nil {
			return err
		}
		rr.GatewayName = name
	}
	key, err := Base64Decode(keyTok)
	if err != nil {
		return err
	}
	rr.PublicKey = key
	return nil
}

func (rr *IPSECKEY) presentRData() string {
	gw := "."
	switch rr.GatewayType {
	case ipsecGatewayIP4:
		gw = rr.GatewayIP4.String()
	case ipsecGatewayIP6:
		gw = rr.GatewayIP6.String()
	case ipsecGatewayDomain:
		gw = rr.GatewayName.String()
	}
	return strconv.FormatUint(uint64(rr.Precedence), 10) + " " +
		strconv.FormatUint(uint64(rr.GatewayType), 10) + " " +
		strconv.FormatUint(uint64(rr.Algorithm), 10) + " " + gw + " " + Base64Encode(rr.PublicKey)
}
