package dns

import "strconv"

// Type is a 16-bit DNS RR type code.
type Type uint16

// Class is a 16-bit DNS class code.
type Class uint16

// Opcode is a 4-bit DNS message opcode.
type Opcode uint8

// Rcode is a (possibly extended, via EDNS) DNS response code.
type Rcode uint16

// Record type codes, per RFC 1035 and successors. Grounded on the
// teacher's Rr_str map in msg.go, extended with the types this spec names
// that the teacher's retrieved slice predates (DNAME, DS, RRSIG, NSEC3,
// TSIG, SSHFP, ZONEMD, IPSECKEY, ...).
const (
	TypeNone  Type = 0
	TypeA     Type = 1
	TypeNS    Type = 2
	TypeMD    Type = 3
	TypeMF    Type = 4
	TypeCNAME Type = 5
	TypeSOA   Type = 6
	TypeMB    Type = 7
	TypeMG    Type = 8
	TypeMR    Type = 9
	TypeNULL  Type = 10
	TypeWKS   Type = 11
	TypePTR   Type = 12
	TypeHINFO Type = 13
	TypeMINFO Type = 14
	TypeMX    Type = 15
	TypeTXT   Type = 16
	TypeRP    Type = 17
	TypeAFSDB Type = 18
	TypeX25   Type = 19
	TypeISDN  Type = 20
	TypeRT    Type = 21
	TypeNSAP    Type = 22
	TypeNSAPPTR Type = 23
	TypeSIG   Type = 24
	TypeKEY   Type = 25
	TypePX    Type = 26
	TypeGPOS  Type = 27
	TypeAAAA  Type = 28
	TypeLOC   Type = 29
	TypeNXT   Type = 30
	TypeSRV   Type = 33
	TypeNAPTR Type = 35
	TypeKX    Type = 36
	TypeCERT  Type = 37
	TypeDNAME Type = 39
	TypeOPT   Type = 41
	TypeDS         Type = 43
	TypeSSHFP      Type = 44
	TypeIPSECKEY   Type = 45
	TypeRRSIG      Type = 46
	TypeNSEC       Type = 47
	TypeDNSKEY     Type = 48
	TypeDHCID      Type = 49
	TypeNSEC3      Type = 50
	TypeNSEC3PARAM Type = 51
	TypeTLSA  Type = 52
	TypeSMIMEA Type = 53
	TypeHIP   Type = 55
	TypeOPENPGPKEY Type = 61
	TypeZONEMD Type = 63
	TypeSVCB  Type = 64
	TypeHTTPS Type = 65
	TypeSPF   Type = 99
	TypeAPL   Type = 42
	TypeTKEY  Type = 249
	TypeTSIG  Type = 250
	TypeAXFR  Type = 252
	TypeMAILB Type = 253
	TypeMAILA Type = 254
	TypeANY   Type = 255
	TypeURI   Type = 256
	TypeTA    Type = 32768
	TypeDLV   Type = 32769
)

var typeToString = map[Type]string{
	TypeA: "A", TypeNS: "NS", TypeMD: "MD", TypeMF: "MF", TypeCNAME: "CNAME",
	TypeSOA: "SOA", TypeMB: "MB", TypeMG: "MG", TypeMR: "MR", TypeNULL: "NULL",
	TypeWKS: "WKS", TypePTR: "PTR", TypeHINFO: "HINFO", TypeMINFO: "MINFO",
	TypeMX: "MX", TypeTXT: "TXT", TypeRP: "RP", TypeAFSDB: "AFSDB",
	TypeX25: "X25", TypeISDN: "ISDN", TypeRT: "RT", TypeNSAP: "NSAP",
	TypeNSAPPTR: "NSAP-PTR", TypeSIG: "SIG", TypeKEY: "KEY", TypePX: "PX",
	TypeGPOS: "GPOS", TypeAAAA: "AAAA", TypeLOC: "LOC", TypeNXT: "NXT",
	TypeSRV: "SRV", TypeNAPTR: "NAPTR", TypeKX: "KX", TypeCERT: "CERT",
	TypeDNAME: "DNAME", TypeOPT: "OPT", TypeAPL: "APL", TypeDS: "DS",
	TypeSSHFP: "SSHFP", TypeIPSECKEY: "IPSECKEY", TypeRRSIG: "RRSIG",
	TypeNSEC: "NSEC", TypeDNSKEY: "DNSKEY", TypeDHCID: "DHCID",
	TypeNSEC3: "NSEC3", TypeNSEC3PARAM: "NSEC3PARAM", TypeTLSA: "TLSA",
	TypeSMIMEA: "SMIMEA", TypeHIP: "HIP", TypeOPENPGPKEY: "OPENPGPKEY",
	TypeZONEMD: "ZONEMD", TypeSVCB: "SVCB", TypeHTTPS: "HTTPS",
	TypeSPF: "SPF", TypeTKEY: "TKEY", TypeTSIG: "TSIG", TypeAXFR: "AXFR",
	TypeMAILB: "MAILB", TypeMAILA: "MAILA", TypeANY: "ANY", TypeURI: "URI",
	TypeTA: "TA", TypeDLV: "DLV",
}

var stringToType = reverseTypeMap(typeToString)

func reverseTypeMap(m map[Type]string) map[string]Type {
	out := make(map[string]Type, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

// String renders the type's mnemonic, or "TYPEnnn" for unrecognised codes
// per RFC 3597 §5.
func (t Type) String() string {
	if s, ok := typeToString[t]; ok {
		return s
	}
	return "TYPE" + strconv.Itoa(int(t))
}

// ParseType parses a type mnemonic or an RFC 3597 TYPEnnn fallback form.
func ParseType(s string) (Type, error) {
	if t, ok := stringToType[s]; ok {
		return t, nil
	}
	if len(s) > 4 && s[:4] == "TYPE" {
		n, err := strconv.Atoi(s[4:])
		if err == nil && n >= 0 && n <= 0xffff {
			return Type(n), nil
		}
	}
	return 0, newParseError("type", "unknown record type "+s, -1)
}

// Class codes.
const (
	ClassINET   Class = 1
	ClassCSNET  Class = 2
	ClassCHAOS  Class = 3
	ClassHESIOD Class = 4
	ClassNONE   Class = 254
	ClassANY    Class = 255
)

var classToString = map[Class]string{
	ClassINET: "IN", ClassCSNET: "CS", ClassCHAOS: "CH", ClassHESIOD: "HS",
	ClassNONE: "NONE", ClassANY: "ANY",
}
var stringToClass = reverseClassMap(classToString)

func reverseClassMap(m map[Class]string) map[string]Class {
	out := make(map[string]Class, len(m))
	for k, v := range m {
		out[v] = k
	}
	return out
}

func (c Class) String() string {
	if s, ok := classToString[c]; ok {
		return s
	}
	return "CLASS" + strconv.Itoa(int(c))
}

// ParseClass parses a class mnemonic or an RFC 3597 CLASSnnn fallback form.
func ParseClass(s string) (Class, error) {
	if c, ok := stringToClass[s]; ok {
		return c, nil
	}
	if len(s) > 5 && s[:5] == "CLASS" {
		n, err := strconv.Atoi(s[5:])
		if err == nil && n >= 0 && n <= 0xffff {
			return Class(n), nil
		}
	}
	return 0, newParseError("class", "unknown class "+s, -1)
}

// Opcodes, per RFC 1035 §4.1.1 and RFC 2136.
const (
	OpcodeQuery  Opcode = 0
	OpcodeIQuery Opcode = 1
	OpcodeStatus Opcode = 2
	OpcodeNotify Opcode = 4
	OpcodeUpdate Opcode = 5
)

var opcodeToString = map[Opcode]string{
	OpcodeQuery: "QUERY", OpcodeIQuery: "IQUERY", OpcodeStatus: "STATUS",
	OpcodeNotify: "NOTIFY", OpcodeUpdate: "UPDATE",
}

func (o Opcode) String() string {
	if s, ok := opcodeToString[o]; ok {
		return s
	}
	return "OPCODE" + strconv.Itoa(int(o))
}

// Response codes, per RFC 1035 §4.1.1 and extensions. Values 12..4095 are
// the extended-rcode range carried by EDNS(0).
const (
	RcodeSuccess        Rcode = 0
	RcodeFormatError    Rcode = 1
	RcodeServerFailure  Rcode = 2
	RcodeNameError      Rcode = 3
	RcodeNotImplemented Rcode = 4
	RcodeRefused        Rcode = 5
	RcodeYXDomain       Rcode = 6
	RcodeYXRrset        Rcode = 7
	RcodeNXRrset        Rcode = 8
	RcodeNotAuth        Rcode = 9
	RcodeNotZone        Rcode = 10
	RcodeBadSig         Rcode = 16
	RcodeBadKey         Rcode = 17
	RcodeBadTime        Rcode = 18
	RcodeBadMode        Rcode = 19
	RcodeBadName        Rcode = 20
	RcodeBadAlg         Rcode = 21
	RcodeBadTrunc       Rcode = 22
)

var rcodeToString = map[Rcode]string{
	RcodeSuccess: "NOERROR", RcodeFormatError: "FORMERR",
	RcodeServerFailure: "SERVFAIL", RcodeNameError: "NXDOMAIN",
	RcodeNotImplemented: "NOTIMPL", RcodeRefused: "REFUSED",
	RcodeYXDomain: "YXDOMAIN", RcodeYXRrset: "YXRRSET", RcodeNXRrset: "NXRRSET",
	RcodeNotAuth: "NOTAUTH", RcodeNotZone: "NOTZONE", RcodeBadSig: "BADSIG",
	RcodeBadKey: "BADKEY", RcodeBadTime: "BADTIME", RcodeBadMode: "BADMODE",
	RcodeBadName: "BADNAME", RcodeBadAlg: "BADALG", RcodeBadTrunc: "BADTRUNC",
}

func (r Rcode) String() string {
	if s, ok := rcodeToString[r]; ok {
		return s
	}
	return "RCODE" + strconv.Itoa(int(r))
}
