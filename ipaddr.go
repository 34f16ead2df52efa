package dns

import (
	"net/netip"

	"go4.org/netipx"
)

// Address4 is an IPv4 address, the §6 Address4 collaborator interface.
type Address4 struct{ addr netip.Addr }

// Address4FromBytes builds an Address4 from its 4 network-order octets.
func Address4FromBytes(b [4]byte) Address4 { return Address4{addr: netip.AddrFrom4(b)} }

// ParseAddress4 parses an IPv4 dotted-decimal literal.
func ParseAddress4(s string) (Address4, error) {
	a, err := netip.ParseAddr(s)
	if err != nil || !a.Is4() {
		return Address4{}, newParseError("address", "invalid IPv4 literal "+s, -1)
	}
	return Address4{addr: a}, nil
}

func (a Address4) Bytes() [4]byte { return a.addr.As4() }
func (a Address4) Bits() int      { return 32 }
func (a Address4) String() string { return a.addr.String() }
func (a Address4) IsIPv4() bool   { return true }

// Address6 is an IPv6 address, the §6 Address6 collaborator interface.
type Address6 struct{ addr netip.Addr }

// Address6FromBytes builds an Address6 from its 16 network-order octets.
func Address6FromBytes(b [16]byte) Address6 { return Address6{addr: netip.AddrFrom16(b)} }

// ParseAddress6 parses an IPv6 literal.
func ParseAddress6(s string) (Address6, error) {
	a, err := netip.ParseAddr(s)
	if err != nil {
		return Address6{}, newParseError("address", "invalid IPv6 literal "+s, -1)
	}
	return Address6{addr: a}, nil
}

func (a Address6) Bytes() [16]byte { return a.addr.As16() }
func (a Address6) Bits() int       { return 128 }
func (a Address6) String() string  { return a.addr.String() }
func (a Address6) IsIPv4() bool    { return false }

// Prefix pairs an address with a prefix length (§6), used by EDNS
// CLIENT-SUBNET and the APL record. go4.org/netipx supplies the
// last-address arithmetic net/netip doesn't expose directly — grounded on
// XTLS-Xray-core's go.mod, which depends on go4.org/netipx for exactly
// this kind of prefix-range bookkeeping in its routing tables.
type Prefix struct{ p netip.Prefix }

// ParsePrefix parses "addr/length" presentation form.
func ParsePrefix(s string) (Prefix, error) {
	p, err := netip.ParsePrefix(s)
	if err != nil {
		return Prefix{}, newParseError("prefix", "invalid prefix "+s, -1)
	}
	return Prefix{p: p}, nil
}

// NewPrefix builds a Prefix directly from an address and bit length,
// validating length <= addr's bit width.
func NewPrefix(addr netip.Addr, length int) (Prefix, error) {
	if length < 0 || length > addr.BitLen() {
		return Prefix{}, newSemanticError("prefix", "prefix length exceeds address width")
	}
	return Prefix{p: netip.PrefixFrom(addr, length)}, nil
}

func (p Prefix) IP() netip.Addr { return p.p.Addr() }
func (p Prefix) Length() int    { return p.p.Bits() }
func (p Prefix) String() string { return p.p.String() }

// LastAddr returns the last address covered by p.
func (p Prefix) LastAddr() netip.Addr { return netipx.PrefixLastIP(p.p) }
