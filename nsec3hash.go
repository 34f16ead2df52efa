package dns

import (
	"crypto/sha1"
	"strings"
)

// NSEC3 hash algorithm identifiers (RFC 5155 §3.1).
const NSEC3HashSHA1 uint8 = 1

// HashName computes the iterated RFC 5155 §5 hash of name: lower-case the
// wire form, hash it with salt appended, then re-hash the digest with salt
// appended iterations more times. The result is returned as raw bytes,
// ready for NSEC3.NextHashed or base32hex presentation.
func HashName(name Name, algo uint8, iterations uint16, salt []byte) ([]byte, error) {
	if algo != NSEC3HashSHA1 {
		return nil, newSemanticError("nsec3", "unsupported NSEC3 hash algorithm")
	}
	wire := canonicalWireName(name)
	sum := sha1.Sum(append(wire, salt...))
	digest := sum[:]
	for i := uint16(0); i < iterations; i++ {
		sum := sha1.Sum(append(digest, salt...))
		digest = sum[:]
	}
	return digest, nil
}

// canonicalWireName renders name's labels in lower-case wire form (length
// byte + raw bytes per label, terminated by the zero length octet), the
// byte string RFC 5155 hashing operates over.
func canonicalWireName(name Name) []byte {
	var buf []byte
	for _, l := range name.Labels() {
		buf = append(buf, byte(len(l)))
		buf = append(buf, []byte(strings.ToLower(l))...)
	}
	return append(buf, 0)
}
