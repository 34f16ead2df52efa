package dns

import (
	"strconv"
	"strings"
)

// QuoteMode controls how CharacterString.Present quotes its payload.
type QuoteMode uint8

const (
	// QuoteDynamic quotes only when the payload needs it (contains a
	// space, a tab, a double quote, a semicolon, a parenthesis, or is empty).
	QuoteDynamic QuoteMode = iota
	// QuoteAlways always wraps the payload in double quotes (used by TXT).
	QuoteAlways
	// QuoteNever never quotes (used for name labels presented standalone).
	QuoteNever
)

// CharacterString is a binary blob of 0..255 octets (RFC 1035 §3.3), the
// building block of TXT/HINFO/NAPTR string fields.
type CharacterString []byte

// Len reports the wire length of the length-prefixed field.
func (cs CharacterString) Len() int { return 1 + len(cs) }

// Pack writes the length-prefixed string to w.
func (cs CharacterString) Pack(w *Buffer) error {
	if len(cs) > 255 {
		return newParseError("character-string", "exceeds 255 octets", -1)
	}
	if err := w.WriteU8(uint8(len(cs))); err != nil {
		return err
	}
	return w.WriteBytes(cs)
}

// UnpackCharacterString reads one length-prefixed string from r.
func UnpackCharacterString(r *Reader) (CharacterString, error) {
	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}
	b, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

func needsQuoting(b []byte) bool {
	if len(b) == 0 {
		return true
	}
	for _, c := range b {
		if c == ' ' || c == '\t' || c == '"' || c == ';' || c == '(' || c == ')' {
			return true
		}
	}
	return false
}

// Present renders cs per mode, escaping '"' and '\\' as \X and any other
// non-printable byte as \DDD.
func (cs CharacterString) Present(mode QuoteMode) string {
	quote := mode == QuoteAlways || (mode == QuoteDynamic && needsQuoting(cs))
	var sb strings.Builder
	if quote {
		sb.WriteByte('"')
	}
	for _, b := range cs {
		switch {
		case b == '"' || b == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(b)
		case b < 0x20 || b >= 0x7f:
			sb.WriteByte('\\')
			sb.WriteString(pad3(strconv.Itoa(int(b))))
		default:
			sb.WriteByte(b)
		}
	}
	if quote {
		sb.WriteByte('"')
	}
	return sb.String()
}

// ParseCharacterString parses a single presentation token already split out
// by the lexer — which has itself resolved \X and \DDD escapes and quote
// boundaries — back into raw bytes. The lexer hands us the unescaped
// payload directly, so this is effectively an identity conversion kept for
// symmetry with Present/Pack.
func ParseCharacterString(token string) CharacterString {
	return CharacterString(token)
}
