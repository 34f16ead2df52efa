package dns

import (
	"errors"
	"strconv"
)

// ErrScanEOF is returned by Scanner.ScanRR once the input is exhausted.
var ErrScanEOF = errors.New("dns: no more records")

// ScanState carries the "started" owner/TTL/class used to fill in fields
// elided by a zonefile entry that continues a prior one (§4.4). Callers
// typically seed Ttl/Class from a $TTL/$ORIGIN-equivalent default before
// the first call.
type ScanState struct {
	Owner     Name
	HaveOwner bool
	Ttl       uint32
	HaveTtl   bool
	Class     Class
	HaveClass bool
}

// ScannedRR is one zonefile entry: a header plus its RDATA tokens, not yet
// interpreted by a specific record type's parser.
type ScannedRR struct {
	Owner Name
	Ttl   uint32
	Class Class
	Type  Type
	RData []string
}

// Scanner consumes Lexer tokens to produce ScannedRR values, per §4.4:
// it accepts both RFC 1035 field orderings (domain [ttl] [class] type and
// domain [class] [ttl] type), tracks balanced parentheses across RDATA
// lines, and strips comments.
type Scanner struct {
	lex        *Lexer
	parenDepth int
	pending    *Token
}

// NewScanner returns a scanner over data.
func NewScanner(data []byte) *Scanner {
	return &Scanner{lex: NewLexer(data)}
}

func (s *Scanner) unread(t Token) { s.pending = &t }

// rawNext returns the next token with comments dropped and parenthesis
// nesting collapsed: a newline inside an open paren is swallowed (treated
// as a field separator), and a close paren without a matching open is a
// parse error.
func (s *Scanner) rawNext() (Token, error) {
	if s.pending != nil {
		t := *s.pending
		s.pending = nil
		return t, nil
	}
	for {
		t, err := s.lex.Next()
		if err != nil {
			return Token{}, err
		}
		switch t.Kind {
		case TokComment:
			continue
		case TokOpenParen:
			s.parenDepth++
			continue
		case TokCloseParen:
			if s.parenDepth == 0 {
				return Token{}, newParseError("scan", "unbalanced ')'", t.Col)
			}
			s.parenDepth--
			continue
		case TokNewline:
			if s.parenDepth > 0 {
				continue
			}
			return t, nil
		default:
			return t, nil
		}
	}
}

func parseUint32Field(s string) (uint32, bool) {
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}

// ScanRR scans one zonefile entry, threading state across calls for
// continuation lines (§4.4). Returns ErrScanEOF once input is exhausted.
func (s *Scanner) ScanRR(state *ScanState, origin Name) (*ScannedRR, error) {
	for {
		t, err := s.rawNext()
		if err != nil {
			return nil, err
		}
		switch t.Kind {
		case TokEOF:
			return nil, ErrScanEOF
		case TokNewline:
			continue
		case TokBlank:
			nt, err := s.rawNext()
			if err != nil {
				return nil, err
			}
			if nt.Kind == TokNewline {
				continue
			}
			if nt.Kind == TokEOF {
				return nil, ErrScanEOF
			}
			if !state.HaveOwner {
				return nil, newParseError("scan", "missing owner name", nt.Col)
			}
			return s.scanHeaderRest(state.Owner, nt, state, origin)
		case TokString:
			owner, err := ParseName(t.Text, origin)
			if err != nil {
				return nil, err
			}
			nt, err := s.rawNext()
			if err != nil {
				return nil, err
			}
			if nt.Kind == TokBlank {
				nt, err = s.rawNext()
				if err != nil {
					return nil, err
				}
			}
			return s.scanHeaderRest(owner, nt, state, origin)
		default:
			return nil, newParseError("scan", "unexpected token", t.Col)
		}
	}
}

func (s *Scanner) scanHeaderRest(owner Name, first Token, state *ScanState, origin Name) (*ScannedRR, error) {
	ttl, haveTtl := state.Ttl, state.HaveTtl
	class, haveClass := state.Class, state.HaveClass
	var typ Type
	haveType := false
	tok := first

	for i := 0; i < 3; i++ {
		if tok.Kind != TokString {
			return nil, newParseError("scan", "expected header field", tok.Col)
		}
		switch {
		case !haveType:
			if v, ok := parseUint32Field(tok.Text); ok {
				ttl, haveTtl = v, true
			} else if c, err := ParseClass(tok.Text); err == nil {
				class, haveClass = c, true
			} else if ty, err := ParseType(tok.Text); err == nil {
				typ, haveType = ty, true
			} else {
				return nil, newParseError("scan", "unrecognised header field "+tok.Text, tok.Col)
			}
		}
		if haveType {
			break
		}
		nt, err := s.rawNext()
		if err != nil {
			return nil, err
		}
		if nt.Kind == TokBlank {
			nt, err = s.rawNext()
			if err != nil {
				return nil, err
			}
		}
		tok = nt
	}
	if !haveType {
		return nil, newParseError("scan", "missing record type", -1)
	}
	if !haveTtl {
		return nil, newParseError("scan", "missing TTL", -1)
	}
	if !haveClass {
		return nil, newParseError("scan", "missing class", -1)
	}

	var rdata []string
	for {
		t, err := s.rawNext()
		if err != nil {
			return nil, err
		}
		if t.Kind == TokNewline || t.Kind == TokEOF {
			break
		}
		if t.Kind == TokBlank {
			continue
		}
		if t.Kind == TokString {
			rdata = append(rdata, t.Text)
		}
	}
	if s.parenDepth != 0 {
		return nil, newParseError("scan", "unclosed '('", -1)
	}

	state.Owner, state.HaveOwner = owner, true
	state.Ttl, state.HaveTtl = ttl, true
	state.Class, state.HaveClass = class, true

	return &ScannedRR{Owner: owner, Ttl: ttl, Class: class, Type: typ, RData: rdata}, nil
}

// tokenCursor is a forward-only cursor over a ScannedRR's RDATA tokens,
// used by each record variant's parseRData.
type tokenCursor struct {
	toks []string
	i    int
}

func newTokenCursor(toks []string) *tokenCursor {
	return &tokenCursor{toks: toks}
}

func (c *tokenCursor) next() (string, bool) {
	if c.i >= len(c.toks) {
		return "", false
	}
	t := c.toks[c.i]
	c.i++
	return t, true
}

func (c *tokenCursor) rest() []string { return c.toks[c.i:] }

func (c *tokenCursor) remaining() int { return len(c.toks) - c.i }

func (c *tokenCursor) requireNext(field string) (string, error) {
	t, ok := c.next()
	if !ok {
		return "", newParseError("rdata", "missing "+field, -1)
	}
	return t, nil
}
