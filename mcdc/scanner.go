package mcdc

import "fmt"

// SyntaxError describes why an expression cannot be compiled.
type SyntaxError struct {
	Pos int // byte offset in the source
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("column %d: %s", e.Pos+1, e.Msg)
}

// Scanner splits the source of a boolean expression into tokens.
//
// The conditions are the letters a to z, the uppercase letters being their
// negation. The operators are:
//
//	OR   '|', '||', '+'
//	XOR  '^'
//	AND  '&', '&&', '*', or simply writing the operands next to each other
//	NOT  '!', '~'
//
// Parentheses group subexpressions. Whitespace is ignored.
type Scanner struct {
	src string
	pos int
}

// NewScanner returns a scanner positioned at the start of src.
func NewScanner(src string) *Scanner {
	return &Scanner{src: src}
}

// Next returns the next token, or END at the end of the source.
func (s *Scanner) Next() (Attr, error) {
	for s.pos < len(s.src) && isSpace(s.src[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.src) {
		return Attr{Token: END, Index: NoNode, Pos: len(s.src)}, nil
	}

	pos := s.pos
	ch := s.src[pos]
	s.pos++

	tok := func(t Token) (Attr, error) {
		return Attr{Token: t, Index: NoNode, Symbol: ch, Pos: pos}, nil
	}

	switch {
	case 'a' <= ch && ch <= 'z':
		return Attr{Token: ID, Index: int(ch - 'a'), Symbol: ch, Pos: pos}, nil
	case 'A' <= ch && ch <= 'Z':
		return Attr{Token: ID, Index: alphabetSize + int(ch-'A'), Symbol: ch, Pos: pos}, nil
	}

	switch ch {
	case '|', '&':
		if s.pos < len(s.src) && s.src[s.pos] == ch {
			s.pos++
		}
		if ch == '|' {
			return tok(OR)
		}
		return tok(AND)
	case '+':
		return tok(OR)
	case '*':
		return tok(AND)
	case '^':
		return tok(XOR)
	case '!', '~':
		return tok(NOT)
	case '(':
		return tok(BOPEN)
	case ')':
		return tok(BCLOSE)
	}

	return Attr{}, &SyntaxError{pos, fmt.Sprintf("unexpected character %q", ch)}
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}
