package escape

import (
	"unicode/utf8"
)

// Command markers recognized in the byte stream.
const (
	FontMarker  = '$'
	StyleMarker = '^'
)

// Kind identifies the type of a Token.
type Kind uint8

const (
	// Codepoint is a literal character.
	Codepoint Kind = iota
	// SwitchFont selects the font with Token.ID and resets the style to 0.
	SwitchFont
	// SwitchStyle selects style Token.ID of the current font.
	SwitchStyle
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case Codepoint:
		return "Codepoint"
	case SwitchFont:
		return "SwitchFont"
	case SwitchStyle:
		return "SwitchStyle"
	default:
		return "Unknown"
	}
}

// Token is one decoded element of the input stream.
type Token struct {
	Kind Kind

	// Rune is the codepoint for Codepoint tokens.
	Rune rune

	// ID is the font or style id for switch tokens.
	ID uint8

	// Escaped is set on Codepoint tokens decoded from a doubled marker
	// ("$$" or "^^").
	Escaped bool

	// Start and End delimit the bytes the token was decoded from.
	Start, End int
}

// state is the scanner position inside a command.
type state uint8

const (
	stateNormal state = iota
	statePendingFontDigit1
	statePendingFontDigit2
	statePendingStyleDigit1
	statePendingStyleDigit2
)

// Scanner decodes a UTF-8 byte stream with embedded escape codes into
// Tokens. The zero value is not usable; create scanners with NewScanner.
//
// Scanning never fails: malformed commands decode as literal characters
// and invalid UTF-8 bytes decode as utf8.RuneError, one per byte.
type Scanner struct {
	text []byte
	pos  int
}

// NewScanner returns a scanner positioned at the start of text.
// The scanner does not modify or retain ownership of text.
func NewScanner(text []byte) *Scanner {
	return &Scanner{text: text}
}

// Offset returns the offset of the first byte not yet consumed.
func (s *Scanner) Offset() int {
	return s.pos
}

// Seek repositions the scanner so that the next token starts at off.
// Offsets outside the text are clamped.
func (s *Scanner) Seek(off int) {
	s.pos = min(max(off, 0), len(s.text))
}

// Done reports whether the whole text has been consumed.
func (s *Scanner) Done() bool {
	return s.pos >= len(s.text)
}

// Next decodes the next token. It returns false at the end of the text.
func (s *Scanner) Next() (Token, bool) {
	if s.pos >= len(s.text) {
		return Token{}, false
	}

	start := s.pos
	st := stateNormal
	var hi byte

	for i := start; ; i++ {
		if i >= len(s.text) {
			// Truncated command: the marker is a literal.
			return s.literalMarker(start), true
		}
		c := s.text[i]

		switch st {
		case stateNormal:
			switch c {
			case FontMarker:
				st = statePendingFontDigit1
			case StyleMarker:
				st = statePendingStyleDigit1
			default:
				return s.codepoint(start), true
			}

		case statePendingFontDigit1, statePendingStyleDigit1:
			if c == s.text[start] {
				s.pos = i + 1
				return Token{Kind: Codepoint, Rune: rune(c), Escaped: true, Start: start, End: s.pos}, true
			}
			v, ok := hexValue(c)
			if !ok {
				return s.literalMarker(start), true
			}
			hi = v
			if st == statePendingFontDigit1 {
				st = statePendingFontDigit2
			} else {
				st = statePendingStyleDigit2
			}

		case statePendingFontDigit2, statePendingStyleDigit2:
			lo, ok := hexValue(c)
			if !ok {
				return s.literalMarker(start), true
			}
			kind := SwitchFont
			if st == statePendingStyleDigit2 {
				kind = SwitchStyle
			}
			s.pos = i + 1
			return Token{Kind: kind, ID: hi<<4 | lo, Start: start, End: s.pos}, true
		}
	}
}

// literalMarker emits the marker byte at start as a plain character and
// resumes scanning right after it.
func (s *Scanner) literalMarker(start int) Token {
	s.pos = start + 1
	return Token{Kind: Codepoint, Rune: rune(s.text[start]), Start: start, End: s.pos}
}

// codepoint decodes one UTF-8 sequence at start.
func (s *Scanner) codepoint(start int) Token {
	r, size := utf8.DecodeRune(s.text[start:])
	s.pos = start + size
	return Token{Kind: Codepoint, Rune: r, Start: start, End: s.pos}
}

func hexValue(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// Scan decodes the whole text.
func Scan(text []byte) []Token {
	s := NewScanner(text)
	tokens := make([]Token, 0, len(text))
	for {
		tok, ok := s.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}
