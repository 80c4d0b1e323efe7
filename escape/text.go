package escape

import (
	"strings"
	"unicode/utf8"
)

// Escape doubles every marker in s so that the result scans back to the
// literal text of s, with no font or style switches.
func Escape(s string) string {
	if !strings.ContainsAny(s, "$^") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == FontMarker || c == StyleMarker {
			b.WriteByte(c)
		}
		b.WriteByte(c)
	}
	return b.String()
}

// Strip returns the literal text of an escaped byte stream: commands are
// removed and doubled markers collapsed.
func Strip(text []byte) string {
	var b strings.Builder
	b.Grow(len(text))
	s := NewScanner(text)
	for {
		tok, ok := s.Next()
		if !ok {
			return b.String()
		}
		if tok.Kind == Codepoint {
			b.WriteRune(tok.Rune)
		}
	}
}

// FontCommand returns the escape sequence selecting font id.
func FontCommand(id uint8) string {
	return command(FontMarker, id)
}

// StyleCommand returns the escape sequence selecting style id.
func StyleCommand(id uint8) string {
	return command(StyleMarker, id)
}

func command(marker byte, id uint8) string {
	const digits = "0123456789ABCDEF"
	return string([]byte{marker, digits[id>>4], digits[id&0xF]})
}

// RuneCount returns the number of Codepoint tokens in text.
func RuneCount(text []byte) int {
	// Fast path for text without markers.
	if !containsMarker(text) {
		return utf8.RuneCount(text)
	}
	n := 0
	s := NewScanner(text)
	for {
		tok, ok := s.Next()
		if !ok {
			return n
		}
		if tok.Kind == Codepoint {
			n++
		}
	}
}

func containsMarker(text []byte) bool {
	for _, c := range text {
		if c == FontMarker || c == StyleMarker {
			return true
		}
	}
	return false
}
