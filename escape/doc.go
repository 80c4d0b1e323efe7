// Package escape decodes text carrying inline font and style switches.
//
// The wire format is byte exact:
//
//	$xx   select font xx (two hex digits, case-insensitive); resets the style to 0
//	^xx   select style xx of the current font
//	$$    literal '$'
//	^^    literal '^'
//
// Anything else, including a marker followed by non-hex digits or cut off by
// the end of the buffer, is literal text. The text is UTF-8; decoding is best
// effort and replaces each invalid byte with utf8.RuneError.
//
// The Scanner is a small state machine consumed one byte at a time, and can
// resume from any byte offset with Seek, which is what pagination relies on.
package escape
