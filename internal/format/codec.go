// Package format applies platform newline conventions to generated text.
//
// Some platforms collapse consecutive blank lines when a caption is pasted.
// The codec keeps paragraph breaks visible by putting an invisible sentinel
// glyph on every blank line, and can strip it back out exactly.
package format

import "strings"

const (
	// ZeroWidthSpace is the sentinel for Threads, X and Facebook.
	ZeroWidthSpace = '\u200B'
	// BrailleBlank is the sentinel for Instagram, which drops lines holding
	// only zero-width characters but keeps the Braille blank pattern.
	BrailleBlank = '\u2800'
)

// Codec inserts and removes a sentinel glyph on blank lines.
//
// A blank line is an empty line (or a lone "\r") that is followed by a
// newline; the text after the final newline is never touched. For any text
// not containing the sentinel, Decode(Encode(x)) == x.
type Codec struct {
	Sentinel rune
}

// Encode places the sentinel on every blank line. It is idempotent.
func (c Codec) Encode(text string) string {
	if !strings.Contains(text, "\n") {
		return text
	}

	s := string(c.Sentinel)
	lines := strings.Split(text, "\n")
	for i := range len(lines) - 1 {
		if lines[i] == "" || lines[i] == "\r" {
			lines[i] = s + lines[i]
		}
	}

	return strings.Join(lines, "\n")
}

// Decode turns lines consisting solely of the sentinel back into blank lines.
func (c Codec) Decode(text string) string {
	s := string(c.Sentinel)
	if !strings.Contains(text, s) {
		return text
	}

	lines := strings.Split(text, "\n")
	for i := range len(lines) - 1 {
		if lines[i] == s || lines[i] == s+"\r" {
			lines[i] = lines[i][len(s):]
		}
	}

	return strings.Join(lines, "\n")
}
