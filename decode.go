// Package rfc2047 decodes MIME header fields containing RFC 2047
// encoded-words (=?charset?B|Q?payload?=) into normalized UTF-8 strings.
//
// Decoding never fails: a malformed or undecodable region degrades to a
// literal copy of the original text, so the result is always a best-effort
// rendering of the header value.
package rfc2047

import (
	"log/slog"
	"strings"

	"github.com/modfin/rfc2047/charsets"
)

// Decoder decodes encoded-words in header values. The zero value uses
// charsets.Std for charset conversion and logs nothing. A Decoder holds no
// mutable state and is safe for concurrent use.
type Decoder struct {
	// Converter translates bytes in a named charset to UTF-8. It must
	// fail on unknown charsets and invalid byte sequences rather than
	// substitute replacement characters. Nil means charsets.Std.
	Converter charsets.Converter

	// Log receives a debug line when an encoded-word fails to decode and
	// is rendered literally instead. Nil disables the diagnostics.
	Log *slog.Logger
}

// Dec is the decoder used by the package level functions. Packages such as
// rfc2047/encoding swap its Converter during init.
var Dec = &Decoder{}

// DecodeText decodes the whole input as an unstructured header body, e.g.
// a Subject or Comments value.
func DecodeText(s string) string { return Dec.DecodeText(s) }

// DecodePhrase decodes an RFC 822 phrase starting at pos and returns the
// decoded phrase together with the position of the first unconsumed RFC 822
// special character (or len(s)), from which a caller can resume address
// parsing.
func DecodePhrase(s string, pos int) (string, int) { return Dec.DecodePhrase(s, pos) }

// DecodeText decodes the whole input as an unstructured header body.
func (d *Decoder) DecodeText(s string) string {
	out, _ := d.decode(s, 0, modeText)
	return out
}

// DecodePhrase decodes an RFC 822 phrase starting at pos. See the package
// level DecodePhrase.
func (d *Decoder) DecodePhrase(s string, pos int) (string, int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	return d.decode(s, pos, modePhrase)
}

func (d *Decoder) converter() charsets.Converter {
	if d.Converter == nil {
		return charsets.Std
	}
	return d.Converter
}

// decode runs the scan / decode-word / assemble pipeline in one pass over
// src and returns the normalized result plus the final cursor.
func (d *Decoder) decode(src string, pos int, m mode) (string, int) {
	var b strings.Builder
	b.Grow(len(src))

	// prevWord tracks whether the fragment written last was a
	// successfully decoded encoded-word; whitespace between two such
	// words is a folding artifact, not content.
	prevWord := false

scan:
	for pos < len(src) {
		start, tok, end, found := nextToken(src, pos, m)
		if !found {
			break
		}
		if prefix := src[pos:start]; prefix != "" {
			b.WriteString(prefix)
			prevWord = false
		}
		pos = end

		switch tok.kind {
		case tokenWord:
			frag, err := d.decodeWord(tok)
			if err != nil {
				// Render the word as-is and stop trusting the
				// remainder of the value: one corrupt word makes
				// everything after it suspect.
				d.logger().Debug("encoded-word left undecoded",
					"charset", tok.charset, "err", err)
				b.WriteString(tok.ws)
				b.WriteString(tok.lit)
				break scan
			}
			if !prevWord {
				b.WriteString(tok.ws)
			}
			b.WriteString(frag)
			prevWord = true
		case tokenQuoted:
			b.WriteString(unescape(tok.lit))
			prevWord = false
		}
	}

	// Terminal plain run: text mode owns the whole remainder, phrase mode
	// stops at the first special so the caller can pick up from there.
	if m == modeText {
		b.WriteString(src[pos:])
		pos = len(src)
	} else {
		q := pos
		for q < len(src) && !isPhraseSpecial(src[q]) {
			q++
		}
		b.WriteString(src[pos:q])
		pos = q
	}
	return normalize(b.String()), pos
}
