package rfc2047

import "strings"

// mode selects which characters terminate scanning and whether
// quoted-strings are recognized.
type mode int

const (
	// modeText scans unstructured header bodies such as Subject or
	// Comments. The whole input is consumed.
	modeText mode = iota
	// modePhrase scans an RFC 822 phrase, recognizes quoted-strings and
	// stops at the first special character so a caller can resume address
	// parsing there.
	modePhrase
)

type tokenKind int

const (
	tokenWord tokenKind = iota
	tokenQuoted
)

// token is one structured match found by the scanner. Plain text between
// structured tokens is handed to the caller as a raw prefix instead of a
// token of its own.
type token struct {
	kind tokenKind

	// lit is the exact matched source text: the full encoded-word
	// including its =?…?= delimiters but not its leading whitespace, or
	// the quoted-string content without the surrounding quotes and still
	// carrying its backslash escapes.
	lit string

	// ws is the whitespace run captured immediately before an
	// encoded-word. It belongs to the folding decision, not to lit.
	ws string

	charset string // encoded-word charset name
	enc     byte   // 'B' or 'Q', upper-cased
	payload string // encoded-word payload between the third '?' and '?='
}

// isPlainChar reports whether a plain text run may extend over c.
func isPlainChar(c byte, m mode) bool {
	return m == modeText || !isPhraseSpecial(c)
}

// nextToken finds the earliest structured token reachable from pos through
// a run of plain characters, trying an encoded-word before a quoted-string
// at every position. It returns the end of the plain prefix (= token
// start), the token, and the position just past the match.
func nextToken(src string, pos int, m mode) (start int, tok token, end int, found bool) {
	for p := pos; p <= len(src); p++ {
		if t, e, ok := matchEncodedWord(src, p, m); ok {
			return p, t, e, true
		}
		if m == modePhrase {
			if t, e, ok := matchQuotedString(src, p); ok {
				return p, t, e, true
			}
		}
		if p == len(src) || !isPlainChar(src[p], m) {
			break
		}
	}
	return 0, token{}, 0, false
}

// matchEncodedWord matches
//
//	WS? "=?" charset "?" ("B"|"Q") "?" payload "?="
//
// at pos, with the payload grammar and trailing lookahead depending on the
// transfer encoding and mode. The leading whitespace is captured apart from
// the word itself.
func matchEncodedWord(src string, pos int, m mode) (token, int, bool) {
	j := pos
	for j < len(src) && isFoldingSpace(src[j]) {
		j++
	}
	wordStart := j

	if !strings.HasPrefix(src[j:], "=?") {
		return token{}, 0, false
	}
	j += 2

	k := j
	for j < len(src) && isCharsetChar(src[j]) {
		j++
	}
	if j == k || j >= len(src) || src[j] != '?' {
		return token{}, 0, false
	}
	charset := src[k:j]
	j++

	if j >= len(src) {
		return token{}, 0, false
	}
	enc := src[j]
	switch enc {
	case 'b', 'q':
		enc -= 'a' - 'A'
	case 'B', 'Q':
	default:
		return token{}, 0, false
	}
	j++
	if j >= len(src) || src[j] != '?' {
		return token{}, 0, false
	}
	j++

	payloadStart := j
	if enc == 'B' {
		for j < len(src) && (isBase64Char(src[j]) || src[j] == '=') {
			j++
		}
	} else {
		for j < len(src) && isQPayloadChar(src[j], m) {
			j++
		}
	}
	payload := src[payloadStart:j]

	if !strings.HasPrefix(src[j:], "?=") {
		return token{}, 0, false
	}
	j += 2

	if j-wordStart > maxWordLen {
		return token{}, 0, false
	}
	if enc == 'B' && !validBase64Groups(payload) {
		return token{}, 0, false
	}

	// The closing ?= must sit on a word boundary, otherwise the candidate
	// is part of some larger plain text run.
	if j < len(src) {
		c := src[j]
		switch {
		case isFoldingSpace(c):
		case enc == 'Q' && m == modePhrase && isPhraseSpecial(c):
		default:
			return token{}, 0, false
		}
	}

	return token{
		kind:    tokenWord,
		lit:     src[wordStart:j],
		ws:      src[pos:wordStart],
		charset: charset,
		enc:     enc,
		payload: payload,
	}, j, true
}

// isQPayloadChar reports whether c may appear raw in a Q payload: no
// control characters, no '?', and no RFC 822 specials in phrase mode.
func isQPayloadChar(c byte, m mode) bool {
	if isControl(c) || c == '?' {
		return false
	}
	return m == modeText || !isPhraseSpecial(c)
}

// validBase64Groups requires the payload to consist of complete 4-character
// base64 groups, with '=' only as trailing padding of the last group.
// Sloppy payloads are left to the plain text path rather than silently
// mangled by a permissive decoder.
func validBase64Groups(payload string) bool {
	if len(payload)%4 != 0 {
		return false
	}
	pad := strings.IndexByte(payload, '=')
	if pad < 0 {
		return true
	}
	if pad < len(payload)-2 {
		return false
	}
	for i := pad; i < len(payload); i++ {
		if payload[i] != '=' {
			return false
		}
	}
	return true
}

// matchQuotedString matches a "…" run at pos where '"' and '\' occur only
// backslash-escaped. An unterminated quote never matches; the scanner then
// treats it as ordinary text (or, in phrase mode, as the stop character).
func matchQuotedString(src string, pos int) (token, int, bool) {
	if pos >= len(src) || src[pos] != '"' {
		return token{}, 0, false
	}
	j := pos + 1
	for j < len(src) {
		switch src[j] {
		case '"':
			return token{kind: tokenQuoted, lit: src[pos+1 : j]}, j + 1, true
		case '\\':
			j += 2
		default:
			j++
		}
	}
	return token{}, 0, false
}

// unescape removes the backslashes of a quoted-string's escaped pairs.
func unescape(s string) string {
	if !strings.Contains(s, "\\") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
