package rfc2047

// maxWordLen caps the matched text of a single encoded-word, delimiters
// included and leading whitespace excluded. RFC 2047 recommends 75
// characters; real mail software routinely exceeds that, so the cap is
// relaxed to 255. Anything longer is never treated as an encoded-word.
const maxWordLen = 255

// phraseSpecials are the RFC 822 special characters that bound a phrase.
// In phrase mode they terminate plain text runs, are excluded from Q
// payloads, and are a valid lookahead after a Q encoded-word.
const phraseSpecials = "()<>[]:;@\\,.\""

func isPhraseSpecial(c byte) bool {
	for i := 0; i < len(phraseSpecials); i++ {
		if phraseSpecials[i] == c {
			return true
		}
	}
	return false
}

// isFoldingSpace reports whether c is linear whitespace as it appears in
// (possibly still folded) header values.
func isFoldingSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// isCharsetChar reports whether c may appear in an encoded-word charset
// name, i.e. matches [A-Za-z0-9_-].
func isCharsetChar(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}

// isBase64Char reports whether c belongs to the standard base64 alphabet,
// padding excluded.
func isBase64Char(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '+' || c == '/'
}

func isHexChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'a' && c <= 'f' ||
		c >= 'A' && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// isControl reports whether c is an ASCII control character. These are
// stripped from the final result so a decoded header can never smuggle a
// CRLF or NUL into whatever consumes it.
func isControl(c byte) bool {
	return c < 0x20 || c == 0x7f
}
