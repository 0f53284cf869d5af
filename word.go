package rfc2047

import (
	"encoding/base64"
)

// decodeWord unwraps the transfer encoding of one matched encoded-word and
// converts the raw bytes from the named charset to UTF-8. Conversion is
// strict: an unknown charset or a byte sequence invalid for it is an error,
// never a replacement character. The caller falls back to the literal
// source text on error.
func (d *Decoder) decodeWord(tok token) (string, error) {
	var raw []byte
	switch tok.enc {
	case 'B':
		var err error
		raw, err = base64.StdEncoding.DecodeString(tok.payload)
		if err != nil {
			return "", err
		}
	case 'Q':
		raw = qDecode(tok.payload)
	}
	return d.converter().Convert(tok.charset, raw)
}

// qDecode reverses the RFC 2047 Q encoding: '_' is a space and =XX is the
// byte with hex value XX. A '=' not followed by two hex digits is carried
// through untouched, leaving it to the charset conversion to accept or
// reject the bytes.
func qDecode(s string) []byte {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '_':
			buf = append(buf, ' ')
		case c == '=' && i+2 < len(s) && isHexChar(s[i+1]) && isHexChar(s[i+2]):
			buf = append(buf, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
		default:
			buf = append(buf, c)
		}
	}
	return buf
}
