package rfc2047

import (
	"bufio"
	"errors"
	"io"
	"net/textproto"
	"strings"
)

// ReadHeader reads the header block of an RFC 822 message from r. A header
// block terminated by EOF instead of an empty line is accepted.
func ReadHeader(r io.Reader) (textproto.MIMEHeader, error) {
	h, err := textproto.NewReader(bufio.NewReader(r)).ReadMIMEHeader()
	if errors.Is(err, io.EOF) {
		err = nil
	}
	return h, err
}

// DecodeHeader decodes every value of h in place, in text mode. Values
// without an encoded-word marker are left untouched.
func (d *Decoder) DecodeHeader(h textproto.MIMEHeader) {
	for k, vv := range h {
		for i, v := range vv {
			if strings.Contains(v, "=?") {
				vv[i] = d.DecodeText(v)
			}
		}
		h[k] = vv
	}
}
