// encoding swaps the default converter for one using golang.org/x/net/html/charset.
// golang.org/x/net/html/charset recognizes the full set of WHATWG encoding labels,
// a larger range than the built-in table.
// when importing, place an underscore _ in front to import for side-effects

package encoding

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/modfin/rfc2047"
	"github.com/modfin/rfc2047/charsets"

	cs "golang.org/x/net/html/charset"
)

func init() {

	rfc2047.Dec.Converter = labelConverter{}

}

type labelConverter struct{}

// Convert resolves the charset through the WHATWG label index. The html
// charset readers substitute U+FFFD on bad input instead of failing, so
// strictness is restored with a post-check on the output.
func (labelConverter) Convert(charset string, b []byte) (string, error) {
	// UTF-8 is validated directly so payloads that legitimately contain
	// U+FFFD still pass the post-check.
	if _, name := cs.Lookup(charset); name == "utf-8" {
		if !utf8.Valid(b) {
			return "", fmt.Errorf("%w: %s", charsets.ErrInvalidSequence, charset)
		}
		return string(b), nil
	}
	r, err := cs.NewReaderLabel(charset, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("%w: %q", charsets.ErrUnknownCharset, charset)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) || bytes.ContainsRune(out, utf8.RuneError) {
		return "", fmt.Errorf("%w: %s", charsets.ErrInvalidSequence, charset)
	}
	return string(out), nil
}
