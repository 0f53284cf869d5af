//go:build cgo

// Package iconv provides a charset Converter backed by the system iconv
// library via gopkg.in/iconv.v1. iconv fails hard on byte sequences invalid
// for the source charset, which matches the strict conversion contract, and
// it knows charsets the built-in table does not.
//
// The package needs cgo and libiconv, which is why it is not the default:
//
//	rfc2047.Dec.Converter = iconv.Converter{}
package iconv

import (
	"fmt"

	iconv1 "gopkg.in/iconv.v1"
)

// Converter converts through iconv. The zero value is ready to use; a
// conversion descriptor is opened per call, so it is safe for concurrent
// use.
type Converter struct{}

func (Converter) Convert(charset string, b []byte) (string, error) {
	cd, err := iconv1.Open("utf-8", charset)
	if err != nil {
		return "", fmt.Errorf("iconv: unknown charset %q: %w", charset, err)
	}
	defer cd.Close()

	out, err := cd.Conv(b, make([]byte, len(b)*4+16))
	if err != nil {
		return "", fmt.Errorf("iconv: convert from %s: %w", charset, err)
	}
	return string(out), nil
}
