package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modfin/rfc2047"
	"github.com/modfin/rfc2047/charsets"
)

func TestInitSwapsConverter(t *testing.T) {
	require.IsType(t, labelConverter{}, rfc2047.Dec.Converter)

	// "l1" is a WHATWG label for windows-1252 that the built-in table
	// does not carry.
	assert.Equal(t, "café", rfc2047.DecodeText("=?l1?Q?caf=E9?="))
}

func TestLabelConverter(t *testing.T) {
	var c labelConverter

	got, err := c.Convert("iso-8859-1", []byte{'c', 'a', 'f', 0xe9})
	require.NoError(t, err)
	assert.Equal(t, "café", got)

	got, err = c.Convert("utf-8", []byte("a�b"))
	require.NoError(t, err)
	assert.Equal(t, "a�b", got)

	_, err = c.Convert("x-no-such-set", []byte("abc"))
	assert.ErrorIs(t, err, charsets.ErrUnknownCharset)

	_, err = c.Convert("utf-8", []byte{0xff})
	assert.ErrorIs(t, err, charsets.ErrInvalidSequence)
}
