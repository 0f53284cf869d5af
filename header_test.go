package rfc2047

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadHeaderAndDecode(t *testing.T) {
	raw := "From: =?UTF-8?Q?Andr=C3=A9?= <andre@example.com>\r\n" +
		"To: recipient@example.com\r\n" +
		"Subject: =?ISO-8859-1?Q?Fr=E5gor?= =?ISO-8859-1?Q?_och_svar?=\r\n" +
		"X-Broken: =?x-no-such-set?B?QUJD?=\r\n" +
		"\r\n" +
		"body\r\n"

	h, err := ReadHeader(strings.NewReader(raw))
	require.NoError(t, err)

	Dec.DecodeHeader(h)

	assert.Equal(t, "André <andre@example.com>", h.Get("From"))
	assert.Equal(t, "recipient@example.com", h.Get("To"))
	assert.Equal(t, "Frågor och svar", h.Get("Subject"))
	// Undecodable values stay as they were on the wire.
	assert.Equal(t, "=?x-no-such-set?B?QUJD?=", h.Get("X-Broken"))
}

func TestReadHeaderWithoutBody(t *testing.T) {
	// A header block that simply ends at EOF is fine.
	h, err := ReadHeader(strings.NewReader("Subject: hello\r\n"))
	require.NoError(t, err)
	assert.Equal(t, "hello", h.Get("Subject"))
}
