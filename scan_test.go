package rfc2047

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchEncodedWord(t *testing.T) {
	t.Run("captures leading whitespace separately", func(t *testing.T) {
		tok, end, ok := matchEncodedWord(" \t=?UTF-8?Q?a?=", 0, modeText)
		require.True(t, ok)
		assert.Equal(t, " \t", tok.ws)
		assert.Equal(t, "=?UTF-8?Q?a?=", tok.lit)
		assert.Equal(t, "UTF-8", tok.charset)
		assert.Equal(t, byte('Q'), tok.enc)
		assert.Equal(t, "a", tok.payload)
		assert.Equal(t, 15, end)
	})

	t.Run("upper cases the transfer encoding", func(t *testing.T) {
		tok, _, ok := matchEncodedWord("=?utf-8?b?YQ==?=", 0, modeText)
		require.True(t, ok)
		assert.Equal(t, byte('B'), tok.enc)
	})

	t.Run("rejects base64 lookahead before a special", func(t *testing.T) {
		// The special-character boundary after ?= is a phrase mode rule
		// for Q words only.
		_, _, ok := matchEncodedWord("=?UTF-8?B?YQ==?=<", 0, modePhrase)
		assert.False(t, ok)
	})

	t.Run("accepts q lookahead before a special in phrase mode", func(t *testing.T) {
		_, _, ok := matchEncodedWord("=?UTF-8?Q?a?=<", 0, modePhrase)
		assert.True(t, ok)
		_, _, ok = matchEncodedWord("=?UTF-8?Q?a?=<", 0, modeText)
		assert.False(t, ok)
	})

	t.Run("rejects raw question mark in q payload", func(t *testing.T) {
		_, _, ok := matchEncodedWord("=?UTF-8?Q?a?b?=", 0, modeText)
		assert.False(t, ok)
	})
}

func TestValidBase64Groups(t *testing.T) {
	valid := []string{"", "QUFB", "QQ==", "QUE=", "QUFBQkJC"}
	for _, s := range valid {
		assert.True(t, validBase64Groups(s), "payload %q", s)
	}
	invalid := []string{"QQQ", "Q===", "====", "Q=QQ", "QQ=Q"}
	for _, s := range invalid {
		assert.False(t, validBase64Groups(s), "payload %q", s)
	}
}

func TestNextToken(t *testing.T) {
	t.Run("earliest match wins", func(t *testing.T) {
		src := `x "a" =?UTF-8?Q?b?=`
		start, tok, end, found := nextToken(src, 0, modePhrase)
		require.True(t, found)
		assert.Equal(t, 2, start)
		assert.Equal(t, tokenQuoted, tok.kind)
		assert.Equal(t, "a", tok.lit)
		assert.Equal(t, 5, end)
	})

	t.Run("encoded word beats quoted string at the same position", func(t *testing.T) {
		// The leading whitespace capture lets the word match where the
		// quote would otherwise be reached first.
		src := ` =?UTF-8?Q?a?= "q"`
		start, tok, _, found := nextToken(src, 0, modePhrase)
		require.True(t, found)
		assert.Equal(t, 0, start)
		assert.Equal(t, tokenWord, tok.kind)
	})

	t.Run("phrase scan cannot cross a special", func(t *testing.T) {
		_, _, _, found := nextToken("a <b> =?UTF-8?Q?c?=", 0, modePhrase)
		assert.False(t, found)
	})

	t.Run("text scan crosses anything", func(t *testing.T) {
		start, tok, _, found := nextToken("a <b> =?UTF-8?Q?c?=", 0, modeText)
		require.True(t, found)
		assert.Equal(t, tokenWord, tok.kind)
		assert.Equal(t, 5, start)
		assert.Equal(t, " ", tok.ws)
	})
}

func TestUnescape(t *testing.T) {
	assert.Equal(t, `say "hi"`, unescape(`say \"hi\"`))
	assert.Equal(t, `back\slash`, unescape(`back\\slash`))
	assert.Equal(t, "plain", unescape("plain"))
}
