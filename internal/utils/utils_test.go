package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNanoIDAlphabet(t *testing.T) {
	id := NanoIDAlphabet(AlphabetBase36Up, 9)
	require.Len(t, id, 9)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(AlphabetBase36Up, r), "unexpected rune %q", r)
	}

	assert.Len(t, NanoID(), 32)
	assert.Len(t, NanoIDAlphabet(AlphabetBase36, 0), 32)
}

func TestPtrStringOr(t *testing.T) {
	assert.Equal(t, "N/A", PtrStringOr(nil, "N/A"))
	assert.Equal(t, "N/A", PtrStringOr(StringPtr(""), "N/A"))
	assert.Equal(t, "Boston", PtrStringOr(StringPtr("Boston"), "N/A"))
}

func TestErrorWrapOrNil(t *testing.T) {
	assert.NoError(t, ErrorWrapOrNil(nil, "ignored"))

	base := errors.New("boom")
	wrapped := ErrorWrapOrNil(base, "render qr")
	assert.EqualError(t, wrapped, "render qr: boom")
	assert.ErrorIs(t, wrapped, base)
	assert.Same(t, base, ErrorWrapOrNil(base, ""))
}
