package token

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHasher_RequiresSecret(t *testing.T) {
	_, err := NewHasher("")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestHasher_Deterministic(t *testing.T) {
	h, err := NewHasher("secret")
	require.NoError(t, err)

	assert.Equal(t, h.Hash("abc"), h.Hash("abc"))
	assert.NotEqual(t, h.Hash("abc"), h.Hash("abd"))
	assert.Len(t, h.Hash("abc"), 64)
}

func TestHasher_KeyedBySecret(t *testing.T) {
	a, _ := NewHasher("secret-a")
	b, _ := NewHasher("secret-b")

	assert.NotEqual(t, a.Hash("token"), b.Hash("token"))
}

func TestGenerate(t *testing.T) {
	first, err := Generate(DefaultSize)
	require.NoError(t, err)
	second, err := Generate(DefaultSize)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)

	raw, err := base64.RawURLEncoding.DecodeString(first)
	require.NoError(t, err)
	assert.Len(t, raw, DefaultSize)
}
