package common

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandBytes(t *testing.T) {
	a, err := RandBytes(16)
	require.NoError(t, err)
	b, err := RandBytes(16)
	require.NoError(t, err)

	assert.Len(t, a, 16)
	assert.NotEqual(t, a, b)

	empty, err := RandBytes(0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestMakeRandHexString(t *testing.T) {
	s, err := MakeRandHexString(32)
	require.NoError(t, err)
	require.Len(t, s, 64)

	_, err = hex.DecodeString(s)
	require.NoError(t, err)

	s, err = MakeRandHexString(0)
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestGenerateRandByteArray(t *testing.T) {
	salt := GenerateRandByteArray(32)
	assert.Len(t, salt, 32)
	assert.NotEqual(t, salt, GenerateRandByteArray(32))
}

func TestWipeByteArray(t *testing.T) {
	key := []byte("passphrase-derived-key")
	WipeByteArray(key)
	assert.Equal(t, make([]byte, len(key)), key)

	assert.NotPanics(t, func() { WipeByteArray(nil) })
}
