package common

import (
	"crypto/rand"
	"encoding/hex"
)

// RandBytes returns size bytes from crypto/rand.
func RandBytes(size int) ([]byte, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// MakeRandHexString returns size random bytes hex-encoded (2*size chars).
func MakeRandHexString(size int) (string, error) {
	b, err := RandBytes(size)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// GenerateRandByteArray is RandBytes for callers that cannot continue
// without randomness. It panics if the system random source fails.
func GenerateRandByteArray(size int) []byte {
	b, err := RandBytes(size)
	if err != nil {
		panic(err)
	}
	return b
}

// WipeByteArray overwrites b with zeros. Nil is a no-op.
func WipeByteArray(b []byte) {
	clear(b)
}
