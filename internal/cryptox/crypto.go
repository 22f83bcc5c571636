// Package cryptox wraps the symmetric primitives used by tenantline:
// argon2id for the login master key, PBKDF2 for passphrase-derived
// message keys and AES-256-GCM for sealing.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeySize is the AES-256 key length in bytes.
	KeySize = 32
	// NonceSize is the standard GCM nonce length in bytes.
	NonceSize = 12
)

var ErrInvalidNonce = errors.New("invalid nonce size")

func MakeVerifier(masterKey []byte) []byte {
	hash := sha256.Sum256(masterKey)
	return hash[:]
}

func DeriveMasterKey(password []byte, salt []byte) []byte {
	x := argon2.IDKey(password, salt, 1, 64*1024, 4, KeySize)
	return x
}

// DerivePassphraseKey stretches a user passphrase into an AES-256 key with
// PBKDF2-HMAC-SHA256. The cost is linear in iterations; callers that decode
// many payloads should not do so on a latency-sensitive goroutine.
func DerivePassphraseKey(passphrase []byte, salt []byte, iterations int) []byte {
	return pbkdf2.Key(passphrase, salt, iterations, KeySize, sha256.New)
}

// Encrypt seals plaintext with AES-GCM under key using a fresh random nonce.
//
// The key must be 16, 24 or 32 bytes. The ciphertext includes the GCM tag.
func Encrypt(plaintext, key []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, err
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	ciphertext = aesgcm.Seal(nil, nonce, plaintext, nil)
	return ciphertext, nonce, nil
}

// Decrypt opens a ciphertext produced by Encrypt. Any tampering or a wrong
// key yields an error from the AEAD.
func Decrypt(ciphertext, nonce, key []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, ErrInvalidNonce
	}

	aesgcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	return aesgcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
