// Package envelope converts message bodies to and from their wire form.
//
// A wire body is either legacy plaintext or an encrypted envelope:
//
//	enc:v1:<salt>:<iv>:<ciphertext>
//
// where each field is unpadded standard base64. The key is derived from a
// user passphrase with PBKDF2 and a per-message salt; the body is sealed
// with AES-256-GCM under a per-message IV. There is no key exchange and no
// forward secrecy. A forgotten passphrase leaves earlier envelopes
// permanently unreadable.
package envelope

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tenantline/internal/common"
	"github.com/dmitrijs2005/tenantline/internal/cryptox"
)

const (
	// Prefix marks a payload as an envelope.
	Prefix = "enc"
	// Version is the only envelope layout understood by this package.
	Version = "v1"

	// Undecryptable replaces the body of an envelope that fails
	// authentication under the current passphrase.
	Undecryptable = "[unable to decrypt]"

	// DefaultIterations is the PBKDF2 work factor used by Default.
	DefaultIterations = 100_000

	SaltSize = 16

	separator = ":"
	numParts  = 5
)

var (
	ErrNotEnvelope = errors.New("not an envelope")
	ErrBadVersion  = errors.New("unsupported envelope version")
)

var encoding = base64.RawStdEncoding

// Codec encodes and decodes envelopes with a fixed PBKDF2 work factor.
// The zero value is not usable; see New.
type Codec struct {
	iterations int
}

// New returns a Codec with the given PBKDF2 iteration count. Values below 1
// fall back to DefaultIterations.
func New(iterations int) *Codec {
	if iterations < 1 {
		iterations = DefaultIterations
	}
	return &Codec{iterations: iterations}
}

// Default is the codec used by the package-level helpers.
var Default = New(DefaultIterations)

// Encode returns the wire form of plaintext. With an empty passphrase the
// plaintext is returned unchanged. Salt and IV are fresh on every call, so
// two encodings of the same input differ.
func (c *Codec) Encode(plaintext, passphrase string) (string, error) {
	if passphrase == "" {
		return plaintext, nil
	}

	salt, err := common.RandBytes(SaltSize)
	if err != nil {
		return "", fmt.Errorf("envelope salt: %w", err)
	}
	key := cryptox.DerivePassphraseKey([]byte(passphrase), salt, c.iterations)
	defer common.WipeByteArray(key)

	ciphertext, iv, err := cryptox.Encrypt([]byte(plaintext), key)
	if err != nil {
		return "", err
	}

	return strings.Join([]string{
		Prefix,
		Version,
		encoding.EncodeToString(salt),
		encoding.EncodeToString(iv),
		encoding.EncodeToString(ciphertext),
	}, separator), nil
}

// Decode returns the plaintext carried by payload. It never fails:
// payloads that do not parse as an envelope are returned as-is, and
// envelopes that do not open under passphrase yield Undecryptable.
func (c *Codec) Decode(payload, passphrase string) string {
	p, err := parse(payload)
	if err != nil {
		return payload
	}

	key := cryptox.DerivePassphraseKey([]byte(passphrase), p.salt, c.iterations)
	defer common.WipeByteArray(key)

	plaintext, err := cryptox.Decrypt(p.ciphertext, p.iv, key)
	if err != nil {
		return Undecryptable
	}
	return string(plaintext)
}

type parsed struct {
	salt       []byte
	iv         []byte
	ciphertext []byte
}

func parse(payload string) (*parsed, error) {
	if !strings.HasPrefix(payload, Prefix+separator) {
		return nil, ErrNotEnvelope
	}

	parts := strings.Split(payload, separator)
	if len(parts) != numParts {
		return nil, ErrNotEnvelope
	}
	if parts[1] != Version {
		return nil, ErrBadVersion
	}

	salt, err := encoding.DecodeString(parts[2])
	if err != nil || len(salt) != SaltSize {
		return nil, ErrNotEnvelope
	}
	iv, err := encoding.DecodeString(parts[3])
	if err != nil || len(iv) != cryptox.NonceSize {
		return nil, ErrNotEnvelope
	}
	ciphertext, err := encoding.DecodeString(parts[4])
	if err != nil {
		return nil, ErrNotEnvelope
	}

	return &parsed{salt: salt, iv: iv, ciphertext: ciphertext}, nil
}

// IsEnvelope reports whether payload parses as a current-version envelope.
func IsEnvelope(payload string) bool {
	_, err := parse(payload)
	return err == nil
}

// Encode calls Default.Encode.
func Encode(plaintext, passphrase string) (string, error) {
	return Default.Encode(plaintext, passphrase)
}

// Decode calls Default.Decode.
func Decode(payload, passphrase string) string {
	return Default.Decode(payload, passphrase)
}
