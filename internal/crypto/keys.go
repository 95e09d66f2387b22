package crypto

import (
	"crypto/subtle"
	"fmt"
	"io"
)

// KeyPair holds the two subkeys split from a Fernet secret.
type KeyPair struct {
	// SigningKey is the HMAC-SHA256 key, secret[0:16].
	SigningKey [SigningKeySize]byte
	// EncryptionKey is the AES-128 key, secret[16:32].
	EncryptionKey [EncryptionKeySize]byte
}

// DeriveKeys decodes a base64url secret and splits it into a KeyPair.
func DeriveKeys(secret string) (*KeyPair, error) {
	raw, err := DecodeBase64URL(secret)
	if err != nil {
		return nil, &KeyLengthError{Length: -1}
	}
	defer Wipe(raw)

	return NewKeyPair(raw)
}

// NewKeyPair splits a raw 32-byte secret into a KeyPair. The input is not
// retained.
func NewKeyPair(raw []byte) (*KeyPair, error) {
	if len(raw) != SecretSize {
		return nil, &KeyLengthError{Length: len(raw)}
	}

	var k KeyPair
	copy(k.SigningKey[:], raw[:SigningKeySize])
	copy(k.EncryptionKey[:], raw[SigningKeySize:])
	return &k, nil
}

// Wipe zeroes both subkeys.
func (k *KeyPair) Wipe() {
	if k == nil {
		return
	}
	Wipe(k.SigningKey[:])
	Wipe(k.EncryptionKey[:])
}

// GenerateSecret reads a fresh raw secret from r.
func GenerateSecret(r io.Reader) ([]byte, error) {
	secret := make([]byte, SecretSize)
	if _, err := io.ReadFull(r, secret); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEntropyUnavailable, err)
	}
	return secret, nil
}

// Wipe overwrites b with zeros in a constant-time friendly way.
func Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}
