package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
)

// Fields are the parts of a token, sliced from the token without copying.
type Fields struct {
	// Version is the first byte, always Version after a successful Parse.
	Version byte
	// Timestamp is the embedded creation time in seconds since the epoch.
	// It is never checked against a time-to-live.
	Timestamp uint64
	// IV is the CBC initialization vector.
	IV []byte
	// Ciphertext is the AES-128-CBC output, a positive multiple of 16 bytes.
	Ciphertext []byte
	// Tag is the HMAC-SHA256 tag over everything before it.
	Tag []byte
}

// Seal builds a raw token. The caller supplies the IV and timestamp so the
// output is fully determined by its inputs.
func Seal(keys *KeyPair, iv []byte, timestamp uint64, plaintext []byte) ([]byte, error) {
	ciphertext, err := EncryptCBC(keys.EncryptionKey[:], iv, plaintext)
	if err != nil {
		return nil, err
	}

	token := make([]byte, 0, HeaderSize+len(ciphertext)+TagSize)
	token = append(token, Version)
	token = binary.BigEndian.AppendUint64(token, timestamp)
	token = append(token, iv...)
	token = append(token, ciphertext...)

	return append(token, sign(keys, token)...), nil
}

// Parse checks the token length and version and slices out its fields.
// It does not authenticate the token.
func Parse(token []byte) (*Fields, error) {
	if len(token) < MinTokenSize {
		return nil, ErrMalformedToken
	}

	body := len(token) - TagSize
	f := &Fields{
		Version:    token[0],
		Timestamp:  binary.BigEndian.Uint64(token[VersionSize : VersionSize+TimestampSize]),
		IV:         token[VersionSize+TimestampSize : HeaderSize],
		Ciphertext: token[HeaderSize:body],
		Tag:        token[body:],
	}

	if f.Version != Version {
		return nil, ErrInvalidVersion
	}

	return f, nil
}

// Verify recomputes the tag over the token body and compares it in constant
// time. The token must already have passed Parse.
func Verify(keys *KeyPair, token []byte) error {
	if len(token) < MinTokenSize {
		return ErrMalformedToken
	}

	body := len(token) - TagSize
	if !hmac.Equal(sign(keys, token[:body]), token[body:]) {
		return ErrInvalidSignature
	}
	return nil
}

// Open parses, verifies and decrypts a raw token, in that order.
func Open(keys *KeyPair, token []byte) ([]byte, error) {
	f, err := Parse(token)
	if err != nil {
		return nil, err
	}

	if err := Verify(keys, token); err != nil {
		return nil, err
	}

	return DecryptCBC(keys.EncryptionKey[:], f.IV, f.Ciphertext)
}

func sign(keys *KeyPair, data []byte) []byte {
	mac := hmac.New(sha256.New, keys.SigningKey[:])
	mac.Write(data)
	return mac.Sum(nil)
}
