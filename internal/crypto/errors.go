package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyLength is returned when a secret does not decode to
	// exactly SecretSize bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrMalformedToken is returned when a token is not valid base64url or
	// is shorter than MinTokenSize.
	ErrMalformedToken = errors.New("malformed token")

	// ErrInvalidVersion is returned when the first token byte is not Version.
	ErrInvalidVersion = errors.New("invalid token version")

	// ErrInvalidSignature is returned when the HMAC tag does not match.
	ErrInvalidSignature = errors.New("invalid token signature")

	// ErrInvalidPadding is returned when PKCS7 padding cannot be removed
	// after decryption, or the ciphertext is not whole blocks.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrEntropyUnavailable is returned when the random source fails to
	// produce an IV or key.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrInvalidSaltSize is returned when a passphrase salt is too short.
	ErrInvalidSaltSize = errors.New("invalid salt size")
)

// KeyLengthError reports a secret that did not decode to SecretSize bytes.
// Length is -1 when the secret text is not base64url at all.
type KeyLengthError struct {
	Length int
}

func (e *KeyLengthError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("%s: secret is not base64url", ErrInvalidKeyLength)
	}
	return fmt.Sprintf("%s: got %d, want %d", ErrInvalidKeyLength, e.Length, SecretSize)
}

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}
