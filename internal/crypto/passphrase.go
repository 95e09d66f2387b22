package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// SecretFromPassphrase stretches a passphrase into a raw secret with scrypt.
func SecretFromPassphrase(passphrase string, salt []byte) ([]byte, error) {
	if len(salt) < MinSaltSize {
		return nil, fmt.Errorf("%w: got %d, want at least %d", ErrInvalidSaltSize, len(salt), MinSaltSize)
	}

	secret, err := scrypt.Key([]byte(passphrase), salt, ScryptN, ScryptR, ScryptP, SecretSize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive secret: %w", err)
	}
	return secret, nil
}
