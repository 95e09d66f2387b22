package fernet

import (
	"context"
	"io"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/cryptofernet/fernet-go/internal/crypto"
)

// Version is the token version byte produced and accepted by this package.
const Version = crypto.Version

// Encrypt seals plaintext into a token using a base64url-encoded 32-byte
// secret. Two calls with the same inputs return different tokens because
// each one draws a fresh IV and records the current time.
func Encrypt(plaintext, secret string, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	keys, err := crypto.DeriveKeys(secret)
	if err != nil {
		return "", cfg.fail("encrypt", wrapCryptoError(err))
	}
	defer keys.Wipe()

	iv := make([]byte, crypto.IVSize)
	if _, err := io.ReadFull(cfg.rand, iv); err != nil {
		return "", cfg.fail("encrypt", &EntropyError{Err: err})
	}

	token, err := crypto.Seal(keys, iv, unixSeconds(cfg.now()), []byte(plaintext))
	if err != nil {
		return "", cfg.fail("encrypt", wrapCryptoError(err))
	}

	return crypto.EncodeBase64URL(token), nil
}

// Decrypt verifies a token and returns its plaintext. The tag is checked
// before any decryption is attempted. Tokens of any age are accepted.
func Decrypt(token, secret string, opts ...Option) (string, error) {
	cfg := newConfig(opts)

	raw, _, keys, err := parseToken(token, secret)
	if err != nil {
		return "", cfg.fail("decrypt", err)
	}
	defer keys.Wipe()

	plaintext, err := crypto.Open(keys, raw)
	if err != nil {
		return "", cfg.fail("decrypt", wrapCryptoError(err))
	}

	if !utf8.Valid(plaintext) {
		return "", cfg.fail("decrypt", &DecryptionError{Stage: stageUTF8, Err: ErrInvalidUTF8})
	}

	return string(plaintext), nil
}

// ExtractTimestamp verifies a token and returns the time it was created,
// without decrypting it.
func ExtractTimestamp(token, secret string, opts ...Option) (time.Time, error) {
	cfg := newConfig(opts)

	raw, f, keys, err := parseToken(token, secret)
	if err != nil {
		return time.Time{}, cfg.fail("extract timestamp", err)
	}
	defer keys.Wipe()

	if err := crypto.Verify(keys, raw); err != nil {
		return time.Time{}, cfg.fail("extract timestamp", wrapCryptoError(err))
	}

	return time.Unix(int64(f.Timestamp), 0).UTC(), nil
}

// GenerateKey returns a new random secret, base64url-encoded with padding.
func GenerateKey(opts ...Option) (string, error) {
	cfg := newConfig(opts)

	secret, err := crypto.GenerateSecret(cfg.rand)
	if err != nil {
		return "", cfg.fail("generate key", wrapCryptoError(err))
	}
	defer crypto.Wipe(secret)

	return crypto.EncodeBase64URLPadded(secret), nil
}

// KeyFromPassphrase derives a secret from a passphrase with scrypt. The
// salt must be at least 16 bytes and should be random and stored alongside
// whatever the key protects.
func KeyFromPassphrase(passphrase string, salt []byte) (string, error) {
	secret, err := crypto.SecretFromPassphrase(passphrase, salt)
	if err != nil {
		return "", err
	}
	defer crypto.Wipe(secret)

	return crypto.EncodeBase64URLPadded(secret), nil
}

// parseToken decodes and structurally checks a token, then derives the
// keys. Token shape and version are rejected before the secret is looked at.
func parseToken(token, secret string) ([]byte, *crypto.Fields, *crypto.KeyPair, error) {
	raw, err := crypto.DecodeBase64URL(token)
	if err != nil {
		return nil, nil, nil, &TokenError{kind: KindMalformedToken}
	}

	f, err := crypto.Parse(raw)
	if err != nil {
		return nil, nil, nil, wrapCryptoError(err)
	}

	keys, err := crypto.DeriveKeys(secret)
	if err != nil {
		return nil, nil, nil, wrapCryptoError(err)
	}

	return raw, f, keys, nil
}

// unixSeconds converts t to the unsigned wire timestamp. Times before the
// epoch are stamped as zero.
func unixSeconds(t time.Time) uint64 {
	s := t.Unix()
	if s < 0 {
		return 0
	}
	return uint64(s)
}

func (c *config) fail(op string, err error) error {
	if kind, ok := KindOf(err); ok {
		c.logger.LogAttrs(context.Background(), slog.LevelDebug, "fernet operation failed",
			slog.String("op", op),
			slog.String("kind", kind.String()),
		)
	}
	return err
}
