package fernet

import (
	"errors"
	"fmt"

	"github.com/cryptofernet/fernet-go/internal/crypto"
)

// Kind identifies the class of a failure. Every error returned by this
// package carries exactly one Kind.
type Kind int

const (
	// KindInvalidKeyLength means the secret did not decode to 32 bytes.
	KindInvalidKeyLength Kind = iota + 1
	// KindMalformedToken means the token was not base64url or too short.
	KindMalformedToken
	// KindInvalidVersion means the token's version byte was not 0x80.
	KindInvalidVersion
	// KindInvalidSignature means the token's HMAC tag did not match.
	KindInvalidSignature
	// KindDecryption means the padding of a verified token was invalid.
	KindDecryption
	// KindInvalidUTF8 means the decrypted bytes were not valid UTF-8.
	KindInvalidUTF8
	// KindEntropyUnavailable means the random source failed.
	KindEntropyUnavailable
)

var kindNames = map[Kind]string{
	KindInvalidKeyLength:   "invalid key length",
	KindMalformedToken:     "malformed token",
	KindInvalidVersion:     "invalid token version",
	KindInvalidSignature:   "invalid token signature",
	KindDecryption:         "decryption failed",
	KindInvalidUTF8:        "plaintext is not valid UTF-8",
	KindEntropyUnavailable: "entropy unavailable",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidKeyLength is returned when the secret is not 32 bytes.
	ErrInvalidKeyLength = errors.New(KindInvalidKeyLength.String())

	// ErrMalformedToken is returned when the token cannot be decoded or is
	// shorter than the smallest valid token.
	ErrMalformedToken = errors.New(KindMalformedToken.String())

	// ErrInvalidVersion is returned when the token version is not 0x80.
	ErrInvalidVersion = errors.New(KindInvalidVersion.String())

	// ErrInvalidSignature is returned when the token fails authentication.
	ErrInvalidSignature = errors.New(KindInvalidSignature.String())

	// ErrDecryptionFailed is returned when an authenticated token does not
	// decrypt to correctly padded plaintext.
	ErrDecryptionFailed = errors.New(KindDecryption.String())

	// ErrInvalidUTF8 is returned when the plaintext is not valid UTF-8.
	ErrInvalidUTF8 = errors.New(KindInvalidUTF8.String())

	// ErrEntropyUnavailable is returned when no random bytes can be read.
	ErrEntropyUnavailable = errors.New(KindEntropyUnavailable.String())

	// ErrInvalidSaltSize is returned by KeyFromPassphrase for salts shorter
	// than 16 bytes.
	ErrInvalidSaltSize = crypto.ErrInvalidSaltSize
)

var kindSentinels = map[Kind]error{
	KindInvalidKeyLength:   ErrInvalidKeyLength,
	KindMalformedToken:     ErrMalformedToken,
	KindInvalidVersion:     ErrInvalidVersion,
	KindInvalidSignature:   ErrInvalidSignature,
	KindDecryption:         ErrDecryptionFailed,
	KindInvalidUTF8:        ErrInvalidUTF8,
	KindEntropyUnavailable: ErrEntropyUnavailable,
}

// Error is implemented by all errors returned from this package.
type Error interface {
	error
	Kind() Kind
}

// KindOf reports the Kind of err, looking through wrapped errors.
func KindOf(err error) (Kind, bool) {
	var ferr Error
	if errors.As(err, &ferr) {
		return ferr.Kind(), true
	}
	return 0, false
}

// KeyLengthError reports a secret that did not decode to 32 bytes.
type KeyLengthError struct {
	// Length is the decoded length, or -1 if the secret was not base64url.
	Length int
}

func (e *KeyLengthError) Error() string {
	if e.Length < 0 {
		return fmt.Sprintf("%s: secret is not base64url", KindInvalidKeyLength)
	}
	return fmt.Sprintf("%s: %d", KindInvalidKeyLength, e.Length)
}

// Kind implements the Error interface.
func (e *KeyLengthError) Kind() Kind { return KindInvalidKeyLength }

// Is implements errors.Is for sentinel error matching.
func (e *KeyLengthError) Is(target error) bool {
	return target == ErrInvalidKeyLength
}

// TokenError reports a token that failed structural or authentication
// checks. The message names only the kind so callers cannot learn which
// byte was wrong.
type TokenError struct {
	kind Kind
}

func (e *TokenError) Error() string {
	return e.kind.String()
}

// Kind implements the Error interface.
func (e *TokenError) Kind() Kind { return e.kind }

// Is implements errors.Is for sentinel error matching.
func (e *TokenError) Is(target error) bool {
	return target == kindSentinels[e.kind]
}

// DecryptionError reports a failure after the token was authenticated.
type DecryptionError struct {
	Stage string // "padding", "utf8"
	Err   error
}

func (e *DecryptionError) Error() string {
	if e.Stage == stageUTF8 {
		return KindInvalidUTF8.String()
	}
	return fmt.Sprintf("%s at %s", KindDecryption, e.Stage)
}

// Unwrap returns the underlying error.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Kind implements the Error interface.
func (e *DecryptionError) Kind() Kind {
	if e.Stage == stageUTF8 {
		return KindInvalidUTF8
	}
	return KindDecryption
}

// Is implements errors.Is for sentinel error matching.
func (e *DecryptionError) Is(target error) bool {
	return target == kindSentinels[e.Kind()]
}

// EntropyError reports a random source that could not supply bytes.
type EntropyError struct {
	Err error
}

func (e *EntropyError) Error() string {
	return fmt.Sprintf("%s: %v", KindEntropyUnavailable, e.Err)
}

// Unwrap returns the underlying error.
func (e *EntropyError) Unwrap() error {
	return e.Err
}

// Kind implements the Error interface.
func (e *EntropyError) Kind() Kind { return KindEntropyUnavailable }

// Is implements errors.Is for sentinel error matching.
func (e *EntropyError) Is(target error) bool {
	return target == ErrEntropyUnavailable
}

const (
	stagePadding = "padding"
	stageUTF8    = "utf8"
)

// wrapCryptoError converts internal crypto errors to public typed errors
// so that errors.Is() and KindOf work correctly.
func wrapCryptoError(err error) error {
	if err == nil {
		return nil
	}

	var kerr *crypto.KeyLengthError
	switch {
	case errors.As(err, &kerr):
		return &KeyLengthError{Length: kerr.Length}
	case errors.Is(err, crypto.ErrMalformedToken):
		return &TokenError{kind: KindMalformedToken}
	case errors.Is(err, crypto.ErrInvalidVersion):
		return &TokenError{kind: KindInvalidVersion}
	case errors.Is(err, crypto.ErrInvalidSignature):
		return &TokenError{kind: KindInvalidSignature}
	case errors.Is(err, crypto.ErrInvalidPadding):
		return &DecryptionError{Stage: stagePadding, Err: err}
	case errors.Is(err, crypto.ErrEntropyUnavailable):
		return &EntropyError{Err: err}
	}

	return err
}
