package crypto

import (
	"crypto/aes"
	"crypto/sha256"
)

const (
	// Version is the only token version byte this package produces or accepts.
	Version byte = 0x80

	// SecretSize is the size of a raw Fernet secret in bytes.
	SecretSize = 32
	// SigningKeySize is the size of the HMAC-SHA256 subkey in bytes.
	SigningKeySize = 16
	// EncryptionKeySize is the size of the AES-128 subkey in bytes.
	EncryptionKeySize = 16

	// VersionSize is the size of the version field in bytes.
	VersionSize = 1
	// TimestampSize is the size of the big-endian timestamp field in bytes.
	TimestampSize = 8
	// IVSize is the size of the CBC initialization vector in bytes.
	IVSize = aes.BlockSize
	// TagSize is the size of the HMAC-SHA256 tag in bytes.
	TagSize = sha256.Size

	// HeaderSize is the number of bytes preceding the ciphertext.
	HeaderSize = VersionSize + TimestampSize + IVSize

	// MinTokenSize is the smallest structurally valid token: a header, one
	// ciphertext block and a tag.
	MinTokenSize = HeaderSize + aes.BlockSize + TagSize
)

const (
	// ScryptN is the scrypt CPU/memory cost used by KeyFromPassphrase.
	ScryptN = 1 << 15
	// ScryptR is the scrypt block size.
	ScryptR = 8
	// ScryptP is the scrypt parallelism factor.
	ScryptP = 1
	// MinSaltSize is the smallest salt accepted by KeyFromPassphrase.
	MinSaltSize = 16
)
