// Package crypto implements the Fernet token construction used by the
// public fernet package.
//
// # Algorithm Suite
//
//   - AES-128-CBC with PKCS7 padding for confidentiality.
//   - HMAC-SHA256 over the version, timestamp, IV and ciphertext for
//     integrity and authenticity.
//   - scrypt (N=2^15, r=8, p=1) for turning a passphrase into a secret.
//
// # Token Layout
//
//	offset  size  field
//	0       1     version, fixed 0x80
//	1       8     timestamp, big-endian seconds since the Unix epoch
//	9       16    IV
//	25      N     ciphertext, N >= 16 and N % 16 == 0
//	25+N    32    HMAC-SHA256 tag over bytes [0, 25+N)
//
// # Critical Security Notes
//
// The tag MUST be verified before the ciphertext is decrypted. [Open] does
// this for callers; code that works with [Parse] directly must call [Verify]
// before [DecryptCBC]:
//
//	fields, err := crypto.Parse(token)
//	if err != nil {
//	    return nil, err
//	}
//	if err := crypto.Verify(keys, token); err != nil {
//	    return nil, err
//	}
//	plaintext, err := crypto.DecryptCBC(keys.EncryptionKey[:], fields.IV, fields.Ciphertext)
//
// The IV MUST come from a cryptographically secure source. Reusing an IV
// with the same key leaks whether two plaintexts share a prefix.
//
// # Key Material
//
// A secret is 32 bytes: the first half signs, the second half encrypts.
// [KeyPair.Wipe] zeroes both halves and should be deferred by every caller
// of [DeriveKeys].
package crypto
