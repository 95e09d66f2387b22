// Package fernet implements Fernet authenticated symmetric tokens.
//
// A token carries a version byte, a creation timestamp, a random IV, an
// AES-128-CBC ciphertext and an HMAC-SHA256 tag, and is exchanged as
// URL-safe base64 text. Secrets are 32 bytes, also base64url-encoded; the
// first half is the signing key and the second half the encryption key.
//
// Basic usage:
//
//	key, err := fernet.GenerateKey()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	token, err := fernet.Encrypt("hello", key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := fernet.Decrypt(token, key)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every failure carries a [Kind], available through [KindOf] and matchable
// with errors.Is against the package sentinels:
//
//	switch kind, _ := fernet.KindOf(err); kind {
//	case fernet.KindInvalidSignature:
//	    // wrong key or tampered token
//	case fernet.KindMalformedToken, fernet.KindInvalidVersion:
//	    // not a Fernet token
//	}
//
// # Timestamps
//
// The creation time is embedded in every token but Decrypt does not enforce
// a maximum age. Use [ExtractTimestamp] to apply a freshness policy.
//
// # Testing
//
// [WithClock] and [WithRandReader] replace the clock and entropy source, so
// tests can produce byte-exact tokens.
package fernet
