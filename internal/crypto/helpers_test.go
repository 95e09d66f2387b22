package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"testing"
)

// blockDecrypt runs raw CBC decryption without unpadding.
func blockDecrypt(t *testing.T, key, iv, src, dst []byte) {
	t.Helper()
	block, err := aes.NewCipher(key)
	if err != nil {
		t.Fatal(err)
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(dst, src[:len(dst)])
}

func testKeys(t *testing.T, b byte) *KeyPair {
	t.Helper()
	raw := make([]byte, SecretSize)
	for i := range raw {
		raw[i] = b
	}
	keys, err := NewKeyPair(raw)
	if err != nil {
		t.Fatal(err)
	}
	return keys
}
