package crypto

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"
)

func TestDeriveKeys_SplitsSecret(t *testing.T) {
	t.Parallel()
	raw := make([]byte, SecretSize)
	for i := range raw {
		raw[i] = byte(i)
	}

	keys, err := DeriveKeys(EncodeBase64URL(raw))
	if err != nil {
		t.Fatalf("DeriveKeys() error = %v", err)
	}

	if !bytes.Equal(keys.SigningKey[:], raw[:16]) {
		t.Errorf("SigningKey = %x, want %x", keys.SigningKey, raw[:16])
	}
	if !bytes.Equal(keys.EncryptionKey[:], raw[16:]) {
		t.Errorf("EncryptionKey = %x, want %x", keys.EncryptionKey, raw[16:])
	}
}

func TestDeriveKeys_PaddedAndUnpadded(t *testing.T) {
	t.Parallel()
	raw := bytes.Repeat([]byte{0xab}, SecretSize)

	for _, secret := range []string{EncodeBase64URL(raw), EncodeBase64URLPadded(raw)} {
		keys, err := DeriveKeys(secret)
		if err != nil {
			t.Fatalf("DeriveKeys(%q) error = %v", secret, err)
		}
		if keys.SigningKey[0] != 0xab || keys.EncryptionKey[15] != 0xab {
			t.Errorf("DeriveKeys(%q) produced wrong keys", secret)
		}
	}
}

func TestDeriveKeys_InvalidLength(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		secret string
		length int
	}{
		{"empty", "", 0},
		{"16 bytes", EncodeBase64URL(make([]byte, 16)), 16},
		{"31 bytes", EncodeBase64URL(make([]byte, 31)), 31},
		{"33 bytes", EncodeBase64URL(make([]byte, 33)), 33},
		{"64 bytes", EncodeBase64URL(make([]byte, 64)), 64},
		{"not base64url", "not a key!", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DeriveKeys(tt.secret)
			if !errors.Is(err, ErrInvalidKeyLength) {
				t.Fatalf("expected ErrInvalidKeyLength, got %v", err)
			}
			var kerr *KeyLengthError
			if !errors.As(err, &kerr) {
				t.Fatalf("expected *KeyLengthError, got %T", err)
			}
			if kerr.Length != tt.length {
				t.Errorf("Length = %d, want %d", kerr.Length, tt.length)
			}
		})
	}
}

func TestKeyLengthError_Error(t *testing.T) {
	tests := []struct {
		length   int
		expected string
	}{
		{31, "invalid key length: got 31, want 32"},
		{-1, "invalid key length: secret is not base64url"},
	}

	for _, tt := range tests {
		err := &KeyLengthError{Length: tt.length}
		if err.Error() != tt.expected {
			t.Errorf("Error() = %q, want %q", err.Error(), tt.expected)
		}
	}
}

func TestKeyPair_Wipe(t *testing.T) {
	keys, err := NewKeyPair(bytes.Repeat([]byte{0xff}, SecretSize))
	if err != nil {
		t.Fatal(err)
	}

	keys.Wipe()

	var zero [16]byte
	if keys.SigningKey != zero || keys.EncryptionKey != zero {
		t.Error("Wipe() left key material behind")
	}

	var nilKeys *KeyPair
	nilKeys.Wipe()
}

func TestNewKeyPair_DoesNotAlias(t *testing.T) {
	raw := bytes.Repeat([]byte{0x01}, SecretSize)
	keys, err := NewKeyPair(raw)
	if err != nil {
		t.Fatal(err)
	}

	Wipe(raw)
	if keys.SigningKey[0] != 0x01 {
		t.Error("KeyPair shares memory with its input")
	}
}

func TestGenerateSecret(t *testing.T) {
	t.Run("reads secret size bytes", func(t *testing.T) {
		src := bytes.NewReader(bytes.Repeat([]byte{0x07}, 64))
		secret, err := GenerateSecret(src)
		if err != nil {
			t.Fatalf("GenerateSecret() error = %v", err)
		}
		if !bytes.Equal(secret, bytes.Repeat([]byte{0x07}, SecretSize)) {
			t.Errorf("GenerateSecret() = %x", secret)
		}
	})

	t.Run("short reader", func(t *testing.T) {
		_, err := GenerateSecret(bytes.NewReader(make([]byte, 10)))
		if !errors.Is(err, ErrEntropyUnavailable) {
			t.Errorf("expected ErrEntropyUnavailable, got %v", err)
		}
	})

	t.Run("failing reader", func(t *testing.T) {
		_, err := GenerateSecret(iotest.ErrReader(errors.New("no entropy")))
		if !errors.Is(err, ErrEntropyUnavailable) {
			t.Errorf("expected ErrEntropyUnavailable, got %v", err)
		}
	})
}

func TestWipe(t *testing.T) {
	b := []byte{1, 2, 3}
	Wipe(b)
	if !bytes.Equal(b, []byte{0, 0, 0}) {
		t.Errorf("Wipe() = %v", b)
	}
	Wipe(nil)
}
