package crypto

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestBase64URLRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", []byte{}},
		{"simple", []byte("hello")},
		{"binary zeros", []byte{0x00, 0x00, 0x00}},
		{"binary all ones", []byte{0xff, 0xff, 0xff}},
		{"binary mixed", []byte{0x00, 0xff, 0x7f, 0x80}},
		{"url unsafe chars", []byte{0xfb, 0xf0}}, // Would produce + or / in standard base64
		{"single byte", []byte{0x42}},
		{"two bytes", []byte{0x42, 0x43}},
		{"secret sized", make([]byte, SecretSize)},
		{"large data", make([]byte, 10000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeBase64URL(tt.data)
			decoded, err := DecodeBase64URL(encoded)
			if err != nil {
				t.Fatalf("DecodeBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, tt.data) {
				t.Errorf("round trip failed: got %v, want %v", decoded, tt.data)
			}
		})
	}
}

func TestEncodeBase64URL_NoPaddingURLSafe(t *testing.T) {
	// 0xfb 0xff produces '+' and '/' in standard base64.
	encoded := EncodeBase64URL([]byte{0xfb, 0xff, 0x3f, 0xff, 0x01})

	for _, c := range []string{"=", "+", "/"} {
		if strings.Contains(encoded, c) {
			t.Errorf("encoded %q contains %q", encoded, c)
		}
	}
}

func TestDecodeBase64URL_AcceptsPadding(t *testing.T) {
	original := []byte("hello world")

	tests := []struct {
		name    string
		encoded string
	}{
		{"raw url encoding", "aGVsbG8gd29ybGQ"},
		{"url encoding with padding", "aGVsbG8gd29ybGQ="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decoded, err := DecodeBase64URL(tt.encoded)
			if err != nil {
				t.Fatalf("DecodeBase64URL() error = %v", err)
			}
			if !bytes.Equal(decoded, original) {
				t.Errorf("DecodeBase64URL() = %v, want %v", decoded, original)
			}
		})
	}
}

func TestDecodeBase64URL_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"invalid chars", "!!!invalid!!!"},
		{"standard alphabet plus", "+_8"},
		{"standard alphabet slash", "-/8"},
		{"spaces in middle", "aGVs bG8"},
		{"impossible length", "aGVsb"},
		{"wrong padding", "aGVsbG8gd29ybGQ=="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeBase64URL(tt.input); err == nil {
				t.Error("expected error for invalid input")
			}
		})
	}
}

func TestEncodeBase64URLPadded(t *testing.T) {
	encoded := EncodeBase64URLPadded(make([]byte, SecretSize))
	if len(encoded) != 44 {
		t.Errorf("len = %d, want 44", len(encoded))
	}
	if !strings.HasSuffix(encoded, "=") {
		t.Errorf("padded encoding %q has no padding", encoded)
	}
}

func BenchmarkEncodeBase64URL(b *testing.B) {
	data := make([]byte, 1000)
	for i := range data {
		data[i] = byte(i % 256)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = EncodeBase64URL(data)
	}
}

// Example_base64Encoding shows that both padded and unpadded text decode.
func Example_base64Encoding() {
	data := []byte("Hello, World!")

	unpadded := EncodeBase64URL(data)
	padded := EncodeBase64URLPadded(data)
	fmt.Printf("Unpadded: %s\n", unpadded)
	fmt.Printf("Padded: %s\n", padded)

	decoded1, _ := DecodeBase64URL(unpadded)
	decoded2, _ := DecodeBase64URL(padded)
	fmt.Printf("Decoded match: %v\n", bytes.Equal(decoded1, decoded2))

	// Output:
	// Unpadded: SGVsbG8sIFdvcmxkIQ
	// Padded: SGVsbG8sIFdvcmxkIQ==
	// Decoded match: true
}
