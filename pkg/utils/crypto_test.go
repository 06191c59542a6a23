package utils

import (
	"testing"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func TestEncryptDecryptRoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "token", plaintext: "ya29.a0AfB_byDummyAccessToken"},
		{name: "empty", plaintext: ""},
		{name: "unicode", plaintext: "пароль-секрет"},
		{name: "long", plaintext: string(make([]byte, 4096))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := Encrypt([]byte(tt.plaintext), testKey)
			if err != nil {
				t.Fatalf("Encrypt() returned error: %v", err)
			}
			if encrypted == tt.plaintext && tt.plaintext != "" {
				t.Error("Encrypt() returned plaintext unchanged")
			}

			decrypted, err := Decrypt(encrypted, testKey)
			if err != nil {
				t.Fatalf("Decrypt() returned error: %v", err)
			}
			if decrypted != tt.plaintext {
				t.Errorf("Decrypt() = %q, expected %q", decrypted, tt.plaintext)
			}
		})
	}
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	first, err := Encrypt([]byte("same input"), testKey)
	if err != nil {
		t.Fatalf("Encrypt() returned error: %v", err)
	}
	second, err := Encrypt([]byte("same input"), testKey)
	if err != nil {
		t.Fatalf("Encrypt() returned error: %v", err)
	}
	if first == second {
		t.Error("two encryptions of the same input produced identical ciphertext")
	}
}

func TestDecryptWrongKey(t *testing.T) {
	encrypted, err := Encrypt([]byte("secret"), testKey)
	if err != nil {
		t.Fatalf("Encrypt() returned error: %v", err)
	}

	otherKey := []byte("ffffffffffffffffffffffffffffffff")
	if _, err := Decrypt(encrypted, otherKey); err == nil {
		t.Error("Decrypt() with wrong key succeeded")
	}
}

func TestDecryptInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "not base64", input: "%%%not-base64%%%"},
		{name: "too short", input: "YWJj"},
		{name: "empty", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decrypt(tt.input, testKey); err == nil {
				t.Error("Decrypt() succeeded on invalid input")
			}
		})
	}
}

func TestEncryptInvalidKeySize(t *testing.T) {
	if _, err := Encrypt([]byte("data"), []byte("short")); err == nil {
		t.Error("Encrypt() succeeded with invalid key size")
	}
}
