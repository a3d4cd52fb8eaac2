package crypto

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecretCipher_RoundTrip(t *testing.T) {
	c, err := NewSecretCipher("application-secret")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
	}{
		{name: "regular secret", plaintext: "hunter2"},
		{name: "empty string", plaintext: ""},
		{name: "unicode", plaintext: "пароль-쉿-🤫"},
		{name: "long value", plaintext: "4111 1111 1111 1111 / 123 / 12-2030"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encrypted, err := c.Encrypt(tt.plaintext)
			require.NoError(t, err)
			assert.NotEqual(t, tt.plaintext, encrypted)

			decrypted, err := c.Decrypt(encrypted)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, decrypted)
		})
	}
}

func TestSecretCipher_EncryptionIsRandomized(t *testing.T) {
	c, err := NewSecretCipher("application-secret")
	require.NoError(t, err)

	first, err := c.Encrypt("same secret")
	require.NoError(t, err)
	second, err := c.Encrypt("same secret")
	require.NoError(t, err)

	// fresh nonce per call: identical plaintexts must not produce identical blobs
	assert.NotEqual(t, first, second)
}

func TestSecretCipher_Decrypt_WrongSecret(t *testing.T) {
	sealer, err := NewSecretCipher("secret-one")
	require.NoError(t, err)
	opener, err := NewSecretCipher("secret-two")
	require.NoError(t, err)

	encrypted, err := sealer.Encrypt("hunter2")
	require.NoError(t, err)

	_, err = opener.Decrypt(encrypted)

	assert.ErrorIs(t, err, ErrCipher)
}

func TestSecretCipher_Decrypt_TamperedBlob(t *testing.T) {
	c, err := NewSecretCipher("application-secret")
	require.NoError(t, err)

	encrypted, err := c.Encrypt("hunter2")
	require.NoError(t, err)

	blob, err := base64.StdEncoding.DecodeString(encrypted)
	require.NoError(t, err)
	blob[len(blob)-1] ^= 0xFF
	tampered := base64.StdEncoding.EncodeToString(blob)

	_, err = c.Decrypt(tampered)

	assert.ErrorIs(t, err, ErrCipher)
}

func TestSecretCipher_Decrypt_MalformedInput(t *testing.T) {
	c, err := NewSecretCipher("application-secret")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{name: "not base64", input: "%%%not-base64%%%"},
		{name: "blob shorter than nonce", input: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Decrypt(tt.input)

			assert.ErrorIs(t, err, ErrCipher)
		})
	}
}
