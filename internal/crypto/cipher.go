// SPDX-License-Identifier: Apache-2.0

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
)

// secretCipher is the private implementation of [SecretCipher] built on
// AES-256-GCM. The 256-bit key is derived once, at construction time, as
// SHA-256 of the configured application secret, so any secret length is
// accepted while the cipher always receives exactly 32 key bytes.
type secretCipher struct {
	aead cipher.AEAD
}

// NewSecretCipher constructs a [SecretCipher] keyed by the given application
// secret. Returns an error only if the derived key is rejected by the AES
// implementation, which cannot happen for a SHA-256 output and indicates a
// broken runtime.
func NewSecretCipher(secret string) (SecretCipher, error) {
	key := sha256.Sum256([]byte(secret))

	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return &secretCipher{aead: aead}, nil
}

// Encrypt implements [SecretCipher]. It seals plaintext with AES-256-GCM
// under a fresh random 12-byte nonce. The nonce is prepended to the
// ciphertext so Decrypt can split it out: blob = nonce ‖ ciphertext. The
// blob is returned Base64-encoded (standard encoding). Encrypting the same
// plaintext twice yields different blobs.
func (c *secretCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nil, nonce, []byte(plaintext), nil)
	blob := append(nonce, ciphertext...)

	return base64.StdEncoding.EncodeToString(blob), nil
}

// Decrypt implements [SecretCipher]. It Base64-decodes the blob, splits out
// the nonce, and opens the ciphertext. Every failure mode (bad Base64, blob
// shorter than the nonce, authentication-tag mismatch) is reported as
// [ErrCipher]: a stored blob that cannot be opened means the ciphertext is
// corrupted or was produced under a different secret, and the caller cannot
// act on the distinction.
func (c *secretCipher) Decrypt(encrypted string) (string, error) {
	blob, err := base64.StdEncoding.DecodeString(encrypted)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %w", ErrCipher, err)
	}

	nonceSize := c.aead.NonceSize()
	if len(blob) < nonceSize {
		return "", fmt.Errorf("%w: ciphertext too short", ErrCipher)
	}
	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]

	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: open ciphertext: %w", ErrCipher, err)
	}

	return string(plaintext), nil
}
