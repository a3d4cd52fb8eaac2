package crypto

import "errors"

// ErrCipher is returned by [SecretCipher.Decrypt] when a stored blob cannot
// be opened: it is not valid Base64, shorter than the GCM nonce, or fails
// authentication-tag verification (wrong secret or corrupted ciphertext).
// Callers treat it as an internal fault, never as user input error.
var ErrCipher = errors.New("cipher operation failed")
