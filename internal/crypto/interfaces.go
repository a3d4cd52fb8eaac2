package crypto

// SecretCipher encrypts and decrypts individual secret fields before they
// reach storage. It knows nothing about the network, the database, or users;
// its only job is turning plaintext secrets into opaque blobs and back.
//
// Implementations must be safe for concurrent use: every request handler
// shares a single instance.
type SecretCipher interface {
	// Encrypt seals the plaintext and returns an opaque Base64 blob
	// (nonce ‖ ciphertext) safe to store in the database.
	Encrypt(plaintext string) (string, error)

	// Decrypt opens a blob previously produced by Encrypt and returns the
	// original plaintext. Returns ErrCipher if the blob is malformed,
	// truncated, or was sealed under a different secret.
	Decrypt(encrypted string) (string, error)
}
