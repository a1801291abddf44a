package crypto

import "errors"

// Errors returned by [VaultCipher.Decrypt]. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrCiphertextTooShort is returned when the blob is shorter than the IV.
	ErrCiphertextTooShort = errors.New("ciphertext too short")

	// ErrInvalidBlockSize is returned when the ciphertext after the IV is
	// empty or not a whole number of AES blocks.
	ErrInvalidBlockSize = errors.New("ciphertext is not a multiple of the block size")

	// ErrInvalidPadding is returned when PKCS#7 padding does not validate
	// after decryption.
	ErrInvalidPadding = errors.New("invalid padding")
)
