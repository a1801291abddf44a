package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cipher_mock.go -package=mock

// VaultCipher is responsible for the password-based encryption of a single
// configuration blob. It knows nothing about files or the record format;
// its only job is to turn (password, plaintext) into a self-contained blob
// and back.
//
// Blob layout:
//
//	IV (16 bytes) ‖ AES-256-CBC(PKCS#7(plaintext))
//
// The key is derived with PBKDF2-HMAC-SHA256 from the password and the
// cipher's salt. There is no version byte and no integrity tag.
type VaultCipher interface {
	// DeriveKey returns the 256-bit key for password. The same password
	// always yields the same key for a given cipher.
	DeriveKey(password string) []byte

	// Encrypt pads plaintext, encrypts it under a key derived from password
	// with a fresh random IV, and returns IV ‖ ciphertext.
	Encrypt(password string, plaintext []byte) ([]byte, error)

	// Decrypt reverses Encrypt. It returns ErrCiphertextTooShort or
	// ErrInvalidBlockSize for structurally broken blobs and ErrInvalidPadding
	// when the padding check fails, which is what a wrong password produces.
	Decrypt(password string, blob []byte) ([]byte, error)
}
