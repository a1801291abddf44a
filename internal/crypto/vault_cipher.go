// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"
)

// Key derivation and block parameters of the vault format. Changing any of
// them makes existing vault files unreadable.
const (
	// DefaultIterations is the PBKDF2 iteration count.
	DefaultIterations = 10000

	// KeySize is the derived key length in bytes (AES-256).
	KeySize = 32

	// IVSize is the length of the initialization vector stored in front of
	// the ciphertext. It equals the AES block size.
	IVSize = aes.BlockSize
)

// DefaultSalt is shared by every installation and every vault file so that
// files written by earlier releases keep decrypting.
//
// WARNING: a fixed salt lets one precomputed dictionary attack all vault
// files at once. A production-grade format stores a random per-file salt
// next to the IV.
var DefaultSalt = []byte("Y7W0xXp_o8zM5gR9-KqN-u2JtV1jA6bDcSfL3eH4cEwI7hG_rZlP8yFv4sQ_aT0bU9d")

// vaultCipher is the private implementation of [VaultCipher].
type vaultCipher struct {
	salt       []byte
	iterations int
	keyLen     int
	random     io.Reader
}

// NewVaultCipher constructs a [VaultCipher] with the parameters of the
// on-disk vault format:
//   - salt:       [DefaultSalt]
//   - iterations: 10000
//   - key length: 32 bytes (256 bits)
func NewVaultCipher() VaultCipher {
	return &vaultCipher{
		salt:       DefaultSalt,
		iterations: DefaultIterations,
		keyLen:     KeySize,
		random:     rand.Reader,
	}
}

// DeriveKey applies PBKDF2 with HMAC-SHA256 to password and salt. It is a
// pure function.
func DeriveKey(password string, salt []byte, iterations, keyLen int) []byte {
	return pbkdf2.Key([]byte(password), salt, iterations, keyLen, sha256.New)
}

// DeriveKey implements [VaultCipher].
func (v *vaultCipher) DeriveKey(password string) []byte {
	return DeriveKey(password, v.salt, v.iterations, v.keyLen)
}

// Encrypt implements [VaultCipher]. A new IV is read from the OS CSPRNG on
// every call, so two encryptions of the same input never produce the same
// blob.
func (v *vaultCipher) Encrypt(password string, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(v.DeriveKey(password))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(v.random, iv); err != nil {
		return nil, fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	blob := make([]byte, IVSize+len(padded))
	copy(blob, iv)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(blob[IVSize:], padded)

	return blob, nil
}

// Decrypt implements [VaultCipher].
func (v *vaultCipher) Decrypt(password string, blob []byte) ([]byte, error) {
	if len(blob) < IVSize {
		return nil, ErrCiphertextTooShort
	}

	iv, ciphertext := blob[:IVSize], blob[IVSize:]
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, ErrInvalidBlockSize
	}

	block, err := aes.NewCipher(v.DeriveKey(password))
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)

	return pkcs7Unpad(plain, aes.BlockSize)
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	return append(bytes.Clone(data), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
