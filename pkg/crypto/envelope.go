// Package crypto provides AES-GCM envelope encryption for secrets at rest.
//
// Ciphertexts are self-describing: "ENC:v1:" + base64(nonce || ciphertext || tag).
// Values without the prefix are treated as legacy plaintext and passed through
// on decrypt so pre-encryption rows keep working.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

// EnvelopePrefix marks a v1 encrypted value.
const EnvelopePrefix = "ENC:v1:"

// nonceSize is the GCM standard nonce size (12 bytes).
const nonceSize = 12

var (
	ErrCiphertextTooShort = errors.New("ciphertext too short")
	ErrMasterKeyEmpty     = errors.New("master key must not be empty")
)

// Encryptor envelope-encrypts and decrypts credential values.
// The 256-bit AES key is derived as SHA-256 over the configured master key.
type Encryptor struct {
	key [32]byte

	legacyWarnOnce sync.Once
}

// NewEncryptor derives the AES-256 key from the master key string.
func NewEncryptor(masterKey string) (*Encryptor, error) {
	if masterKey == "" {
		return nil, ErrMasterKeyEmpty
	}
	return &Encryptor{key: sha256.Sum256([]byte(masterKey))}, nil
}

// IsEncrypted reports whether s carries the v1 envelope prefix.
func IsEncrypted(s string) bool {
	return strings.HasPrefix(s, EnvelopePrefix)
}

// Encrypt seals plaintext into an ENC:v1 envelope with a fresh random nonce.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	block, err := aes.NewCipher(e.key[:])
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}

	// Seal appends the encrypted+authenticated ciphertext to the nonce.
	sealed := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return EnvelopePrefix + base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens an ENC:v1 envelope. Values without the envelope prefix are
// returned unchanged (legacy plaintext passthrough), logged once per process.
func (e *Encryptor) Decrypt(value string) (string, error) {
	if !IsEncrypted(value) {
		e.legacyWarnOnce.Do(func() {
			slog.Warn("Decrypting legacy plaintext credential; re-save to encrypt")
		})
		return value, nil
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(value, EnvelopePrefix))
	if err != nil {
		return "", fmt.Errorf("decode envelope: %w", err)
	}
	if len(raw) < nonceSize {
		return "", ErrCiphertextTooShort
	}

	block, err := aes.NewCipher(e.key[:])
	if err != nil {
		return "", fmt.Errorf("new cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", fmt.Errorf("new gcm: %w", err)
	}

	nonce, data := raw[:nonceSize], raw[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, data, nil)
	if err != nil {
		return "", fmt.Errorf("decrypt: %w", err)
	}
	return string(plaintext), nil
}
