package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptDecryptRoundtrip(t *testing.T) {
	enc, err := NewEncryptor("test-master-key")
	require.NoError(t, err)

	sealed, err := enc.Encrypt("hunter2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(sealed, "ENC:v1:"))
	assert.True(t, IsEncrypted(sealed))

	plain, err := enc.Decrypt(sealed)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plain)
}

func TestEncryptProducesFreshNonce(t *testing.T) {
	enc, err := NewEncryptor("test-master-key")
	require.NoError(t, err)

	a, err := enc.Encrypt("same input")
	require.NoError(t, err)
	b, err := enc.Encrypt("same input")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestDecryptLegacyPlaintextPassthrough(t *testing.T) {
	enc, err := NewEncryptor("test-master-key")
	require.NoError(t, err)

	plain, err := enc.Decrypt("hunter2")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", plain)
}

func TestDecryptWrongKeyFails(t *testing.T) {
	enc1, err := NewEncryptor("key-one")
	require.NoError(t, err)
	enc2, err := NewEncryptor("key-two")
	require.NoError(t, err)

	sealed, err := enc1.Encrypt("secret")
	require.NoError(t, err)

	_, err = enc2.Decrypt(sealed)
	assert.Error(t, err)
}

func TestDecryptTamperedEnvelopeFails(t *testing.T) {
	enc, err := NewEncryptor("test-master-key")
	require.NoError(t, err)

	sealed, err := enc.Encrypt("secret")
	require.NoError(t, err)

	tampered := sealed[:len(sealed)-2] + "A="
	_, err = enc.Decrypt(tampered)
	assert.Error(t, err)
}

func TestDecryptTruncatedEnvelope(t *testing.T) {
	enc, err := NewEncryptor("test-master-key")
	require.NoError(t, err)

	_, err = enc.Decrypt("ENC:v1:AAAA")
	assert.Error(t, err)
}

func TestNewEncryptorEmptyKey(t *testing.T) {
	_, err := NewEncryptor("")
	assert.ErrorIs(t, err, ErrMasterKeyEmpty)
}

func TestIsEncrypted(t *testing.T) {
	assert.False(t, IsEncrypted(""))
	assert.False(t, IsEncrypted("hunter2"))
	assert.False(t, IsEncrypted("ENC:v2:abc"))
	assert.True(t, IsEncrypted("ENC:v1:abc"))
}
