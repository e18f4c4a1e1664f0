package symmetric_encryptor

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAesGcmEncryptor_EncryptReturnsCipherTextWithHeader(t *testing.T) {
	sut := ProvideAesGcmEncryptor()
	plainText := []byte(uuid.NewString())
	key, err := sut.CreateKey()
	require.NoError(t, err)

	result, err := sut.Encrypt(plainText, key)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(result, []byte("vpsup:v1:")))
	assert.NotContains(t, string(result), string(plainText))
}

func TestAesGcmEncryptor_EncryptReturnsDifferentCipherTextsEachTime(t *testing.T) {
	sut := ProvideAesGcmEncryptor()
	plainText := []byte(uuid.NewString())
	key, _ := sut.CreateKey()

	cipherText1, _ := sut.Encrypt(plainText, key)
	cipherText2, _ := sut.Encrypt(plainText, key)

	assert.NotEqual(t, cipherText1, cipherText2)
}

func TestAesGcmEncryptor_DecryptReturnsPlainText(t *testing.T) {
	sut := ProvideAesGcmEncryptor()
	plainText := []byte(`[{"key":"singbox.uuid","value":"` + uuid.NewString() + `"}]`)
	key, _ := sut.CreateKey()
	cipherText, err := sut.Encrypt(plainText, key)
	require.NoError(t, err)

	result, err := sut.Decrypt(append(cipherText, '\n'), key)

	require.NoError(t, err)
	assert.Equal(t, plainText, result)
}

func TestAesGcmEncryptor_DecryptWithWrongKeyReturnsError(t *testing.T) {
	sut := ProvideAesGcmEncryptor()
	key1, _ := sut.CreateKey()
	key2, _ := sut.CreateKey()
	cipherText, err := sut.Encrypt([]byte(uuid.NewString()), key1)
	require.NoError(t, err)

	result, err := sut.Decrypt(cipherText, key2)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestAesGcmEncryptor_DecryptRejectsUnknownFormat(t *testing.T) {
	sut := ProvideAesGcmEncryptor()
	key, _ := sut.CreateKey()

	_, err := sut.Decrypt([]byte(base64.StdEncoding.EncodeToString([]byte("legacy"))), key)

	assert.ErrorIs(t, err, ErrUnknownPayload)
}

func TestAesGcmEncryptor_DecryptRejectsShortCipherText(t *testing.T) {
	sut := ProvideAesGcmEncryptor()
	key, _ := sut.CreateKey()
	payload := append([]byte("vpsup:v1:"), base64.StdEncoding.EncodeToString([]byte("short"))...)

	_, err := sut.Decrypt(payload, key)

	assert.EqualError(t, err, "ciphertext too short")
}

func TestAesGcmEncryptor_RejectsInvalidKeys(t *testing.T) {
	sut := ProvideAesGcmEncryptor()

	_, err := sut.Encrypt([]byte("x"), []byte("not base64!"))
	assert.Error(t, err)

	_, err = sut.Encrypt([]byte("x"), []byte(base64.StdEncoding.EncodeToString([]byte("too short"))))
	assert.ErrorContains(t, err, "invalid key length")
}
