package symmetric_encryptor

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"vpsup/internal/ports"
)

var _ ports.SymmetricEncryptor = (*AesGcmEncryptor)(nil)

const keySize = 32

// Sealed payloads start with this header, which is also the additional
// authenticated data, so a payload of another format never decrypts.
var payloadHeader = []byte("vpsup:v1:")

var ErrUnknownPayload = errors.New("encrypted payload has an unknown format")

type AesGcmEncryptor struct{}

func ProvideAesGcmEncryptor() *AesGcmEncryptor {
	return &AesGcmEncryptor{}
}

func newGCM(encodedKey []byte) (cipher.AEAD, error) {
	key, err := base64.StdEncoding.DecodeString(string(encodedKey))
	if err != nil {
		return nil, fmt.Errorf("invalid key encoding: %w", err)
	}
	if len(key) != keySize {
		return nil, fmt.Errorf("invalid key length %d, expected %d bytes", len(key), keySize)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encrypt returns header + base64(nonce | ciphertext).
func (a AesGcmEncryptor) Encrypt(plaintext []byte, encodedKey []byte) ([]byte, error) {
	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, aesGCM.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	sealed := aesGCM.Seal(nonce, nonce, plaintext, payloadHeader)

	payload := make([]byte, 0, len(payloadHeader)+base64.StdEncoding.EncodedLen(len(sealed)))
	payload = append(payload, payloadHeader...)
	return base64.StdEncoding.AppendEncode(payload, sealed), nil
}

func (a AesGcmEncryptor) Decrypt(payload []byte, encodedKey []byte) ([]byte, error) {
	if !bytes.HasPrefix(payload, payloadHeader) {
		return nil, ErrUnknownPayload
	}
	sealed, err := base64.StdEncoding.DecodeString(string(bytes.TrimSpace(payload[len(payloadHeader):])))
	if err != nil {
		return nil, fmt.Errorf("invalid payload encoding: %w", err)
	}

	aesGCM, err := newGCM(encodedKey)
	if err != nil {
		return nil, err
	}

	nonceSize := aesGCM.NonceSize()
	if len(sealed) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := sealed[:nonceSize], sealed[nonceSize:]

	plaintext, err := aesGCM.Open(nil, nonce, ciphertext, payloadHeader)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt secrets, wrong key or corrupted file: %w", err)
	}
	return plaintext, nil
}

func (a AesGcmEncryptor) CreateKey() ([]byte, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return nil, err
	}
	return []byte(base64.StdEncoding.EncodeToString(key)), nil
}
