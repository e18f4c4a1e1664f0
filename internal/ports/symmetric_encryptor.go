package ports

// SymmetricEncryptor seals the secrets file at rest.
type SymmetricEncryptor interface {
	Encrypt(plaintext []byte, key []byte) ([]byte, error)
	Decrypt(ciphertext []byte, key []byte) ([]byte, error)
	// CreateKey returns a fresh random key sized for the cipher.
	CreateKey() ([]byte, error)
}
