package core

import (
	"encoding/json"
	"fmt"
	"sort"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

// SecretsEncryptionKeyName is the keyring entry holding the secrets file key.
const SecretsEncryptionKeyName = "secrets-encryption-key"

type SecretsRepository interface {
	LoadSecrets(secretsPath string) ([]*domain.Secret, error)
	SaveSecrets(secrets []*domain.Secret, secretsPath string) error
}

func ProvideEncryptedFileSecretRepository(
	fileSystem ports.FileSystem,
	keyring ports.Keyring,
	encryptor ports.SymmetricEncryptor,
) SecretsRepository {
	return &EncryptedFileSecretRepository{
		fileSystem: fileSystem,
		keyring:    keyring,
		encryptor:  encryptor,
	}
}

// EncryptedFileSecretRepository keeps secrets as AES encrypted JSON on disk,
// with the key stored in the keyring.
type EncryptedFileSecretRepository struct {
	fileSystem ports.FileSystem
	keyring    ports.Keyring
	encryptor  ports.SymmetricEncryptor
}

func (e EncryptedFileSecretRepository) LoadSecrets(secretsPath string) ([]*domain.Secret, error) {
	secretFileExists, err := e.fileSystem.FileExists(secretsPath)
	if err != nil {
		return nil, err
	}
	keyExists, err := e.keyring.HasKey(SecretsEncryptionKeyName)
	if err != nil {
		return nil, err
	}
	if !secretFileExists || !keyExists {
		return []*domain.Secret{}, nil
	}

	encryptedSecrets, err := e.fileSystem.ReadFile(secretsPath)
	if err != nil {
		return nil, err
	}

	key, err := e.keyring.GetKey(SecretsEncryptionKeyName)
	if err != nil {
		return nil, err
	}

	decryptedSecrets, err := e.encryptor.Decrypt(encryptedSecrets, []byte(key))
	if err != nil {
		return nil, err
	}

	var secrets []*domain.Secret
	if err := json.Unmarshal(decryptedSecrets, &secrets); err != nil {
		return nil, err
	}

	return secrets, nil
}

func (e EncryptedFileSecretRepository) SaveSecrets(secrets []*domain.Secret, secretsPath string) error {
	keyExists, err := e.keyring.HasKey(SecretsEncryptionKeyName)
	if err != nil {
		return err
	}
	if !keyExists {
		key, err := e.encryptor.CreateKey()
		if err != nil {
			return err
		}
		if err := e.keyring.SetKey(SecretsEncryptionKeyName, string(key)); err != nil {
			return err
		}
	}
	key, err := e.keyring.GetKey(SecretsEncryptionKeyName)
	if err != nil {
		return err
	}

	secretBytes, err := json.Marshal(secrets)
	if err != nil {
		return err
	}

	encryptedSecrets, err := e.encryptor.Encrypt(secretBytes, []byte(key))
	if err != nil {
		return err
	}

	return e.fileSystem.WriteFile(secretsPath, encryptedSecrets, ports.ReadWrite)
}

// EnsureSecrets stores a generated value for every key not yet present and
// returns the keys it generated, sorted.
func EnsureSecrets(
	secretsRepository SecretsRepository,
	secretsPath string,
	generators map[string]func() string,
) ([]string, error) {
	secrets, err := secretsRepository.LoadSecrets(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %v", err)
	}
	existing := make(map[string]bool, len(secrets))
	for _, secret := range secrets {
		existing[secret.Key] = true
	}

	keys := make([]string, 0, len(generators))
	for key := range generators {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var generated []string
	for _, key := range keys {
		if existing[key] {
			continue
		}
		secrets = append(secrets, &domain.Secret{Key: key, Value: generators[key]()})
		generated = append(generated, key)
	}
	if len(generated) == 0 {
		return nil, nil
	}

	if err := secretsRepository.SaveSecrets(secrets, secretsPath); err != nil {
		return nil, fmt.Errorf("failed to save secrets: %v", err)
	}
	return generated, nil
}
