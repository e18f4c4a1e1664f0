package core

import (
	"errors"
	"testing"

	"vpsup/internal/core/domain"
	"vpsup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testSecretsPath = "/etc/vpsup/secrets"

type secretRepositoryMocks struct {
	fileSystem *testutil.MockFileSystem
	keyring    *testutil.MockKeyring
	encryptor  *testutil.MockSymmetricEncryptor
}

func newSecretRepositoryMocks() secretRepositoryMocks {
	return secretRepositoryMocks{
		fileSystem: new(testutil.MockFileSystem),
		keyring:    new(testutil.MockKeyring),
		encryptor:  new(testutil.MockSymmetricEncryptor),
	}
}

func (m secretRepositoryMocks) sut() SecretsRepository {
	return ProvideEncryptedFileSecretRepository(m.fileSystem, m.keyring, m.encryptor)
}

func (m secretRepositoryMocks) assertExpectations(t *testing.T) {
	m.fileSystem.AssertExpectations(t)
	m.keyring.AssertExpectations(t)
	m.encryptor.AssertExpectations(t)
}

func TestLoadSecrets_Success(t *testing.T) {
	m := newSecretRepositoryMocks()
	encryptedData := []byte("encrypted-data")
	m.fileSystem.On("FileExists", testSecretsPath).Return(true, nil)
	m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
	m.fileSystem.On("ReadFile", testSecretsPath).Return(encryptedData, nil)
	m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("test-key", nil)
	m.encryptor.On("Decrypt", encryptedData, []byte("test-key")).
		Return([]byte(`[{"key":"singbox.uuid","value":"abc"}]`), nil)

	secrets, err := m.sut().LoadSecrets(testSecretsPath)

	require.NoError(t, err)
	assert.Equal(t, []*domain.Secret{{Key: "singbox.uuid", Value: "abc"}}, secrets)
	m.assertExpectations(t)
}

func TestLoadSecrets_ReturnsEmptyWhenFileOrKeyMissing(t *testing.T) {
	for _, tt := range []struct {
		name       string
		fileExists bool
		keyExists  bool
	}{
		{"file missing", false, true},
		{"key missing", true, false},
	} {
		t.Run(tt.name, func(t *testing.T) {
			m := newSecretRepositoryMocks()
			m.fileSystem.On("FileExists", testSecretsPath).Return(tt.fileExists, nil)
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(tt.keyExists, nil)

			secrets, err := m.sut().LoadSecrets(testSecretsPath)

			require.NoError(t, err)
			assert.Empty(t, secrets)
			m.assertExpectations(t)
		})
	}
}

func TestLoadSecrets_PropagatesErrors(t *testing.T) {
	expectedErr := errors.New("boom")
	encryptedData := []byte("encrypted-data")

	tests := []struct {
		name  string
		setup func(m secretRepositoryMocks)
	}{
		{"file exists fails", func(m secretRepositoryMocks) {
			m.fileSystem.On("FileExists", testSecretsPath).Return(false, expectedErr)
		}},
		{"has key fails", func(m secretRepositoryMocks) {
			m.fileSystem.On("FileExists", testSecretsPath).Return(true, nil)
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(false, expectedErr)
		}},
		{"read fails", func(m secretRepositoryMocks) {
			m.fileSystem.On("FileExists", testSecretsPath).Return(true, nil)
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
			m.fileSystem.On("ReadFile", testSecretsPath).Return(nil, expectedErr)
		}},
		{"get key fails", func(m secretRepositoryMocks) {
			m.fileSystem.On("FileExists", testSecretsPath).Return(true, nil)
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
			m.fileSystem.On("ReadFile", testSecretsPath).Return(encryptedData, nil)
			m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("", expectedErr)
		}},
		{"decrypt fails", func(m secretRepositoryMocks) {
			m.fileSystem.On("FileExists", testSecretsPath).Return(true, nil)
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
			m.fileSystem.On("ReadFile", testSecretsPath).Return(encryptedData, nil)
			m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("key", nil)
			m.encryptor.On("Decrypt", encryptedData, []byte("key")).Return(nil, expectedErr)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSecretRepositoryMocks()
			tt.setup(m)

			secrets, err := m.sut().LoadSecrets(testSecretsPath)

			assert.Equal(t, expectedErr, err)
			assert.Nil(t, secrets)
			m.assertExpectations(t)
		})
	}
}

func TestLoadSecrets_InvalidJSON(t *testing.T) {
	m := newSecretRepositoryMocks()
	encryptedData := []byte("encrypted-data")
	m.fileSystem.On("FileExists", testSecretsPath).Return(true, nil)
	m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
	m.fileSystem.On("ReadFile", testSecretsPath).Return(encryptedData, nil)
	m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("key", nil)
	m.encryptor.On("Decrypt", encryptedData, []byte("key")).Return([]byte("not json"), nil)

	secrets, err := m.sut().LoadSecrets(testSecretsPath)

	assert.Error(t, err)
	assert.Nil(t, secrets)
}

func TestSaveSecrets_WithExistingKey(t *testing.T) {
	m := newSecretRepositoryMocks()
	encryptedData := []byte("encrypted-data")
	m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
	m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("key", nil)
	m.encryptor.On("Encrypt", []byte(`[{"key":"token","value":"t"}]`), []byte("key")).Return(encryptedData, nil)
	m.fileSystem.On("WriteFile", testSecretsPath, encryptedData, mock.Anything).Return(nil)

	err := m.sut().SaveSecrets([]*domain.Secret{{Key: "token", Value: "t"}}, testSecretsPath)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestSaveSecrets_CreatesKeyWhenMissing(t *testing.T) {
	m := newSecretRepositoryMocks()
	newKey := []byte("new-key")
	encryptedData := []byte("encrypted-data")
	m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(false, nil)
	m.encryptor.On("CreateKey").Return(newKey, nil)
	m.keyring.On("SetKey", SecretsEncryptionKeyName, string(newKey)).Return(nil)
	m.keyring.On("GetKey", SecretsEncryptionKeyName).Return(string(newKey), nil)
	m.encryptor.On("Encrypt", mock.Anything, newKey).Return(encryptedData, nil)
	m.fileSystem.On("WriteFile", testSecretsPath, encryptedData, mock.Anything).Return(nil)

	err := m.sut().SaveSecrets([]*domain.Secret{}, testSecretsPath)

	require.NoError(t, err)
	m.assertExpectations(t)
}

func TestSaveSecrets_PropagatesErrors(t *testing.T) {
	expectedErr := errors.New("boom")

	tests := []struct {
		name  string
		setup func(m secretRepositoryMocks)
	}{
		{"has key fails", func(m secretRepositoryMocks) {
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(false, expectedErr)
		}},
		{"create key fails", func(m secretRepositoryMocks) {
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(false, nil)
			m.encryptor.On("CreateKey").Return(nil, expectedErr)
		}},
		{"set key fails", func(m secretRepositoryMocks) {
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(false, nil)
			m.encryptor.On("CreateKey").Return([]byte("k"), nil)
			m.keyring.On("SetKey", SecretsEncryptionKeyName, "k").Return(expectedErr)
		}},
		{"get key fails", func(m secretRepositoryMocks) {
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
			m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("", expectedErr)
		}},
		{"encrypt fails", func(m secretRepositoryMocks) {
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
			m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("k", nil)
			m.encryptor.On("Encrypt", mock.Anything, []byte("k")).Return(nil, expectedErr)
		}},
		{"write fails", func(m secretRepositoryMocks) {
			m.keyring.On("HasKey", SecretsEncryptionKeyName).Return(true, nil)
			m.keyring.On("GetKey", SecretsEncryptionKeyName).Return("k", nil)
			m.encryptor.On("Encrypt", mock.Anything, []byte("k")).Return([]byte("e"), nil)
			m.fileSystem.On("WriteFile", testSecretsPath, []byte("e"), mock.Anything).Return(expectedErr)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newSecretRepositoryMocks()
			tt.setup(m)

			err := m.sut().SaveSecrets([]*domain.Secret{{Key: "a", Value: "b"}}, testSecretsPath)

			assert.Equal(t, expectedErr, err)
			m.assertExpectations(t)
		})
	}
}

func TestEnsureSecrets_GeneratesOnlyMissingKeys(t *testing.T) {
	secretsRepository := new(testutil.MockSecretsRepository)
	secretsRepository.On("LoadSecrets", testSecretsPath).Return([]*domain.Secret{
		{Key: "singbox.uuid", Value: "existing"},
	}, nil)
	secretsRepository.On("SaveSecrets", []*domain.Secret{
		{Key: "singbox.uuid", Value: "existing"},
		{Key: "singbox.short_id", Value: "generated"},
	}, testSecretsPath).Return(nil)

	generated, err := EnsureSecrets(secretsRepository, testSecretsPath, map[string]func() string{
		"singbox.uuid":     func() string { return "new" },
		"singbox.short_id": func() string { return "generated" },
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"singbox.short_id"}, generated)
	secretsRepository.AssertExpectations(t)
}

func TestEnsureSecrets_NothingToGenerateDoesNotSave(t *testing.T) {
	secretsRepository := new(testutil.MockSecretsRepository)
	secretsRepository.On("LoadSecrets", testSecretsPath).Return([]*domain.Secret{
		{Key: "singbox.uuid", Value: "existing"},
	}, nil)

	generated, err := EnsureSecrets(secretsRepository, testSecretsPath, map[string]func() string{
		"singbox.uuid": func() string { return "new" },
	})

	require.NoError(t, err)
	assert.Empty(t, generated)
	secretsRepository.AssertNotCalled(t, "SaveSecrets", mock.Anything, mock.Anything)
}
