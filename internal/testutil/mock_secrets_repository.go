package testutil

import (
	"vpsup/internal/core/domain"

	"github.com/stretchr/testify/mock"
)

type MockSecretsRepository struct {
	mock.Mock
}

func (m *MockSecretsRepository) LoadSecrets(secretsPath string) ([]*domain.Secret, error) {
	args := m.Called(secretsPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Secret), args.Error(1)
}

func (m *MockSecretsRepository) SaveSecrets(secrets []*domain.Secret, secretsPath string) error {
	args := m.Called(secrets, secretsPath)
	return args.Error(0)
}
