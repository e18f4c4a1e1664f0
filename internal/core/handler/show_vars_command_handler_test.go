package handler

import (
	"bytes"
	"errors"
	"testing"

	"vpsup/internal/core/domain"
	"vpsup/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestShowVarsCommandHandler_Handle_Success(t *testing.T) {
	secretsRepository := new(testutil.MockSecretsRepository)
	configRepository := new(testutil.MockConfigRepository)
	config := &domain.Config{SecretsPath: "/etc/vpsup/secrets", Settings: map[string]string{"domain": "example.com"}}
	configRepository.On("LoadConfig").Return(config, nil)
	secretsRepository.On("LoadSecrets", "/etc/vpsup/secrets").Return([]*domain.Secret{{Key: "singbox.uuid", Value: "abc"}}, nil)

	sut := ProvideShowVarsCommandHandler(secretsRepository, configRepository)

	assert.NoError(t, sut.Handle(false))
	configRepository.AssertExpectations(t)
	secretsRepository.AssertExpectations(t)
}

func TestShowVarsCommandHandler_Handle_LoadConfigError(t *testing.T) {
	secretsRepository := new(testutil.MockSecretsRepository)
	configRepository := new(testutil.MockConfigRepository)
	expectedErr := errors.New("load config error")
	configRepository.On("LoadConfig").Return(nil, expectedErr)

	sut := ProvideShowVarsCommandHandler(secretsRepository, configRepository)

	assert.Equal(t, expectedErr, sut.Handle(false))
}

func TestShowVarsCommandHandler_Handle_LoadSecretsError(t *testing.T) {
	secretsRepository := new(testutil.MockSecretsRepository)
	configRepository := new(testutil.MockConfigRepository)
	expectedErr := errors.New("load secrets error")
	configRepository.On("LoadConfig").Return(&domain.Config{SecretsPath: "/s"}, nil)
	secretsRepository.On("LoadSecrets", "/s").Return(nil, expectedErr)

	sut := ProvideShowVarsCommandHandler(secretsRepository, configRepository)

	assert.Equal(t, expectedErr, sut.Handle(false))
}

func TestPrintValues(t *testing.T) {
	values := map[string]interface{}{
		"Settings": map[string]string{"email": "ops@example.com", "domain": "example.com"},
		"Secrets": map[string]interface{}{
			"singbox": map[string]interface{}{"uuid": "abc"},
			"token":   "t",
		},
	}

	tests := []struct {
		name     string
		reveal   bool
		expected string
	}{
		{
			name:   "secrets masked",
			reveal: false,
			expected: "Secrets:\n" +
				"  singbox:\n" +
				"    uuid: ******\n" +
				"  token: ******\n" +
				"Settings:\n" +
				"  domain: example.com\n" +
				"  email: ops@example.com\n",
		},
		{
			name:   "secrets revealed",
			reveal: true,
			expected: "Secrets:\n" +
				"  singbox:\n" +
				"    uuid: abc\n" +
				"  token: t\n" +
				"Settings:\n" +
				"  domain: example.com\n" +
				"  email: ops@example.com\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			printValues(&buf, values, 0, false, tt.reveal)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}
