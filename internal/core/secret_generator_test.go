package core

import (
	"testing"

	"vpsup/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecretValue(t *testing.T) {
	value := GenerateSecretValue(domain.SecretUUID)
	parsed, err := uuid.Parse(value)
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(4), parsed.Version())

	token := GenerateSecretValue(domain.SecretToken)
	assert.Len(t, token, 32)
	assert.NotContains(t, token, "-")

	assert.NotEqual(t, value, GenerateSecretValue(domain.SecretUUID))
}

func TestSecretGenerators(t *testing.T) {
	recipes := []domain.Recipe{
		{Name: "singbox", GeneratedSecrets: []domain.GeneratedSecret{{Key: "singbox.uuid", Kind: domain.SecretUUID}}},
		{Name: "nginx"},
		{Name: "api", GeneratedSecrets: []domain.GeneratedSecret{{Key: "api.token", Kind: domain.SecretToken}}},
	}

	generators := SecretGenerators(recipes)

	require.Len(t, generators, 2)
	_, err := uuid.Parse(generators["singbox.uuid"]())
	assert.NoError(t, err)
	assert.Len(t, generators["api.token"](), 32)
}
