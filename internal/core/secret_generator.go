package core

import (
	"strings"

	"vpsup/internal/core/domain"

	"github.com/google/uuid"
)

// GenerateSecretValue creates a fresh value of the given kind.
func GenerateSecretValue(kind domain.SecretKind) string {
	switch kind {
	case domain.SecretToken:
		return strings.ReplaceAll(uuid.NewString(), "-", "")
	default:
		return uuid.NewString()
	}
}

// SecretGenerators collects the generated secrets of all recipes, keyed by
// secret key, for EnsureSecrets.
func SecretGenerators(recipes []domain.Recipe) map[string]func() string {
	generators := make(map[string]func() string)
	for _, recipe := range recipes {
		for _, secret := range recipe.GeneratedSecrets {
			kind := secret.Kind
			generators[secret.Key] = func() string { return GenerateSecretValue(kind) }
		}
	}
	return generators
}
