package handler

import (
	"fmt"
	"sort"
	"strings"

	"vpsup/internal/cli/output"
	"vpsup/internal/core"
	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

type SecretCommandHandler struct {
	secretsRepository core.SecretsRepository
	configRepository  core.ConfigRepository
	recipeCatalog     *core.RecipeCatalog
	terminalInput     ports.TerminalInput
}

func ProvideSecretCommandHandler(
	secretsRepository core.SecretsRepository,
	configRepository core.ConfigRepository,
	recipeCatalog *core.RecipeCatalog,
	terminalInput ports.TerminalInput,
) SecretCommandHandler {
	return SecretCommandHandler{
		secretsRepository: secretsRepository,
		configRepository:  configRepository,
		recipeCatalog:     recipeCatalog,
		terminalInput:     terminalInput,
	}
}

func (h *SecretCommandHandler) loadSecrets() ([]*domain.Secret, string, error) {
	config, err := h.configRepository.LoadConfig()
	if err != nil {
		return nil, "", err
	}
	secrets, err := h.secretsRepository.LoadSecrets(config.SecretsPath)
	if err != nil {
		return nil, "", err
	}
	return secrets, config.SecretsPath, nil
}

func (h *SecretCommandHandler) HandleSet(key string) error {
	if !h.terminalInput.IsTerminal() {
		return fmt.Errorf("cannot read secret value: no terminal available")
	}

	prompt := fmt.Sprintf("Enter value for %s: ", output.Bold(key))
	value, err := h.terminalInput.ReadPassword(prompt)
	if err != nil {
		return fmt.Errorf("failed to read secret value: %w", err)
	}

	if value == "" {
		return fmt.Errorf("secret value cannot be empty")
	}

	secrets, secretsPath, err := h.loadSecrets()
	if err != nil {
		return err
	}

	var secretExists bool
	for i := range secrets {
		if secrets[i].Key == key {
			secrets[i].Value = value
			secretExists = true
		}
	}

	if !secretExists {
		if conflicting, found := findConflictingSecretKey(secrets, key); found {
			return fmt.Errorf("cannot set secret '%s': conflicts with existing secret '%s' (a secret key cannot have both a direct value and nested keys); delete '%s' first with 'vpsup secret delete %s'", key, conflicting, conflicting, conflicting)
		}
		secrets = append(secrets, &domain.Secret{Key: key, Value: value})
	}

	err = h.secretsRepository.SaveSecrets(secrets, secretsPath)
	if err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Secret '%s' saved", key))
	return nil
}

func (h *SecretCommandHandler) HandleList() error {
	secrets, _, err := h.loadSecrets()
	if err != nil {
		return err
	}

	if len(secrets) == 0 {
		output.PrintInfo("No secrets configured")
		return nil
	}

	output.PrintHeader("Secrets")
	fmt.Println()

	sort.Slice(
		secrets, func(i, j int) bool {
			return secrets[i].Key < secrets[j].Key
		},
	)
	for _, secret := range secrets {
		fmt.Printf("  %s %s\n", output.SymbolBullet, output.Bold(secret.Key))
	}

	return nil
}

func (h *SecretCommandHandler) HandleGet(key string) error {
	secrets, _, err := h.loadSecrets()
	if err != nil {
		return err
	}

	for _, secret := range secrets {
		if secret.Key == key {
			fmt.Println(secret.Value)
			return nil
		}
	}

	return fmt.Errorf("secret '%s' not found", key)
}

func (h *SecretCommandHandler) HandleDelete(key string) error {
	secrets, secretsPath, err := h.loadSecrets()
	if err != nil {
		return err
	}
	newSecrets := make([]*domain.Secret, 0, len(secrets))
	for _, secret := range secrets {
		if secret.Key != key {
			newSecrets = append(newSecrets, secret)
		}
	}
	if len(newSecrets) == len(secrets) {
		return fmt.Errorf("secret '%s' not found", key)
	}
	err = h.secretsRepository.SaveSecrets(newSecrets, secretsPath)
	if err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Secret '%s' deleted", key))
	return nil
}

// HandleConfigure finds the secrets the given recipes (all of them when none
// are named) refer to, generates the ones recipes create themselves and
// prompts for the rest. With checkOnly it only reports what is missing.
func (h *SecretCommandHandler) HandleConfigure(recipeNames []string, checkOnly bool) error {
	recipes, err := resolveRecipes(h.recipeCatalog, recipeNames)
	if err != nil {
		return err
	}

	generators := core.SecretGenerators(recipes)
	var expectedKeys []string
	seen := make(map[string]bool)
	for _, recipe := range recipes {
		_, secretKeys := core.ExtractRecipeVariables(recipe)
		for _, key := range secretKeys {
			if !seen[key] {
				seen[key] = true
				expectedKeys = append(expectedKeys, key)
			}
		}
	}
	sort.Strings(expectedKeys)
	if len(expectedKeys) == 0 {
		output.PrintInfo("No secrets referenced in recipe templates")
		return nil
	}

	existingSecrets, secretsPath, err := h.loadSecrets()
	if err != nil {
		return err
	}
	existingKeys := make(map[string]bool)
	for _, secret := range existingSecrets {
		existingKeys[secret.Key] = true
	}

	var missingKeys []string
	for _, key := range expectedKeys {
		if !existingKeys[key] {
			missingKeys = append(missingKeys, key)
		}
	}

	if len(missingKeys) == 0 {
		output.PrintSuccess(fmt.Sprintf("All %d expected %s configured",
			len(expectedKeys),
			output.Plural(len(expectedKeys), "secret", "secrets")))
		return nil
	}

	if checkOnly {
		output.PrintHeader("Missing Secrets")
		fmt.Println()
		for _, key := range missingKeys {
			note := ""
			if _, ok := generators[key]; ok {
				note = output.Dim(" (generated on provision)")
			}
			fmt.Printf("  %s %s%s\n", output.SymbolBullet, output.Bold(key), note)
		}
		fmt.Println()
		return fmt.Errorf("%d missing %s; run 'vpsup secret configure' to set values",
			len(missingKeys),
			output.Plural(len(missingKeys), "secret", "secrets"))
	}

	var prompted []string
	for _, key := range missingKeys {
		if _, ok := generators[key]; !ok {
			prompted = append(prompted, key)
		}
	}
	if len(prompted) > 0 && !h.terminalInput.IsTerminal() {
		return fmt.Errorf("interactive mode requires a terminal; use --check to validate without prompting")
	}

	output.PrintHeader("Configure Missing Secrets")
	fmt.Println()

	secrets := existingSecrets
	var added, skipped int
	for _, key := range missingKeys {
		value := ""
		if generate, ok := generators[key]; ok {
			value = generate()
			fmt.Printf("  %s Generated '%s'\n", output.SymbolSuccess, key)
		} else {
			prompt := fmt.Sprintf("  Enter value for %s: ", output.Bold(key))
			value, err = h.terminalInput.ReadPassword(prompt)
			if err != nil {
				return fmt.Errorf("failed to read secret '%s': %w", key, err)
			}
		}

		if value == "" {
			fmt.Printf("  %s Skipping '%s' (empty value)\n", output.SymbolWarning, key)
			skipped++
			continue
		}

		if conflicting, found := findConflictingSecretKey(secrets, key); found {
			fmt.Printf("  %s Skipping '%s': conflicts with existing secret '%s' (a secret key cannot have both a direct value and nested keys)\n", output.SymbolWarning, key, conflicting)
			skipped++
			continue
		}

		secrets = append(secrets, &domain.Secret{
			Key:   key,
			Value: value,
		})
		added++
	}

	if added > 0 {
		err = h.secretsRepository.SaveSecrets(secrets, secretsPath)
		if err != nil {
			return err
		}
	}

	fmt.Println()
	if added > 0 {
		output.PrintSuccess(fmt.Sprintf("Configured %d %s",
			added, output.Plural(added, "secret", "secrets")))
	}
	if skipped > 0 {
		output.PrintWarning(fmt.Sprintf("Skipped %d %s",
			skipped, output.Plural(skipped, "secret", "secrets")))
	}

	return nil
}

func findConflictingSecretKey(secrets []*domain.Secret, newKey string) (string, bool) {
	for _, secret := range secrets {
		existing := secret.Key
		if existing == newKey {
			continue
		}
		if strings.HasPrefix(newKey, existing+".") || strings.HasPrefix(existing, newKey+".") {
			return existing, true
		}
	}
	return "", false
}
