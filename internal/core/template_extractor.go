package core

import (
	"regexp"
	"sort"
	"strings"

	"vpsup/internal/core/domain"
)

// templateVarRegex matches Go template variable references like {{.Secrets.KEY}} or {{- .Settings.domain -}}
// It also handles quoted keys like {{.Settings."my-key"}} and pipelines like {{ .Secrets.KEY | printf "%q" }}
// The regex only matches up to the variable reference, not the entire {{ }} block
var templateVarRegex = regexp.MustCompile(`\{\{-?\s*\.(\w+)\.((?:"[^"]*"|[\w.])+)`)

// indexFuncRegex matches Go template index function syntax like {{ (index .Settings "ssh-port") }}
// Supports double quotes, single quotes, and backticks
var indexFuncRegex = regexp.MustCompile(`\{\{-?\s*\(index\s+\.(\w+)\s+["'` + "`" + `]([^"'` + "`" + `]+)["'` + "`" + `]\)`)

// ExtractTemplateVariables extracts variable references (e.g., .Secrets.KEY) from template text.
// Returns map of variable type -> list of keys (e.g., "Secrets" -> ["singbox.uuid"])
//
// For Secrets: the entire path is the key (e.g., "singbox.uuid" from {{.Secrets.singbox.uuid}})
// For Settings: only the first part is the key, settings are flat
func ExtractTemplateVariables(template string) map[string][]string {
	result := make(map[string][]string)
	seen := make(map[string]map[string]bool)

	addKey := func(varType, key string) {
		if seen[varType] == nil {
			seen[varType] = make(map[string]bool)
		}
		if !seen[varType][key] {
			seen[varType][key] = true
			result[varType] = append(result[varType], key)
		}
	}

	for _, match := range templateVarRegex.FindAllStringSubmatch(template, -1) {
		if len(match) >= 3 {
			varType := match[1]
			fullPath := match[2]

			var key string
			if varType == "Secrets" {
				key = fullPath
			} else {
				keyPart := strings.Split(fullPath, ".")[0]
				key = strings.Trim(keyPart, "\"")
			}

			addKey(varType, key)
		}
	}

	for _, match := range indexFuncRegex.FindAllStringSubmatch(template, -1) {
		if len(match) >= 3 {
			addKey(match[1], match[2])
		}
	}

	for _, keys := range result {
		sort.Strings(keys)
	}

	return result
}

// recipeTemplates returns every piece of recipe text that is rendered.
func recipeTemplates(recipe domain.Recipe) []string {
	var templates []string
	for _, command := range recipe.Prepare {
		templates = append(templates, command...)
	}
	for _, file := range recipe.Files {
		templates = append(templates, file.Destination, file.Template)
	}
	for _, command := range recipe.Activate {
		templates = append(templates, command...)
	}
	return templates
}

// ExtractRecipeVariables returns the setting and secret keys a recipe's
// templates refer to, sorted and without duplicates.
func ExtractRecipeVariables(recipe domain.Recipe) (settings []string, secrets []string) {
	seenSettings := make(map[string]bool)
	seenSecrets := make(map[string]bool)
	for _, template := range recipeTemplates(recipe) {
		vars := ExtractTemplateVariables(template)
		for _, key := range vars["Settings"] {
			if !seenSettings[key] {
				seenSettings[key] = true
				settings = append(settings, key)
			}
		}
		for _, key := range vars["Secrets"] {
			if !seenSecrets[key] {
				seenSecrets[key] = true
				secrets = append(secrets, key)
			}
		}
	}
	sort.Strings(settings)
	sort.Strings(secrets)
	return settings, secrets
}

// MissingTemplateValues lists the references of a recipe that the templating
// values cannot satisfy, as "Settings.key" or "Secrets.key".
func MissingTemplateValues(recipe domain.Recipe, values map[string]interface{}) []string {
	settingKeys, secretKeys := ExtractRecipeVariables(recipe)
	var missing []string

	settings, _ := values["Settings"].(map[string]string)
	for _, key := range settingKeys {
		if strings.TrimSpace(settings[key]) == "" {
			missing = append(missing, "Settings."+key)
		}
	}

	secrets, _ := values["Secrets"].(map[string]interface{})
	for _, key := range secretKeys {
		if !secretPathExists(secrets, key) {
			missing = append(missing, "Secrets."+key)
		}
	}
	return missing
}

func secretPathExists(secrets map[string]interface{}, key string) bool {
	current := secrets
	parts := strings.Split(key, ".")
	for i, part := range parts {
		value, ok := current[part]
		if !ok {
			return false
		}
		if i == len(parts)-1 {
			return true
		}
		current, ok = value.(map[string]interface{})
		if !ok {
			return false
		}
	}
	return false
}
