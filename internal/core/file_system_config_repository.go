package core

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFilePath = "/etc/vpsup/config.yaml"
	ConfigFileEnvVar      = "VPSUP_CONFIG"
)

var configFilePath = DefaultConfigFilePath

// UseConfigFile selects the config file for repositories provided afterwards.
// An empty path falls back to $VPSUP_CONFIG and then the default location.
func UseConfigFile(path string) {
	switch {
	case path != "":
		configFilePath = path
	case os.Getenv(ConfigFileEnvVar) != "":
		configFilePath = os.Getenv(ConfigFileEnvVar)
	default:
		configFilePath = DefaultConfigFilePath
	}
}

type ConfigRepository interface {
	LoadConfig() (*domain.Config, error)
	SaveConfig(*domain.Config) error
	ConfigExists() (bool, error)
	ConfigPath() string
}

type FileSystemConfigRepository struct {
	fileService ports.FileSystem
	path        string
	config      *domain.Config
}

func ProvideFileSystemConfigRepository(fileService ports.FileSystem) *FileSystemConfigRepository {
	return newFileSystemConfigRepository(fileService, configFilePath)
}

func newFileSystemConfigRepository(fileService ports.FileSystem, path string) *FileSystemConfigRepository {
	return &FileSystemConfigRepository{
		fileService: fileService,
		path:        path,
	}
}

// CreateTemplatingValues builds the values every template is rendered with:
// .Settings holds the flat settings map and .Secrets the secrets nested by ".".
func CreateTemplatingValues(
	configRepository ConfigRepository,
	secretsRepository SecretsRepository,
) (map[string]interface{}, error) {
	config, err := configRepository.LoadConfig()
	if err != nil {
		return nil, err
	}
	secrets, err := secretsRepository.LoadSecrets(config.SecretsPath)
	if err != nil {
		return nil, err
	}

	settings := make(map[string]string, len(config.Settings))
	for key, value := range config.Settings {
		settings[key] = value
	}
	values := map[string]interface{}{
		"Settings": settings,
		"Secrets":  createSecretsMap(secrets),
	}
	return values, nil
}

// Create secrets map, splitting strings by "." to create nested maps
func createSecretsMap(secrets []*domain.Secret) map[string]interface{} {
	secretMap := make(map[string]interface{})
	for _, secret := range secrets {
		parts := strings.Split(secret.Key, ".")
		currentMap := secretMap
		for i, part := range parts {
			if i == len(parts)-1 {
				currentMap[part] = secret.Value
			} else {
				next, ok := currentMap[part].(map[string]interface{})
				if !ok {
					next = make(map[string]interface{})
					currentMap[part] = next
				}
				currentMap = next
			}
		}
	}
	return secretMap
}

func (c *FileSystemConfigRepository) ConfigPath() string {
	return c.path
}

func (c *FileSystemConfigRepository) LoadConfig() (*domain.Config, error) {
	if c.config != nil {
		return c.config, nil
	}

	data, err := c.fileService.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file %s does not exist, see operation 'initialize'", c.path)
		}
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config domain.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	if config.Import != nil {
		importPath := expandImportPath(*config.Import, filepath.Dir(c.path))
		data, err := c.fileService.ReadFile(importPath)
		if err != nil {
			slog.Warn("failed to read import file", "path", importPath, "error", err)
		} else {
			var base domain.Config
			if err := yaml.Unmarshal(data, &base); err != nil {
				slog.Warn("failed to parse import file", "path", importPath, "error", err)
			} else {
				config = domain.MergeConfigs(base, config)
			}
		}
	}

	config.ApplyDefaults()
	err = config.Validate()
	if err != nil {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	c.config = &config

	return &config, nil
}

func (c *FileSystemConfigRepository) SaveConfig(config *domain.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %v", err)
	}

	if err := c.fileService.WriteFile(c.path, data, ports.ReadWrite); err != nil {
		return err
	}
	c.config = nil
	return nil
}

func (c *FileSystemConfigRepository) ConfigExists() (bool, error) {
	return c.fileService.FileExists(c.path)
}

// expandImportPath resolves ~ against the home directory and relative paths
// against the directory of the importing config file.
func expandImportPath(path string, configDir string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}
