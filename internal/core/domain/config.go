package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultSecretsPath = "/etc/vpsup/secrets"
	DefaultFileMode    = "644"
	DefaultFileOwner   = "root"
	DefaultFileGroup   = "root"
)

// Config is the host configuration read from the YAML config file.
type Config struct {
	// Import names a base config file whose values are overridden by this one.
	Import         *string           `yaml:"import,omitempty"`
	StagingDir     string            `yaml:"stagingDir,omitempty"`
	InstallCommand []string          `yaml:"installCommand,omitempty"`
	SecretsPath    string            `yaml:"secretsPath,omitempty"`
	Settings       map[string]string `yaml:"settings"`
	Dependencies   []DependencySpec  `yaml:"dependencies,omitempty"`
	Files          []FileTemplate    `yaml:"files,omitempty"`
}

func CreateDefaultConfig() Config {
	return Config{
		SecretsPath: DefaultSecretsPath,
		Settings: map[string]string{
			"domain":       "example.com",
			"email":        "admin@example.com",
			"ssh_port":     "22",
			"singbox_port": "8443",
		},
		Dependencies: []DependencySpec{
			{CommandName: "curl", PackageName: "curl"},
		},
		Files: []FileTemplate{
			{
				Destination: "/etc/motd",
				Template:    "Welcome to {{ .Settings.domain }}",
				Mode:        DefaultFileMode,
				Owner:       DefaultFileOwner,
				Group:       DefaultFileGroup,
			},
		},
	}
}

// ApplyDefaults fills in every optional value left empty.
func (c *Config) ApplyDefaults() {
	if c.SecretsPath == "" {
		c.SecretsPath = DefaultSecretsPath
	}
	if c.Settings == nil {
		c.Settings = make(map[string]string)
	}
	if _, ok := c.Settings["ssh_port"]; !ok {
		c.Settings["ssh_port"] = "22"
	}
	if _, ok := c.Settings["singbox_port"]; !ok {
		c.Settings["singbox_port"] = "8443"
	}
	for i := range c.Files {
		file := &c.Files[i]
		if file.Mode == "" {
			file.Mode = DefaultFileMode
		}
		if file.Owner == "" {
			file.Owner = DefaultFileOwner
		}
		if file.Group == "" {
			file.Group = DefaultFileGroup
		}
	}
}

func (c *Config) Setting(key string) (string, bool) {
	value, ok := c.Settings[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

func (c *Config) Validate() error {
	for key := range c.Settings {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("settings contain an empty key")
		}
		if strings.ContainsAny(key, ". ") {
			return fmt.Errorf("setting '%s' must not contain dots or spaces", key)
		}
	}

	if len(c.InstallCommand) > 0 && strings.TrimSpace(c.InstallCommand[0]) == "" {
		return fmt.Errorf("installCommand has an empty program name")
	}

	for i, dep := range c.Dependencies {
		if dep.CommandName == "" {
			return fmt.Errorf("dependency at index %d has empty command", i)
		}
		if dep.PackageName == "" {
			return fmt.Errorf("dependency '%s' has empty package", dep.CommandName)
		}
	}

	for i, file := range c.Files {
		if file.Destination == "" {
			return fmt.Errorf("file at index %d has empty destination", i)
		}
		if !strings.HasPrefix(file.Destination, "/") {
			return fmt.Errorf("file '%s' must have an absolute destination", file.Destination)
		}
		if err := ValidateMode(file.Mode); err != nil {
			return fmt.Errorf("file '%s': %v", file.Destination, err)
		}
		if file.Owner == "" {
			return fmt.Errorf("file '%s' has empty owner", file.Destination)
		}
		if file.Group == "" {
			return fmt.Errorf("file '%s' has empty group", file.Destination)
		}
	}

	return nil
}

// MergeConfigs overlays the values set in overlay onto base.
func MergeConfigs(base Config, overlay Config) Config {
	if overlay.StagingDir != "" {
		base.StagingDir = overlay.StagingDir
	}
	if len(overlay.InstallCommand) > 0 {
		base.InstallCommand = overlay.InstallCommand
	}
	if overlay.SecretsPath != "" {
		base.SecretsPath = overlay.SecretsPath
	}
	if overlay.Settings != nil {
		if base.Settings == nil {
			base.Settings = make(map[string]string)
		}
		for key, value := range overlay.Settings {
			base.Settings[key] = value
		}
	}
	base.Dependencies = append(base.Dependencies, overlay.Dependencies...)

	for _, overlayFile := range overlay.Files {
		replaced := false
		for i, baseFile := range base.Files {
			if baseFile.Destination == overlayFile.Destination {
				base.Files[i] = overlayFile
				replaced = true
			}
		}
		if !replaced {
			base.Files = append(base.Files, overlayFile)
		}
	}
	base.Import = nil
	return base
}
