package handler

import (
	"fmt"
	"strings"

	"vpsup/internal/cli/output"
	"vpsup/internal/core"
	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

type InitializeCommandHandler struct {
	configRepository core.ConfigRepository
	terminalInput    ports.TerminalInput
}

func ProvideInitializeCommandHandler(
	configRepository core.ConfigRepository,
	terminalInput ports.TerminalInput,
) InitializeCommandHandler {
	return InitializeCommandHandler{
		configRepository: configRepository,
		terminalInput:    terminalInput,
	}
}

type InitializeOptions struct {
	Domain string
	Email  string
	Force  bool
}

// Handle writes the default config. Domain and email come from the options
// or, on a terminal, from prompts.
func (h *InitializeCommandHandler) Handle(options InitializeOptions) error {
	configExists, err := h.configRepository.ConfigExists()
	if err != nil {
		return err
	}
	if configExists && !options.Force {
		return fmt.Errorf("config %s already exists, use --force to overwrite it", h.configRepository.ConfigPath())
	}

	config := domain.CreateDefaultConfig()
	domainName, err := h.settingValue(options.Domain, "Domain", "Public name of this host", config.Settings["domain"], validateDomain)
	if err != nil {
		return err
	}
	email, err := h.settingValue(options.Email, "Email", "Contact address for certificates", config.Settings["email"], validateEmail)
	if err != nil {
		return err
	}
	config.Settings["domain"] = domainName
	config.Settings["email"] = email

	if err := h.configRepository.SaveConfig(&config); err != nil {
		return err
	}
	output.PrintSuccess(fmt.Sprintf("Wrote %s", h.configRepository.ConfigPath()))
	return nil
}

func (h *InitializeCommandHandler) settingValue(
	given string,
	title string,
	description string,
	fallback string,
	validate func(string) error,
) (string, error) {
	if given != "" {
		return given, validate(given)
	}
	if !h.terminalInput.IsTerminal() {
		return fallback, nil
	}
	value, err := h.terminalInput.ReadLine(title, description, fallback, validate)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(title), err)
	}
	return strings.TrimSpace(value), nil
}

func validateDomain(value string) error {
	value = strings.TrimSpace(value)
	if value == "" || !strings.Contains(value, ".") || strings.ContainsAny(value, " /:") {
		return fmt.Errorf("'%s' is not a domain name", value)
	}
	return nil
}

func validateEmail(value string) error {
	local, host, found := strings.Cut(strings.TrimSpace(value), "@")
	if !found || local == "" || !strings.Contains(host, ".") {
		return fmt.Errorf("'%s' is not an email address", value)
	}
	return nil
}
