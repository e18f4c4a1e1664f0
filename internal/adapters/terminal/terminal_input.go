package terminal

import (
	"fmt"
	"os"
	"syscall"

	"vpsup/internal/ports"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*TerminalInput)(nil)

// TerminalInput reads passwords with golang.org/x/term and prompts with huh forms.
type TerminalInput struct{}

// ProvideTerminalInput creates a new TerminalInput adapter.
func ProvideTerminalInput() *TerminalInput {
	return &TerminalInput{}
}

// ReadPassword prompts for a password and returns the input without echoing to the terminal.
func (t *TerminalInput) ReadPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Print newline after password input
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

func (t *TerminalInput) ReadLine(title string, description string, initial string, validate func(string) error) (string, error) {
	value := initial
	input := huh.NewInput().
		Title(title).
		Description(description).
		Value(&value)
	if validate != nil {
		input = input.Validate(validate)
	}
	if err := huh.NewForm(huh.NewGroup(input)).Run(); err != nil {
		return "", err
	}
	return value, nil
}

func (t *TerminalInput) Confirm(title string) (bool, error) {
	var confirmed bool
	if err := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(title).
			Value(&confirmed),
	)).Run(); err != nil {
		return false, err
	}
	return confirmed, nil
}

// IsTerminal returns true if stdin is connected to a terminal.
func (t *TerminalInput) IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
