package testutil

import (
	"vpsup/internal/ports"

	"github.com/stretchr/testify/mock"
)

// Compile-time interface compliance check
var _ ports.TerminalInput = (*MockTerminalInput)(nil)

// MockTerminalInput provides a testify mock for ports.TerminalInput
type MockTerminalInput struct {
	mock.Mock
}

func (m *MockTerminalInput) ReadPassword(prompt string) (string, error) {
	args := m.Called(prompt)
	return args.String(0), args.Error(1)
}

func (m *MockTerminalInput) ReadLine(title string, description string, initial string, validate func(string) error) (string, error) {
	args := m.Called(title, description, initial, validate)
	return args.String(0), args.Error(1)
}

func (m *MockTerminalInput) Confirm(title string) (bool, error) {
	args := m.Called(title)
	return args.Bool(0), args.Error(1)
}

func (m *MockTerminalInput) IsTerminal() bool {
	args := m.Called()
	return args.Bool(0)
}
