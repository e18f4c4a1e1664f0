package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockCommandRunner records package manager and recipe commands. Args are
// matched as (name, args) or (name, env, args).
type MockCommandRunner struct {
	mock.Mock
}

func (m *MockCommandRunner) Run(name string, args ...string) ([]byte, error) {
	callArgs := m.Called(name, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}

func (m *MockCommandRunner) RunWithEnv(name string, env []string, args ...string) ([]byte, error) {
	callArgs := m.Called(name, env, args)
	if callArgs.Get(0) == nil {
		return nil, callArgs.Error(1)
	}
	return callArgs.Get(0).([]byte), callArgs.Error(1)
}
