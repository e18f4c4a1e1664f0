package testutil

import (
	"vpsup/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.CommandLocator = (*MockCommandLocator)(nil)

type MockCommandLocator struct {
	mock.Mock
}

func (m *MockCommandLocator) LookPath(name string) (string, error) {
	args := m.Called(name)
	return args.String(0), args.Error(1)
}
