package testutil

import (
	"vpsup/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.Host = (*MockHost)(nil)

type MockHost struct {
	mock.Mock
}

func (m *MockHost) EffectiveUserID() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockHost) Hostname() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
