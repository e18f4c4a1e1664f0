package testutil

import (
	"github.com/stretchr/testify/mock"
)

type MockShareCodeRenderer struct {
	mock.Mock
}

func (m *MockShareCodeRenderer) Render(link string) (string, error) {
	args := m.Called(link)
	return args.String(0), args.Error(1)
}
