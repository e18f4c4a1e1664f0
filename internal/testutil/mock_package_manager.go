package testutil

import (
	"vpsup/internal/ports"

	"github.com/stretchr/testify/mock"
)

var _ ports.PackageManager = (*MockPackageManager)(nil)
var _ ports.PackageManagerResolver = (*MockPackageManagerResolver)(nil)

type MockPackageManager struct {
	mock.Mock
}

func (m *MockPackageManager) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockPackageManager) InstallMany(packages []string) error {
	args := m.Called(packages)
	return args.Error(0)
}

type MockPackageManagerResolver struct {
	mock.Mock
}

func (m *MockPackageManagerResolver) Resolve(installCommand []string) (ports.PackageManager, error) {
	args := m.Called(installCommand)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(ports.PackageManager), args.Error(1)
}
