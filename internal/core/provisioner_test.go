package core

import (
	"errors"
	"testing"

	"vpsup/internal/adapters/templater"
	"vpsup/internal/core/domain"
	"vpsup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type provisionerFixture struct {
	fileSystem     *testutil.TestFileSystem
	locator        *testutil.MockCommandLocator
	commandRunner  *testutil.MockCommandRunner
	packageManager *testutil.MockPackageManager
	pctx           ProvisioningContext
	sut            *Provisioner
}

func newProvisionerFixture(t *testing.T) provisionerFixture {
	t.Helper()
	fileSystem, pctx := newInstallerSandbox(t)
	locator := new(testutil.MockCommandLocator)
	commandRunner := new(testutil.MockCommandRunner)
	packageManager := new(testutil.MockPackageManager)
	packageManager.On("Name").Return("apt-get").Maybe()
	pctx.PackageManager = packageManager
	pctx.OS = domain.OSRelease{ID: "debian"}

	return provisionerFixture{
		fileSystem:     fileSystem,
		locator:        locator,
		commandRunner:  commandRunner,
		packageManager: packageManager,
		pctx:           pctx,
		sut: ProvideProvisioner(
			ProvideConfigInstaller(fileSystem),
			ProvideDependencyBootstrapper(locator),
			commandRunner,
			templater.ProvideTextTemplater(),
		),
	}
}

func provisionValues() map[string]interface{} {
	return map[string]interface{}{
		"Settings": map[string]string{"domain": "example.com", "port": "8080"},
		"Secrets":  map[string]interface{}{"app": map[string]interface{}{"token": "s3cret"}},
	}
}

func siteRecipe() domain.Recipe {
	return domain.Recipe{
		Name: "site",
		Dependencies: domain.StaticDependencies(
			domain.DependencySpec{CommandName: "nginx", PackageName: "nginx"},
		),
		Prepare: [][]string{{"mkdir", "-p", "/srv/{{ .Settings.domain }}"}},
		Files: []domain.FileTemplate{
			{
				Destination: "/etc/app/{{ .Settings.domain }}.conf",
				Template:    "listen {{ .Settings.port }};\ntoken {{ .Secrets.app.token }};\n",
				Mode:        "600",
			},
		},
		Activate: [][]string{{"systemctl", "reload", "nginx"}},
	}
}

func TestProvisioner_ProvisionRunsAllSteps(t *testing.T) {
	f := newProvisionerFixture(t)
	f.locator.On("LookPath", "nginx").Return("/usr/sbin/nginx", nil).Once()
	f.commandRunner.On("Run", "mkdir", []string{"-p", "/srv/example.com"}).Return([]byte{}, nil).Once()
	f.commandRunner.On("Run", "systemctl", []string{"reload", "nginx"}).Return([]byte{}, nil).Once()

	report, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	require.NoError(t, err)
	assert.Equal(t, "site", report.Recipe)
	assert.Equal(t, []string{"nginx"}, report.Bootstrap.Present)
	assert.Equal(t, []domain.FileResult{
		{Destination: "/etc/app/example.com.conf", Outcome: domain.Installed},
	}, report.Files)
	assert.Equal(t, 2, report.Commands)
	assert.Equal(t, "listen 8080;\ntoken s3cret;\n", readSandboxFile(t, f.fileSystem, "/etc/app/example.com.conf"))
	owner, group := f.fileSystem.Ownership("/etc/app/example.com.conf")
	assert.Equal(t, "root", owner)
	assert.Equal(t, "root", group)
	assertNoTemporaryFiles(t, f.fileSystem)
	f.commandRunner.AssertExpectations(t)
	f.locator.AssertExpectations(t)
}

func TestProvisioner_ProvisionTwiceKeepsBackup(t *testing.T) {
	f := newProvisionerFixture(t)
	f.locator.On("LookPath", "nginx").Return("/usr/sbin/nginx", nil)
	f.commandRunner.On("Run", mock.Anything, mock.Anything).Return([]byte{}, nil)

	_, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())
	require.NoError(t, err)
	report, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	require.NoError(t, err)
	assert.Equal(t, domain.InstalledWithBackupKept, report.Files[0].Outcome)
	assert.Equal(t,
		readSandboxFile(t, f.fileSystem, "/etc/app/example.com.conf"),
		readSandboxFile(t, f.fileSystem, "/etc/app/example.com.conf.bak"),
	)
}

func TestProvisioner_ProvisionMissingValuesDoesNothing(t *testing.T) {
	f := newProvisionerFixture(t)
	values := map[string]interface{}{
		"Settings": map[string]string{"domain": "example.com"},
		"Secrets":  map[string]interface{}{},
	}

	_, err := f.sut.Provision(f.pctx, siteRecipe(), values)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Settings.port")
	assert.Contains(t, err.Error(), "Secrets.app.token")
	f.locator.AssertNotCalled(t, "LookPath", mock.Anything)
	f.commandRunner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
}

func TestProvisioner_ProvisionInstallsMissingCommands(t *testing.T) {
	f := newProvisionerFixture(t)
	f.locator.On("LookPath", "nginx").Return("", errNotFound).Once()
	f.locator.On("LookPath", "nginx").Return("/usr/sbin/nginx", nil).Once()
	f.packageManager.On("InstallMany", []string{"nginx"}).Return(nil).Once()
	f.commandRunner.On("Run", mock.Anything, mock.Anything).Return([]byte{}, nil)

	report, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	require.NoError(t, err)
	assert.Equal(t, []string{"nginx"}, report.Bootstrap.Packages)
	f.packageManager.AssertExpectations(t)
}

func TestProvisioner_ProvisionStopsWhenBootstrapFails(t *testing.T) {
	f := newProvisionerFixture(t)
	f.locator.On("LookPath", "nginx").Return("", errNotFound)
	f.packageManager.On("InstallMany", []string{"nginx"}).Return(errors.New("exit status 100"))

	_, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	assert.True(t, domain.IsBootstrapErrorKind(err, domain.BootstrapInstallFailed))
	f.commandRunner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
	exists, existsErr := f.fileSystem.FileExists("/etc/app/example.com.conf")
	require.NoError(t, existsErr)
	assert.False(t, exists)
}

func TestProvisioner_ProvisionStopsWhenPrepareFails(t *testing.T) {
	f := newProvisionerFixture(t)
	f.locator.On("LookPath", "nginx").Return("/usr/sbin/nginx", nil)
	f.commandRunner.On("Run", "mkdir", mock.Anything).Return([]byte("permission denied"), errors.New("exit status 1"))

	_, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mkdir -p /srv/example.com")
	assert.Contains(t, err.Error(), "permission denied")
	f.commandRunner.AssertNotCalled(t, "Run", "systemctl", mock.Anything)
}

func TestProvisioner_ProvisionReturnsInstallError(t *testing.T) {
	f := newProvisionerFixture(t)
	f.locator.On("LookPath", "nginx").Return("/usr/sbin/nginx", nil)
	f.commandRunner.On("Run", "mkdir", mock.Anything).Return([]byte{}, nil)
	f.fileSystem.FailAll = "Rename"

	_, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	assert.True(t, domain.IsInstallErrorKind(err, domain.InstallPlacementFailed))
	f.commandRunner.AssertNotCalled(t, "Run", "systemctl", mock.Anything)
}

func TestProvisioner_ProvisionWithoutPackageManagerStillRunsWhenAllPresent(t *testing.T) {
	f := newProvisionerFixture(t)
	f.pctx.PackageManager = nil
	f.locator.On("LookPath", "nginx").Return("/usr/sbin/nginx", nil)
	f.commandRunner.On("Run", mock.Anything, mock.Anything).Return([]byte{}, nil)

	_, err := f.sut.Provision(f.pctx, siteRecipe(), provisionValues())

	require.NoError(t, err)
}
