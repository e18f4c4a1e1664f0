//go:build wireinject
// +build wireinject

package app

import (
	"vpsup/internal/adapters/command_runner"
	"vpsup/internal/adapters/filesystem"
	"vpsup/internal/adapters/host"
	"vpsup/internal/adapters/keyring"
	"vpsup/internal/adapters/package_manager"
	"vpsup/internal/adapters/sharecode"
	"vpsup/internal/adapters/symmetric_encryptor"
	"vpsup/internal/adapters/templater"
	"vpsup/internal/adapters/terminal"
	"vpsup/internal/core"
	"vpsup/internal/core/handler"
	"vpsup/internal/ports"

	"github.com/google/wire"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	wire.Bind(new(ports.CommandLocator), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	keyring.ProvideKeyring,
	symmetric_encryptor.ProvideAesGcmEncryptor,
	wire.Bind(new(ports.SymmetricEncryptor), new(*symmetric_encryptor.AesGcmEncryptor)),
	templater.ProvideTextTemplater,
	wire.Bind(new(ports.Templater), new(*templater.TextTemplater)),
	terminal.ProvideTerminalInput,
	wire.Bind(new(ports.TerminalInput), new(*terminal.TerminalInput)),
	host.ProvideOsHost,
	wire.Bind(new(ports.Host), new(*host.OsHost)),
	sharecode.ProvideQrRenderer,
	wire.Bind(new(ports.ShareCodeRenderer), new(*sharecode.QrRenderer)),
	package_manager.ProvideOsPackageManagerResolver,
	wire.Bind(new(ports.PackageManagerResolver), new(*package_manager.OsPackageManagerResolver)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideFileSystemConfigRepository,
	wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	core.ProvideEncryptedFileSecretRepository,
	core.ProvideEnvironmentEnsurer,
	core.ProvideConfigInstaller,
	core.ProvideDependencyBootstrapper,
	core.ProvideProvisioningContextFactory,
	core.ProvideRecipeCatalog,
	core.ProvideProvisioner,
)

// CommandHandlerSet combines all sets needed for command handlers
var CommandHandlerSet = wire.NewSet(
	Adapter,
	CoreSet,
)

func InjectConfigRepo() (core.ConfigRepository, error) {
	wire.Build(
		Adapter,
		core.ProvideFileSystemConfigRepository,
		wire.Bind(new(core.ConfigRepository), new(*core.FileSystemConfigRepository)),
	)
	return &core.FileSystemConfigRepository{}, nil
}

func InjectSecretRepository() (core.SecretsRepository, error) {
	wire.Build(
		Adapter,
		CoreSet,
	)
	return &core.EncryptedFileSecretRepository{}, nil
}

func InjectRecipeCatalog() (*core.RecipeCatalog, error) {
	wire.Build(
		CommandHandlerSet,
	)
	return &core.RecipeCatalog{}, nil
}

func InjectInitializeCommandHandler() (handler.InitializeCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideInitializeCommandHandler,
	)
	return handler.InitializeCommandHandler{}, nil
}

func InjectFileCommandHandler() (handler.FileCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideFileCommandHandler,
	)
	return handler.FileCommandHandler{}, nil
}

func InjectBootstrapCommandHandler() (handler.BootstrapCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideBootstrapCommandHandler,
	)
	return handler.BootstrapCommandHandler{}, nil
}

func InjectProvisionCommandHandler() (handler.ProvisionCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideProvisionCommandHandler,
	)
	return handler.ProvisionCommandHandler{}, nil
}

func InjectSecretCommandHandler() (handler.SecretCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideSecretCommandHandler,
	)
	return handler.SecretCommandHandler{}, nil
}

func InjectShowVarsCommandHandler() (handler.ShowVarsCommandHandler, error) {
	wire.Build(
		CommandHandlerSet,
		handler.ProvideShowVarsCommandHandler,
	)
	return handler.ShowVarsCommandHandler{}, nil
}
