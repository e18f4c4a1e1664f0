package core

import (
	"fmt"

	"vpsup/internal/core/domain"
	"vpsup/internal/ports"
)

type EnvironmentEnsurer struct {
	host ports.Host
}

func ProvideEnvironmentEnsurer(host ports.Host) EnvironmentEnsurer {
	return EnvironmentEnsurer{host: host}
}

func (ee *EnvironmentEnsurer) EnsureRunningAsRoot() error {
	if ee.host.EffectiveUserID() != 0 {
		return fmt.Errorf("this operation changes system files and must run as root, try 'sudo vpsup ...'")
	}
	return nil
}

func (ee *EnvironmentEnsurer) EnsureRecipeSupported(release domain.OSRelease, recipe domain.Recipe) error {
	if recipe.RequiresDebianFamily && !release.IsDebianFamily() {
		return fmt.Errorf("recipe '%s' supports Debian and Ubuntu only, this host runs %s", recipe.Name, release)
	}
	return nil
}
