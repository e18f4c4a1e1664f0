package domain

// FileTemplate is a config file rendered with the templating values and then
// handed to the config installer. Destination is itself a template.
type FileTemplate struct {
	Destination   string `yaml:"destination"`
	Template      string `yaml:"template"`
	Mode          string `yaml:"mode,omitempty"`
	Owner         string `yaml:"owner,omitempty"`
	Group         string `yaml:"group,omitempty"`
	DiscardBackup bool   `yaml:"discardBackup,omitempty"`
}

type SecretKind int

const (
	SecretUUID SecretKind = iota
	SecretToken
)

// GeneratedSecret names a secret a recipe creates on first use.
type GeneratedSecret struct {
	Key  string
	Kind SecretKind
}

// Recipe provisions one piece of software: its commands are made available,
// Prepare runs, every file is installed, then Activate runs. Commands are
// templates rendered with the same values as the files.
type Recipe struct {
	Name                 string
	Description          string
	RequiresDebianFamily bool
	// GeneratedSecrets are created once and kept in the secrets store.
	GeneratedSecrets []GeneratedSecret
	Dependencies     func(release OSRelease, packageManager string) []DependencySpec
	Prepare          [][]string
	Files            []FileTemplate
	Activate         [][]string
}

// DependencySpecs returns the recipe's dependencies for the given host.
func (r Recipe) DependencySpecs(release OSRelease, packageManager string) []DependencySpec {
	if r.Dependencies == nil {
		return nil
	}
	return r.Dependencies(release, packageManager)
}

// StaticDependencies wraps a fixed list so it can be used as Recipe.Dependencies.
func StaticDependencies(specs ...DependencySpec) func(OSRelease, string) []DependencySpec {
	return func(OSRelease, string) []DependencySpec {
		return specs
	}
}

// InstallSpec turns a rendered template into an install request, filling in
// the default mode, owner and group.
func (f FileTemplate) InstallSpec(destination string, content string) FileInstallSpec {
	spec := FileInstallSpec{
		Mode:          f.Mode,
		Owner:         f.Owner,
		Group:         f.Group,
		Content:       content,
		Destination:   destination,
		DiscardBackup: f.DiscardBackup,
	}
	if spec.Mode == "" {
		spec.Mode = DefaultFileMode
	}
	if spec.Owner == "" {
		spec.Owner = DefaultFileOwner
	}
	if spec.Group == "" {
		spec.Group = DefaultFileGroup
	}
	return spec
}

type FileResult struct {
	Destination string
	Outcome     InstallOutcome
}

// ProvisionReport describes what one recipe run changed.
type ProvisionReport struct {
	Recipe    string
	Bootstrap BootstrapReport
	Files     []FileResult
	Commands  int
}
