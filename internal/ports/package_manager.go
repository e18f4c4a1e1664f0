package ports

// PackageManager installs OS packages. InstallMany is invoked once with every
// package of a batch; its success is the only signal consumed.
type PackageManager interface {
	Name() string
	InstallMany(packages []string) error
}

// PackageManagerResolver picks the package manager for this host. A non-empty
// installCommand is used verbatim with the package names appended.
type PackageManagerResolver interface {
	Resolve(installCommand []string) (PackageManager, error)
}
