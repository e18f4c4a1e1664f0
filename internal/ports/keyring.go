package ports

// Keyring stores the master key that encrypts the secrets file. keyName
// identifies the entry, so one host can hold keys for several config dirs.
type Keyring interface {
	GetKey(keyName string) (string, error)
	SetKey(keyName string, keyValue string) error
	HasKey(keyName string) (bool, error)
}
