package keyring

import (
	"errors"

	"vpsup/internal/ports"

	"github.com/zalando/go-keyring"
)

const serviceName = "vpsup"

var _ ports.Keyring = (*ZalandoKeyring)(nil)

// ZalandoKeyring stores keys in the OS keyring (Secret Service on Linux).
type ZalandoKeyring struct{}

func ProvideZalandoKeyring() *ZalandoKeyring {
	return &ZalandoKeyring{}
}

func (z ZalandoKeyring) GetKey(keyName string) (string, error) {
	return keyring.Get(serviceName, keyName)
}

func (z ZalandoKeyring) SetKey(keyName string, keyValue string) error {
	return keyring.Set(serviceName, keyName, keyValue)
}

func (z ZalandoKeyring) HasKey(keyName string) (bool, error) {
	_, err := keyring.Get(serviceName, keyName)
	if errors.Is(err, keyring.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}
