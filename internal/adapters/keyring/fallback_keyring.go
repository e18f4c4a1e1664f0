package keyring

import (
	"log/slog"

	"vpsup/internal/ports"
)

var _ ports.Keyring = (*FallbackKeyring)(nil)

// FallbackKeyring uses the primary keyring and switches to the fallback for
// the rest of the run once the primary is unavailable, e.g. on a headless
// server without a D-Bus session.
type FallbackKeyring struct {
	primary     ports.Keyring
	fallback    ports.Keyring
	useFallback bool
}

func ProvideKeyring(fileSystem ports.FileSystem) ports.Keyring {
	return NewFallbackKeyring(ProvideZalandoKeyring(), ProvideFileKeyring(fileSystem))
}

func NewFallbackKeyring(primary ports.Keyring, fallback ports.Keyring) *FallbackKeyring {
	return &FallbackKeyring{primary: primary, fallback: fallback}
}

func (k *FallbackKeyring) switchToFallback(err error) {
	if !k.useFallback {
		slog.Warn("OS keyring unavailable, using key files", "error", err)
		k.useFallback = true
	}
}

func (k *FallbackKeyring) HasKey(keyName string) (bool, error) {
	if !k.useFallback {
		exists, err := k.primary.HasKey(keyName)
		if err == nil && exists {
			return true, nil
		}
		if err != nil {
			k.switchToFallback(err)
		}
	}
	return k.fallback.HasKey(keyName)
}

func (k *FallbackKeyring) GetKey(keyName string) (string, error) {
	if !k.useFallback {
		exists, err := k.primary.HasKey(keyName)
		if err != nil {
			k.switchToFallback(err)
		} else if exists {
			return k.primary.GetKey(keyName)
		}
	}
	return k.fallback.GetKey(keyName)
}

func (k *FallbackKeyring) SetKey(keyName string, keyValue string) error {
	if !k.useFallback {
		err := k.primary.SetKey(keyName, keyValue)
		if err == nil {
			return nil
		}
		k.switchToFallback(err)
	}
	return k.fallback.SetKey(keyName, keyValue)
}
