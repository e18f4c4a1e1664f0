package host

import (
	"os"

	"vpsup/internal/ports"
)

var _ ports.Host = (*OsHost)(nil)

type OsHost struct{}

func ProvideOsHost() *OsHost {
	return &OsHost{}
}

func (h *OsHost) EffectiveUserID() int {
	return os.Geteuid()
}

func (h *OsHost) Hostname() (string, error) {
	return os.Hostname()
}
