package host

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsHost(t *testing.T) {
	sut := ProvideOsHost()

	assert.Equal(t, os.Geteuid(), sut.EffectiveUserID())
	hostname, err := sut.Hostname()
	require.NoError(t, err)
	assert.NotEmpty(t, hostname)
}
