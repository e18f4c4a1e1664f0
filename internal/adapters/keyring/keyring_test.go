package keyring

import (
	"errors"
	"testing"

	"vpsup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zalando/go-keyring"
)

func TestZalandoKeyring_RoundTrip(t *testing.T) {
	keyring.MockInit()
	sut := ProvideZalandoKeyring()

	exists, err := sut.HasKey("secrets-encryption-key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, sut.SetKey("secrets-encryption-key", "abc"))

	exists, err = sut.HasKey("secrets-encryption-key")
	require.NoError(t, err)
	assert.True(t, exists)
	value, err := sut.GetKey("secrets-encryption-key")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
}

func TestZalandoKeyring_HasKeyPropagatesBackendErrors(t *testing.T) {
	keyring.MockInitWithError(errors.New("dbus: no session bus"))
	t.Cleanup(keyring.MockInit)
	sut := ProvideZalandoKeyring()

	_, err := sut.HasKey("secrets-encryption-key")

	assert.Error(t, err)
}

func TestFileKeyring_RoundTrip(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	sut := NewFileKeyring(fileSystem, DefaultKeyDir)

	exists, err := sut.HasKey("secrets-encryption-key")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, sut.SetKey("secrets-encryption-key", "abc"))

	value, err := sut.GetKey("secrets-encryption-key")
	require.NoError(t, err)
	assert.Equal(t, "abc", value)
	content, err := fileSystem.ReadFile("/etc/vpsup/keys/secrets-encryption-key")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(content))
}

func TestFileKeyring_RejectsPathLikeNames(t *testing.T) {
	sut := NewFileKeyring(testutil.NewTestFileSystem(t), DefaultKeyDir)

	for _, name := range []string{"", ".", "..", "../passwd", `a\b`} {
		assert.Error(t, sut.SetKey(name, "x"), name)
	}
}

func TestFallbackKeyring_UsesPrimaryWhenAvailable(t *testing.T) {
	primary := new(testutil.MockKeyring)
	fallback := new(testutil.MockKeyring)
	primary.On("HasKey", "k").Return(true, nil)
	primary.On("GetKey", "k").Return("from-primary", nil)
	primary.On("SetKey", "k", "v").Return(nil)
	sut := NewFallbackKeyring(primary, fallback)

	value, err := sut.GetKey("k")
	require.NoError(t, err)
	assert.Equal(t, "from-primary", value)
	require.NoError(t, sut.SetKey("k", "v"))

	fallback.AssertNotCalled(t, "GetKey", "k")
	fallback.AssertNotCalled(t, "SetKey", "k", "v")
}

func TestFallbackKeyring_KeyOnlyInFallback(t *testing.T) {
	primary := new(testutil.MockKeyring)
	fallback := new(testutil.MockKeyring)
	primary.On("HasKey", "k").Return(false, nil)
	fallback.On("HasKey", "k").Return(true, nil)
	fallback.On("GetKey", "k").Return("from-file", nil)
	sut := NewFallbackKeyring(primary, fallback)

	exists, err := sut.HasKey("k")
	require.NoError(t, err)
	assert.True(t, exists)
	value, err := sut.GetKey("k")
	require.NoError(t, err)
	assert.Equal(t, "from-file", value)
}

func TestFallbackKeyring_SwitchesOnceWhenPrimaryFails(t *testing.T) {
	primary := new(testutil.MockKeyring)
	fallback := new(testutil.MockKeyring)
	primary.On("SetKey", "k", "v").Return(errors.New("dbus: no session bus")).Once()
	fallback.On("SetKey", "k", "v").Return(nil).Once()
	fallback.On("GetKey", "k").Return("v", nil).Once()
	sut := NewFallbackKeyring(primary, fallback)

	require.NoError(t, sut.SetKey("k", "v"))
	value, err := sut.GetKey("k")

	require.NoError(t, err)
	assert.Equal(t, "v", value)
	primary.AssertNumberOfCalls(t, "SetKey", 1)
	primary.AssertNotCalled(t, "HasKey", "k")
	fallback.AssertExpectations(t)
}
