package sharecode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQrRenderer_Render(t *testing.T) {
	sut := ProvideQrRenderer()

	code, err := sut.Render("vless://6f1c1c8e-4b7a-4d55-9a43-2f1de3e0f1aa@example.com:8443?security=tls&sni=example.com&type=tcp#vpsup")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(code, "\n"), "\n")
	assert.Greater(t, len(lines), 10)
}

func TestQrRenderer_RenderIsDeterministic(t *testing.T) {
	sut := ProvideQrRenderer()

	first, err := sut.Render("vless://a@b:1")
	require.NoError(t, err)
	second, err := sut.Render("vless://a@b:1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestQrRenderer_RenderEmptyLink(t *testing.T) {
	_, err := ProvideQrRenderer().Render("")

	assert.Error(t, err)
}
