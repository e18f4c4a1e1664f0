package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingboxShareLink(t *testing.T) {
	link, err := SingboxShareLink(defaultValues())

	require.NoError(t, err)
	assert.Equal(t,
		"vless://6f1c1c8e-4b7a-4d55-9a43-2f1de3e0f1aa@example.com:8443?encryption=none&security=tls&sni=example.com&type=tcp#vpsup-example.com",
		link,
	)
}

func TestSingboxShareLink_MissingValues(t *testing.T) {
	values := defaultValues()
	values["Secrets"] = map[string]interface{}{}

	_, err := SingboxShareLink(values)

	assert.Error(t, err)
}
