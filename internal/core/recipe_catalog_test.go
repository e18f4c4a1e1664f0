package core

import (
	"encoding/json"
	"errors"
	"testing"

	"vpsup/internal/adapters/templater"
	"vpsup/internal/core/domain"
	"vpsup/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultValues() map[string]interface{} {
	config := domain.CreateDefaultConfig()
	return map[string]interface{}{
		"Settings": config.Settings,
		"Secrets": map[string]interface{}{
			"singbox": map[string]interface{}{"uuid": "6f1c1c8e-4b7a-4d55-9a43-2f1de3e0f1aa"},
		},
	}
}

func TestRecipeCatalog_ListIsSortedWithCustomLast(t *testing.T) {
	sut := ProvideRecipeCatalog(new(testutil.MockConfigRepository))

	var names []string
	for _, recipe := range sut.List() {
		names = append(names, recipe.Name)
	}

	assert.Equal(t, []string{"certbot", "docker", "harden", "nginx", "singbox", "custom"}, names)
}

func TestRecipeCatalog_GetUnknownRecipe(t *testing.T) {
	sut := ProvideRecipeCatalog(new(testutil.MockConfigRepository))

	_, err := sut.Get("apache")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown recipe 'apache'")
	assert.Contains(t, err.Error(), "singbox")
}

func TestRecipeCatalog_GetCustomUsesConfig(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	config := domain.CreateDefaultConfig()
	configRepository.On("LoadConfig").Return(&config, nil)
	sut := ProvideRecipeCatalog(configRepository)

	recipe, err := sut.Get(CustomRecipeName)

	require.NoError(t, err)
	assert.Equal(t, config.Files, recipe.Files)
	assert.Equal(t, config.Dependencies, recipe.DependencySpecs(domain.OSRelease{}, "apt-get"))
}

func TestRecipeCatalog_GetCustomConfigError(t *testing.T) {
	configRepository := new(testutil.MockConfigRepository)
	configRepository.On("LoadConfig").Return(nil, errors.New("no config"))
	sut := ProvideRecipeCatalog(configRepository)

	_, err := sut.Get(CustomRecipeName)

	assert.EqualError(t, err, "no config")
}

func TestRecipeCatalog_BuiltinsRenderWithDefaultConfig(t *testing.T) {
	sut := ProvideRecipeCatalog(new(testutil.MockConfigRepository))
	textTemplater := templater.ProvideTextTemplater()
	values := defaultValues()

	for _, recipe := range sut.List() {
		if recipe.Name == CustomRecipeName {
			continue
		}
		t.Run(recipe.Name, func(t *testing.T) {
			assert.Empty(t, MissingTemplateValues(recipe, values))
			for _, file := range recipe.Files {
				destination, err := textTemplater.Render(file.Destination, "destination", values)
				require.NoError(t, err)
				spec := file.InstallSpec(destination, "content")
				require.NoError(t, spec.Validate())

				_, err = textTemplater.Render(file.Template, destination, values)
				require.NoError(t, err)
			}
		})
	}
}

func TestRecipeCatalog_SingboxConfigIsValidJSON(t *testing.T) {
	sut := ProvideRecipeCatalog(new(testutil.MockConfigRepository))
	recipe, err := sut.Get("singbox")
	require.NoError(t, err)

	rendered, err := templater.ProvideTextTemplater().Render(recipe.Files[0].Template, "singbox", defaultValues())
	require.NoError(t, err)

	var config map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(rendered), &config))
	inbound := config["inbounds"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, float64(8443), inbound["listen_port"])
	assert.Equal(t, []domain.GeneratedSecret{{Key: "singbox.uuid", Kind: domain.SecretUUID}}, recipe.GeneratedSecrets)
}

func TestRecipeCatalog_DockerPackageDependsOnFamily(t *testing.T) {
	sut := ProvideRecipeCatalog(new(testutil.MockConfigRepository))
	recipe, err := sut.Get("docker")
	require.NoError(t, err)

	debian := recipe.DependencySpecs(domain.OSRelease{ID: "ubuntu", IDLike: []string{"debian"}}, "apt-get")
	arch := recipe.DependencySpecs(domain.OSRelease{ID: "arch"}, "pacman")

	assert.Equal(t, "docker.io", debian[0].PackageName)
	assert.Equal(t, "docker", arch[0].PackageName)
}
