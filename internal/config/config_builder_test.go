package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// validConfig is the smallest config that passes validate on top of Defaults.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/registry"}},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_DefaultsOnlyAreInvalid(t *testing.T) {
	cfg, err := newConfigBuilder().withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_LaterSourcesOverride(t *testing.T) {
	b := newConfigBuilder().withDefaults()
	b.configs = append(b.configs,
		validConfig(),
		&StructuredConfig{
			Server:     Server{HTTPAddress: "0.0.0.0:9000"},
			Validation: Validation{MaxOntologyTerms: 20},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 20, cfg.Validation.MaxOntologyTerms)
	// untouched defaults survive
	assert.Equal(t, 4, cfg.Validation.MaxServiceClasses)
	assert.Equal(t, 11, cfg.Validation.DefaultVersion)
	assert.Equal(t, 5*time.Minute, cfg.Workers.CodeCacheRefreshInterval)
	assert.Equal(t, "postgres", cfg.Storage.DB.Driver)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestWithEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_VERSION":      "env-version",
		"APP_TOKEN_ISSUER": "env-issuer",
	})

	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv())

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_InvalidValue(t *testing.T) {
	setEnvVars(t, map[string]string{"VALIDATION_DEFAULT_VERSION": "eleven"})

	b := newConfigBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON(t *testing.T) {
	t.Run("no path set", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{})

		assert.Same(t, b, b.withJSON())
		assert.Len(t, b.configs, 1)
		assert.NoError(t, b.err)
	})

	t.Run("valid file", func(t *testing.T) {
		payload := StructuredJSONConfig{}
		payload.App.Version = "json-version"
		payload.Validation.MaxLifeEvents = 7
		path := writeTempJSONConfig(t, payload)

		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
		b.withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.configs, 2)
		assert.Equal(t, "json-version", b.configs[1].App.Version)
		assert.Equal(t, 7, b.configs[1].Validation.MaxLifeEvents)
	})

	t.Run("last path wins", func(t *testing.T) {
		first := StructuredJSONConfig{}
		first.App.Version = "first"
		last := StructuredJSONConfig{}
		last.App.Version = "last"

		b := newConfigBuilder()
		b.configs = append(b.configs,
			&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, first)},
			&StructuredConfig{JSONFilePath: writeTempJSONConfig(t, last)},
		)
		b.withJSON()

		require.NoError(t, b.err)
		require.Len(t, b.configs, 3)
		assert.Equal(t, "last", b.configs[2].App.Version)
	})

	t.Run("missing file", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
		b.withJSON()

		assert.Error(t, b.err)
		assert.Len(t, b.configs, 1)
	})

	t.Run("error already set is preserved", func(t *testing.T) {
		b := newConfigBuilder()
		b.err = assert.AnError
		b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
		b.withJSON()

		assert.ErrorIs(t, b.err, assert.AnError)
	})
}
