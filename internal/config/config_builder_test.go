package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

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

// validConfig returns a config that passes validate.
func validConfig() *StructuredConfig {
	cfg := defaults()
	cfg.App.TokenSignKey = "secret"
	cfg.Storage.DB.DSN = "postgres://localhost/hub"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that an empty merge result fails
// validation.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that a field set by an earlier config
// is not overwritten by a later one, while empty fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0"}},
		&StructuredConfig{App: App{Version: "0.0.1", TokenIssuer: "issuer"}},
		validConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{TokenSignKey: "k"},
			Storage: Storage{DB: DB{DSN: "postgres://db"}},
		},
	)
	b.withDefaults()

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, EnvProduction, cfg.App.Environment)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Server.AllowedOrigins)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsConfig(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "localhost:9000", "-d", "postgres://db"})
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "localhost:9000", b.configs[0].Server.HTTPAddress)
	assert.Equal(t, "postgres://db", b.configs[0].Storage.DB.DSN)
}

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"token_sign_key": "from-json", "token_duration": "2h"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "from-json", b.configs[1].App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, b.configs[1].App.TokenDuration)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})
	b.withJSON()
	assert.Error(t, b.err)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("APP_TOKEN_SIGN_KEY=dotenv-key\n"), 0o600))

	t.Setenv("DOTENV", path)
	t.Setenv("APP_TOKEN_SIGN_KEY", "")
	require.NoError(t, os.Unsetenv("APP_TOKEN_SIGN_KEY"))

	b := newConfigBuilder().withDotEnv()
	require.NoError(t, b.err)
	assert.Equal(t, "dotenv-key", os.Getenv("APP_TOKEN_SIGN_KEY"))
}

func TestWithDotEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	b := newConfigBuilder().withDotEnv()
	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

func TestGetStructuredConfig_EnvBeatsFlags(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DOTENV", "")
	t.Setenv("APP_TOKEN_SIGN_KEY", "env-key")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	cfg, err := GetStructuredConfig([]string{"-d", "postgres://flag", "-token-issuer", "flag-issuer", "-env", "test"})
	require.NoError(t, err)

	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	assert.Equal(t, "env-key", cfg.App.TokenSignKey)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, EnvTest, cfg.App.Environment)
	assert.False(t, cfg.App.SecureCookies())
}

func TestGetStructuredConfig_MissingSignKey(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("DOTENV", "")
	t.Setenv("APP_TOKEN_SIGN_KEY", "")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://env")

	_, err := GetStructuredConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
}
