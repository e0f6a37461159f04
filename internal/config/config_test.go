package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[holidaze]
url = "http://holidaze.local"
api_key = "from-file"
timeout = 5

[calendar]
timezone = "UTC"

[selection]
ttl = 600
inflight_ttl = 20

[redis]
enabled = true
url = "redis://localhost:6379/0"

[cors]
allowed_origins = ["http://localhost:5173"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 30, cfg.Server.WriteTimeout, "default kept")
	assert.Equal(t, "http://holidaze.local", cfg.Holidaze.URL)
	assert.Equal(t, 5, cfg.Holidaze.Timeout)
	assert.Equal(t, 600, cfg.Selection.TTL)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.Database.Enabled)
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("HOLIDAZE_API_KEY", "from-env")
	t.Setenv("DATABASE_PASSWORD", "secret")

	path := writeConfig(t, `
[holidaze]
api_key = "from-file"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Holidaze.APIKey)
	assert.Equal(t, "secret", cfg.Database.Password)
}

func TestLoad_InvalidTimezone(t *testing.T) {
	path := writeConfig(t, `
[calendar]
timezone = "Mars/Olympus_Mons"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate_RedisRequiresURL(t *testing.T) {
	cfg := defaults()
	cfg.Redis.Enabled = true

	assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
}

func TestValidate_InFlightTTLMustExceedRemoteTimeout(t *testing.T) {
	path := writeConfig(t, `
[holidaze]
url = "http://holidaze.local"
timeout = 30

[selection]
inflight_ttl = 30
`)

	_, err := Load(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "inflight_ttl")

	cfg := defaults()
	cfg.Holidaze.Timeout = 10
	cfg.Selection.InFlightTTL = 11
	assert.NoError(t, cfg.Validate())
}

func TestDatabaseConfig_DSN(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "holidaze", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=holidaze sslmode=disable", d.DSN())
}
