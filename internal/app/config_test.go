package app_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passkeep/internal/app"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG", "HOME", "BACKEND", "IO_TIMEOUT", "LOG_LEVEL", "LOG_PRETTY"} {
		t.Setenv(app.EnvPrefix+k, "")
		require.NoError(t, os.Unsetenv(app.EnvPrefix+k))
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
	assert.Equal(t, app.BackendFile, cfg.Backend)
	assert.Equal(t, 5*time.Second, cfg.IOTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FileThenEnv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "passkeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("home: /srv/vault\nbackend: sqlite\nio_timeout: 2s\nlog_level: info\n"), 0o600))
	t.Setenv("PASSKEEP_CONFIG", path)
	t.Setenv("PASSKEEP_LOG_LEVEL", "debug")

	cfg, err := app.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "/srv/vault", cfg.Home)
	assert.Equal(t, app.BackendSQLite, cfg.Backend)
	assert.Equal(t, 2*time.Second, cfg.IOTimeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_UnknownFieldRejected(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "passkeep.yaml")
	require.NoError(t, os.WriteFile(path, []byte("bakend: file\n"), 0o600))

	_, err := app.LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	clearEnv(t)

	_, err := app.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_BadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PASSKEEP_IO_TIMEOUT", "soon")

	_, err := app.LoadConfig("")
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	base := app.DefaultConfig()

	cases := map[string]func(*app.Config){
		"empty home":       func(c *app.Config) { c.Home = "" },
		"unknown backend":  func(c *app.Config) { c.Backend = "s3" },
		"zero timeout":     func(c *app.Config) { c.IOTimeout = 0 },
		"negative timeout": func(c *app.Config) { c.IOTimeout = -time.Second },
		"bad level":        func(c *app.Config) { c.LogLevel = "loud" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := base
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
