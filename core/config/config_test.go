package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "en", cfg.Server.DefaultLanguage)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "storage/app/public/plants", cfg.Media.Root)
	assert.Equal(t, "/storage/plants", cfg.Media.PublicPrefix)
	assert.Equal(t, 10, cfg.Media.ScanTimeoutSeconds)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("MEDIA_ROOT", "/tmp/plants")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DATABASE_NAME", "verdex_test")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/tmp/plants", cfg.Media.Root)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "verdex_test", cfg.Database.Name)
}
