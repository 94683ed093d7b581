package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "assets", cfg.Storage.Bucket)
		assert.Equal(t, "mysql", cfg.Database.Driver)
		assert.Equal(t, "builtin", cfg.Catalog.Source)
		assert.Equal(t, 300, cfg.Catalog.CacheTTLSeconds)
		assert.True(t, cfg.Session.Persist)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("SERVER_PORT", "9090")
		t.Setenv("CATALOG_SOURCE", "file")
		t.Setenv("CATALOG_FILE", "/etc/armory/items.yaml")
		t.Setenv("SESSION_PERSIST", "false")

		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Server.Port)
		assert.Equal(t, "file", cfg.Catalog.Source)
		assert.Equal(t, "/etc/armory/items.yaml", cfg.Catalog.File)
		assert.False(t, cfg.Session.Persist)
	})

	t.Run("Env File", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\nDATABASE_DRIVER=sqlite\n"), 0o644))
		t.Cleanup(func() {
			os.Unsetenv("LOG_LEVEL")
			os.Unsetenv("DATABASE_DRIVER")
		})

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.Equal(t, "sqlite", cfg.Database.Driver)
	})

	t.Run("Invalid Catalog Source", func(t *testing.T) {
		t.Setenv("CATALOG_SOURCE", "ftp")

		_, err := LoadConfig(t.TempDir())
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		return cfg
	}

	t.Run("Defaults", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("Reports Every Problem", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.Source = "ftp"
		cfg.Database.Driver = "postgres"
		cfg.Log.Format = "xml"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ftp")
		assert.Contains(t, err.Error(), "postgres")
		assert.Contains(t, err.Error(), "xml")
	})

	t.Run("Negative TTL", func(t *testing.T) {
		cfg := valid()
		cfg.Catalog.CacheTTLSeconds = -1
		assert.Error(t, cfg.Validate())
	})
}
