package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	config, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", config.ListenAddr)
	assert.Equal(t, "./public", config.PublicDir)
	assert.Empty(t, config.AllowedOrigins)
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"listen_addr": ":9090",
		"allowed_origins": ["https://game.example.com"]
	}`), 0o644))

	config, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", config.ListenAddr)
	assert.Equal(t, []string{"https://game.example.com"}, config.AllowedOrigins)
	assert.Equal(t, "./public", config.PublicDir, "omitted fields keep their defaults")
}

func TestLoadConfigRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}
