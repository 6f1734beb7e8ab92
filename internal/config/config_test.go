package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.APIURL = "https://sig.example.com"
	cfg.Refine = true
	cfg.Timeout = 30 * time.Second
	cfg.SetPath(path)
	require.NoError(t, cfg.Save())

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := LoadFrom(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "https://sig.example.com", loaded.APIURL)
	assert.True(t, loaded.Refine)
	assert.Equal(t, 30*time.Second, loaded.Timeout)
	assert.Equal(t, "monokai", loaded.Theme)
	assert.Equal(t, path, loaded.Path())
}

func TestLoadFromFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://10.0.0.5:9000\n"), 0600))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000", cfg.APIURL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Refine)
}

func TestLoadFromInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: [unclosed\n"), 0600))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("API_URL", "http://legacy:8000")
	t.Setenv("PROMPTSIG_API_URL", "http://override:8000")
	t.Setenv("PROMPTSIG_REFINE", "true")
	t.Setenv("PROMPTSIG_TIMEOUT", "45s")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "http://override:8000", cfg.APIURL)
	assert.True(t, cfg.Refine)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestApplyEnvLegacyName(t *testing.T) {
	t.Setenv("API_URL", "http://legacy:8000")
	t.Setenv("PROMPTSIG_API_URL", "")

	cfg := DefaultConfig()
	cfg.ApplyEnv()

	assert.Equal(t, "http://legacy:8000", cfg.APIURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		apiURL  string
		want    string
		wantErr bool
	}{
		{name: "default", apiURL: DefaultAPIURL, want: DefaultAPIURL},
		{name: "trailing slash trimmed", apiURL: "https://api.example.com/", want: "https://api.example.com"},
		{name: "surrounding space trimmed", apiURL: "  http://localhost:8000  ", want: "http://localhost:8000"},
		{name: "empty", apiURL: "", wantErr: true},
		{name: "no scheme", apiURL: "localhost:8000", wantErr: true},
		{name: "ftp scheme", apiURL: "ftp://example.com", wantErr: true},
		{name: "missing host", apiURL: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.APIURL = tt.apiURL
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.APIURL)
		})
	}
}

func TestValidateNegativeTimeout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Timeout = -time.Second
	assert.Error(t, cfg.Validate())
}
