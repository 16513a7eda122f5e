package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureUserConfigSeedsBakedDefault(t *testing.T) {
	dir := t.TempDir()
	path, err := EnsureUserConfig(dir, filepath.Join(dir, "no-such-default.yml"))
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 38472, cfg.App.Port)
	assert.Empty(t, cfg.API.BaseURL)
}

func TestEnsureUserConfigKeepsExisting(t *testing.T) {
	dir := t.TempDir()
	userPath := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(userPath, []byte("app:\n  port: 40000\n"), 0o644))

	path, err := EnsureUserConfig(dir, "ignored")
	require.NoError(t, err)
	assert.Equal(t, userPath, path)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40000, cfg.App.Port)
}

func TestOverlayEnv(t *testing.T) {
	t.Setenv("BITSJOB_API_URL", "http://localhost:9000")
	t.Setenv("BITSJOB_CONTACT_URL", "https://example.com/contact")

	var cfg Config
	cfg.Links.RepoURL = "https://github.com/shivang-jani/bitsjob-search-frontend"
	OverlayEnv(&cfg)

	assert.Equal(t, "http://localhost:9000", cfg.API.BaseURL)
	assert.Equal(t, "https://example.com/contact", cfg.Links.ContactURL)
	assert.Equal(t, "https://github.com/shivang-jani/bitsjob-search-frontend", cfg.Links.RepoURL)
}

func TestNormalizeAndValidate(t *testing.T) {
	var cfg Config
	cfg.API.BaseURL = "https://bitsjobsearch.com/ "

	out, res := NormalizeAndValidate(cfg)
	assert.True(t, res.OK())
	assert.Equal(t, defaultPort, out.App.Port)
	assert.Equal(t, "https://bitsjobsearch.com", out.API.BaseURL)

	cfg.API.BaseURL = "not a url"
	_, res = NormalizeAndValidate(cfg)
	assert.False(t, res.OK())
}

func TestSaveAtomicRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")

	var cfg Config
	cfg.App.Port = 40001
	cfg.API.BaseURL = "http://localhost:9000"
	require.NoError(t, SaveAtomic(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 40001, got.App.Port)
	assert.Equal(t, "http://localhost:9000", got.API.BaseURL)

	// Second save keeps a .bak of the previous file.
	cfg.App.Port = 40002
	require.NoError(t, SaveAtomic(path, cfg))
	_, err = os.Stat(path + ".bak")
	assert.NoError(t, err)
}
