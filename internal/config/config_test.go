package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/dirmap/pkg/dirmap"
)

func noEnv(string) (string, bool) { return "", false }

func mapEnv(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad_AllFields(t *testing.T) {
	dir := t.TempDir()
	content := `root: ~/notes
show_hidden: false
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "~/notes", cfg.Root)
	require.NotNil(t, cfg.ShowHidden)
	assert.False(t, *cfg.ShowHidden)
	assert.True(t, cfg.Verbose)
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.True(t, errors.Is(err, ErrConfigNotFound), "expected ErrConfigNotFound, got: %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("{{invalid"), 0644))

	cfg, err := Load(dir)
	assert.True(t, errors.Is(err, dirmap.ErrInvalidConfig), "got %v", err)
	assert.Nil(t, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(""), 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, Config{}, *cfg)
}

func TestResolve_Defaults(t *testing.T) {
	s, err := Resolve(nil, noEnv)
	require.NoError(t, err)
	assert.Equal(t, Settings{ShowHidden: true}, s)
}

func TestResolve_EnvOverridesFile(t *testing.T) {
	hidden := false
	cfg := &Config{Root: "/from/file", ShowHidden: &hidden}

	s, err := Resolve(cfg, mapEnv(map[string]string{
		EnvRoot:       "/from/env",
		EnvShowHidden: "true",
		EnvVerbose:    "1",
	}))
	require.NoError(t, err)
	assert.Equal(t, Settings{Root: "/from/env", ShowHidden: true, Verbose: true}, s)
}

func TestResolve_FileOnly(t *testing.T) {
	hidden := false
	s, err := Resolve(&Config{Root: "/from/file", ShowHidden: &hidden}, noEnv)
	require.NoError(t, err)
	assert.Equal(t, Settings{Root: "/from/file"}, s)
}

func TestResolve_InvalidBool(t *testing.T) {
	_, err := Resolve(nil, mapEnv(map[string]string{EnvVerbose: "loud"}))
	assert.True(t, errors.Is(err, dirmap.ErrInvalidConfig), "got %v", err)
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("DIRMAP_TEST_ONLY_VAR=from-file\n"), 0644))
	t.Setenv("DIRMAP_TEST_ONLY_VAR", "")
	os.Unsetenv("DIRMAP_TEST_ONLY_VAR")

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "from-file", os.Getenv("DIRMAP_TEST_ONLY_VAR"))
}

func TestLoadEnvFile_DoesNotOverride(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("DIRMAP_TEST_ONLY_VAR=from-file\n"), 0644))
	t.Setenv("DIRMAP_TEST_ONLY_VAR", "from-shell")

	require.NoError(t, LoadEnvFile(envPath))
	assert.Equal(t, "from-shell", os.Getenv("DIRMAP_TEST_ONLY_VAR"))
}

func TestLoadEnvFile_MissingExplicitPath(t *testing.T) {
	err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env"))
	assert.True(t, errors.Is(err, dirmap.ErrInvalidConfig), "got %v", err)
}
