package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubeharvest/shipkit/internal/adapters/outbound/config"
	"github.com/tubeharvest/shipkit/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".shipkit.yaml"), []byte(content), 0o644))
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	loader := config.New()
	cfg, err := loader.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestLoad_OverridesKeepOtherDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "python: python3\ncritical_deps:\n  - yt-dlp\n")

	loader := config.New()
	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, []string{"yt-dlp"}, cfg.CriticalDeps)
	assert.Equal(t, "tubeharvest", cfg.PackageName, "untouched fields keep defaults")
	assert.Equal(t, "dist", cfg.DistDir)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "python: [unclosed\n")

	loader := config.New()
	_, err := loader.Load(dir)
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "package_name: \"\"\n")

	loader := config.New()
	_, err := loader.Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .shipkit.yaml")
}
