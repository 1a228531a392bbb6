package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/obinexus/shellutils/internal/fsops"
	"github.com/obinexus/shellutils/internal/platform"
)

// setupHome points the config directory at a temp dir and resets viper.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("SHELLUTILS_HOME", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestDirHonoursEnvOverride(t *testing.T) {
	home := setupHome(t)
	assert.Equal(t, home, Dir())
	assert.Equal(t, filepath.Join(home, "config.yaml"), FilePath())
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	setupHome(t)
	require.NoError(t, Load())
	require.NoError(t, Check())

	p, err := Platform()
	require.NoError(t, err)
	assert.Equal(t, platform.Current(), p)
	assert.True(t, ArchiveSeparate())
	assert.Empty(t, ArchiveOutDir())
	assert.Equal(t, fsops.DefaultExclude, ScanExclude())
	assert.Equal(t, "warn", LogLevel())
	assert.Equal(t, CurrentVersion, Get(KeyVersion))
}

func TestLoadReadsFile(t *testing.T) {
	home := setupHome(t)
	content := "config_version: \"1.2.0\"\nplatform: windows\narchive:\n  separate: false\n  out_dir: /tmp/bundles\nscan:\n  exclude: [vendor]\n"
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte(content), 0644))

	require.NoError(t, Load())
	require.NoError(t, Check())

	p, err := Platform()
	require.NoError(t, err)
	assert.Equal(t, platform.Windows, p)
	assert.False(t, ArchiveSeparate())
	assert.Equal(t, "/tmp/bundles", ArchiveOutDir())
	assert.Equal(t, []string{"vendor"}, ScanExclude())
	assert.Equal(t, "vendor", Get(KeyScanExclude))
}

func TestLoadMalformedFile(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("archive: [unclosed"), 0644))
	assert.Error(t, Load())
}

func TestEnvironmentOverridesNestedKey(t *testing.T) {
	setupHome(t)
	t.Setenv("SHELLUTILS_ARCHIVE_OUT_DIR", "/srv/out")
	require.NoError(t, Load())
	assert.Equal(t, "/srv/out", ArchiveOutDir())
}

func TestSetPersistsTypedValues(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, Load())

	require.NoError(t, Set(KeyArchiveSeparate, "false"))
	require.NoError(t, Set(KeyScanExclude, ".git, dist ,"))
	require.NoError(t, Set(KeyPlatform, "unix"))
	assert.FileExists(t, filepath.Join(home, "config.yaml"))

	viper.Reset()
	require.NoError(t, Load())
	require.NoError(t, Check())
	assert.False(t, ArchiveSeparate())
	assert.Equal(t, []string{".git", "dist"}, ScanExclude())
	assert.Equal(t, "unix", Get(KeyPlatform))
	assert.Equal(t, CurrentVersion, Get(KeyVersion))
}

func TestSetRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"unknown key", "colour", "blue"},
		{"non-bool", KeyArchiveSeparate, "maybe"},
		{"bad platform", KeyPlatform, "beos"},
		{"bad level", KeyLogLevel, "loud"},
		{"future version", KeyVersion, "2.0.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := setupHome(t)
			require.NoError(t, Load())

			assert.Error(t, Set(tt.key, tt.value))
			assert.NoFileExists(t, filepath.Join(home, "config.yaml"))
		})
	}
}

func TestCheckReportsInvalidFile(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("platform: beos\n"), 0644))
	require.NoError(t, Load())

	err := Check()
	var invalid *InvalidError
	require.True(t, errors.As(err, &invalid))
	require.Len(t, invalid.Issues, 1)
	assert.Equal(t, "/platform", invalid.Issues[0].Path)
	assert.Contains(t, err.Error(), "/platform")
}

func TestSetWritesOnlyFileKeys(t *testing.T) {
	home := setupHome(t)
	t.Setenv("SHELLUTILS_PLATFORM", "windows")
	require.NoError(t, Load())

	require.NoError(t, Set(KeyLogLevel, "debug"))

	data, err := os.ReadFile(filepath.Join(home, "config.yaml"))
	require.NoError(t, err)
	var saved map[string]any
	require.NoError(t, yaml.Unmarshal(data, &saved))
	assert.Equal(t, map[string]any{
		"config_version": CurrentVersion,
		"log":            map[string]any{"level": "debug"},
	}, saved)

	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, "windows", Get(KeyPlatform))
}

func TestSetKeepsExistingFileKeys(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("config_version: \"1.1.0\"\nplatform: unix\n"), 0644))
	require.NoError(t, Load())

	require.NoError(t, Set(KeyArchiveOutDir, "/tmp/out"))

	res, err := ValidateFile(path)
	require.NoError(t, err)
	assert.True(t, res.Valid)

	viper.Reset()
	require.NoError(t, Load())
	assert.Equal(t, "1.1.0", Get(KeyVersion))
	assert.Equal(t, "unix", Get(KeyPlatform))
	assert.Equal(t, "/tmp/out", ArchiveOutDir())
}

func TestSetReplacesMalformedFile(t *testing.T) {
	home := setupHome(t)
	path := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("platform: [unclosed"), 0644))
	require.Error(t, Load())
	LoadDefaults()

	require.NoError(t, Set(KeyPlatform, "windows"))

	viper.Reset()
	require.NoError(t, Load())
	require.NoError(t, Check())
	p, err := Platform()
	require.NoError(t, err)
	assert.Equal(t, platform.Windows, p)
}

func TestLoadDefaultsDropsFileValues(t *testing.T) {
	home := setupHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("archive:\n  separate: false\n"), 0644))
	require.NoError(t, Load())
	require.False(t, ArchiveSeparate())

	LoadDefaults()
	assert.True(t, ArchiveSeparate())
	assert.Equal(t, fsops.DefaultExclude, ScanExclude())
}
