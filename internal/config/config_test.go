package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cristianoliveira/coursedash/internal/colors"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDirs(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(tmp, "state"))
	colors.SetOutput(&discard{}, &discard{})
	t.Cleanup(func() { colors.SetOutput(nil, nil) })
	return tmp
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func writeConfig(t *testing.T, dir string, values map[string]any) string {
	t.Helper()
	data, err := toml.Marshal(values)
	require.NoError(t, err)
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.MkdirAll(dir, FileModeDir))
	require.NoError(t, os.WriteFile(path, data, FileModeFile))
	return path
}

func TestLoadDefaults(t *testing.T) {
	tmp := setupDirs(t)

	Load()

	assert.Equal(t, filepath.Join(tmp, "config", "coursedash"), Get("config_dir", ""))
	assert.Equal(t, filepath.Join(tmp, "state", "coursedash"), Get("state_dir", ""))
	assert.Equal(t, filepath.Join(tmp, "config", "coursedash", "theme.toml"), Get("theme_path", ""))
	assert.Equal(t, 240, GetInt("transition_duration_ms", 0))
	assert.Equal(t, 6, GetInt("transition_frames", 0))
	assert.False(t, GetBool("logging_enabled", true))
	assert.Equal(t, "default", Get("missing", "default"))
	assert.Empty(t, Path())
	assert.Equal(t, filepath.Join(tmp, "config", "coursedash", "config.toml"), FilePath())
}

func TestLoadFromFileAndEnvPrecedence(t *testing.T) {
	tmp := setupDirs(t)
	configDir := filepath.Join(tmp, "config", "coursedash")
	writeConfig(t, configDir, map[string]any{
		"transition_frames": 10,
		"min_width":         100,
		"logging_enabled":   true,
	})
	t.Setenv("COURSEDASH_MIN_WIDTH", "80")

	Load()

	assert.Equal(t, 10, GetInt("transition_frames", 0))
	assert.Equal(t, 80, GetInt("min_width", 0), "environment wins over file")
	assert.True(t, GetBool("logging_enabled", false))
	assert.Equal(t, filepath.Join(configDir, "config.toml"), Path())
}

func TestLoadFromExplicitConfigPath(t *testing.T) {
	tmp := setupDirs(t)
	path := writeConfig(t, filepath.Join(tmp, "elsewhere"), map[string]any{"status_clear_seconds": 9})
	t.Setenv("COURSEDASH_CONFIG_PATH", path)

	Load()

	assert.Equal(t, 9, GetInt("status_clear_seconds", 0))
	assert.NotContains(t, Keys(), "config_path")
	assert.Equal(t, path, FilePath())
}

func TestInvalidValuesFallBackToDefaults(t *testing.T) {
	setupDirs(t)
	t.Setenv("COURSEDASH_TRANSITION_FRAMES", "0")
	t.Setenv("COURSEDASH_TRANSITION_DURATION_MS", "-5")
	t.Setenv("COURSEDASH_LOGGING_LEVEL", "LOUD")
	t.Setenv("COURSEDASH_DEBUG", "maybe")

	Load()

	assert.Equal(t, 6, GetInt("transition_frames", 0))
	assert.Equal(t, 240, GetInt("transition_duration_ms", 0))
	assert.Equal(t, "info", Get("logging_level", ""))
	assert.False(t, GetBool("debug", true))
}

func TestZeroTransitionDurationIsAllowed(t *testing.T) {
	setupDirs(t)
	t.Setenv("COURSEDASH_TRANSITION_DURATION_MS", "0")

	Load()

	assert.Equal(t, 0, GetInt("transition_duration_ms", 99))
}

func TestBoolNormalization(t *testing.T) {
	setupDirs(t)
	t.Setenv("COURSEDASH_QUIET", "yes")

	Load()

	assert.Equal(t, "true", Get("quiet", ""))
	assert.True(t, GetBool("quiet", false))
}

func TestThemePathFollowsConfigDir(t *testing.T) {
	tmp := setupDirs(t)
	custom := filepath.Join(tmp, "custom")
	t.Setenv("COURSEDASH_CONFIG_DIR", custom)

	Load()

	assert.Equal(t, filepath.Join(custom, "theme.toml"), Get("theme_path", ""))
}

func TestWriteSampleAndMarshal(t *testing.T) {
	tmp := setupDirs(t)
	Load()

	path := filepath.Join(tmp, "sample", "config.toml")
	require.NoError(t, WriteSample(path))
	require.Error(t, WriteSample(path), "existing file must not be overwritten")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# coursedash configuration")

	var parsed map[string]any
	require.NoError(t, toml.Unmarshal(data, &parsed))
	assert.EqualValues(t, 240, parsed["transition_duration_ms"])

	effective, err := MarshalTOML()
	require.NoError(t, err)
	assert.Contains(t, string(effective), "min_width")
}

func TestSetOverridesValue(t *testing.T) {
	setupDirs(t)
	Load()

	Set("transition_duration_ms", "0")

	assert.Equal(t, 0, GetInt("transition_duration_ms", 1))
}

func TestRegisterValidatorPanicsOnDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterValidator("min_width", PositiveIntValidator())
	})
}
