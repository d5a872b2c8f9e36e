package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func TestInitConfigCreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wordfit", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	_, err = os.Stat(path)
	require.NoError(t, err, "default config should be written")

	reloaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, reloaded)
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
max_input_len = 32
max_limit = 20
default_limit = 5

[dict]
path = "/srv/words.txt"

[cli]
show_timing = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 32, cfg.Server.MaxInputLen)
	assert.Equal(t, 20, cfg.Server.MaxLimit)
	assert.Equal(t, 5, cfg.Server.DefaultLimit)
	assert.Equal(t, "/srv/words.txt", cfg.Dict.Path)
	assert.False(t, cfg.CLI.ShowTiming)
	assert.Equal(t, DefaultConfig().CLI.DefaultLimit, cfg.CLI.DefaultLimit, "unset keys keep defaults")
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	// max_limit has the wrong type, the strict decode fails
	content := `
[server]
max_input_len = 16
max_limit = "lots"

[dict]
path = "words.bin"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Server.MaxInputLen)
	assert.Equal(t, DefaultConfig().Server.MaxLimit, cfg.Server.MaxLimit)
	assert.Equal(t, "words.bin", cfg.Dict.Path)
}

func TestLoadConfigGarbageFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[[[ not toml"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestNormalize(t *testing.T) {
	testCases := []struct {
		description string
		in          ServerConfig
		expected    ServerConfig
	}{
		{"defaults untouched", ServerConfig{64, 64, 10}, ServerConfig{64, 64, 10}},
		{"negative input len", ServerConfig{-1, 64, 10}, ServerConfig{64, 64, 10}},
		{"zero input len means unlimited", ServerConfig{0, 64, 10}, ServerConfig{0, 64, 10}},
		{"zero max limit", ServerConfig{64, 0, 10}, ServerConfig{64, 64, 10}},
		{"default above max", ServerConfig{64, 4, 10}, ServerConfig{64, 4, 4}},
		{"zero default", ServerConfig{64, 64, 0}, ServerConfig{64, 64, 10}},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Server = tc.in
			cfg.normalize()
			assert.Equal(t, tc.expected, cfg.Server)
		})
	}
}

func TestUpdate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()

	inputLen, limit := 20, 8
	require.NoError(t, cfg.Update(path, &inputLen, &limit, nil))
	assert.Equal(t, 20, cfg.Server.MaxInputLen)
	assert.Equal(t, 8, cfg.Server.MaxLimit)
	assert.Equal(t, 8, cfg.Server.DefaultLimit, "default clamped to new max")

	saved, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, saved)
}

func TestLoadConfigWithPriorityCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("[cli]\ndefault_limit = 3\n"), 0644))

	cfg, used, err := LoadConfigWithPriority(path)
	require.NoError(t, err)
	assert.Equal(t, path, used)
	assert.Equal(t, 3, cfg.CLI.DefaultLimit)
}

func TestGetActiveConfigPath(t *testing.T) {
	assert.True(t, filepath.IsAbs(GetActiveConfigPath("config.toml")))
}

func TestUpdateKeepsUnsetValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := DefaultConfig()

	zero := 0
	require.NoError(t, cfg.Update(path, &zero, nil, nil))
	assert.Zero(t, cfg.Server.MaxInputLen, "zero disables the cap")
	assert.Equal(t, DefaultConfig().Server.MaxLimit, cfg.Server.MaxLimit)
	assert.Equal(t, DefaultConfig().Server.DefaultLimit, cfg.Server.DefaultLimit)

	saved, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, saved)
}
