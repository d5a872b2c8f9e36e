package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestSaveTOMLFileCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "sample.toml")
	require.NoError(t, SaveTOMLFile(sample{Name: "nested"}, path))
	assert.True(t, FileExists(path))
}

func TestSaveAndLoadTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	require.NoError(t, SaveTOMLFile(sample{Name: "words", Count: 3}, path))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Dir(path)), "directories are not files")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")

	var got sample
	require.NoError(t, LoadTOMLFile(path, &got))
	assert.Equal(t, sample{Name: "words", Count: 3}, got)
}

func TestParseTOMLWithRecovery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.toml")
	content := "[server]\nmax_limit = 12\nname = \"x\"\nflag = true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	data, err := ParseTOMLWithRecovery(path)
	require.NoError(t, err)

	section, ok := ExtractSection(data, "server")
	require.True(t, ok)

	limit, ok := ExtractInt64(section, "max_limit")
	assert.True(t, ok)
	assert.Equal(t, 12, limit)

	name, ok := ExtractString(section, "name")
	assert.True(t, ok)
	assert.Equal(t, "x", name)

	flag, ok := ExtractBool(section, "flag")
	assert.True(t, ok)
	assert.True(t, flag)

	_, ok = ExtractInt64(section, "name")
	assert.False(t, ok, "string is not an int")
	_, ok = ExtractSection(data, "missing")
	assert.False(t, ok)
}

func TestParseTOMLWithRecoveryBroken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server\nmax_limit = "), 0644))

	_, err := ParseTOMLWithRecovery(path)
	assert.Error(t, err)
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")

	result := CheckDirStatus(dir)
	assert.NoError(t, result.Error)
	assert.True(t, result.Exists)
	assert.True(t, result.Writable)
}

func TestGetAbsolutePath(t *testing.T) {
	assert.Equal(t, "unknown", GetAbsolutePath(""))
	assert.True(t, filepath.IsAbs(GetAbsolutePath("words.txt")))
	assert.Equal(t, "/tmp/words.txt", GetAbsolutePath("/tmp/words.txt"))
}

func TestResolveWordList(t *testing.T) {
	dir := t.TempDir()
	list := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(list, []byte("a\n"), 0644))

	pr := &PathResolver{executableDir: dir, configDir: filepath.Join(dir, "cfg")}

	got, err := pr.ResolveWordList("")
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = pr.ResolveWordList(list)
	require.NoError(t, err)
	assert.Equal(t, list, got)

	// relative names are also looked up next to the executable
	got, err = pr.ResolveWordList("words.txt")
	require.NoError(t, err)
	assert.Equal(t, filepath.Base(list), filepath.Base(got))

	_, err = pr.ResolveWordList("missing.txt")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPlatformConfigDir(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG lookup is linux only")
	}
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	assert.Equal(t, filepath.Join(xdg, "wordfit"), PlatformConfigDir("/home/nobody"))

	t.Setenv("XDG_CONFIG_HOME", "")
	assert.Equal(t, filepath.Join("/home/nobody", ".config", "wordfit"), PlatformConfigDir("/home/nobody"))
}
