package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureDir_RelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureDir(".feelflow")
	require.NoError(t, err)

	// macOS TempDir lives behind a /private symlink
	want, _ := filepath.EvalSymlinks(filepath.Join(tmp, ".feelflow"))
	gotResolved, _ := filepath.EvalSymlinks(got)
	assert.Equal(t, want, gotResolved)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestEnsureDir_AbsoluteAndIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	got, err := EnsureDir(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, got)

	_, err = EnsureDir(dir)
	require.NoError(t, err)
}

func TestWritePrivateFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")

	require.NoError(t, WritePrivateFile(path, []byte("first")))
	require.NoError(t, WritePrivateFile(path, []byte("second")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	if runtime.GOOS != "windows" {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWritePrivateFile_MissingDir(t *testing.T) {
	err := WritePrivateFile(filepath.Join(t.TempDir(), "nope", "token"), []byte("x"))
	assert.Error(t, err)
}
