package security

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFilePath(t *testing.T) {
	t.Run("rejects empty path", func(t *testing.T) {
		_, err := ValidateFilePath("")
		assert.ErrorContains(t, err, "cannot be empty")
	})

	t.Run("rejects shell metacharacters", func(t *testing.T) {
		for _, char := range dangerousChars {
			_, err := ValidateFilePath("/tmp/todos" + char + ".db")
			assert.ErrorContains(t, err, "forbidden character", "character %q", char)
		}
	})

	t.Run("makes relative paths absolute", func(t *testing.T) {
		result, err := ValidateFilePath("todos.db")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(result))
	})

	t.Run("resolves symlinks", func(t *testing.T) {
		dir := t.TempDir()
		real := filepath.Join(dir, "real.log")
		require.NoError(t, os.WriteFile(real, []byte("x"), 0o600))
		link := filepath.Join(dir, "link.log")
		require.NoError(t, os.Symlink(real, link))

		result, err := ValidateFilePath(link)
		require.NoError(t, err)

		expected, _ := filepath.EvalSymlinks(real)
		assert.Equal(t, expected, result)
	})

	t.Run("cleans traversal segments of missing files", func(t *testing.T) {
		dir := t.TempDir()
		result, err := ValidateFilePath(filepath.Join(dir, "sub", "..", "new.log"))
		require.NoError(t, err)
		assert.NotContains(t, result, "..")
		assert.Equal(t, "new.log", filepath.Base(result))
	})
}

func TestOpenAppend(t *testing.T) {
	t.Run("creates parent directories and appends", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "ui.log")

		f, err := OpenAppend(path)
		require.NoError(t, err)
		_, err = f.WriteString("first\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		f, err = OpenAppend(path)
		require.NoError(t, err)
		_, err = f.WriteString("second\n")
		require.NoError(t, err)
		require.NoError(t, f.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "first\nsecond\n", string(data))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("rejects invalid paths", func(t *testing.T) {
		_, err := OpenAppend(filepath.Join(t.TempDir(), "ui;rm.log"))
		assert.Error(t, err)
	})
}
