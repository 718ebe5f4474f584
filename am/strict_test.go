package am

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/papyrus-typegen/errors"
)

func TestUnknownKeys(t *testing.T) {
	dir := t.TempDir()

	t.Run("all keys known", func(t *testing.T) {
		path := filepath.Join(dir, "good.toml")
		require.NoError(t, os.WriteFile(path, []byte(projectTOML), DefaultFilePermissions))

		keys, err := UnknownKeys(path)
		require.NoError(t, err)
		assert.Empty(t, keys)
		assert.NoError(t, CheckUnknownKeys(path))
	})

	t.Run("misspelt keys", func(t *testing.T) {
		path := filepath.Join(dir, "typo.toml")
		content := "[emit]\nignore = [\"Math\"]\n\n[[emit.renames]]\nfrom = \"a\"\ntoo = \"b\"\n\n[outptu]\npath = \"x\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), DefaultFilePermissions))

		keys, err := UnknownKeys(path)
		require.NoError(t, err)
		assert.Contains(t, keys, "emit.ignore")
		assert.Contains(t, keys, "outptu")

		err = CheckUnknownKeys(path)
		require.Error(t, err)
		assert.True(t, errors.IsInvalidConfig(err))
		assert.Contains(t, err.Error(), "emit.ignore")
	})

	t.Run("written defaults are known", func(t *testing.T) {
		path := filepath.Join(dir, ProjectConfigName)
		require.NoError(t, WriteDefault(path))

		keys, err := UnknownKeys(path)
		require.NoError(t, err)
		assert.Empty(t, keys)
	})

	t.Run("invalid TOML", func(t *testing.T) {
		path := filepath.Join(dir, "bad.toml")
		require.NoError(t, os.WriteFile(path, []byte("[emit"), DefaultFilePermissions))

		_, err := UnknownKeys(path)
		assert.Error(t, err)
	})
}
