package cmd

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/teranos/papyrus-typegen/am"
	"github.com/teranos/papyrus-typegen/errors"
	"github.com/teranos/papyrus-typegen/logger"
)

// writeAtomic replaces path with data via a temp file in the same directory.
// It reports false without writing when path already holds data.
func writeAtomic(path string, data []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, data) {
		logger.Debugw("output unchanged", logger.FieldOutput, path)
		return false, nil
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, am.DefaultDirPermissions); err != nil {
		return false, errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, errors.Wrap(err, "failed to create temp file")
	}
	tmpName := tmp.Name()
	cleanup := func() { os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return false, errors.Wrapf(err, "failed to write %s", tmpName)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return false, errors.Wrapf(err, "failed to close %s", tmpName)
	}
	if err := os.Chmod(tmpName, am.DefaultFilePermissions); err != nil {
		cleanup()
		return false, errors.Wrapf(err, "failed to set permissions on %s", tmpName)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return false, errors.Wrapf(err, "failed to replace %s", path)
	}

	logger.Infow("output written", logger.FieldOutput, path, logger.FieldSize, len(data))
	return true, nil
}
