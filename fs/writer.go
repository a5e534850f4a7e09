package fs

import (
	"os"
	"path/filepath"

	"github.com/fwojciec/clipmd"
)

// WriteFile writes content to path atomically.
// The content is written to a temporary file in the same directory and
// renamed over path, so readers never observe a partial file.
func WriteFile(path, content string) error {
	if path == "" {
		return clipmd.Errorf(clipmd.EINVALID, "output path required")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
