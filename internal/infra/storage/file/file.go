// Package file provides flat-file storage backends: the transaction ledger as
// a human-readable JSON document and the watch list as a plain-text file with
// one address per line.
//
// All writes go through an atomic temp-file-then-rename, so a crash mid-write
// can never leave a truncated or partially-written file behind.
package file

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic writes data to path by creating a temporary file in the same
// directory and renaming it over the target. The parent directory is created
// when missing.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replacing %s: %w", path, err)
	}

	return nil
}
