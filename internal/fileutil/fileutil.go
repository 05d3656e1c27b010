package fileutil

import (
	"errors"
	"io/fs"
	"os"
)

// NonEmptyFile reports whether path exists as a regular file with a nonzero
// size. A zero-length file is treated as absent so an interrupted download
// gets retried.
func NonEmptyFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	if !info.Mode().IsRegular() {
		return false, nil
	}
	return info.Size() > 0, nil
}

// RemoveIfPresent deletes path, ignoring the case where it never existed.
func RemoveIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
