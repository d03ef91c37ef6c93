package config

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

//go:embed defaults
var defaultFiles embed.FS

// InstallDefaults writes the bundled settings.yml and locale files into dir.
// Existing files are kept unless force is set. It returns the paths written.
func InstallDefaults(dir string, force bool) ([]string, error) {
	if err := os.MkdirAll(filepath.Join(dir, LocaleDirName), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	fileLock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := fileLock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	if !locked {
		return nil, ErrLocked
	}
	defer fileLock.Close()

	defaults, err := fs.Sub(defaultFiles, "defaults")
	if err != nil {
		return nil, fmt.Errorf("failed to open default files: %w", err)
	}

	var written []string
	err = fs.WalkDir(defaults, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		target := filepath.Join(dir, filepath.FromSlash(path))
		if !force {
			if _, err := os.Stat(target); err == nil {
				return nil
			}
		}

		data, err := fs.ReadFile(defaults, path)
		if err != nil {
			return fmt.Errorf("failed to read default %s: %w", path, err)
		}
		if err := writeFileAtomic(target, data); err != nil {
			return err
		}

		written = append(written, target)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return written, nil
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}
