package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/michael-freling/command-restrictions/internal/restrictions"
)

const (
	SettingsFileName = "settings.yml"
	LocaleDirName    = "locale"
	DefaultLocaleTag = "en_US"
	lockFileName     = ".lock"
)

// Snapshot is everything a reload replaces. It is never modified once built.
type Snapshot struct {
	Rules   *restrictions.RuleSet
	Locale  Locale
	Debug   bool
	Version string
}

// EmptySnapshot returns a snapshot without rules that uses the default locale.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Rules:  restrictions.Load(nil),
		Locale: DefaultLocale(),
	}
}

// FileLoader loads the configuration from a directory containing settings.yml
// and locale/<name>.yml.
type FileLoader struct {
	dir    string
	logger *slog.Logger
}

// NewFileLoader creates a loader reading from dir.
func NewFileLoader(dir string, logger *slog.Logger) *FileLoader {
	return &FileLoader{
		dir:    dir,
		logger: logger,
	}
}

// Dir returns the configuration directory.
func (l *FileLoader) Dir() string {
	return l.dir
}

// Load reads the settings and the configured locale under a shared lock.
// Settings errors are returned; locale problems fall back to DefaultLocale with a warning.
func (l *FileLoader) Load() (*Snapshot, error) {
	fileLock, err := l.rlock()
	if err != nil {
		return nil, err
	}
	defer fileLock.Close()

	data, err := os.ReadFile(filepath.Join(l.dir, SettingsFileName))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read settings file: %v", ErrSettingsInvalid, err)
	}

	settings, err := ParseSettings(data)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		Rules:   restrictions.Load(settings.RuleSpecs()),
		Locale:  l.loadLocale(settings.Locale),
		Debug:   settings.Debug,
		Version: settings.ConfigVersion,
	}, nil
}

func (l *FileLoader) loadLocale(name string) Locale {
	if name == "" {
		l.logger.Warn("no locale configured in settings, using default locale")
		return DefaultLocale()
	}

	path := filepath.Join(l.dir, LocaleDirName, name+".yml")
	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Warn("failed to read locale file, using default locale", "path", path, "error", err)
		return DefaultLocale()
	}

	locale, err := ParseLocale(data)
	if err != nil {
		l.logger.Warn("invalid locale file, using default locale", "path", path, "error", err)
		return DefaultLocale()
	}

	return *locale
}

// rlock takes a shared lock so that a concurrent InstallDefaults never exposes half-written files.
// A missing configuration directory needs no lock.
func (l *FileLoader) rlock() (*flock.Flock, error) {
	fileLock := flock.New(filepath.Join(l.dir, lockFileName))

	if _, err := os.Stat(l.dir); errors.Is(err, os.ErrNotExist) {
		return fileLock, nil
	}

	if err := fileLock.RLock(); err != nil {
		return nil, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return fileLock, nil
}
