package config

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

const testLocale = `prefix: "[S] "
reload: "reloaded"
invalid_settings: "bad settings"
invalid_regex: "bad regex"
blocked_command_player_message: "blocked"
blocked_command_console_message: "blocked <command>"
blocked_text_console_message: "blocked text <command>"
`

func TestNewFileLoader(t *testing.T) {
	loader := NewFileLoader("/tmp/config", slog.Default())
	require.NotNil(t, loader)
	assert.Equal(t, "/tmp/config", loader.Dir())
}

func TestFileLoader_Load(t *testing.T) {
	tests := []struct {
		name        string
		files       map[string]string
		wantRules   int
		wantDebug   bool
		wantPrefix  string
		wantWarning string
		wantErr     bool
	}{
		{
			name: "loads settings and locale",
			files: map[string]string{
				"settings.yml":     "config_version: \"2\"\ndebug: true\nlocale: en_US\nentries:\n  - regex: \"^/kill\"\n    block_all_matches: true\n",
				"locale/en_US.yml": testLocale,
			},
			wantRules:  1,
			wantDebug:  true,
			wantPrefix: "[S] ",
		},
		{
			name: "keeps broken rules in the rule set",
			files: map[string]string{
				"settings.yml":     "locale: en_US\nentries:\n  - regex: \"(\"\n  - block_all_matches: true\n",
				"locale/en_US.yml": testLocale,
			},
			wantRules:  2,
			wantPrefix: "[S] ",
		},
		{
			name: "falls back to default locale without locale setting",
			files: map[string]string{
				"settings.yml": "entries: []\n",
			},
			wantPrefix:  DefaultLocale().Prefix,
			wantWarning: "no locale configured",
		},
		{
			name: "falls back to default locale when file is missing",
			files: map[string]string{
				"settings.yml": "locale: de_DE\nentries: []\n",
			},
			wantPrefix:  DefaultLocale().Prefix,
			wantWarning: "failed to read locale file",
		},
		{
			name: "falls back to default locale when a message is missing",
			files: map[string]string{
				"settings.yml":     "locale: en_US\nentries: []\n",
				"locale/en_US.yml": "prefix: \"[S] \"\n",
			},
			wantPrefix:  DefaultLocale().Prefix,
			wantWarning: "invalid locale file",
		},
		{
			name:    "fails without settings file",
			files:   map[string]string{},
			wantErr: true,
		},
		{
			name: "fails with invalid settings",
			files: map[string]string{
				"settings.yml": "entries: {",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.files)
			logs := new(bytes.Buffer)
			loader := NewFileLoader(dir, slog.New(slog.NewTextHandler(logs, nil)))

			got, err := loader.Load()

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrSettingsInvalid))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantRules, got.Rules.Len())
			assert.Equal(t, tt.wantDebug, got.Debug)
			assert.Equal(t, tt.wantPrefix, got.Locale.Prefix)
			if tt.wantWarning != "" {
				assert.Contains(t, logs.String(), tt.wantWarning)
			} else {
				assert.Empty(t, logs.String())
			}
		})
	}
}

func TestFileLoader_Load_MissingDir(t *testing.T) {
	loader := NewFileLoader(filepath.Join(t.TempDir(), "missing"), slog.Default())

	_, err := loader.Load()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSettingsInvalid))
}

func TestEmptySnapshot(t *testing.T) {
	got := EmptySnapshot()

	assert.Equal(t, 0, got.Rules.Len())
	assert.Equal(t, DefaultLocale(), got.Locale)
	assert.False(t, got.Debug)
}
