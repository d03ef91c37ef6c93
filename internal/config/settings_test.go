package config

import (
	"errors"
	"testing"

	"github.com/michael-freling/command-restrictions/internal/restrictions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSettings(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *Settings
		wantErr bool
	}{
		{
			name: "parses full settings",
			input: `config_version: "1.0.0.0"
debug: true
locale: en_US
entries:
  - regex: "^/kill.*"
    block_all_matches: true
  - regex: "^/tp (\\w+) (\\w+)"
    block_all_matches: false
    blocked_text: [admin]
`,
			want: &Settings{
				ConfigVersion: "1.0.0.0",
				Debug:         true,
				Locale:        "en_US",
				Entries: []Entry{
					{Regex: `^/kill.*`, BlockAllMatches: true},
					{Regex: `^/tp (\w+) (\w+)`, BlockedText: []string{"admin"}},
				},
			},
		},
		{
			name:  "entry without regex is kept",
			input: "entries:\n  - block_all_matches: true\n",
			want: &Settings{
				Entries: []Entry{{BlockAllMatches: true}},
			},
		},
		{
			name:    "unknown key",
			input:   "debug: true\nentires: []\n",
			wantErr: true,
		},
		{
			name:    "invalid YAML",
			input:   "entries: [",
			wantErr: true,
		},
		{
			name:    "empty file",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSettings([]byte(tt.input))

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrSettingsInvalid))
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSettings_RuleSpecs(t *testing.T) {
	settings := &Settings{
		Entries: []Entry{
			{Regex: `^/kill.*`, BlockAllMatches: true},
			{Regex: `^/tp (\w+)`, BlockedText: []string{"admin", "console"}},
		},
	}

	want := []restrictions.RuleSpec{
		{Pattern: `^/kill.*`, BlockAllMatches: true},
		{Pattern: `^/tp (\w+)`, BlockedText: []string{"admin", "console"}},
	}
	assert.Equal(t, want, settings.RuleSpecs())
}
