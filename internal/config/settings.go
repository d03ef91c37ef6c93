// Package config loads the rule settings and locale messages from YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/michael-freling/command-restrictions/internal/restrictions"
	"gopkg.in/yaml.v3"
)

// Settings is the content of settings.yml.
type Settings struct {
	ConfigVersion string  `yaml:"config_version"`
	Debug         bool    `yaml:"debug"`
	Locale        string  `yaml:"locale"`
	Entries       []Entry `yaml:"entries"`
}

// Entry configures one rule.
type Entry struct {
	Regex           string   `yaml:"regex"`
	BlockAllMatches bool     `yaml:"block_all_matches"`
	BlockedText     []string `yaml:"blocked_text"`
}

// ParseSettings decodes settings YAML. Unknown keys are rejected.
func ParseSettings(data []byte) (*Settings, error) {
	var settings Settings

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&settings); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrSettingsInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrSettingsInvalid, err)
	}

	return &settings, nil
}

// RuleSpecs converts the entries to rule specifications, keeping their order.
func (s *Settings) RuleSpecs() []restrictions.RuleSpec {
	specs := make([]restrictions.RuleSpec, 0, len(s.Entries))
	for _, entry := range s.Entries {
		specs = append(specs, restrictions.RuleSpec{
			Pattern:         entry.Regex,
			BlockAllMatches: entry.BlockAllMatches,
			BlockedText:     entry.BlockedText,
		})
	}
	return specs
}
