package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Locale holds the messages shown to actors and written to the log.
// Console messages may use the <command> and <pattern> placeholders.
type Locale struct {
	ConfigVersion                string `yaml:"config_version"`
	Prefix                       string `yaml:"prefix"`
	Reload                       string `yaml:"reload"`
	InvalidSettings              string `yaml:"invalid_settings"`
	InvalidRegex                 string `yaml:"invalid_regex"`
	BlockedCommandPlayerMessage  string `yaml:"blocked_command_player_message"`
	BlockedCommandConsoleMessage string `yaml:"blocked_command_console_message"`
	BlockedTextConsoleMessage    string `yaml:"blocked_text_console_message"`
}

// DefaultLocale returns the built-in messages used whenever a configured locale is unusable.
func DefaultLocale() Locale {
	return Locale{
		ConfigVersion:                "1.0.0.0",
		Prefix:                       "Security | ",
		Reload:                       "The configuration has been reloaded.",
		InvalidSettings:              "Unable to compare command ran due to invalid settings.",
		InvalidRegex:                 "Unable to check command against regex due to a missing or invalid regex.",
		BlockedCommandPlayerMessage:  "The command you sent can only be ran through console.",
		BlockedCommandConsoleMessage: "Blocked a command due to regex match: <command> (regex: <pattern>)",
		BlockedTextConsoleMessage:    "Blocked a command containing blocked text: <command>",
	}
}

// ParseLocale decodes locale YAML and validates that every message is present.
func ParseLocale(data []byte) (*Locale, error) {
	var locale Locale

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&locale); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: file is empty", ErrLocaleInvalid)
		}
		return nil, fmt.Errorf("%w: %v", ErrLocaleInvalid, err)
	}

	if err := locale.Validate(); err != nil {
		return nil, err
	}

	return &locale, nil
}

// Validate returns an error naming the first missing message.
func (l *Locale) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"prefix", l.Prefix},
		{"invalid_settings", l.InvalidSettings},
		{"invalid_regex", l.InvalidRegex},
		{"blocked_command_player_message", l.BlockedCommandPlayerMessage},
		{"blocked_command_console_message", l.BlockedCommandConsoleMessage},
		{"blocked_text_console_message", l.BlockedTextConsoleMessage},
	}

	for _, field := range required {
		if field.value == "" {
			return fmt.Errorf("%w: no %s message configured", ErrLocaleInvalid, field.key)
		}
	}

	return nil
}
