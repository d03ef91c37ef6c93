package restrictions

import (
	"errors"
	"fmt"
)

var (
	ErrPatternMissing = errors.New("no regex configured")
	ErrPatternInvalid = errors.New("regex does not compile")
)

// ConfigError reports a rule that cannot take part in blocking because its pattern is unusable.
type ConfigError struct {
	RuleIndex int
	Pattern   string
	Err       error
}

func (e *ConfigError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("rule %d: %v", e.RuleIndex, e.Err)
	}
	return fmt.Sprintf("rule %d (%q): %v", e.RuleIndex, e.Pattern, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
