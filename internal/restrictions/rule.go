package restrictions

import (
	"fmt"
	"regexp"
)

// RuleSpec is the uncompiled form of a rule as handed over by the configuration loader.
type RuleSpec struct {
	// Pattern is the regular expression source. An empty pattern counts as absent.
	Pattern string

	// BlockAllMatches blocks the command on any match of Pattern.
	BlockAllMatches bool

	// BlockedText lists the literal texts that block the command when a capture group
	// of a match equals one of them exactly. Only used when BlockAllMatches is false.
	BlockedText []string
}

// Rule is a compiled RuleSpec. A Rule is never modified after Load returns it.
type Rule struct {
	index           int
	source          string
	pattern         *regexp.Regexp
	err             *ConfigError
	blockAllMatches bool
	blockedText     []string
}

// compileRule compiles spec into the rule at position index.
// A broken pattern leaves the rule without a regexp and records the reason.
func compileRule(index int, spec RuleSpec) *Rule {
	rule := &Rule{
		index:           index,
		source:          spec.Pattern,
		blockAllMatches: spec.BlockAllMatches,
		blockedText:     append([]string(nil), spec.BlockedText...),
	}

	if spec.Pattern == "" {
		rule.err = &ConfigError{RuleIndex: index, Err: ErrPatternMissing}
		return rule
	}

	pattern, err := regexp.Compile(spec.Pattern)
	if err != nil {
		rule.err = &ConfigError{
			RuleIndex: index,
			Pattern:   spec.Pattern,
			Err:       fmt.Errorf("%w: %v", ErrPatternInvalid, err),
		}
		return rule
	}

	rule.pattern = pattern
	return rule
}

// Index returns the position of the rule in its RuleSet.
func (r *Rule) Index() int {
	return r.index
}

// Pattern returns the pattern source text as configured.
func (r *Rule) Pattern() string {
	return r.source
}

// BlockAllMatches reports whether any match blocks the command.
func (r *Rule) BlockAllMatches() bool {
	return r.blockAllMatches
}

// BlockedText returns a copy of the blocked literal texts.
func (r *Rule) BlockedText() []string {
	return append([]string(nil), r.blockedText...)
}

// Err returns the configuration error of the rule, or nil when its pattern compiled.
func (r *Rule) Err() *ConfigError {
	return r.err
}

// isBlockedText reports whether text equals one of the blocked entries.
func (r *Rule) isBlockedText(text string) bool {
	for _, blocked := range r.blockedText {
		if text == blocked {
			return true
		}
	}
	return false
}
