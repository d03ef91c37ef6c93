package restrictions

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAllowDecision(t *testing.T) {
	got := NewAllowDecision()
	assert.Equal(t, &Decision{Allowed: true, RuleIndex: -1}, got)
}

func TestNewBlockDecision(t *testing.T) {
	rules := Load([]RuleSpec{
		{Pattern: `^/stop`},
		{Pattern: `^/kill.*`, BlockAllMatches: true},
	}).Rules()

	tests := []struct {
		name    string
		reason  BlockReason
		rule    *Rule
		command string
		want    *Decision
	}{
		{
			name:    "creates whole match block",
			reason:  ReasonWholeMatch,
			rule:    rules[1],
			command: "/kill @a",
			want: &Decision{
				Allowed:     false,
				Reason:      ReasonWholeMatch,
				MatchedText: "/kill @a",
				Pattern:     `^/kill.*`,
				RuleIndex:   1,
			},
		},
		{
			name:    "creates substring block",
			reason:  ReasonSubstringMatch,
			rule:    rules[0],
			command: "/stop now",
			want: &Decision{
				Allowed:     false,
				Reason:      ReasonSubstringMatch,
				MatchedText: "/stop now",
				Pattern:     `^/stop`,
				RuleIndex:   0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBlockDecision(tt.reason, tt.rule, tt.command)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ConfigError
		want string
	}{
		{
			name: "without pattern",
			err:  &ConfigError{RuleIndex: 3, Err: ErrPatternMissing},
			want: "rule 3: no regex configured",
		},
		{
			name: "with pattern",
			err:  &ConfigError{RuleIndex: 0, Pattern: "(", Err: ErrPatternInvalid},
			want: `rule 0 ("("): regex does not compile`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}
