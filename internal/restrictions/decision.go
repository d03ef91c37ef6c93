package restrictions

// BlockReason tells which policy of a rule blocked a command.
type BlockReason string

const (
	// ReasonWholeMatch means the rule blocks every match of its pattern.
	ReasonWholeMatch BlockReason = "whole-match"
	// ReasonSubstringMatch means a capture group equaled one of the rule's blocked texts.
	ReasonSubstringMatch BlockReason = "substring-match"
)

// Decision represents the result of evaluating a command against a RuleSet.
type Decision struct {
	// Allowed indicates whether the command may proceed.
	Allowed bool

	// Reason identifies the policy that blocked the command. Empty when allowed.
	Reason BlockReason

	// MatchedText is the original command text of a blocked command.
	MatchedText string

	// Pattern is the pattern source of the blocking rule.
	Pattern string

	// RuleIndex is the position of the blocking rule, or -1 when allowed.
	RuleIndex int

	// Group is the capture group index that equaled BlockedText.
	// Only meaningful for ReasonSubstringMatch.
	Group int

	// BlockedText is the blocked entry that a capture group equaled.
	BlockedText string

	// ConfigErrors lists the broken rules reached during evaluation.
	// They never influence Allowed.
	ConfigErrors []*ConfigError
}

// NewAllowDecision creates a decision that lets the command proceed.
func NewAllowDecision() *Decision {
	return &Decision{
		Allowed:   true,
		RuleIndex: -1,
	}
}

// NewBlockDecision creates a decision that cancels command because of rule.
func NewBlockDecision(reason BlockReason, rule *Rule, command string) *Decision {
	return &Decision{
		Allowed:     false,
		Reason:      reason,
		MatchedText: command,
		Pattern:     rule.Pattern(),
		RuleIndex:   rule.Index(),
	}
}
