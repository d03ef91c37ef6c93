package restrictions

import (
	"context"
	"log/slog"
)

// DebugSink receives diagnostics while an Evaluator walks a RuleSet.
// Implementations must not expect to influence the Decision.
type DebugSink interface {
	// RuleStarted is called before a rule with a usable pattern is applied.
	RuleStarted(rule *Rule)

	// MatchFound is called for each match of the rule's pattern, in order.
	MatchFound(rule *Rule, match string)

	// GroupInspected is called for each participating capture group checked against blocked text.
	GroupInspected(rule *Rule, group int, text string)

	// Blocked is called once with the blocking decision.
	Blocked(rule *Rule, decision *Decision)

	// ConfigError is called when evaluation reaches a rule without a usable pattern.
	ConfigError(err *ConfigError)
}

type logSink struct {
	logger *slog.Logger
}

// NewLogSink returns a DebugSink that writes every diagnostic to logger at debug level.
func NewLogSink(logger *slog.Logger) DebugSink {
	return &logSink{logger: logger}
}

func (s *logSink) RuleStarted(rule *Rule) {
	s.debug("testing regex", "rule", rule.Index(), "regex", rule.Pattern())
}

func (s *logSink) MatchFound(rule *Rule, match string) {
	s.debug("match found for regex", "rule", rule.Index(), "regex", rule.Pattern(), "match", match)
}

func (s *logSink) GroupInspected(rule *Rule, group int, text string) {
	s.debug("processing group", "rule", rule.Index(), "group", group, "text", text)
}

func (s *logSink) Blocked(rule *Rule, decision *Decision) {
	if decision.Reason == ReasonWholeMatch {
		s.debug("blocking entire command for regex", "rule", rule.Index(), "regex", rule.Pattern())
		return
	}
	s.debug("group contained blocked text",
		"rule", rule.Index(),
		"group", decision.Group,
		"blocked_text", decision.BlockedText,
	)
}

func (s *logSink) ConfigError(err *ConfigError) {
	s.debug("skipping rule without usable regex", "rule", err.RuleIndex, "error", err.Error())
}

func (s *logSink) debug(msg string, args ...any) {
	s.logger.Log(context.Background(), slog.LevelDebug, msg, args...)
}
