package restrictions

// Evaluator applies a RuleSet to commands. It keeps no state between calls and is
// safe for concurrent use as long as its DebugSink is.
type Evaluator struct {
	sink DebugSink
}

// NewEvaluator creates an Evaluator reporting diagnostics to sink. sink may be nil.
func NewEvaluator(sink DebugSink) *Evaluator {
	return &Evaluator{
		sink: sink,
	}
}

// Evaluate applies the rules in order and returns the first blocking decision,
// or an allowed decision if no rule blocks. A nil RuleSet has no rules.
func (e *Evaluator) Evaluate(rules *RuleSet, command string) *Decision {
	var configErrs []*ConfigError

	for _, rule := range rules.list() {
		if rule.pattern == nil {
			configErrs = append(configErrs, rule.err)
			if e.sink != nil {
				e.sink.ConfigError(rule.err)
			}
			continue
		}

		if decision := e.evaluateRule(rule, command); decision != nil {
			decision.ConfigErrors = configErrs
			return decision
		}
	}

	decision := NewAllowDecision()
	decision.ConfigErrors = configErrs
	return decision
}

// evaluateRule returns the blocking decision of rule, or nil if the rule lets command pass.
// FindAll steps over empty matches, so patterns matching the empty string terminate.
func (e *Evaluator) evaluateRule(rule *Rule, command string) *Decision {
	if e.sink != nil {
		e.sink.RuleStarted(rule)
	}

	for _, match := range rule.pattern.FindAllStringSubmatchIndex(command, -1) {
		if e.sink != nil {
			e.sink.MatchFound(rule, command[match[0]:match[1]])
		}

		if rule.blockAllMatches {
			return e.block(rule, NewBlockDecision(ReasonWholeMatch, rule, command))
		}

		for group := 0; 2*group+1 < len(match); group++ {
			start, end := match[2*group], match[2*group+1]
			if start < 0 {
				// group did not participate in this match
				continue
			}

			text := command[start:end]
			if e.sink != nil {
				e.sink.GroupInspected(rule, group, text)
			}

			if rule.isBlockedText(text) {
				decision := NewBlockDecision(ReasonSubstringMatch, rule, command)
				decision.Group = group
				decision.BlockedText = text
				return e.block(rule, decision)
			}
		}
	}

	return nil
}

func (e *Evaluator) block(rule *Rule, decision *Decision) *Decision {
	if e.sink != nil {
		e.sink.Blocked(rule, decision)
	}
	return decision
}
