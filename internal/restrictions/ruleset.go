// Package restrictions decides whether a command may run by applying an ordered set of regex rules.
package restrictions

// RuleSet is an ordered, immutable list of rules. The order is the evaluation order.
// Reconfiguration builds a new RuleSet instead of changing an existing one.
type RuleSet struct {
	rules []*Rule
}

// Load compiles specs into a RuleSet.
// Specs with a missing or invalid pattern still produce a rule; that rule reports a
// ConfigError whenever evaluation reaches it, and the rest of the set loads normally.
func Load(specs []RuleSpec) *RuleSet {
	rules := make([]*Rule, 0, len(specs))
	for i, spec := range specs {
		rules = append(rules, compileRule(i, spec))
	}

	return &RuleSet{
		rules: rules,
	}
}

// Len returns the number of rules.
func (s *RuleSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Rules returns the rules in evaluation order.
func (s *RuleSet) Rules() []*Rule {
	if s == nil {
		return nil
	}
	return append([]*Rule(nil), s.rules...)
}

func (s *RuleSet) list() []*Rule {
	if s == nil {
		return nil
	}
	return s.rules
}

// ConfigErrors returns the errors of every rule whose pattern could not be compiled.
func (s *RuleSet) ConfigErrors() []*ConfigError {
	var errs []*ConfigError
	for _, rule := range s.list() {
		if rule.err != nil {
			errs = append(errs, rule.err)
		}
	}
	return errs
}
