package restrictions

import "github.com/stretchr/testify/mock"

// MockDebugSink is a mock implementation of DebugSink for testing.
type MockDebugSink struct {
	mock.Mock
}

// RuleStarted is a mock implementation of DebugSink.RuleStarted.
func (m *MockDebugSink) RuleStarted(rule *Rule) {
	m.Called(rule)
}

// MatchFound is a mock implementation of DebugSink.MatchFound.
func (m *MockDebugSink) MatchFound(rule *Rule, match string) {
	m.Called(rule, match)
}

// GroupInspected is a mock implementation of DebugSink.GroupInspected.
func (m *MockDebugSink) GroupInspected(rule *Rule, group int, text string) {
	m.Called(rule, group, text)
}

// Blocked is a mock implementation of DebugSink.Blocked.
func (m *MockDebugSink) Blocked(rule *Rule, decision *Decision) {
	m.Called(rule, decision)
}

// ConfigError is a mock implementation of DebugSink.ConfigError.
func (m *MockDebugSink) ConfigError(err *ConfigError) {
	m.Called(err)
}
