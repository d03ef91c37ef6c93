// Package guard checks commands submitted by actors against the current rule set,
// reports blocks and swaps in new configuration on reload.
package guard

import (
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/michael-freling/command-restrictions/internal/config"
	"github.com/michael-freling/command-restrictions/internal/restrictions"
)

// Guard owns the current configuration snapshot.
// Check and Reload are safe for concurrent use; every Check runs against exactly one snapshot.
type Guard struct {
	current  atomic.Pointer[config.Snapshot]
	loader   Loader
	notifier Notifier
	logger   *slog.Logger
}

// New creates a Guard and performs the initial load.
// A failed initial load is logged and leaves the Guard with no rules, so every command is allowed
// until a Reload succeeds.
func New(loader Loader, notifier Notifier, logger *slog.Logger) *Guard {
	g := &Guard{
		loader:   loader,
		notifier: notifier,
		logger:   logger,
	}

	snapshot, err := loader.Load()
	if err != nil {
		snapshot = config.EmptySnapshot()
		logger.Error(snapshot.Locale.InvalidSettings, "error", err)
	}
	g.current.Store(snapshot)

	return g
}

// Snapshot returns the configuration currently in effect.
func (g *Guard) Snapshot() *config.Snapshot {
	return g.current.Load()
}

// Reload loads the configuration again and replaces the current snapshot.
// On failure the current snapshot stays in effect.
func (g *Guard) Reload() error {
	snapshot, err := g.loader.Load()
	if err != nil {
		g.logger.Error(g.Snapshot().Locale.InvalidSettings, "error", err)
		return fmt.Errorf("failed to reload configuration: %w", err)
	}

	g.current.Store(snapshot)
	g.logger.Info(snapshot.Locale.Reload, "rules", snapshot.Rules.Len(), "config_version", snapshot.Version)
	return nil
}

// Check evaluates command on behalf of actor.
// Blocks are logged and the actor is notified; the returned decision does not depend on
// whether logging or notification succeed.
func (g *Guard) Check(actor, command string) *restrictions.Decision {
	snapshot := g.Snapshot()

	var sink restrictions.DebugSink
	if snapshot.Debug {
		sink = restrictions.NewLogSink(g.logger.With("actor", actor))
	}

	decision := restrictions.NewEvaluator(sink).Evaluate(snapshot.Rules, command)

	for _, configErr := range decision.ConfigErrors {
		g.logger.Error(snapshot.Locale.InvalidRegex, "rule", configErr.RuleIndex, "error", configErr.Err)
	}

	if !decision.Allowed {
		g.reportBlock(snapshot.Locale, actor, decision)
	}

	return decision
}

func (g *Guard) reportBlock(locale config.Locale, actor string, decision *restrictions.Decision) {
	template := locale.BlockedTextConsoleMessage
	if decision.Reason == restrictions.ReasonWholeMatch {
		template = locale.BlockedCommandConsoleMessage
	}

	g.logger.Warn(RenderMessage(template, decision),
		"event_id", uuid.NewString(),
		"actor", actor,
		"reason", string(decision.Reason),
		"rule", decision.RuleIndex,
	)

	if err := g.notifier.Notify(actor, locale.Prefix+locale.BlockedCommandPlayerMessage); err != nil {
		g.logger.Warn("failed to notify actor", "actor", actor, "error", err)
	}
}

// RenderMessage fills the <command> and <pattern> placeholders of a console message.
func RenderMessage(template string, decision *restrictions.Decision) string {
	return strings.NewReplacer(
		"<command>", decision.MatchedText,
		"<pattern>", decision.Pattern,
	).Replace(template)
}
