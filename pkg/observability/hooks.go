// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup
// to receive events about command invocations against the graph store.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCommandHooks(&myCommandHooks{})
//	    // ... run application
//	}
//
// The command dispatcher emits events:
//
//	observability.Commands().OnCommandStart(ctx, name, invocationID)
//	// ... run the command ...
//	observability.Commands().OnCommandComplete(ctx, name, invocationID, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Command Hooks
// =============================================================================

// CommandHooks receives events from the command dispatcher.
type CommandHooks interface {
	// OnCommandStart records the start of an invocation.
	OnCommandStart(ctx context.Context, name, invocationID string)

	// OnCommandComplete records the end of an invocation. err is nil on success.
	OnCommandComplete(ctx context.Context, name, invocationID string, duration time.Duration, err error)
}

// NoopCommandHooks is a no-op implementation of CommandHooks.
type NoopCommandHooks struct{}

func (NoopCommandHooks) OnCommandStart(context.Context, string, string) {}
func (NoopCommandHooks) OnCommandComplete(context.Context, string, string, time.Duration, error) {
}

// =============================================================================
// Counting Hooks
// =============================================================================

// CommandCounter is a CommandHooks implementation that tallies invocations
// per command name. It is safe for concurrent use.
type CommandCounter struct {
	mu       sync.Mutex
	calls    map[string]int
	failures map[string]int
}

// NewCommandCounter creates an empty counter.
func NewCommandCounter() *CommandCounter {
	return &CommandCounter{calls: map[string]int{}, failures: map[string]int{}}
}

func (c *CommandCounter) OnCommandStart(context.Context, string, string) {}

func (c *CommandCounter) OnCommandComplete(_ context.Context, name, _ string, _ time.Duration, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls[name]++
	if err != nil {
		c.failures[name]++
	}
}

// Totals returns the number of completed and failed invocations.
func (c *CommandCounter) Totals() (calls, failures int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, n := range c.calls {
		calls += n
	}
	for _, n := range c.failures {
		failures += n
	}
	return calls, failures
}

// Calls returns the number of completed invocations of name.
func (c *CommandCounter) Calls(name string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[name]
}

// =============================================================================
// Global Registry
// =============================================================================

var (
	commandHooks CommandHooks = NoopCommandHooks{}
	hooksMu      sync.RWMutex
)

// SetCommandHooks registers custom command hooks.
// This should be called once at application startup before any commands run.
func SetCommandHooks(h CommandHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		commandHooks = h
	}
}

// Commands returns the registered command hooks.
func Commands() CommandHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return commandHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	commandHooks = NoopCommandHooks{}
}
