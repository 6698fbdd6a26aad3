package textdebug

import "github.com/rs/zerolog"

// Attach registers a target on the Default registry.
func Attach(t Target) Token { return Default.Attach(t) }

// Detach removes a registration by token from the Default registry.
func Detach(t Token) { Default.Detach(t) }

// Shared returns the Default registry's installed option, or nil.
func Shared() *DebugOption { return Default.Shared() }

// SetShared installs opt on the Default registry and notifies all targets.
// Call only from the execution context that owns UI mutation.
func SetShared(opt *DebugOption) { Default.SetShared(opt) }

// Reset detaches all targets and clears the shared option on the Default
// registry.
func Reset() { Default.Reset() }

// SetLogger sets the logger for the Default registry. Safe for concurrent use;
// the value is snapshotted at the start of each fan-out.
func SetLogger(l zerolog.Logger) {
	Default.mu.Lock()
	Default.logger = l
	Default.mu.Unlock()
}

// SetPolicy sets the policy for the Default registry. Safe for concurrent use;
// the value is snapshotted at the start of each fan-out.
func SetPolicy(p Policy) {
	Default.mu.Lock()
	Default.policy = p
	Default.mu.Unlock()
}

// SetDebug toggles debug logging for the Default registry. Safe for concurrent
// use; the value is snapshotted at the start of each fan-out.
func SetDebug(enabled bool) {
	Default.mu.Lock()
	Default.debug = enabled
	Default.mu.Unlock()
}
