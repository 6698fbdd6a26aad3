package textdebug

import (
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Token is an opaque handle for detaching a specific target registration.
// The zero Token matches nothing.
type Token struct {
	id uint64
}

type entry struct {
	id     uint64
	target Target
}

// Registry holds the shared debug option and the set of attached targets.
// Attach and Detach are safe for concurrent use. SetShared must be called from
// the single execution context that owns UI mutation (typically the main/render
// goroutine); Shared may be called from anywhere.
//
// The registry never keeps a target alive in any garbage-collection sense a
// caller needs to reason about beyond the registration itself: detaching by
// token is always safe and never touches the target value.
type Registry struct {
	mu sync.Mutex

	// configuration
	policy Policy
	logger zerolog.Logger
	debug  bool

	// state
	nextID  uint64
	targets []entry // ordered by attach time

	// shared is read lock-free so renderers can poll it from any goroutine.
	shared atomic.Pointer[DebugOption]
}

// New returns a registry with no targets and no shared option installed.
func New(opts ...Option) *Registry {
	r := &Registry{
		policy: DefaultPolicy(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Default is the process-wide registry used by the package-level functions.
var Default = New()

// Attach registers t to receive future shared-option changes and returns a
// token for detaching it. Every call is an independent registration: attaching
// the same target twice means two deliveries per SetShared until one of the
// tokens is detached. Attaching nil is a no-op returning the zero Token.
//
// If Policy.NotifyOnAttach is set and a shared option is currently installed,
// t receives it immediately on the calling goroutine.
func (r *Registry) Attach(t Target) Token {
	if t == nil {
		r.mu.Lock()
		if r.debug {
			r.logger.Debug().Msg("textdebug: ignoring nil target")
		}
		r.mu.Unlock()
		return Token{}
	}

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	r.targets = append(r.targets, entry{id: id, target: t})
	notify := r.policy.NotifyOnAttach
	logPanics := r.policy.LogPanics
	logger := r.logger
	if r.debug {
		logger.Debug().Uint64("id", id).Msg("textdebug: attach target")
	}
	r.mu.Unlock()

	if notify {
		if cur := r.shared.Load(); cur != nil {
			deliver(entry{id: id, target: t}, cur, logger, logPanics)
		}
	}
	return Token{id: id}
}

// Detach removes the registration identified by t. Detaching a zero, unknown,
// or already-detached token is a no-op; it is always safe to call, including
// after the target itself is long gone.
func (r *Registry) Detach(t Token) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.targets {
		if r.targets[i].id == t.id {
			// remove while preserving attach order
			copy(r.targets[i:], r.targets[i+1:])
			r.targets = r.targets[:len(r.targets)-1]
			if r.debug {
				r.logger.Debug().Uint64("id", t.id).Msg("textdebug: detach target")
			}
			return
		}
	}
}

// Shared returns the currently installed option, or nil if none is installed.
// The load is atomic, so callers on any goroutine see either the previous or
// the new value during a concurrent SetShared, never a torn one.
func (r *Registry) Shared() *DebugOption {
	return r.shared.Load()
}

// SetShared installs opt as the shared option, replacing the previous value
// wholesale, then synchronously notifies every currently attached target in
// attach order on the calling goroutine. Passing nil is valid and turns all
// overlays off.
//
// Call it only from the execution context that owns UI mutation. Targets
// attached or detached while the fan-out runs are picked up by the next call;
// the current call delivers to a snapshot. A panicking target does not stop
// delivery to the remaining targets; the panic is logged when
// Policy.LogPanics is set.
func (r *Registry) SetShared(opt *DebugOption) {
	r.shared.Store(opt)

	r.mu.Lock()
	snapshot := append([]entry(nil), r.targets...)
	logger := r.logger
	logPanics := r.policy.LogPanics
	localDebug := r.debug
	r.mu.Unlock()

	for _, e := range snapshot {
		deliver(e, opt, logger, logPanics)
	}
	if localDebug {
		logger.Debug().
			Int("targets", len(snapshot)).
			Bool("needsDraw", opt.NeedsDraw()).
			Msg("textdebug: shared option installed")
	}
}

func deliver(e entry, opt *DebugOption, logger zerolog.Logger, logPanics bool) {
	defer func() {
		if rec := recover(); rec != nil {
			if logPanics {
				logger.Error().
					Uint64("id", e.id).
					Interface("panic", rec).
					Str("stack", string(debug.Stack())).
					Msg("textdebug: panic in target")
			}
		}
	}()
	e.target.SetDebugOption(opt)
}

// Reset detaches all targets and clears the shared option. It exists so tests
// and process re-initialization can start from a clean slate.
func (r *Registry) Reset() {
	r.mu.Lock()
	r.targets = nil
	if r.debug {
		r.logger.Debug().Msg("textdebug: reset all targets")
	}
	r.mu.Unlock()
	r.shared.Store(nil)
}

// TargetCount returns the number of live registrations.
func (r *Registry) TargetCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.targets)
}
