package textdebug

// Target is implemented by views that paint debug overlays. Attached targets
// receive SetDebugOption on the goroutine that called SetShared whenever the
// shared option changes.
//
// SetDebugOption should return as quickly as possible and must not mutate the
// option it is given; the same instance is handed to every target.
type Target interface {
	SetDebugOption(opt *DebugOption)
}

// TargetFunc is an adapter to allow the use of ordinary functions as targets.
// It satisfies the Target interface.
type TargetFunc func(opt *DebugOption)

// SetDebugOption calls the underlying function with the given option.
func (f TargetFunc) SetDebugOption(opt *DebugOption) {
	f(opt)
}
