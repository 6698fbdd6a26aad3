package textdebug

// Policy controls how a Registry handles target misbehavior and late attaches.
type Policy struct {
	// LogPanics logs a recovered panic from a target's SetDebugOption.
	// The panic is recovered either way so fan-out continues.
	LogPanics bool

	// NotifyOnAttach delivers the currently installed option to a target
	// immediately when it attaches, so late-created views catch up without
	// waiting for the next SetShared.
	NotifyOnAttach bool
}

func DefaultPolicy() Policy {
	return Policy{
		LogPanics:      true,
		NotifyOnAttach: false,
	}
}
