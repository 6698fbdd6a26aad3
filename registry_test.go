package textdebug

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingTarget collects every option it is handed.
type recordingTarget struct {
	mu  sync.Mutex
	got []*DebugOption
}

func (r *recordingTarget) SetDebugOption(opt *DebugOption) {
	r.mu.Lock()
	r.got = append(r.got, opt)
	r.mu.Unlock()
}

func (r *recordingTarget) calls() []*DebugOption {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*DebugOption(nil), r.got...)
}

func TestAttachThenSetSharedNotifiesOnce(t *testing.T) {
	r := New()
	target := &recordingTarget{}
	r.Attach(target)

	opt := &DebugOption{Baseline: RGB(0xff, 0, 0).Ptr()}
	r.SetShared(opt)

	calls := target.calls()
	require.Len(t, calls, 1)
	assert.Same(t, opt, calls[0])
}

func TestDetachStopsNotifications(t *testing.T) {
	r := New()
	target := &recordingTarget{}
	tok := r.Attach(target)

	r.SetShared(&DebugOption{Baseline: RGB(0xff, 0, 0).Ptr()})
	r.Detach(tok)
	r.SetShared(nil)
	r.SetShared(&DebugOption{LineBorder: RGB(0, 0xff, 0).Ptr()})

	assert.Len(t, target.calls(), 1)
	assert.Equal(t, 0, r.TargetCount())
}

func TestDetachUnknownTokenIsNoop(t *testing.T) {
	r := New()
	target := &recordingTarget{}
	tok := r.Attach(target)

	r.Detach(Token{})        // zero token
	r.Detach(Token{id: 999}) // never issued
	r.Detach(tok)
	r.Detach(tok) // second detach of the same token

	assert.Equal(t, 0, r.TargetCount())
	r.SetShared(&DebugOption{})
	assert.Empty(t, target.calls())
}

func TestSharedReturnsMostRecent(t *testing.T) {
	r := New()
	assert.Nil(t, r.Shared(), "no option installed yet")

	a := &DebugOption{Baseline: RGB(1, 2, 3).Ptr()}
	b := &DebugOption{RunFill: RGBA(4, 5, 6, 0x40).Ptr()}

	r.SetShared(a)
	assert.Same(t, a, r.Shared())
	r.SetShared(b)
	assert.Same(t, b, r.Shared())
	r.SetShared(nil)
	assert.Nil(t, r.Shared())
}

// Each Attach is an independent registration: the same target attached twice
// is delivered twice per SetShared, and detaching one token removes exactly
// one registration.
func TestDuplicateAttachMultiplicity(t *testing.T) {
	r := New()
	target := &recordingTarget{}
	tok1 := r.Attach(target)
	tok2 := r.Attach(target)
	require.NotEqual(t, tok1, tok2)

	r.SetShared(&DebugOption{})
	assert.Len(t, target.calls(), 2)

	r.Detach(tok1)
	r.SetShared(&DebugOption{})
	assert.Len(t, target.calls(), 3)

	r.Detach(tok2)
	r.SetShared(&DebugOption{})
	assert.Len(t, target.calls(), 3)
}

func TestDeliveryInAttachOrder(t *testing.T) {
	r := New()
	var mu sync.Mutex
	var order []int
	for i := 0; i < 5; i++ {
		i := i
		r.Attach(TargetFunc(func(*DebugOption) {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
		}))
	}
	r.SetShared(nil)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestAttachNilIsNoop(t *testing.T) {
	r := New()
	tok := r.Attach(nil)
	assert.Equal(t, Token{}, tok)
	assert.Equal(t, 0, r.TargetCount())
	r.SetShared(&DebugOption{}) // must not panic
}

// Detaching during fan-out only affects subsequent SetShared calls: the
// current call delivers to its snapshot.
func TestDetachDuringFanoutSnapshotIsolation(t *testing.T) {
	r := New()
	second := &recordingTarget{}
	var tok2 Token
	r.Attach(TargetFunc(func(*DebugOption) {
		r.Detach(tok2)
	}))
	tok2 = r.Attach(second)

	r.SetShared(nil)
	assert.Len(t, second.calls(), 1, "snapshot still includes the detached target")

	r.SetShared(nil)
	assert.Len(t, second.calls(), 1, "next call sees the detach")
}

func TestPanickingTargetDoesNotStopFanout(t *testing.T) {
	r := New() // LogPanics defaults to true with a nop logger
	after := &recordingTarget{}
	r.Attach(TargetFunc(func(*DebugOption) { panic("bad view") }))
	r.Attach(after)

	assert.NotPanics(t, func() { r.SetShared(&DebugOption{}) })
	assert.Len(t, after.calls(), 1)
}

func TestNotifyOnAttach(t *testing.T) {
	r := New(WithPolicy(Policy{LogPanics: true, NotifyOnAttach: true}))
	opt := &DebugOption{GlyphBorder: RGB(0xff, 0xa5, 0).Ptr()}
	r.SetShared(opt)

	target := &recordingTarget{}
	r.Attach(target)

	calls := target.calls()
	require.Len(t, calls, 1)
	assert.Same(t, opt, calls[0])

	// no installed option, no catch-up delivery
	r.Reset()
	late := &recordingTarget{}
	r.Attach(late)
	assert.Empty(t, late.calls())
}

func TestResetClearsTargetsAndShared(t *testing.T) {
	r := New()
	target := &recordingTarget{}
	r.Attach(target)
	r.SetShared(&DebugOption{})

	r.Reset()
	assert.Equal(t, 0, r.TargetCount())
	assert.Nil(t, r.Shared())

	r.SetShared(&DebugOption{})
	assert.Len(t, target.calls(), 1, "only the pre-reset delivery")
}

// Shared must be safe to poll from any goroutine while SetShared runs on
// another. Run with -race.
func TestConcurrentSharedReaders(t *testing.T) {
	r := New()
	opts := []*DebugOption{
		nil,
		{Baseline: RGB(0xff, 0, 0).Ptr()},
		{LineFill: RGBA(0, 0xff, 0, 0x30).Ptr()},
	}

	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
					_ = r.Shared().NeedsDraw()
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		r.SetShared(opts[i%len(opts)])
	}
	close(done)
	wg.Wait()
}
