// hook.go — panic hook registration for econtext.
//
// The hook is a single process-wide callback slot, composed rather than
// replaced: AddPanicHook layers render-and-print in front of whatever was
// installed before it, and the previous callback still runs afterwards with
// the original panic value. The slot is read on every scope End, so reads
// are a lock-free atomic load; installation takes a mutex.
//
// The hook is invoked by the scope guard (see scope.go): the innermost
// deferred End of the failing goroutine runs it exactly once per unwind,
// while the breadcrumb chain is still fully armed.
package econtext

import (
	"sync"
	"sync/atomic"
)

// PanicHook is a callback invoked with the recovered panic value when a
// panic unwinds through an armed breadcrumb guard.
type PanicHook func(v any)

var (
	hookMu    sync.Mutex
	panicHook atomic.Pointer[PanicHook]
)

// AddPanicHook composes render-and-print into the panic hook: on the next
// panic that unwinds through an armed breadcrumb guard, Print runs first
// and any previously installed hook runs after it, with the original panic
// value unmodified.
//
// Call it once, near process start. Calling it again composes another
// print layer rather than being idempotent.
func AddPanicHook() {
	hookMu.Lock()
	defer hookMu.Unlock()
	prev := panicHook.Load()
	var h PanicHook
	if prev == nil {
		h = func(any) { Print() }
	} else {
		prevHook := *prev
		h = func(v any) {
			Print()
			prevHook(v)
		}
	}
	panicHook.Store(&h)
}

// SetPanicHook replaces the installed hook. A nil hook clears the slot,
// disabling panic reporting entirely.
func SetPanicHook(h PanicHook) {
	hookMu.Lock()
	defer hookMu.Unlock()
	if h == nil {
		panicHook.Store(nil)
		return
	}
	panicHook.Store(&h)
}

// TakePanicHook removes and returns the installed hook, or nil if none is
// installed. Useful for wrapping the current hook by hand.
func TakePanicHook() PanicHook {
	hookMu.Lock()
	defer hookMu.Unlock()
	p := panicHook.Load()
	panicHook.Store(nil)
	if p == nil {
		return nil
	}
	return *p
}

// installedHook returns the current hook without locking; nil when none is
// installed. This is the fast-path read used by every scope End.
func installedHook() PanicHook {
	p := panicHook.Load()
	if p == nil {
		return nil
	}
	return *p
}

// runHook invokes a hook defensively: a hook that itself panics must not
// disturb the unwind it is reporting on.
func runHook(h PanicHook, v any) {
	defer func() {
		_ = recover()
	}()
	h(v)
}
