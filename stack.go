// stack.go — per-goroutine breadcrumb arenas for econtext.
//
// Design:
//   - One growable arena of frame records per goroutine, ordered outermost
//     first. The "previous breadcrumb" relation is positional, so frames
//     never hold references into other scopes' storage.
//   - A scope is represented by the arena length captured at entry; ending
//     a scope truncates back to that saved length. Restoring a snapshot
//     rather than decrementing keeps the chain correct at any nesting depth
//     and on any exit path, including panics that leak inner scopes.
//   - Arenas are registered in a process-wide map keyed by goroutine id,
//     created lazily on first push and removed as soon as they empty, so a
//     goroutine that unwinds cleanly leaves nothing behind.
//
// Concurrency:
//   - An arena is only ever mutated by its owning goroutine. The registry
//     is a sync.Map because distinct goroutines hit disjoint keys; reads on
//     the push/pop path are lock-free.
package econtext

import "sync"

// frame is one recorded context point: where, what, and optional data.
type frame struct {
	pkg     string // package path of the call site
	file    string // source file as reported by the runtime
	line    int
	message string
	payload Payload
}

// stack is the breadcrumb arena of a single goroutine.
type stack struct {
	gid    uint64
	frames []frame

	// panicking is latched when a panic unwinding this goroutine has been
	// reported through the hook chain. It guarantees at most one report per
	// unwind: enclosing guards see the latch and restore silently. It is
	// reset by discarding the arena once it empties.
	panicking bool
}

// stacks maps goroutine id → *stack for every goroutine with at least one
// armed breadcrumb.
var stacks sync.Map

// currentStack returns the calling goroutine's arena, creating and
// registering it if absent.
func currentStack() *stack {
	gid := goroutineID()
	if v, ok := stacks.Load(gid); ok {
		return v.(*stack)
	}
	st := &stack{gid: gid, frames: make([]frame, 0, 8)}
	stacks.Store(gid, st)
	return st
}

// activeStack returns the calling goroutine's arena, or nil when no
// breadcrumb is armed on it. It never creates an arena, so read-only paths
// (rendering, depth probes) leave no residue.
func activeStack() *stack {
	if v, ok := stacks.Load(goroutineID()); ok {
		return v.(*stack)
	}
	return nil
}

// dropStack removes an emptied arena from the registry. The delete is
// conditioned on identity: a stale Scope ending after its arena was already
// dropped and a new one registered for the same goroutine must not unhook
// the live arena.
func dropStack(st *stack) {
	stacks.CompareAndDelete(st.gid, st)
}
