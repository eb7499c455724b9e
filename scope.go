// scope.go — breadcrumb constructors and the scope guard for econtext.
//
// The guard protocol is a three-state machine per scope:
//
//	unarmed → armed:    Msg/Data/Func/FuncData capture the arena length,
//	                    append one frame, and return a Scope holding the
//	                    saved length (the restore point).
//	armed → disarmed:   End truncates the arena back to the restore point,
//	                    on every exit path: normal return, early return, or
//	                    panic unwinding.
//
// Scopes on one goroutine must nest (LIFO exit order); End tolerates inner
// scopes that were leaked rather than ended, by restoring the snapshot. End
// from a different goroutine is a no-op, so the protocol cannot be made to
// corrupt another goroutine's chain.
//
// When a panic hook is installed, the innermost directly-deferred End is
// also the failure trigger: it recovers the panic value while the full
// chain is still armed, runs the hook chain exactly once, restores its
// snapshot, and re-panics with the original value so unwinding and the
// runtime's own report continue untouched.
package econtext

// Scope is the guard for one breadcrumb. The zero Scope is inert: End on it
// does nothing. Create Scopes with Msg, Data, Func, or FuncData, and end
// them with a deferred End on the same goroutine:
//
//	defer econtext.Data("i", i).End()
type Scope struct {
	st   *stack
	mark int
}

// Msg pushes a breadcrumb carrying just a message.
func Msg(message string) Scope {
	loc, _ := callSite(1)
	return push(loc, message, noPayload{})
}

// Data pushes a breadcrumb carrying a message and a data value. The value
// is adapted to the Payload capability at push time; see Payload for how
// common types render.
func Data(message string, value any) Scope {
	loc, _ := callSite(1)
	return push(loc, message, payloadOf(value))
}

// Func pushes a breadcrumb whose message is the qualified name of the
// calling function.
func Func() Scope {
	loc, fn := callSite(1)
	return push(loc, fn, noPayload{})
}

// FuncData pushes a breadcrumb whose message is the qualified name of the
// calling function, carrying a data value.
func FuncData(value any) Scope {
	loc, fn := callSite(1)
	return push(loc, fn, payloadOf(value))
}

func push(loc location, message string, p Payload) Scope {
	st := currentStack()
	mark := len(st.frames)
	st.frames = append(st.frames, frame{
		pkg:     loc.pkg,
		file:    loc.file,
		line:    loc.line,
		message: message,
		payload: p,
	})
	return Scope{st: st, mark: mark}
}

// End disarms the scope, restoring the goroutine's chain to exactly the
// state captured when the scope was created. It must run on the goroutine
// that created the scope; anywhere else it is a no-op.
//
// When a panic hook is installed and a panic is unwinding, the innermost
// End that was deferred directly (defer sc.End()) reports the still-armed
// chain through the hook before restoring, then re-panics with the original
// value. Ends reached through wrapper closures cannot observe the panic and
// simply restore.
func (s Scope) End() {
	st := s.st
	if st == nil {
		return
	}
	if goroutineID() != st.gid {
		return
	}
	if h := installedHook(); h != nil && !st.panicking {
		// recover only observes a panic when End itself is the deferred
		// call; in plain returns it is nil and costs nearly nothing.
		if v := recover(); v != nil {
			st.panicking = true
			runHook(h, v)
			s.restore()
			panic(v)
		}
	}
	s.restore()
}

func (s Scope) restore() {
	st := s.st
	if s.mark <= len(st.frames) {
		st.frames = st.frames[:s.mark]
	}
	if len(st.frames) == 0 {
		dropStack(st)
	}
}

// Depth reports how many breadcrumbs are currently armed on the calling
// goroutine. Mostly useful in tests and assertions.
func Depth() int {
	if st := activeStack(); st != nil {
		return len(st.frames)
	}
	return 0
}
