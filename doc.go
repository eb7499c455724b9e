// doc.go — package documentation for econtext
//
// Package econtext provides fast, opt-in error context for panics: call
// sites record lightweight breadcrumb scopes (a message plus optional data),
// and if the goroutine later panics, the chain of scopes that is still
// active is rendered as a short, readable synthetic trace — innermost first.
// It is designed to be:
//   - Cheap at call sites (one registry lookup, one slice append)
//   - Fail-safe (diagnostics code never causes a secondary failure)
//   - Policy-free (no logging/transport rules in core; output is a string)
//
// This is useful, for instance:
//   - To print what data was being worked on when a panic occurred
//   - To provide something like a stack trace where a real one is too long
//     and winding, or drowned in runtime frames
//   - To carry loop indices and argument values that no unwinder can show
//
// # Usage
//
// Wrap a lexical scope by pushing a breadcrumb and deferring its End:
//
//	func main() {
//		econtext.AddPanicHook() // print the context chain on panic
//		defer econtext.Msg("While running").End()
//		run()
//	}
//
//	func run() {
//		defer econtext.Func().End() // records "main.run"
//		process("filename.txt")
//	}
//
//	func process(filename string) {
//		defer econtext.FuncData(filename).End()
//		for i := 0; i < 10; i++ {
//			sc := econtext.Data("i", i)
//			step(i) // a panic here is reported with i attached
//			sc.End()
//		}
//	}
//
// On a panic inside step(4), something like this is printed to stderr
// before the runtime's own report:
//
//	ERROR CONTEXT:
//	  main /src/main.go:17: i 4
//	  main /src/main.go:15: main.process "filename.txt"
//	  main /src/main.go:10: main.run
//	  main /src/main.go:5: While running
//
// # Scope Discipline
//
// A Scope ties a breadcrumb's visibility to a lexical scope. End restores
// the chain to the exact state captured when the Scope was created — not
// merely "pop one" — so a scope that was leaked deeper in the call tree
// (e.g. a loop body that panicked before its explicit End) is swept away by
// the first enclosing guard that unwinds. Scopes must be ended on the
// goroutine that created them; End on any other goroutine is a no-op.
//
// # Goroutines
//
// Each goroutine owns an independent chain. Context does not propagate to
// spawned goroutines; a new goroutine starts empty and re-establishes its
// own breadcrumbs if desired. Chains on different goroutines are never
// linked or rendered together.
//
// # Payloads
//
// Any value can be attached to a breadcrumb. Rendering is polymorphic over
// a single capability — the Payload interface — so scopes with different
// data types link into one chain uniformly. Strings render quoted, integers
// and booleans render bare, everything else falls back to fmt. A payload
// whose DebugString panics contributes an empty fragment for that frame
// only; the rest of the chain still renders.
//
// # Panic Hook
//
// AddPanicHook arranges for Print to run when a panic unwinds through an
// active breadcrumb guard, before any previously installed hook and before
// the runtime's own report. Call it once near process start; calling it
// again composes another layer. Without it, breadcrumbs cost almost nothing
// and nothing is printed.
//
// # Performance Notes
//
//   - Pushing a scope appends to a pre-grown per-goroutine slice; the
//     dominant cost is resolving the goroutine's identity and call site.
//   - No locks are taken on the push/pop path beyond the shared registry's
//     lock-free reads.
//   - Rendering is iterative and allocates only the output string.
//
// See examples/demo for a runnable end-to-end program.
package econtext
