// scope_test.go — verification of the push/pop guard discipline.
package econtext

import (
	"strings"
	"testing"
)

// --- Helpers to build known scope shapes --------------------------------------

func nestScopes(depth int) {
	if depth == 0 {
		return
	}
	defer Msg("level").End()
	nestScopes(depth - 1)
}

func panicUnderScopes() (v any) {
	defer func() { v = recover() }()
	func() {
		defer Msg("outer step").End()
		func() {
			defer Data("i", 4).End()
			panic("boom")
		}()
	}()
	return nil
}

// --- Tests ---------------------------------------------------------------------

func TestScope_RoundTripAtArbitraryDepth(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{1, 2, 8, 64, 512} {
		nestScopes(depth)
		if d := Depth(); d != 0 {
			t.Fatalf("after %d nested enter/exit pairs, depth = %d, want 0", depth, d)
		}
		if out := Render(); out != "" {
			t.Fatalf("after %d nested enter/exit pairs, render produced %q, want empty", depth, out)
		}
	}
}

func TestScope_DepthTracksArmedScopes(t *testing.T) {
	t.Parallel()

	const n = 16
	scopes := make([]Scope, 0, n)
	for i := 0; i < n; i++ {
		scopes = append(scopes, Data("step", i))
		if d := Depth(); d != i+1 {
			t.Fatalf("depth after %d pushes = %d, want %d", i+1, d, i+1)
		}
	}
	for i := n - 1; i >= 0; i-- {
		scopes[i].End()
		if d := Depth(); d != i {
			t.Fatalf("depth after ending scope %d = %d, want %d", i, d, i)
		}
	}
}

func TestScope_EndRestoresSnapshotNotOneLevel(t *testing.T) {
	t.Parallel()

	outer := Msg("outer")
	_ = Msg("leaked middle")
	_ = Msg("leaked inner")
	if d := Depth(); d != 3 {
		t.Fatalf("depth = %d, want 3", d)
	}

	// Ending the outer scope must sweep the leaked inner scopes too:
	// restore-to-snapshot, not pop-one.
	outer.End()
	if d := Depth(); d != 0 {
		t.Fatalf("depth after outer End = %d, want 0", d)
	}
}

func TestScope_ZeroValueEndIsInert(t *testing.T) {
	t.Parallel()

	var sc Scope
	sc.End() // must not panic or disturb anything
	if d := Depth(); d != 0 {
		t.Fatalf("depth = %d, want 0", d)
	}
}

func TestScope_DoubleEndIsHarmless(t *testing.T) {
	t.Parallel()

	sc := Msg("once")
	sc.End()
	sc.End()
	if d := Depth(); d != 0 {
		t.Fatalf("depth = %d, want 0", d)
	}
}

func TestScope_EndOnForeignGoroutineIsNoop(t *testing.T) {
	t.Parallel()

	sc := Msg("mine")
	done := make(chan struct{})
	go func() {
		defer close(done)
		sc.End() // wrong goroutine: must not touch the origin's chain
	}()
	<-done

	if d := Depth(); d != 1 {
		t.Fatalf("depth after foreign End = %d, want 1", d)
	}
	sc.End()
	if d := Depth(); d != 0 {
		t.Fatalf("depth after local End = %d, want 0", d)
	}
}

func TestScope_EarlyReturnStillRestores(t *testing.T) {
	t.Parallel()

	early := func(bail bool) {
		defer Msg("early").End()
		if bail {
			return
		}
		t.Fatalf("unreachable")
	}
	early(true)
	if d := Depth(); d != 0 {
		t.Fatalf("depth after early return = %d, want 0", d)
	}
}

func TestScope_PanicUnwindRestoresWithoutHook(t *testing.T) {
	t.Parallel()

	if v := panicUnderScopes(); v != "boom" {
		t.Fatalf("recovered %v, want boom", v)
	}
	if d := Depth(); d != 0 {
		t.Fatalf("depth after unwind = %d, want 0", d)
	}
}

func TestFunc_RecordsEnclosingFunctionName(t *testing.T) {
	t.Parallel()

	sc := Func()
	defer sc.End()

	out := Render()
	if !strings.Contains(out, "econtext.TestFunc_RecordsEnclosingFunctionName") {
		t.Fatalf("render missing enclosing function name:\n%s", out)
	}
}

func TestFuncData_RecordsNameAndPayload(t *testing.T) {
	t.Parallel()

	sc := FuncData("filename.txt")
	defer sc.End()

	out := Render()
	if !strings.Contains(out, `econtext.TestFuncData_RecordsNameAndPayload "filename.txt"`) {
		t.Fatalf("render missing function name or payload:\n%s", out)
	}
}
