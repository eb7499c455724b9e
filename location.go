// location.go — call-site capture for econtext.
//
// Breadcrumbs record where they were pushed: the package path, source file,
// and line of the call site, plus (for the Func variants) the qualified
// name of the enclosing function. All of it comes from runtime.Caller and
// runtime.FuncForPC; the skip accounting below keeps the recorded site at
// the user's call, never inside this package.
package econtext

import (
	"runtime"
	"strings"
)

// unknownSite is recorded when the runtime cannot resolve a caller, which
// only happens when the requested skip walks past the top of the stack.
const unknownSite = "???"

// location identifies a single call site.
type location struct {
	pkg  string
	file string
	line int
}

// callSite resolves the location and qualified function name of a caller.
// skip counts additional frames above the caller of callSite: 0 records the
// direct caller, 1 its caller, and so on.
func callSite(skip int) (location, string) {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return location{pkg: unknownSite, file: unknownSite}, unknownSite
	}
	name := unknownSite
	if fn := runtime.FuncForPC(pc); fn != nil {
		name = fn.Name()
	}
	return location{pkg: packagePath(name), file: file, line: line}, funcName(name)
}

// packagePath extracts the import path from a runtime function name:
//
//	"github.com/emilk/econtext.Msg"      → "github.com/emilk/econtext"
//	"src.elv.sh/pkg/diag.(*Error).Show"  → "src.elv.sh/pkg/diag"
//	"main.run"                           → "main"
//
// The package name cannot contain a dot, so the first dot after the final
// slash always terminates the import path (method receivers and generic
// instantiations only add dots after that point).
func packagePath(name string) string {
	slash := strings.LastIndexByte(name, '/')
	dot := strings.IndexByte(name[slash+1:], '.')
	if dot < 0 {
		return name
	}
	return name[:slash+1+dot]
}

// funcName trims the directory part of a runtime function name, leaving the
// package-qualified function: "github.com/emilk/econtext.Msg" → "econtext.Msg".
func funcName(name string) string {
	return name[strings.LastIndexByte(name, '/')+1:]
}

// CurrentFunction returns the package-qualified name of the calling
// function, e.g. "main.run" or "mypkg.(*Server).handle". It is what Func
// and FuncData record as their message, exported for callers that want to
// build a message by hand.
func CurrentFunction() string {
	_, fn := callSite(1)
	return fn
}
