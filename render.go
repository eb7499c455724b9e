// render.go — chain rendering and the diagnostic print entry point.
//
// Behavior:
//
//	Render() → one line per armed breadcrumb, innermost first:
//
//	  <pkg> <file>:<line>: <message> <payload>\n
//
//	(two-space indent; the space before the payload text is always present,
//	even when the payload is empty, so the format is stable for tooling).
//
//	Print() → "ERROR CONTEXT:" header plus the rendered chain on the
//	diagnostic stream, only when the chain is non-empty.
//
// Rendering runs during failure handling where resources may be scarce, so
// the walk is iterative (no renderer recursion regardless of chain depth)
// and infallible: formatting problems degrade per frame, never propagate.
package econtext

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
)

// output is the diagnostic stream Print writes to. Swapped in tests.
var output io.Writer = os.Stderr

// Styling for the Print header when the stream is a terminal.
const (
	headerStyleBegin = "\033[1;31m"
	headerStyleEnd   = "\033[m"
)

// Render returns the calling goroutine's active breadcrumb chain as text,
// innermost first, or the empty string when no breadcrumb is armed. It
// never fails.
func Render() string {
	st := activeStack()
	if st == nil || len(st.frames) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := len(st.frames) - 1; i >= 0; i-- {
		writeFrame(&sb, &st.frames[i])
	}
	return sb.String()
}

func writeFrame(sb *strings.Builder, f *frame) {
	sb.WriteString("  ")
	sb.WriteString(f.pkg)
	sb.WriteByte(' ')
	sb.WriteString(f.file)
	sb.WriteByte(':')
	sb.WriteString(strconv.Itoa(f.line))
	sb.WriteString(": ")
	sb.WriteString(f.message)
	sb.WriteByte(' ')
	sb.WriteString(debugText(f.payload))
	sb.WriteByte('\n')
}

// Print writes an "ERROR CONTEXT:" header followed by the rendered chain to
// the diagnostic stream (stderr by default), only if the chain is
// non-empty. The header is emboldened when the stream is a terminal.
func Print() {
	text := Render()
	if text == "" {
		return
	}
	header := "ERROR CONTEXT:"
	if isTerminal(output) {
		header = headerStyleBegin + header + headerStyleEnd
	}
	_, _ = io.WriteString(output, header+"\n"+text)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
