// payload.go — the debug-rendering capability for breadcrumb data.
//
// A chain is heterogeneous in payload type but uniform in rendering
// capability: every payload answers exactly one question, "what is your
// debug text". Values passed to Data/FuncData are adapted once, at push
// time, so rendering at failure time does no type dispatch beyond a single
// interface call.
//
// Adapters:
//   - values already implementing Payload are used as-is;
//   - strings render quoted, integer kinds and bools render bare, all via
//     strconv (no fmt machinery on these paths);
//   - everything else falls back to fmt's default formatting.
package econtext

import (
	"fmt"
	"strconv"
)

// Payload is the single capability a breadcrumb's data must provide: a
// debug-style text representation. Implement it to control how a custom
// type appears in the rendered chain.
//
// DebugString is called during failure handling; implementations should be
// cheap and must not rely on external state. A DebugString that panics is
// tolerated: that frame renders with an empty payload fragment.
type Payload interface {
	DebugString() string
}

// noPayload is the unit variant: a breadcrumb with no data attached.
type noPayload struct{}

func (noPayload) DebugString() string { return "" }

type stringPayload string

func (p stringPayload) DebugString() string { return strconv.Quote(string(p)) }

type intPayload int64

func (p intPayload) DebugString() string { return strconv.FormatInt(int64(p), 10) }

type uintPayload uint64

func (p uintPayload) DebugString() string { return strconv.FormatUint(uint64(p), 10) }

type boolPayload bool

func (p boolPayload) DebugString() string { return strconv.FormatBool(bool(p)) }

// anyPayload adapts arbitrary values through fmt.
type anyPayload struct {
	v any
}

func (p anyPayload) DebugString() string { return fmt.Sprintf("%v", p.v) }

// payloadOf adapts an arbitrary value to the Payload capability.
func payloadOf(v any) Payload {
	switch x := v.(type) {
	case Payload:
		return x
	case string:
		return stringPayload(x)
	case int:
		return intPayload(x)
	case int8:
		return intPayload(x)
	case int16:
		return intPayload(x)
	case int32:
		return intPayload(x)
	case int64:
		return intPayload(x)
	case uint:
		return uintPayload(x)
	case uint8:
		return uintPayload(x)
	case uint16:
		return uintPayload(x)
	case uint32:
		return uintPayload(x)
	case uint64:
		return uintPayload(x)
	case bool:
		return boolPayload(x)
	default:
		return anyPayload{v: x}
	}
}

// debugText renders one payload, degrading to an empty fragment if the
// payload's DebugString panics. One bad payload must not blank out or crash
// the rest of the chain.
func debugText(p Payload) (text string) {
	defer func() {
		if recover() != nil {
			text = ""
		}
	}()
	if p == nil {
		return ""
	}
	return p.DebugString()
}
