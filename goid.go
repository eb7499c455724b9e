// goid.go — goroutine identity for the breadcrumb registry.
//
// Go exposes no goroutine-local storage and no public goroutine id, so the
// registry key is parsed out of the first line of a runtime.Stack dump
// ("goroutine 123 [running]:"). The ids are assigned by a monotonic counter
// in the runtime and are never reused, which makes them safe registry keys.
//
// Notes:
//   - runtime.Stack with a single-goroutine request and a tiny fixed buffer
//     does not stop the world; it only walks the current stack header.
//   - The buffer lives on the caller's stack; no allocation per call.
package econtext

import "runtime"

const goroutinePrefix = "goroutine "

// goroutineID returns the runtime id of the calling goroutine.
func goroutineID() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	if n <= len(goroutinePrefix) {
		return 0
	}
	var id uint64
	for _, c := range buf[len(goroutinePrefix):n] {
		if c < '0' || c > '9' {
			break
		}
		id = id*10 + uint64(c-'0')
	}
	return id
}
