package huffcode

// EnableTrace gates Trace's output. It is a compile-time-oriented switch
// (flip and rebuild) rather than a runtime flag, so the common path pays
// nothing for it.
const EnableTrace = false

// Trace prints a single debug line when EnableTrace is true. It mirrors
// the teacher's bit-buffer trace hook rather than pulling in a logging
// library: this is a developer aid for stepping through bit-level state,
// not an application log.
func Trace(event, function, arguments string) {
	if EnableTrace {
		println(event, function, arguments)
	}
}
