package ports

// DiagnosticSink consumes human-readable diagnostic strings emitted by the
// retrieval layer and the resolution engine. A sink cannot alter control
// flow; it exists purely to explain why a resolution returned nothing.
type DiagnosticSink interface {
	Report(msg string)
}

// DiagnosticFunc adapts a plain function to a DiagnosticSink.
type DiagnosticFunc func(msg string)

// Report calls f(msg).
func (f DiagnosticFunc) Report(msg string) { f(msg) }

// NopSink is the default sink. It discards all diagnostics.
var NopSink DiagnosticSink = DiagnosticFunc(func(string) {})
