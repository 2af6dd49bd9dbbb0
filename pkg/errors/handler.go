package errors

import "sync"

// Handler receives errors reported by the FLUI runtime. Construction errors
// and arity/protocol violations panic at the point of violation; a panic
// inside a frame, of any cause, is recovered by pkg/pipeline's RunFrame and
// reported here. A Handler sees PanicError (recovered top-level panics) and
// BoundaryError (panics caught around a Component build).
type Handler interface {
	HandlePanic(err *PanicError)
	HandleBoundaryError(err *BoundaryError)
}

var (
	handlerMu      sync.RWMutex
	defaultHandler Handler = &LogHandler{}
)

// SetHandler configures the global error handler. Passing nil restores the
// default LogHandler.
func SetHandler(h Handler) {
	handlerMu.Lock()
	defer handlerMu.Unlock()
	if h == nil {
		defaultHandler = &LogHandler{}
		return
	}
	defaultHandler = h
}

func getHandler() Handler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return defaultHandler
}

// ReportPanic sends a recovered panic to the global handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	getHandler().HandlePanic(err)
}

// ReportBoundaryError sends a boundary error to the global handler.
func ReportBoundaryError(err *BoundaryError) {
	if err == nil {
		return
	}
	getHandler().HandleBoundaryError(err)
}

// Recover is a helper for deferred panic recovery at a frame boundary.
// Usage: defer errors.Recover("pipeline.flushPaint")
func Recover(op string) {
	if r := recover(); r != nil {
		ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
	}
}
