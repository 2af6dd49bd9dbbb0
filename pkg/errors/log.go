package errors

import (
	"fmt"
	"os"
)

// LogHandler logs errors to stderr. It is the default Handler.
type LogHandler struct {
	// Verbose enables stack traces in the output.
	Verbose bool
}

func (h *LogHandler) HandlePanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Op != "" {
		fmt.Fprintf(os.Stderr, "[flui panic] %s: %v\n", err.Op, err.Value)
	} else {
		fmt.Fprintf(os.Stderr, "[flui panic] %v\n", err.Value)
	}
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "%s\n", err.StackTrace)
	}
}

func (h *LogHandler) HandleBoundaryError(err *BoundaryError) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "[flui boundary] %s\n", err.Error())
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "%s\n", err.StackTrace)
	}
}
