package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync/atomic"
)

var (
	// crashReset restores the terminal before the crash report is printed
	crashReset atomic.Pointer[func()]

	// crashExit ends the process after a crash; replaced in tests
	crashExit = os.Exit

	crashOut io.Writer = os.Stderr
)

// SetCrashReset registers the terminal restore run by HandleCrash; nil clears it
func SetCrashReset(fn func()) {
	if fn == nil {
		crashReset.Store(nil)
		return
	}
	crashReset.Store(&fn)
}

// HandleCrash restores the terminal, prints the panic value with a stack trace and exits
func HandleCrash(r any) {
	if r == nil {
		return
	}

	if fn := crashReset.Swap(nil); fn != nil {
		(*fn)()
	}

	fmt.Fprintf(crashOut, "\n\x1b[31mVI-CANVAS CRASHED: %v\x1b[0m\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\n%s\n", debug.Stack())

	crashExit(1)
}

// Go runs fn in a new goroutine with panic recovery
// Use this instead of the 'go' keyword for goroutines that run while the screen is in raw mode
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
