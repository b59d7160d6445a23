package panichandler

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"
)

// Hook receives every unhandled panic that reaches Guard.
type Hook func(info *Info)

// The process wide interceptor. Installation happens once during startup;
// the last writer wins.
var (
	hookMu  sync.RWMutex
	current Hook = DefaultHook
)

var (
	stderr io.Writer = os.Stderr
	exit             = os.Exit
)

// ExitCode matches the status the Go runtime uses for an unrecovered panic.
const ExitCode = 2

// SetHook installs h as the process wide interceptor, replacing whatever was
// installed before. A nil hook restores DefaultHook.
func SetHook(h Hook) {
	if h == nil {
		h = DefaultHook
	}
	hookMu.Lock()
	current = h
	hookMu.Unlock()
}

// TakeHook removes the installed interceptor and returns it. DefaultHook is
// installed in its place.
func TakeHook() Hook {
	hookMu.Lock()
	defer hookMu.Unlock()
	h := current
	current = DefaultHook
	return h
}

func currentHook() Hook {
	hookMu.RLock()
	defer hookMu.RUnlock()
	return current
}

// Invoke runs the installed interceptor for info on the calling goroutine.
func Invoke(info *Info) {
	currentHook()(info)
}

// DefaultHook writes a report shaped like the Go runtime's own panic output
// to stderr.
func DefaultHook(info *Info) {
	msg, ok := info.Message()
	if !ok {
		msg = fmt.Sprintf("%v", info.Value())
	}
	fmt.Fprintf(stderr, "panic: %s\n", msg)
	if loc, ok := info.Location(); ok {
		fmt.Fprintf(stderr, "\tat %s (%s)\n", loc, loc.Function)
	}
	if stack := info.Stack(); len(stack) > 0 {
		fmt.Fprintf(stderr, "\n%s", stack)
	}
}

// Guard must be deferred directly at the top of main, of every goroutine and
// of engine callbacks. It recovers a panic, runs the installed interceptor
// and terminates the process.
func Guard() {
	r := recover()
	if r == nil {
		return
	}
	info := &Info{value: r, location: panicLocation(), stack: debug.Stack()}
	Invoke(info)
	exit(ExitCode)
}

// Go runs fn on a new goroutine guarded by Guard.
func Go(fn func()) {
	go func() {
		defer Guard()
		fn()
	}()
}
