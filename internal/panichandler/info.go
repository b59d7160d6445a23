package panichandler

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"
)

// Location is the source position a panic was raised from.
type Location struct {
	File     string
	Line     int
	Function string
}

func (l Location) String() string {
	return l.File + ":" + strconv.Itoa(l.Line)
}

// Info describes a single unhandled panic.
type Info struct {
	value    any
	location *Location
	stack    []byte
}

// NewInfo builds an Info for value raised at loc. loc may be nil.
func NewInfo(value any, loc *Location) *Info {
	return &Info{value: value, location: loc}
}

// Value returns the raw value passed to panic.
func (i *Info) Value() any {
	return i.value
}

func (i *Info) Location() (Location, bool) {
	if i.location == nil {
		return Location{}, false
	}
	return *i.location, true
}

// Message returns the human readable panic payload. Only strings, errors and
// fmt.Stringers carry a message.
func (i *Info) Message() (string, bool) {
	switch v := i.value.(type) {
	case string:
		return v, true
	case error:
		return v.Error(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return "", false
}

// Stack returns the goroutine stack captured when the panic was recovered,
// or nil for hand-built infos.
func (i *Info) Stack() []byte {
	return i.stack
}

// panicLocation walks the current stack and returns the first frame below
// runtime.gopanic that is not part of the runtime. It must be called from the
// deferred function that recovered.
func panicLocation() *Location {
	pcs := make([]uintptr, 64)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	inPanic := false
	for {
		frame, more := frames.Next()
		switch {
		case frame.Function == "runtime.gopanic":
			inPanic = true
		case inPanic && !strings.HasPrefix(frame.Function, "runtime."):
			return &Location{File: frame.File, Line: frame.Line, Function: frame.Function}
		}
		if !more {
			return nil
		}
	}
}
