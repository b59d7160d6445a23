package panichandler

import (
	"fmt"

	"go.uber.org/zap"

	"pong/internal/logger"
)

const (
	DefaultTitle    = "Fatal Error"
	UnknownLocation = "Unknown Location"
	NoMessage       = "No panic message available"
	FallbackBody    = "Unhandled panic (failed to format panic message)"
	loggerName      = "panic"
	bodyFormat      = "Unhandled panic at %s:\n%s"
)

// Formatter renders part of a panic report.
type Formatter func(info *Info) string

// DialogFunc shows a blocking error dialog.
type DialogFunc func(title, body string) error

// Builder collects overrides for a Handler. Unset slots are filled with
// defaults by Build.
type Builder struct {
	title  Formatter
	body   Formatter
	hook   Hook
	log    *zap.Logger
	dialog DialogFunc
	noDlg  bool
}

func New() *Builder {
	return &Builder{}
}

// NewWithExisting returns a builder whose hook chains to the interceptor
// installed right now.
func NewWithExisting() *Builder {
	return New().TakeExistingHook()
}

// Default returns a handler with every slot defaulted.
func Default() *Handler {
	return New().Build()
}

func (b *Builder) SetTitle(f Formatter) *Builder {
	b.title = f
	return b
}

func (b *Builder) SetBody(f Formatter) *Builder {
	b.body = f
	return b
}

// SetHook sets the function run after the report has been logged and shown.
func (b *Builder) SetHook(h Hook) *Builder {
	b.hook = h
	return b
}

// TakeExistingHook uninstalls the current interceptor and keeps it as this
// builder's hook so the previous report still runs after ours. Call it before
// anything else replaces the interceptor: a replaced hook is gone for good.
func (b *Builder) TakeExistingHook() *Builder {
	b.hook = TakeHook()
	return b
}

func (b *Builder) SetLogger(l *zap.Logger) *Builder {
	b.log = l
	return b
}

// SetDialog overrides the native dialog.
func (b *Builder) SetDialog(d DialogFunc) *Builder {
	b.dialog = d
	b.noDlg = false
	return b
}

// DisableDialog turns off the native dialog, leaving only the log line.
func (b *Builder) DisableDialog() *Builder {
	b.dialog = nil
	b.noDlg = true
	return b
}

func (b *Builder) Build() *Handler {
	h := &Handler{
		title:  b.title,
		body:   b.body,
		hook:   b.hook,
		log:    b.log,
		dialog: b.dialog,
	}
	if h.title == nil {
		h.title = defaultTitle
	}
	if h.body == nil {
		h.body = defaultBody
	}
	if h.hook == nil {
		h.hook = func(*Info) {}
	}
	if h.log == nil {
		h.log = logger.Named(loggerName)
	}
	if h.dialog == nil {
		if b.noDlg {
			h.dialog = func(string, string) error { return nil }
		} else {
			h.dialog = showDialog
		}
	}
	return h
}

func defaultTitle(*Info) string {
	return DefaultTitle
}

func defaultBody(info *Info) string {
	where := UnknownLocation
	if loc, ok := info.Location(); ok {
		where = loc.String()
	}
	msg, ok := info.Message()
	if !ok {
		msg = NoMessage
	}
	return fmt.Sprintf(bodyFormat, where, msg)
}
