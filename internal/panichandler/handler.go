package panichandler

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"pong/internal/app"
)

// Handler is a fully resolved panic report: every slot is set. It is never
// mutated after Build and may be shared between goroutines.
type Handler struct {
	title  Formatter
	body   Formatter
	hook   Hook
	log    *zap.Logger
	dialog DialogFunc
}

func (h *Handler) Title() Formatter {
	return h.title
}

func (h *Handler) Body() Formatter {
	return h.body
}

func (h *Handler) HookFunc() Hook {
	return h.hook
}

// Build installs the handler when it is added to an app and makes Guard the
// app's panic guard.
func (h *Handler) Build(a *app.App) {
	h.Activate()
	a.SetPanicGuard(Guard)
	a.Logger().Debug("panic handler installed")
}

// Activate installs the handler as the process wide interceptor, replacing
// the previous one.
func (h *Handler) Activate() {
	handler := *h
	SetHook(handler.report)
}

func (h *Handler) report(info *Info) {
	title := format(h.title, info, DefaultTitle)
	body := format(h.body, info, FallbackBody)

	h.log.Error(title + "\n" + body)
	_ = h.log.Sync()

	if err := show(h.dialog, title, body); err != nil {
		h.log.Warn("failed to show panic dialog", zap.Error(err))
	}

	h.hook(info)
}

// format calls f and falls back to def if f panics. A panic here must not
// escape: we are already handling one.
func format(f Formatter, info *Info, def string) (s string) {
	defer func() {
		if r := recover(); r != nil {
			s = def
		}
	}()
	return f(info)
}

func show(d DialogFunc, title, body string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("dialog panicked: %v", r)
		}
	}()
	return d(title, body)
}
