package panichandler

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// isolateHook restores the global interceptor and the exit function once the
// test finishes.
func isolateHook(t *testing.T) {
	t.Helper()
	prev := TakeHook()
	prevExit := exit
	prevStderr := stderr
	t.Cleanup(func() {
		SetHook(prev)
		exit = prevExit
		stderr = prevStderr
	})
}

func observedLogger() (*zap.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return zap.New(core), logs
}

func errorMessages(logs *observer.ObservedLogs) []string {
	var msgs []string
	for _, e := range logs.All() {
		if e.Level == zapcore.ErrorLevel {
			msgs = append(msgs, e.Message)
		}
	}
	return msgs
}

type shownDialog struct {
	title, body string
}

func recordingDialog(shown *[]shownDialog) DialogFunc {
	return func(title, body string) error {
		*shown = append(*shown, shownDialog{title, body})
		return nil
	}
}
