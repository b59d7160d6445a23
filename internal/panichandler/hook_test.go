package panichandler

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSetHookNilRestoresDefault(t *testing.T) {
	isolateHook(t)

	SetHook(func(*Info) {})
	SetHook(nil)
	require.Equal(t, reflect.ValueOf(DefaultHook).Pointer(), reflect.ValueOf(currentHook()).Pointer())
}

func TestTakeHookReturnsInstalled(t *testing.T) {
	isolateHook(t)

	calls := 0
	SetHook(func(*Info) { calls++ })
	taken := TakeHook()
	taken(NewInfo("boom", nil))

	require.Equal(t, 1, calls)
	require.Equal(t, reflect.ValueOf(DefaultHook).Pointer(), reflect.ValueOf(TakeHook()).Pointer())
}

func TestDefaultHookWritesReport(t *testing.T) {
	isolateHook(t)

	var buf bytes.Buffer
	stderr = &buf
	DefaultHook(NewInfo("boom", &Location{File: "game.go", Line: 12, Function: "main.(*Game).Update"}))

	require.Equal(t, "panic: boom\n\tat game.go:12 (main.(*Game).Update)\n", buf.String())

	buf.Reset()
	DefaultHook(NewInfo(42, nil))
	require.Equal(t, "panic: 42\n", buf.String())
}

func TestGuardReportsPanicSite(t *testing.T) {
	isolateHook(t)

	var codes []int
	exit = func(code int) { codes = append(codes, code) }
	var got *Info
	SetHook(func(info *Info) { got = info })

	func() {
		defer Guard()
		panic("boom")
	}()

	require.Equal(t, []int{ExitCode}, codes)
	require.NotNil(t, got)
	msg, ok := got.Message()
	require.True(t, ok)
	require.Equal(t, "boom", msg)

	loc, ok := got.Location()
	require.True(t, ok)
	require.Equal(t, "hook_test.go", filepath.Base(loc.File))
	require.Positive(t, loc.Line)
	require.True(t, strings.Contains(loc.Function, "TestGuardReportsPanicSite"), loc.Function)
	require.NotEmpty(t, got.Stack())
}

func TestGuardReportsRuntimeErrors(t *testing.T) {
	isolateHook(t)

	exit = func(int) {}
	var got *Info
	SetHook(func(info *Info) { got = info })

	func() {
		defer Guard()
		var m map[string]int
		m["x"] = 1
	}()

	require.NotNil(t, got)
	msg, ok := got.Message()
	require.True(t, ok)
	require.Contains(t, msg, "nil map")
	loc, ok := got.Location()
	require.True(t, ok)
	require.Equal(t, "hook_test.go", filepath.Base(loc.File))
}

func TestGuardWithoutPanicDoesNothing(t *testing.T) {
	isolateHook(t)

	exited := false
	exit = func(int) { exited = true }
	called := false
	SetHook(func(*Info) { called = true })

	func() {
		defer Guard()
	}()

	require.False(t, exited)
	require.False(t, called)
}

func TestGoGuardsGoroutine(t *testing.T) {
	isolateHook(t)

	codes := make(chan int, 1)
	exit = func(code int) { codes <- code }
	infos := make(chan *Info, 1)
	SetHook(func(info *Info) { infos <- info })

	Go(func() { panic("worker failed") })

	select {
	case code := <-codes:
		require.Equal(t, ExitCode, code)
	case <-time.After(5 * time.Second):
		t.Fatal("guarded goroutine did not report")
	}
	msg, _ := (<-infos).Message()
	require.Equal(t, "worker failed", msg)
}
