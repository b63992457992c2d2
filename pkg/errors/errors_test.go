package errors

import (
	"fmt"
	"testing"
	"time"
)

func TestErrorString(t *testing.T) {
	err := &Error{
		Op:   "binding.Binding.expand",
		Kind: KindQuery,
		Err:  fmt.Errorf("backend unavailable"),
	}
	got := err.Error()
	if got == "" {
		t.Error("expected non-empty error string")
	}
	want := "[query]"
	if !contains(got, want) {
		t.Errorf("error string %q should contain %q", got, want)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindQuery, "query"},
		{KindCallback, "callback"},
		{KindBinding, "binding"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestPanicErrorStringWithOp(t *testing.T) {
	err := &PanicError{
		Op:        "observe.Scheduler.Drain",
		Value:     "test panic",
		Timestamp: time.Now(),
	}
	got := err.Error()
	want := "panic in observe.Scheduler.Drain: test panic"
	if got != want {
		t.Errorf("PanicError.Error() = %q, want %q", got, want)
	}
}

func TestSharedNodeErrorString(t *testing.T) {
	err := &SharedNodeError{Label: "orders"}
	got := err.Error()
	if !contains(got, `"orders"`) {
		t.Errorf("error string %q should name the node label", got)
	}
}

type testHandler struct {
	onError func(err *Error)
	onPanic func(err *PanicError)
}

func (h *testHandler) HandleError(err *Error) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}

func TestReport(t *testing.T) {
	var captured *Error
	handler := &testHandler{
		onError: func(err *Error) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	Report(&Error{
		Op:   "test.op",
		Kind: KindBinding,
		Err:  &SharedNodeError{Label: "x"},
	})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Op != "test.op" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.op")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestReportNil(t *testing.T) {
	// Should not panic.
	Report(nil)
	ReportPanic(nil)
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	handler := &testHandler{
		onPanic: func(err *PanicError) {
			captured = err
		},
	}

	oldHandler := DefaultHandler
	SetHandler(handler)
	defer SetHandler(oldHandler)

	func() {
		defer Recover("test.recover")
		panic("boom")
	}()

	if captured == nil {
		t.Fatal("expected panic to be captured")
	}
	if captured.Op != "test.recover" {
		t.Errorf("Op = %q, want %q", captured.Op, "test.recover")
	}
	if captured.Value != "boom" {
		t.Errorf("Value = %v, want %q", captured.Value, "boom")
	}
	if captured.StackTrace == "" {
		t.Error("expected stack trace to be captured")
	}
}

func TestSetHandlerNil(t *testing.T) {
	oldHandler := DefaultHandler
	defer SetHandler(oldHandler)

	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("expected default LogHandler, got %T", DefaultHandler)
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
