package cli

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"
)

// syncWriter guards writes so tests can read concurrently with the
// spinner goroutine.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestSpinnerBasic(t *testing.T) {
	w := &syncWriter{}
	s := NewSpinner(context.Background(), w, "working...")

	time.Sleep(3 * spinnerInterval)
	s.Stop()

	if !strings.Contains(w.String(), "working...") {
		t.Errorf("output missing spinner message: %q", w.String())
	}
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	w := &syncWriter{}
	s := NewSpinner(context.Background(), w, "working...")

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSpinnerWithCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	w := &syncWriter{}
	s := NewSpinner(ctx, w, "working...")

	cancel()
	time.Sleep(2 * spinnerInterval)
	s.Stop()
}

func TestSpinnerNilParent(t *testing.T) {
	w := &syncWriter{}
	s := NewSpinner(nil, w, "working...")
	s.Stop()
}

func TestSpinnerStopWithSuccess(t *testing.T) {
	w := &syncWriter{}
	s := NewSpinner(context.Background(), w, "working...")

	s.StopWithSuccess("placed %d words", 5)

	if !strings.Contains(w.String(), "placed 5 words") {
		t.Errorf("output missing success message: %q", w.String())
	}
}

func TestSpinnerStopWithError(t *testing.T) {
	w := &syncWriter{}
	s := NewSpinner(context.Background(), w, "working...")

	s.StopWithError("layout failed")

	if !strings.Contains(w.String(), "layout failed") {
		t.Errorf("output missing error message: %q", w.String())
	}
}
