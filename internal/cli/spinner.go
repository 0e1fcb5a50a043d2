package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// spinnerFrames are the animation frames for progress indication.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

const spinnerInterval = 80 * time.Millisecond

// Spinner shows an animated progress indicator on a terminal while a
// long-running operation (layout, word generation) is in flight.
type Spinner struct {
	w       io.Writer
	message string

	mu      sync.Mutex
	stopped bool
	done    chan struct{}
	cancel  context.CancelFunc
}

// NewSpinner creates and starts a spinner writing to w. The spinner
// stops when Stop is called or the parent context is cancelled.
func NewSpinner(parent context.Context, w io.Writer, message string) *Spinner {
	ctx, cancel := context.WithCancel(parentOrBackground(parent))
	s := &Spinner{
		w:       w,
		message: message,
		done:    make(chan struct{}),
		cancel:  cancel,
	}
	go s.run(ctx)
	return s
}

func parentOrBackground(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}

func (s *Spinner) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			s.clearLine()
			return
		case <-ticker.C:
			s.mu.Lock()
			stopped := s.stopped
			s.mu.Unlock()
			if stopped {
				return
			}
			fmt.Fprintf(s.w, "\r%s %s", styleInfo.Render(spinnerFrames[frame]), s.message)
			frame = (frame + 1) % len(spinnerFrames)
		}
	}
}

func (s *Spinner) clearLine() {
	fmt.Fprintf(s.w, "\r%s\r", spaces(len(s.message)+2))
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

// Stop halts the spinner and clears the line. Safe to call multiple times.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	<-s.done
	s.clearLine()
}

// StopWithSuccess stops the spinner and prints a success message.
func (s *Spinner) StopWithSuccess(format string, args ...any) {
	s.Stop()
	fmt.Fprintln(s.w, styleSuccess.Render("✓"), fmt.Sprintf(format, args...))
}

// StopWithError stops the spinner and prints an error message.
func (s *Spinner) StopWithError(format string, args ...any) {
	s.Stop()
	fmt.Fprintln(s.w, styleError.Render("✗"), fmt.Sprintf(format, args...))
}
