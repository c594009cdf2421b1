// Package ssh adapts an SSH channel to the tcell terminal interface so a
// floor plan viewer can run inside a remote session.
package ssh

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// Tty implements tcell.Tty on top of an SSH channel. Window changes from the
// client are tracked so tcell can query the size after each resize.
type Tty struct {
	rw io.ReadWriteCloser

	mu     sync.Mutex
	window gossh.Window
	resize func()

	winCh     <-chan gossh.Window
	watchers  int // watch goroutines started, guarded by mu
	startOnce sync.Once
	stopOnce  sync.Once
	done      chan struct{}
}

// NewTty wraps rw. initial is the window size from the pty request and winCh
// delivers subsequent window-change requests.
func NewTty(rw io.ReadWriteCloser, initial gossh.Window, winCh <-chan gossh.Window) *Tty {
	return &Tty{
		rw:     rw,
		window: initial,
		winCh:  winCh,
		done:   make(chan struct{}),
	}
}

// NewSessionTty builds a Tty for an interactive session. ok is false when the
// client did not request a pty.
func NewSessionTty(s gossh.Session) (tty *Tty, term string, ok bool) {
	pty, winCh, ok := s.Pty()
	if !ok {
		return nil, "", false
	}
	return NewTty(s, pty.Window, winCh), pty.Term, true
}

func (t *Tty) Read(b []byte) (int, error)  { return t.rw.Read(b) }
func (t *Tty) Write(b []byte) (int, error) { return t.rw.Write(b) }

// Close stops resize tracking and closes the channel.
func (t *Tty) Close() error {
	t.stopWatching()
	return t.rw.Close()
}

// Start is a no-op; the channel is open before the handler runs.
func (t *Tty) Start() error { return nil }

// Stop ends resize tracking. The channel stays open until Close.
func (t *Tty) Stop() error {
	t.stopWatching()
	return nil
}

func (t *Tty) Drain() error { return nil }

// WindowSize returns the latest size reported by the client.
func (t *Tty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.window.Width, Height: t.window.Height}, nil
}

// NotifyResize registers cb, replacing any earlier callback, and starts
// consuming window changes on the first call. cb runs after the new size is
// recorded. tcell passes nil at Fini.
func (t *Tty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.resize = cb
	t.mu.Unlock()

	if t.winCh == nil {
		return
	}
	t.startOnce.Do(func() { go t.watch() })
}

func (t *Tty) watch() {
	t.mu.Lock()
	t.watchers++
	t.mu.Unlock()
	for {
		select {
		case <-t.done:
			return
		case win, ok := <-t.winCh:
			if !ok {
				return
			}
			t.setWindow(win)
		}
	}
}

func (t *Tty) setWindow(win gossh.Window) {
	t.mu.Lock()
	t.window = win
	cb := t.resize
	t.mu.Unlock()
	if cb != nil {
		cb()
	}
}

func (t *Tty) stopWatching() {
	t.stopOnce.Do(func() { close(t.done) })
}
