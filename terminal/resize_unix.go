//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
)

// resizeHandler watches SIGWINCH and reports new dimensions
type resizeHandler struct {
	fd      int
	handler func(width, height int)
	sigCh   chan os.Signal
	stopCh  chan struct{}
	doneCh  chan struct{}
}

func newResizeHandler(fd int, handler func(int, int)) *resizeHandler {
	return &resizeHandler{
		fd:      fd,
		handler: handler,
		sigCh:   make(chan os.Signal, 1),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

func (r *resizeHandler) start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	Go(r.watchLoop)
}

func (r *resizeHandler) stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

func (r *resizeHandler) watchLoop() {
	defer close(r.doneCh)

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			w, h := r.getSize()
			if w > 0 && h > 0 {
				r.handler(w, h)
			}
		}
	}
}

func (r *resizeHandler) getSize() (int, int) {
	ws, err := unix.IoctlGetWinsize(r.fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0
	}
	return int(ws.Col), int(ws.Row)
}
