package server

import (
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/benbjohnson/clock"
)

// runState is shared by the accept loop and the shutdown watcher.
type runState struct {
	running atomic.Bool
}

func newRunState() *runState {
	s := &runState{}
	s.running.Store(true)
	return s
}

func (s *runState) Running() bool { return s.running.Load() }

// Stop reports whether it was the call that stopped s.
func (s *runState) Stop() bool { return s.running.CompareAndSwap(true, false) }

// poll stops s if signal has fired, without blocking.
func (s *runState) poll(signal <-chan struct{}, logger *slog.Logger) {
	select {
	case <-signal:
		s.stopBySignal(logger)
	default:
	}
}

func (s *runState) stopBySignal(logger *slog.Logger) {
	if s.Stop() {
		logger.Info("shutdown requested, stopping after the current request")
	}
}

// watch stops s once signal fires. The returned func ends the watch,
// and waits for the watcher to exit.
func (s *runState) watch(signal <-chan struct{}, logger *slog.Logger) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		defer close(exited)
		select {
		case <-signal:
			s.stopBySignal(logger)
		case <-done:
		}
	}()

	return func() {
		close(done)
		<-exited
	}
}

// ShutdownAfter returns a shutdown signal firing once d has passed on c.
func ShutdownAfter(c clock.Clock, d time.Duration) <-chan struct{} {
	signal := make(chan struct{})
	c.AfterFunc(d, func() { close(signal) })
	return signal
}
