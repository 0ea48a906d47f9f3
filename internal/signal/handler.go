// Package signal turns SIGINT and SIGTERM into context cancellation so that
// an interrupted routine stops cleanly and is never logged as completed.
package signal

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// SetupSignalHandler registers SIGINT and SIGTERM handlers.
// When a signal is received, it calls onInterrupt (if non-nil) with that
// signal, then cancels the context.
//
// The handler stays registered until a signal arrives, ctx is done, or the
// returned stop function is called, whichever happens first.
//
// Example usage:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	stop := signal.SetupSignalHandler(ctx, cancel, func(sig os.Signal) {
//	    logging.Warn("stopping routine: " + sig.String())
//	})
//	defer stop()
func SetupSignalHandler(ctx context.Context, cancel context.CancelFunc, onInterrupt func(os.Signal)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	var once sync.Once
	stop = func() {
		once.Do(func() { close(done) })
	}

	go func() {
		defer signal.Stop(sigCh)
		select {
		case sig := <-sigCh:
			if onInterrupt != nil {
				onInterrupt(sig)
			}
			cancel()
		case <-ctx.Done():
		case <-done:
		}
	}()

	return stop
}
