package main

import (
	"context"
	"os"
	"os/signal"
)

// interruptContext is cancelled on the first of the given signals.
// A second signal exits the process immediately, for when a handler doesn't stop in time.
func interruptContext(parent context.Context, exit func(code int), signals ...os.Signal) (context.Context, context.CancelFunc) {
	if len(signals) == 0 {
		panic("no signals to wait for")
	}
	ctx, cancel := context.WithCancel(parent)
	sigs := make(chan os.Signal, 2)
	signal.Notify(sigs, signals...)
	stopped := make(chan struct{})
	go func() {
		select {
		case <-sigs:
			cancel()
		case <-stopped:
			return
		}
		select {
		case <-sigs:
			exit(130)
		case <-stopped:
		}
	}()
	return ctx, func() {
		signal.Stop(sigs)
		cancel()
		close(stopped)
	}
}
