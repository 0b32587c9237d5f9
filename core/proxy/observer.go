//go:generate mockgen -package=mocks -destination=../../mocks/mock_observer.go github.com/gocircum/dynproxy/core/proxy Observer

package proxy

import (
	"fmt"
	"io"
	"time"

	"github.com/gocircum/dynproxy/pkg/logging"
)

// Observer receives the markers emitted around every forwarded call.
// Before runs after the call is resolved and validated, immediately before
// the target is called. After runs once the target has returned.
type Observer interface {
	Before(inv *Invocation)
	After(inv *Invocation, result Result, err error)
}

// NopObserver ignores all markers.
type NopObserver struct{}

func (NopObserver) Before(*Invocation)               {}
func (NopObserver) After(*Invocation, Result, error) {}

// Chain combines observers. Before markers are delivered in the order the
// observers are passed and After markers in reverse, so the first observer
// brackets all the others.
func Chain(observers ...Observer) Observer {
	return chain(observers)
}

type chain []Observer

func (c chain) Before(inv *Invocation) {
	for _, o := range c {
		o.Before(inv)
	}
}

func (c chain) After(inv *Invocation, result Result, err error) {
	for i := len(c) - 1; i >= 0; i-- {
		c[i].After(inv, result, err)
	}
}

// consoleObserver prints human readable banner lines around each call.
type consoleObserver struct {
	w io.Writer
}

// ConsoleObserver creates an observer that writes the interception banner
// to w.
func ConsoleObserver(w io.Writer) Observer {
	return &consoleObserver{w: w}
}

func (o *consoleObserver) Before(inv *Invocation) {
	fmt.Fprintln(o.w, "=== PROXY INTERCEPTED ===")
	fmt.Fprintf(o.w, "Method called: %s\n", inv.Method)
	fmt.Fprintln(o.w, "Before method execution")
}

func (o *consoleObserver) After(inv *Invocation, result Result, err error) {
	if err != nil {
		fmt.Fprintf(o.w, "Method failed: %v\n", err)
	}
	fmt.Fprintln(o.w, "After method execution")
	fmt.Fprintln(o.w, "=== END PROXY ===")
}

// loggingObserver writes structured log lines for each call.
type loggingObserver struct {
	logger logging.Logger
}

// LoggingObserver creates an observer that logs each call at debug level
// and failed calls at warn level.
func LoggingObserver(logger logging.Logger) Observer {
	return &loggingObserver{logger: logger}
}

func (o *loggingObserver) Before(inv *Invocation) {
	o.logger.Debug("Forwarding call", "invocation_id", inv.ID.String(), "method", inv.Method, "args", inv.Args)
}

func (o *loggingObserver) After(inv *Invocation, result Result, err error) {
	duration := time.Since(inv.Started)
	if err != nil {
		o.logger.Warn("Forwarded call failed", "invocation_id", inv.ID.String(), "method", inv.Method, "duration", duration, "error", err)
		return
	}
	o.logger.Debug("Forwarded call completed", "invocation_id", inv.ID.String(), "method", inv.Method, "duration", duration, "results", len(result))
}
