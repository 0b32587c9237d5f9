package proxy

import (
	"time"

	"github.com/google/uuid"
)

// Invocation describes a single intercepted call. It is created when the
// call is dispatched and is only valid until Invoke returns.
type Invocation struct {
	ID      uuid.UUID
	Method  string
	Args    []any
	Started time.Time
}

func newInvocation(method string, args []any) *Invocation {
	return &Invocation{
		ID:      uuid.Must(uuid.NewV7()),
		Method:  method,
		Args:    args,
		Started: time.Now(),
	}
}

// Result holds the non-error return values of a forwarded call, in order.
// It is empty for operations that return nothing.
type Result []any

// First returns the first return value, or nil if there is none.
func (r Result) First() any {
	if len(r) == 0 {
		return nil
	}
	return r[0]
}
