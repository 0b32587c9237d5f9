package proxy

import "errors"

// Errors returned by the interception proxy. The delegate's own errors are
// never wrapped and are returned exactly as the target produced them.
var (
	ErrNilTarget            = errors.New("proxy: target is nil")
	ErrUnsupportedOperation = errors.New("proxy: unsupported operation")
	ErrArgumentMismatch     = errors.New("proxy: argument mismatch")
	ErrDelegatePanicked     = errors.New("proxy: delegate panicked")
)
