package proxy

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/gocircum/dynproxy/pkg/logging"
)

// Proxy intercepts calls by name and forwards them to a single bound target.
// The method table is built once in New and never changes, so Invoke is safe
// to call from several goroutines as long as the target and the observer are.
type Proxy struct {
	target       any
	methods      map[string]*method
	observer     Observer
	logger       logging.Logger
	afterOnPanic bool
}

// Option configures a Proxy.
type Option func(*Proxy)

// WithObserver sets the observer that receives the before and after markers.
func WithObserver(o Observer) Option {
	return func(p *Proxy) {
		if o != nil {
			p.observer = o
		}
	}
}

// WithLogger sets the logger used for proxy lifecycle messages.
func WithLogger(l logging.Logger) Option {
	return func(p *Proxy) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithAfterOnPanic controls whether the after marker is emitted when the
// delegate panics. The panic is re-raised unchanged either way.
func WithAfterOnPanic(enabled bool) Option {
	return func(p *Proxy) {
		p.afterOnPanic = enabled
	}
}

// New binds target to a new Proxy. If T is a non-empty interface type, only
// the methods of T are exposed; otherwise every exported method of the
// target's dynamic type is.
func New[T any](target T, opts ...Option) (*Proxy, error) {
	v := reflect.ValueOf(target)
	if isNil(v) {
		return nil, ErrNilTarget
	}

	capabilities := reflect.TypeOf((*T)(nil)).Elem()
	if capabilities.Kind() != reflect.Interface || capabilities.NumMethod() == 0 {
		capabilities = v.Type()
	}

	p := &Proxy{
		target:   target,
		methods:  make(map[string]*method, capabilities.NumMethod()),
		observer: NopObserver{},
		logger:   logging.GetLogger(),
	}
	for _, opt := range opts {
		opt(p)
	}

	for i := 0; i < capabilities.NumMethod(); i++ {
		name := capabilities.Method(i).Name
		fn := v.MethodByName(name)
		if !fn.IsValid() {
			return nil, fmt.Errorf("target %s does not implement %s", v.Type(), name)
		}
		p.methods[lookupKey(name)] = newMethod(name, fn)
	}

	p.logger.Debug("Proxy created", "target", v.Type().String(), "methods", p.Methods())
	return p, nil
}

// Invoke forwards the named call to the target exactly once with args
// unchanged. Unknown names and malformed argument lists are rejected before
// the target or the observer are touched. An error returned by the target
// is returned as is.
func (p *Proxy) Invoke(name string, args ...any) (Result, error) {
	m, ok := p.methods[lookupKey(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOperation, name)
	}

	in, err := m.arguments(args)
	if err != nil {
		return nil, err
	}

	inv := newInvocation(m.name, args)
	p.observer.Before(inv)

	result, err := m.results(p.forward(inv, m, in))

	p.observer.After(inv, result, err)
	return result, err
}

func (p *Proxy) forward(inv *Invocation, m *method, in []reflect.Value) []reflect.Value {
	if !p.afterOnPanic {
		return m.fn.Call(in)
	}

	completed := false
	defer func() {
		// Not recovering keeps the original panic unwinding.
		if !completed {
			p.observer.After(inv, nil, ErrDelegatePanicked)
		}
	}()
	out := m.fn.Call(in)
	completed = true
	return out
}

// Supports reports whether name resolves to a method of the target.
func (p *Proxy) Supports(name string) bool {
	_, ok := p.methods[lookupKey(name)]
	return ok
}

// Methods returns the sorted names of the methods the proxy forwards.
func (p *Proxy) Methods() []string {
	names := make([]string, 0, len(p.methods))
	for _, m := range p.methods {
		names = append(names, m.name)
	}
	sort.Strings(names)
	return names
}

// Target returns the bound target.
func (p *Proxy) Target() any {
	return p.target
}

func isNil(v reflect.Value) bool {
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
